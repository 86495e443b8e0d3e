package entity

import "time"

const (
	NotificationTargetMessage = "message"
	NotificationTargetOrder   = "order"

	VerbMessageSent    = "sent you a message"
	VerbListingOrdered = "purchased your listing"
)

// NotificationTarget is a tagged reference to the entity the notification
// is about, resolved explicitly by Kind.
type NotificationTarget struct {
	Kind string `json:"kind" firestore:"kind"`
	ID   string `json:"id" firestore:"id"`
}

type Notification struct {
	ID          string              `json:"id" firestore:"id"`
	RecipientID string              `json:"recipient_id" firestore:"recipientId"`
	ActorID     string              `json:"actor_id,omitempty" firestore:"actorId,omitempty"`
	Verb        string              `json:"verb" firestore:"verb"`
	Target      *NotificationTarget `json:"target,omitempty" firestore:"target,omitempty"`
	Unread      bool                `json:"unread" firestore:"unread"`
	Timestamp   time.Time           `json:"timestamp" firestore:"timestamp"`
}
