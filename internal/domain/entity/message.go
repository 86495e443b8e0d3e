package entity

import "time"

// Message is one chat message between two users. A conversation is the
// ascending-by-CreatedAt sequence of messages between a participant pair,
// optionally scoped to a listing. Read is the only field mutated after
// creation.
type Message struct {
	ID          string    `json:"id" firestore:"id"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	ListingID   string    `json:"listing,omitempty" firestore:"listingId,omitempty"`
	ParentID    string    `json:"parent_message,omitempty" firestore:"parentId,omitempty"`
	Content     string    `json:"content" firestore:"content"`
	Read        bool      `json:"read" firestore:"read"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
