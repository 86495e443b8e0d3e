package entity

import "time"

type Event struct {
	ID          string    `json:"id" firestore:"id"`
	CreatorID   string    `json:"creator_id" firestore:"creatorId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	ImageURL    string    `json:"image,omitempty" firestore:"imageUrl,omitempty"`
	Date        string    `json:"date" firestore:"date"`
	Time        string    `json:"time" firestore:"time"`
	Location    string    `json:"location" firestore:"location"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
