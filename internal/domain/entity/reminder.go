package entity

import "time"

const (
	ReminderStatusPending   = "PENDING"
	ReminderStatusCompleted = "COMPLETED"
)

type Reminder struct {
	ID        string     `json:"id" firestore:"id"`
	UserID    string     `json:"user_id" firestore:"userId"`
	Title     string     `json:"title" firestore:"title"`
	Course    string     `json:"course,omitempty" firestore:"course,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty" firestore:"dueDate,omitempty"`
	Notes     string     `json:"notes,omitempty" firestore:"notes,omitempty"`
	Status    string     `json:"status" firestore:"status"`
	Deleted   bool       `json:"-" firestore:"deleted"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}
