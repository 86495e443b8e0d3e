package entity

import "time"

type Listing struct {
	ID               string    `json:"id" firestore:"id"`
	UserID           string    `json:"user_id" firestore:"userId"`
	Title            string    `json:"title" firestore:"title"`
	Description      string    `json:"description" firestore:"description"`
	CategoryID       string    `json:"category" firestore:"categoryId"`
	Price            float64   `json:"price" firestore:"price"`
	Location         string    `json:"location" firestore:"location"`
	PaymentMethodIDs []string  `json:"payment_methods_ids" firestore:"paymentMethodIds"`
	OfferingIDs      []string  `json:"offerings_ids" firestore:"offeringIds"`
	ImageURLs        []string  `json:"images" firestore:"imageUrls"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Category struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}

type Tag struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}

type ListingTag struct {
	ID        string `json:"id" firestore:"id"`
	ListingID string `json:"listing" firestore:"listingId"`
	TagID     string `json:"tag" firestore:"tagId"`
}

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ListingID string    `json:"listing" firestore:"listingId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
