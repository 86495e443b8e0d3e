package entity

import "time"

const (
	OrderStatusPending  = "PENDING"
	OrderStatusPaid     = "PAID"
	OrderStatusCanceled = "CANCELED"
)

type PaymentMethod struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
	Icon string `json:"icon,omitempty" firestore:"icon,omitempty"`
}

// Offering is an optional add-on a seller attaches to a listing.
type Offering struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	ExtraCost   float64 `json:"extra_cost" firestore:"extraCost"`
}

// Order records a purchase of a listing. TotalPrice is computed server-side
// at creation (listing price plus selected offering costs) and frozen.
type Order struct {
	ID              string                 `json:"id" firestore:"id"`
	BuyerID         string                 `json:"buyer" firestore:"buyerId"`
	SellerID        string                 `json:"seller_id" firestore:"sellerId"`
	ListingID       string                 `json:"listing" firestore:"listingId"`
	PaymentMethodID string                 `json:"payment_method" firestore:"paymentMethodId"`
	OfferingIDs     []string               `json:"offerings" firestore:"offeringIds"`
	TotalPrice      float64                `json:"total_price" firestore:"totalPrice"`
	AddressDetails  map[string]interface{} `json:"address_details,omitempty" firestore:"addressDetails,omitempty"`
	Status          string                 `json:"status" firestore:"status"`
	CreatedAt       time.Time              `json:"created_at" firestore:"createdAt"`
	PaidAt          *time.Time             `json:"paid_at,omitempty" firestore:"paidAt,omitempty"`
}
