package service

import (
	"context"

	"toromarket/internal/domain/entity"
)

// PaymentIntentResult carries the client secret the frontend needs to
// confirm a payment.
type PaymentIntentResult struct {
	ClientSecret string `json:"client_secret"`
}

// CheckoutSessionResult carries the opaque hosted-checkout session id.
type CheckoutSessionResult struct {
	SessionID string `json:"sessionId"`
}

// PaymentService is the narrow gateway contract: amounts in, opaque
// intent/session identifiers out.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (*PaymentIntentResult, error)
	CreateCheckoutSession(ctx context.Context, listing *entity.Listing) (*CheckoutSessionResult, error)
}
