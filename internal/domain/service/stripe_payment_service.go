package service

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"toromarket/internal/domain/entity"
	"toromarket/pkg/errors"
	"toromarket/pkg/logger"
)

type StripePaymentService struct {
	frontendBaseURL string
}

func NewStripePaymentService(secretKey, frontendBaseURL string) *StripePaymentService {
	stripe.Key = secretKey
	return &StripePaymentService{
		frontendBaseURL: frontendBaseURL,
	}
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, amount float64) (*PaymentIntentResult, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Invalid amount", nil)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		logger.Error("Stripe payment intent failed: %v", err)
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	return &PaymentIntentResult{ClientSecret: intent.ClientSecret}, nil
}

func (s *StripePaymentService) CreateCheckoutSession(ctx context.Context, listing *entity.Listing) (*CheckoutSessionResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(listing.Price * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(listing.Title),
						Description: stripe.String(listing.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		SuccessURL:               stripe.String(s.frontendBaseURL + "/order-confirmation/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.frontendBaseURL + "/checkout/cancel"),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		logger.Error("Stripe checkout session failed for listing %s: %v", listing.ID, err)
		return nil, errors.Internal("Failed to create checkout session", err)
	}

	return &CheckoutSessionResult{SessionID: sess.ID}, nil
}
