package usecase

import (
	"context"

	"toromarket/internal/domain/repository"
	"toromarket/internal/domain/service"
	"toromarket/pkg/errors"
)

// PaymentUseCase fronts the external payment gateway.
type PaymentUseCase struct {
	paymentService service.PaymentService
	listingRepo    repository.ListingRepository
}

func NewPaymentUseCase(paymentService service.PaymentService, listingRepo repository.ListingRepository) *PaymentUseCase {
	return &PaymentUseCase{
		paymentService: paymentService,
		listingRepo:    listingRepo,
	}
}

func (uc *PaymentUseCase) CreateIntent(ctx context.Context, amount float64) (*service.PaymentIntentResult, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Invalid amount", nil)
	}
	return uc.paymentService.CreatePaymentIntent(ctx, amount)
}

func (uc *PaymentUseCase) CreateCheckoutSession(ctx context.Context, listingID string) (*service.CheckoutSessionResult, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	return uc.paymentService.CreateCheckoutSession(ctx, listing)
}
