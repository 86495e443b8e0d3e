package usecase

import (
	"context"
	"time"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
	"toromarket/internal/domain/service"
	"toromarket/pkg/errors"
	"toromarket/pkg/logger"
)

// OrderUseCase runs the settlement flow: resolve references, compute the
// total server-side, persist, notify the seller, then best-effort email
// the buyer.
type OrderUseCase struct {
	orderRepo         repository.OrderRepository
	listingRepo       repository.ListingRepository
	paymentMethodRepo repository.PaymentMethodRepository
	offeringRepo      repository.OfferingRepository
	userRepo          repository.UserRepository
	notifier          *NotificationUseCase
	emailService      service.EmailService
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	listingRepo repository.ListingRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
	offeringRepo repository.OfferingRepository,
	userRepo repository.UserRepository,
	notifier *NotificationUseCase,
	emailService service.EmailService,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:         orderRepo,
		listingRepo:       listingRepo,
		paymentMethodRepo: paymentMethodRepo,
		offeringRepo:      offeringRepo,
		userRepo:          userRepo,
		notifier:          notifier,
		emailService:      emailService,
	}
}

type CreateOrderInput struct {
	ListingID       string
	PaymentMethodID string
	OfferingIDs     []string
	AddressDetails  map[string]interface{}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}

	method, err := uc.paymentMethodRepo.GetByID(ctx, input.PaymentMethodID)
	if err != nil {
		return nil, errors.NotFound("Payment method", err)
	}

	offerings, err := uc.offeringRepo.GetByIDs(ctx, input.OfferingIDs)
	if err != nil {
		return nil, err
	}
	if len(offerings) != len(input.OfferingIDs) {
		return nil, errors.NotFound("Offering", nil)
	}

	// Caller-supplied totals are never trusted: listing price plus the
	// selected add-on costs, computed here and frozen.
	total := listing.Price
	for _, offering := range offerings {
		total += offering.ExtraCost
	}

	order := &entity.Order{
		BuyerID:         buyerID,
		SellerID:        listing.UserID,
		ListingID:       listing.ID,
		PaymentMethodID: method.ID,
		OfferingIDs:     input.OfferingIDs,
		TotalPrice:      total,
		AddressDetails:  input.AddressDetails,
		Status:          entity.OrderStatusPending,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.notifier.NotifyOrderPlaced(ctx, order, listing); err != nil {
		return nil, err
	}

	uc.sendConfirmationEmail(ctx, buyerID, order, listing, method)

	return order, nil
}

// sendConfirmationEmail is best-effort: failures are logged and swallowed,
// never surfaced and never rolling back the order.
func (uc *OrderUseCase) sendConfirmationEmail(ctx context.Context, buyerID string, order *entity.Order, listing *entity.Listing, method *entity.PaymentMethod) {
	if uc.emailService == nil {
		return
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		logger.Warn("order: could not load buyer %s for confirmation email: %v", buyerID, err)
		return
	}

	if err := uc.emailService.SendOrderConfirmation(ctx, buyer, order, listing, method); err != nil {
		logger.Warn("order: confirmation email for order %s failed: %v", order.ID, err)
	}
}

// ListMyOrders returns orders where the caller is the buyer, newest first.
func (uc *OrderUseCase) ListMyOrders(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByBuyer(ctx, buyerID)
}

// ListSales returns orders placed against the caller's listings.
func (uc *OrderUseCase) ListSales(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListBySeller(ctx, sellerID)
}

// ListForListing is seller-only: orders placed on one of their listings.
func (uc *OrderUseCase) ListForListing(ctx context.Context, userID, listingID string) ([]*entity.Order, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to view these orders", nil)
	}
	return uc.orderRepo.ListByListing(ctx, listingID)
}

// MarkPaid transitions a pending order after payment confirmation.
func (uc *OrderUseCase) MarkPaid(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFound("Order", err)
	}
	if order.BuyerID != userID {
		return nil, errors.Forbidden("Not your order", nil)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, errors.BadRequest("Order is not pending", nil)
	}

	now := time.Now()
	order.Status = entity.OrderStatusPaid
	order.PaidAt = &now
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
