package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toromarket/internal/domain/entity"
	"toromarket/pkg/errors"
)

type orderFixture struct {
	uc               *OrderUseCase
	orderRepo        *fakeOrderRepo
	notificationRepo *fakeNotificationRepo
	email            *fakeEmailService
	buyer            *entity.User
	seller           *entity.User
	listing          *entity.Listing
	method           *entity.PaymentMethod
}

func newOrderFixture() *orderFixture {
	buyer := &entity.User{ID: "u-buyer", Email: "buyer@csudh.edu", Username: "buyer"}
	seller := &entity.User{ID: "u-seller", Email: "seller@csudh.edu", Username: "seller"}
	listing := &entity.Listing{ID: "listing-1", UserID: seller.ID, Title: "Calculus textbook", Price: 10.00}
	method := &entity.PaymentMethod{ID: "pm-1", Name: "Card"}

	orderRepo := newFakeOrderRepo()
	notificationRepo := &fakeNotificationRepo{}
	email := &fakeEmailService{}

	uc := NewOrderUseCase(
		orderRepo,
		newFakeListingRepo(listing),
		newFakePaymentMethodRepo(method),
		newFakeOfferingRepo(
			&entity.Offering{ID: "off-1", Name: "Gift wrap", ExtraCost: 2.50},
			&entity.Offering{ID: "off-2", Name: "Delivery", ExtraCost: 5.00},
		),
		newFakeUserRepo(buyer, seller),
		NewNotificationUseCase(notificationRepo),
		email,
	)

	return &orderFixture{
		uc:               uc,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		email:            email,
		buyer:            buyer,
		seller:           seller,
		listing:          listing,
		method:           method,
	}
}

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
		OfferingIDs:     []string{"off-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, 12.50, order.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, f.buyer.ID, order.BuyerID)
	assert.Equal(t, f.seller.ID, order.SellerID)
	assert.Nil(t, order.PaidAt)

	require.Len(t, f.notificationRepo.notifications, 1)
	notif := f.notificationRepo.notifications[0]
	assert.Equal(t, f.seller.ID, notif.RecipientID)
	assert.Equal(t, f.buyer.ID, notif.ActorID)
	assert.Equal(t, entity.VerbListingOrdered, notif.Verb)
	require.NotNil(t, notif.Target)
	assert.Equal(t, entity.NotificationTargetOrder, notif.Target.Kind)
	assert.Equal(t, order.ID, notif.Target.ID)

	assert.Equal(t, 1, f.email.sent)
}

func TestCreateOrderNoOfferings(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.00, order.TotalPrice)
}

func TestCreateOrderMultipleOfferings(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
		OfferingIDs:     []string{"off-1", "off-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 17.50, order.TotalPrice)
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       "missing",
		PaymentMethodID: f.method.ID,
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: "missing",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
		OfferingIDs:     []string{"off-1", "missing"},
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.Empty(t, f.orderRepo.orders)
	assert.Empty(t, f.notificationRepo.notifications)
}

func TestCreateOrderEmailFailureIsSwallowed(t *testing.T) {
	f := newOrderFixture()
	f.email.fail = true

	order, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
	})
	require.NoError(t, err)

	// Order and notification persisted despite the failed email.
	assert.Len(t, f.orderRepo.orders, 1)
	assert.Len(t, f.notificationRepo.notifications, 1)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestMarkPaid(t *testing.T) {
	f := newOrderFixture()

	order, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.MarkPaid(context.Background(), f.seller.ID, order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	paid, err := f.uc.MarkPaid(context.Background(), f.buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	_, err = f.uc.MarkPaid(context.Background(), f.buyer.ID, order.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListForListingSellerOnly(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), f.buyer.ID, CreateOrderInput{
		ListingID:       f.listing.ID,
		PaymentMethodID: f.method.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.ListForListing(context.Background(), f.buyer.ID, f.listing.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	orders, err := f.uc.ListForListing(context.Background(), f.seller.ID, f.listing.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
