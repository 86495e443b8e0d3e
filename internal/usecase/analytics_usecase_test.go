package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toromarket/internal/domain/entity"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPostsByMonthBucketsAscending(t *testing.T) {
	listingRepo := newFakeListingRepo(
		&entity.Listing{ID: "l1", UserID: "u1", CreatedAt: date("2026-03-05")},
		&entity.Listing{ID: "l2", UserID: "u1", CreatedAt: date("2026-03-20")},
		&entity.Listing{ID: "l3", UserID: "u1", CreatedAt: date("2026-01-10")},
		&entity.Listing{ID: "l4", UserID: "someone-else", CreatedAt: date("2026-03-01")},
	)
	uc := NewAnalyticsUseCase(listingRepo, newFakeOrderRepo(), &fakeMessageRepo{}, newFakeCategoryRepo())

	buckets, err := uc.PostsByMonth(context.Background(), "u1", "", "")
	require.NoError(t, err)

	assert.Equal(t, []MonthCount{
		{Month: "2026-01", Count: 1},
		{Month: "2026-03", Count: 2},
	}, buckets)
}

func TestPostsByMonthRespectsRange(t *testing.T) {
	listingRepo := newFakeListingRepo(
		&entity.Listing{ID: "l1", UserID: "u1", CreatedAt: date("2026-01-10")},
		&entity.Listing{ID: "l2", UserID: "u1", CreatedAt: date("2026-02-15")},
		&entity.Listing{ID: "l3", UserID: "u1", CreatedAt: date("2026-04-01")},
	)
	uc := NewAnalyticsUseCase(listingRepo, newFakeOrderRepo(), &fakeMessageRepo{}, newFakeCategoryRepo())

	buckets, err := uc.PostsByMonth(context.Background(), "u1", "2026-02-01", "2026-02-28")
	require.NoError(t, err)

	assert.Equal(t, []MonthCount{{Month: "2026-02", Count: 1}}, buckets)
}

func TestOverviewCounts(t *testing.T) {
	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)

	listingRepo := newFakeListingRepo(
		&entity.Listing{ID: "l1", UserID: "u1", CreatedAt: now},
		&entity.Listing{ID: "l2", UserID: "u1", CreatedAt: lastYear},
	)
	orderRepo := newFakeOrderRepo()
	require.NoError(t, orderRepo.Create(context.Background(), &entity.Order{BuyerID: "u1", CreatedAt: now}))
	require.NoError(t, orderRepo.Create(context.Background(), &entity.Order{BuyerID: "u1", CreatedAt: lastYear}))
	require.NoError(t, orderRepo.Create(context.Background(), &entity.Order{BuyerID: "u1", CreatedAt: lastYear}))

	uc := NewAnalyticsUseCase(listingRepo, orderRepo, &fakeMessageRepo{}, newFakeCategoryRepo())

	overview, err := uc.Overview(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalPosts)
	assert.Equal(t, 1, overview.PostsThisMonth)
	assert.Equal(t, 3, overview.TotalSales)
	assert.Equal(t, 1, overview.SalesThisMonth)
}

func TestSalesByCategoryCountsDescending(t *testing.T) {
	categoryRepo := newFakeCategoryRepo(
		&entity.Category{ID: "cat-books", Name: "Books"},
		&entity.Category{ID: "cat-tech", Name: "Tech"},
	)
	listingRepo := newFakeListingRepo(
		&entity.Listing{ID: "l1", UserID: "seller", CategoryID: "cat-books"},
		&entity.Listing{ID: "l2", UserID: "seller", CategoryID: "cat-tech"},
	)
	orderRepo := newFakeOrderRepo()
	ctx := context.Background()
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{BuyerID: "u1", ListingID: "l1"}))
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{BuyerID: "u1", ListingID: "l1"}))
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{BuyerID: "u1", ListingID: "l2"}))

	uc := NewAnalyticsUseCase(listingRepo, orderRepo, &fakeMessageRepo{}, categoryRepo)

	values, err := uc.SalesByCategory(ctx, "u1", "", "")
	require.NoError(t, err)

	assert.Equal(t, []CategoryValue{
		{Category: "Books", Value: 2},
		{Category: "Tech", Value: 1},
	}, values)
}

func TestNotificationsSummary(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	ctx := context.Background()
	require.NoError(t, messageRepo.Create(ctx, &entity.Message{SenderID: "other", RecipientID: "u1", Content: "hi"}))
	require.NoError(t, messageRepo.Create(ctx, &entity.Message{SenderID: "other", RecipientID: "u1", Content: "hello", Read: true}))
	require.NoError(t, messageRepo.Create(ctx, &entity.Message{SenderID: "u1", RecipientID: "other", Content: "yo"}))

	orderRepo := newFakeOrderRepo()
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{SellerID: "u1", CreatedAt: time.Now()}))
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{SellerID: "u1", CreatedAt: time.Now().AddDate(0, 0, -3)}))

	uc := NewAnalyticsUseCase(newFakeListingRepo(), orderRepo, messageRepo, newFakeCategoryRepo())

	summary, err := uc.NotificationsSummary(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.UnreadMessages)
	assert.Equal(t, 1, summary.NewOrdersToday)
}
