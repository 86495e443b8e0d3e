package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"toromarket/internal/domain/entity"
	"toromarket/internal/domain/repository"
)

// AnalyticsUseCase computes the dashboard aggregates. Counts are grouped
// in-process since the document store has no group-by.
type AnalyticsUseCase struct {
	listingRepo  repository.ListingRepository
	orderRepo    repository.OrderRepository
	messageRepo  repository.MessageRepository
	categoryRepo repository.CategoryRepository
}

func NewAnalyticsUseCase(
	listingRepo repository.ListingRepository,
	orderRepo repository.OrderRepository,
	messageRepo repository.MessageRepository,
	categoryRepo repository.CategoryRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		listingRepo:  listingRepo,
		orderRepo:    orderRepo,
		messageRepo:  messageRepo,
		categoryRepo: categoryRepo,
	}
}

type Overview struct {
	PostsThisMonth int `json:"postsThisMonth"`
	TotalPosts     int `json:"totalPosts"`
	SalesThisMonth int `json:"salesThisMonth"`
	TotalSales     int `json:"totalSales"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type CategoryValue struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

type NotificationsSummary struct {
	UnreadMessages int64 `json:"unreadMessages"`
	NewOrdersToday int   `json:"newOrdersToday"`
}

func (uc *AnalyticsUseCase) Overview(ctx context.Context, userID string) (*Overview, error) {
	listings, err := uc.listingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sameMonth := func(t time.Time) bool {
		return t.Year() == now.Year() && t.Month() == now.Month()
	}

	return &Overview{
		TotalPosts: len(listings),
		PostsThisMonth: lo.CountBy(listings, func(l *entity.Listing) bool {
			return sameMonth(l.CreatedAt)
		}),
		TotalSales: len(orders),
		SalesThisMonth: lo.CountBy(orders, func(o *entity.Order) bool {
			return sameMonth(o.CreatedAt)
		}),
	}, nil
}

// PostsByMonth buckets the user's listings by creation month (YYYY-MM),
// ascending, optionally bounded by start/end dates (YYYY-MM-DD).
func (uc *AnalyticsUseCase) PostsByMonth(ctx context.Context, userID, start, end string) ([]MonthCount, error) {
	listings, err := uc.listingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	times := lo.Map(listings, func(l *entity.Listing, _ int) time.Time { return l.CreatedAt })
	return bucketByMonth(times, start, end), nil
}

// SalesByMonth buckets the user's orders by creation month.
func (uc *AnalyticsUseCase) SalesByMonth(ctx context.Context, userID, start, end string) ([]MonthCount, error) {
	orders, err := uc.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}
	times := lo.Map(orders, func(o *entity.Order, _ int) time.Time { return o.CreatedAt })
	return bucketByMonth(times, start, end), nil
}

// SalesByCategory counts the user's orders per listing category,
// descending by count.
func (uc *AnalyticsUseCase) SalesByCategory(ctx context.Context, userID, start, end string) ([]CategoryValue, error) {
	orders, err := uc.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders = lo.Filter(orders, func(o *entity.Order, _ int) bool {
		return withinRange(o.CreatedAt, start, end)
	})

	categoryNames := map[string]string{}
	nameFor := func(listingID string) string {
		listing, err := uc.listingRepo.GetByID(ctx, listingID)
		if err != nil {
			return "unknown"
		}
		if name, ok := categoryNames[listing.CategoryID]; ok {
			return name
		}
		category, err := uc.categoryRepo.GetByID(ctx, listing.CategoryID)
		if err != nil {
			categoryNames[listing.CategoryID] = "unknown"
			return "unknown"
		}
		categoryNames[listing.CategoryID] = category.Name
		return category.Name
	}

	counts := lo.CountValuesBy(orders, func(o *entity.Order) string { return nameFor(o.ListingID) })

	values := lo.MapToSlice(counts, func(category string, count int) CategoryValue {
		return CategoryValue{Category: category, Value: count}
	})
	sort.Slice(values, func(i, j int) bool { return values[i].Value > values[j].Value })
	return values, nil
}

// NotificationsSummary reports unread messages addressed to the user and
// today's orders on their listings.
func (uc *AnalyticsUseCase) NotificationsSummary(ctx context.Context, userID string) (*NotificationsSummary, error) {
	unread, err := uc.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.orderRepo.ListBySeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	year, month, day := time.Now().Date()
	newToday := lo.CountBy(sales, func(o *entity.Order) bool {
		oy, om, od := o.CreatedAt.Date()
		return oy == year && om == month && od == day
	})

	return &NotificationsSummary{
		UnreadMessages: unread,
		NewOrdersToday: newToday,
	}, nil
}

func bucketByMonth(times []time.Time, start, end string) []MonthCount {
	times = lo.Filter(times, func(t time.Time, _ int) bool { return withinRange(t, start, end) })

	counts := lo.CountValuesBy(times, func(t time.Time) string { return t.Format("2006-01") })

	months := lo.Keys(counts)
	sort.Strings(months)

	return lo.Map(months, func(month string, _ int) MonthCount {
		return MonthCount{Month: month, Count: counts[month]}
	})
}

func withinRange(t time.Time, start, end string) bool {
	if start != "" {
		if s, err := time.Parse("2006-01-02", start); err == nil && t.Before(s) {
			return false
		}
	}
	if end != "" {
		if e, err := time.Parse("2006-01-02", end); err == nil && t.After(e.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}
