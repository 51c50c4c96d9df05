package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/internal/orders"
	"github.com/shoplite/shoplite-backend/pkg/enums"
)

const dayFormat = "2006-01-02"

// DayRevenue is one point of the revenue time series.
type DayRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// DayCount is one point of the order count time series.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Metrics is the dashboard payload. The series cover the trailing window;
// the pending and abnormal counts cover the whole order history.
type Metrics struct {
	RevenueByDay  []DayRevenue `json:"revenue_by_day"`
	OrdersByDay   []DayCount   `json:"orders_by_day"`
	PendingCount  int          `json:"pending_count"`
	AbnormalCount int          `json:"abnormal_count"`
}

// OrderSource is the slice of the order service the aggregator reads from.
type OrderSource interface {
	List(ctx context.Context, filters orders.ListFilters) []orders.Order
}

// Service computes dashboard metrics over the order history.
type Service interface {
	Metrics(ctx context.Context, days int) Metrics
}

type service struct {
	source OrderSource
	now    func() time.Time
}

// NewService builds a dashboard aggregator over the given order source.
func NewService(source OrderSource) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("order source required")
	}
	return &service{
		source: source,
		now:    time.Now,
	}, nil
}

// Metrics aggregates the trailing window into per-day series with exactly
// days+1 points, oldest first. Days without orders appear with zeros.
func (s *service) Metrics(ctx context.Context, days int) Metrics {
	if days < 0 {
		days = 0
	}
	now := s.now().UTC()
	all := s.source.List(ctx, orders.ListFilters{})

	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour).Unix()
	revenueByDay := map[string]int64{}
	countByDay := map[string]int{}
	for _, order := range all {
		if order.CreatedAt < cutoff {
			continue
		}
		day := time.Unix(order.CreatedAt, 0).UTC().Format(dayFormat)
		countByDay[day]++
		if order.Status.IsRevenue() {
			quantity := order.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			revenueByDay[day] += order.Amount * int64(quantity)
		}
	}

	metrics := Metrics{
		RevenueByDay: make([]DayRevenue, 0, days+1),
		OrdersByDay:  make([]DayCount, 0, days+1),
	}
	for i := days; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dayFormat)
		metrics.RevenueByDay = append(metrics.RevenueByDay, DayRevenue{Date: day, Revenue: revenueByDay[day]})
		metrics.OrdersByDay = append(metrics.OrdersByDay, DayCount{Date: day, Count: countByDay[day]})
	}

	for _, order := range all {
		switch {
		case order.Status.IsAbnormal():
			metrics.AbnormalCount++
		case order.Status == enums.OrderStatusPending:
			metrics.PendingCount++
		}
	}
	return metrics
}
