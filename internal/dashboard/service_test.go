package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shoplite/shoplite-backend/internal/orders"
	"github.com/shoplite/shoplite-backend/pkg/enums"
)

type stubOrderSource struct {
	orders []orders.Order
}

func (s *stubOrderSource) List(_ context.Context, _ orders.ListFilters) []orders.Order {
	return s.orders
}

func newFixedService(t *testing.T, source *stubOrderSource, now time.Time) Service {
	t.Helper()
	svc, err := NewService(source)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.(*service).now = func() time.Time { return now }
	return svc
}

func TestNewServiceRequiresSource(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error without order source")
	}
}

func TestMetricsSeriesLengthAndOrder(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(t, &stubOrderSource{}, now)

	metrics := svc.Metrics(context.Background(), 7)
	if len(metrics.RevenueByDay) != 8 {
		t.Fatalf("expected 8 revenue points, got %d", len(metrics.RevenueByDay))
	}
	if len(metrics.OrdersByDay) != 8 {
		t.Fatalf("expected 8 count points, got %d", len(metrics.OrdersByDay))
	}
	if metrics.RevenueByDay[0].Date != "2024-05-03" {
		t.Fatalf("expected oldest point first, got %s", metrics.RevenueByDay[0].Date)
	}
	if metrics.RevenueByDay[7].Date != "2024-05-10" {
		t.Fatalf("expected today last, got %s", metrics.RevenueByDay[7].Date)
	}
}

func TestMetricsRevenueCountsOnlyPaidAndFulfilled(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC).Unix()

	source := &stubOrderSource{orders: []orders.Order{
		{ID: 1, Amount: 500, Quantity: 2, Status: enums.OrderStatusPaid, CreatedAt: sameDay},
		{ID: 2, Amount: 1000, Quantity: 1, Status: enums.OrderStatusPending, CreatedAt: sameDay},
		{ID: 3, Amount: 300, Quantity: 1, Status: enums.OrderStatusFulfilled, CreatedAt: sameDay},
	}}
	svc := newFixedService(t, source, now)

	metrics := svc.Metrics(context.Background(), 7)

	var revenue int64
	var count int
	for i, point := range metrics.RevenueByDay {
		if point.Date == "2024-05-09" {
			revenue = point.Revenue
			count = metrics.OrdersByDay[i].Count
		}
	}
	// paid 500x2 plus fulfilled 300x1; the pending order adds to the count
	// but not the revenue.
	if revenue != 1300 {
		t.Fatalf("expected revenue 1300, got %d", revenue)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestMetricsOrdersOutsideWindowExcludedFromSeries(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	source := &stubOrderSource{orders: []orders.Order{
		{ID: 1, Amount: 500, Quantity: 1, Status: enums.OrderStatusPaid, CreatedAt: old},
	}}
	svc := newFixedService(t, source, now)

	metrics := svc.Metrics(context.Background(), 7)
	for _, point := range metrics.RevenueByDay {
		if point.Revenue != 0 {
			t.Fatalf("expected no revenue in window, got %d on %s", point.Revenue, point.Date)
		}
	}
}

func TestMetricsPendingAndAbnormalCoverFullHistory(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	old := time.Date(2023, 2, 2, 0, 0, 0, 0, time.UTC).Unix()

	source := &stubOrderSource{orders: []orders.Order{
		{ID: 1, Status: enums.OrderStatusPending, CreatedAt: old},
		{ID: 2, Status: enums.OrderStatusPending, CreatedAt: old},
		{ID: 3, Status: enums.OrderStatusRefunded, CreatedAt: old},
		{ID: 4, Status: enums.OrderStatusVoided, CreatedAt: old},
		{ID: 5, Status: enums.OrderStatusPaid, CreatedAt: old},
	}}
	svc := newFixedService(t, source, now)

	metrics := svc.Metrics(context.Background(), 7)
	if metrics.PendingCount != 2 {
		t.Fatalf("expected 2 pending, got %d", metrics.PendingCount)
	}
	if metrics.AbnormalCount != 2 {
		t.Fatalf("expected 2 abnormal, got %d", metrics.AbnormalCount)
	}
}

func TestMetricsZeroQuantityCountsAsOne(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	day := now.Unix()

	source := &stubOrderSource{orders: []orders.Order{
		{ID: 1, Amount: 700, Quantity: 0, Status: enums.OrderStatusPaid, CreatedAt: day},
	}}
	svc := newFixedService(t, source, now)

	metrics := svc.Metrics(context.Background(), 0)
	if len(metrics.RevenueByDay) != 1 {
		t.Fatalf("expected a single point for days=0, got %d", len(metrics.RevenueByDay))
	}
	if metrics.RevenueByDay[0].Revenue != 700 {
		t.Fatalf("expected revenue 700, got %d", metrics.RevenueByDay[0].Revenue)
	}
}
