package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/internal/codepool"
	"github.com/shoplite/shoplite-backend/internal/products"
	"github.com/shoplite/shoplite-backend/pkg/docstore"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// ProductCatalog is the slice of the product service the order lifecycle
// needs: resolving the referenced product at creation time.
type ProductCatalog interface {
	Get(ctx context.Context, id int64) (products.Product, error)
}

// Service owns the order lifecycle. Status never changes outside this
// service.
type Service interface {
	List(ctx context.Context, filters ListFilters) []Order
	Get(ctx context.Context, id int64) (Order, error)
	Create(ctx context.Context, input CreateInput) (Order, error)
	SetStatus(ctx context.Context, id int64, status enums.OrderStatus) (Order, error)
	Fulfill(ctx context.Context, id int64, note string) (Order, error)
	Refund(ctx context.Context, id int64, reason string) (Order, error)
	Void(ctx context.Context, id int64, reason string) (Order, error)
}

type service struct {
	store   *docstore.Store
	col     *docstore.Collection[Order]
	catalog ProductCatalog
	now     func() int64
}

// NewService builds an order service with the required dependencies.
func NewService(store *docstore.Store, catalog ProductCatalog) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("product catalog required")
	}
	return &service{
		store:   store,
		col:     docstore.NewCollection[Order](store, docstore.DocOrders),
		catalog: catalog,
		now:     func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) []Order {
	all := s.col.List(ctx)
	result := make([]Order, 0, len(all))
	for _, order := range all {
		if filters.Status != nil && order.Status != *filters.Status {
			continue
		}
		if filters.Start != nil && order.CreatedAt < *filters.Start {
			continue
		}
		if filters.End != nil && order.CreatedAt > *filters.End {
			continue
		}
		result = append(result, order)
	}
	return result
}

func (s *service) Get(ctx context.Context, id int64) (Order, error) {
	order, ok := s.col.Find(ctx, id)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Order, error) {
	product, err := s.catalog.Get(ctx, input.ProductID)
	if err != nil {
		// The facade reports an unknown product as a bad request, not a 404.
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "Product not found")
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	currency := input.Currency
	if currency == "" {
		currency = "CNY"
	}

	var amount int64
	if input.Amount != nil {
		amount = *input.Amount
	} else if len(product.Prices) > 0 {
		first := product.Prices[0]
		amount = first.Amount
		if first.Currency != "" {
			currency = first.Currency
		}
	}

	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	ts := s.now()
	order, err := s.col.Insert(ctx, func(id int64) Order {
		return Order{
			ID:        id,
			ProductID: input.ProductID,
			Quantity:  quantity,
			Amount:    amount,
			Currency:  currency,
			Status:    enums.OrderStatusPending,
			Notes:     input.Notes,
			Metadata:  metadata,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
	})
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}
	return order, nil
}

// SetStatus rewrites the status without consulting the current state. The
// five-value check is the only guard; any transition between them is allowed.
func (s *service) SetStatus(ctx context.Context, id int64, status enums.OrderStatus) (Order, error) {
	if !status.IsValid() {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", status))
	}
	order, found, err := s.col.Update(ctx, id, func(o *Order) {
		o.Status = status
		o.UpdatedAt = s.now()
	})
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}
	if !found {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

// Fulfill marks the order fulfilled and assigns up to quantity available
// codes, oldest first. Both documents are written as one unit of work: if the
// pool write fails, the orders document is rolled back.
func (s *service) Fulfill(ctx context.Context, id int64, note string) (Order, error) {
	var fulfilled Order
	found := false
	ts := s.now()

	err := docstore.MutateDocs2(ctx, s.store, docstore.DocOrders, docstore.DocCodePool,
		func(orders []Order, pool []codepool.Item) ([]Order, []codepool.Item, error) {
			idx := -1
			for i := range orders {
				if orders[i].ID == id {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, nil, docstore.ErrUnchanged
			}
			found = true

			quantity := orders[idx].Quantity
			if quantity <= 0 {
				quantity = 1
			}

			assigned := []string{}
			for i := range pool {
				if len(assigned) >= quantity {
					break
				}
				if pool[i].Status != enums.CodeStatusAvailable {
					continue
				}
				orderID := id
				pool[i].Status = enums.CodeStatusAssigned
				pool[i].AssignedToOrderID = &orderID
				assigned = append(assigned, pool[i].Code)
			}

			orders[idx].Status = enums.OrderStatusFulfilled
			orders[idx].UpdatedAt = ts
			orders[idx].Fulfillment = &Fulfillment{
				Note:          note,
				AssignedCodes: assigned,
			}
			fulfilled = orders[idx]
			return orders, pool, nil
		})
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist fulfillment")
	}
	if !found {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return fulfilled, nil
}

func (s *service) Refund(ctx context.Context, id int64, reason string) (Order, error) {
	return s.resolve(ctx, id, enums.OrderStatusRefunded, func(o *Order) {
		o.Refund = &Resolution{Reason: reason}
	})
}

func (s *service) Void(ctx context.Context, id int64, reason string) (Order, error) {
	return s.resolve(ctx, id, enums.OrderStatusVoided, func(o *Order) {
		o.Void = &Resolution{Reason: reason}
	})
}

// resolve is the shared pure-status rewrite behind refund and void. Codes
// already assigned to the order stay assigned.
func (s *service) resolve(ctx context.Context, id int64, status enums.OrderStatus, attach func(o *Order)) (Order, error) {
	order, found, err := s.col.Update(ctx, id, func(o *Order) {
		o.Status = status
		o.UpdatedAt = s.now()
		attach(o)
	})
	if err != nil {
		return Order{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}
	if !found {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}
