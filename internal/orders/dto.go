package orders

import "github.com/shoplite/shoplite-backend/pkg/enums"

// Fulfillment records the outcome of fulfilling an order. AssignedCodes may
// hold fewer codes than the order quantity when the pool runs dry.
type Fulfillment struct {
	Note          string   `json:"note"`
	AssignedCodes []string `json:"assigned_codes"`
}

// Resolution carries the operator-supplied reason for a refund or void.
type Resolution struct {
	Reason string `json:"reason"`
}

// Order is one purchase of a product.
type Order struct {
	ID          int64             `json:"id"`
	ProductID   int64             `json:"product_id"`
	Quantity    int               `json:"quantity"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Status      enums.OrderStatus `json:"status"`
	Notes       string            `json:"notes"`
	Metadata    map[string]any    `json:"metadata"`
	CreatedAt   int64             `json:"created_at"`
	UpdatedAt   int64             `json:"updated_at"`
	Fulfillment *Fulfillment      `json:"fulfillment,omitempty"`
	Refund      *Resolution       `json:"refund,omitempty"`
	Void        *Resolution       `json:"void,omitempty"`
}

// RecordID implements docstore.Record.
func (o Order) RecordID() int64 {
	return o.ID
}

// ListFilters narrow the order list. Nil fields match everything.
type ListFilters struct {
	Status *enums.OrderStatus
	Start  *int64
	End    *int64
}

// CreateInput carries the fields accepted on order creation. A nil Amount
// falls back to the product's first price.
type CreateInput struct {
	ProductID int64
	Quantity  int
	Amount    *int64
	Currency  string
	Notes     string
	Metadata  map[string]any
}
