package products

import "github.com/shoplite/shoplite-backend/pkg/enums"

// Price is one purchasable price point on a product. Amounts are integer
// minor currency units.
type Price struct {
	Type     enums.PriceType `json:"type"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Interval string          `json:"interval,omitempty"`
}

// Product is a sellable catalog entry.
type Product struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Prices      []Price        `json:"prices"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   int64          `json:"created_at"`
	UpdatedAt   int64          `json:"updated_at"`
}

// RecordID implements docstore.Record.
func (p Product) RecordID() int64 {
	return p.ID
}

// CreateInput carries the fields accepted on product creation.
type CreateInput struct {
	Name        string
	Description string
	Prices      []Price
	Metadata    map[string]any
}

// UpdateInput carries the whitelisted partial update fields. Nil fields are
// left untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	Prices      *[]Price
	Metadata    *map[string]any
}
