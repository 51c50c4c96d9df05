package codepool

import "github.com/shoplite/shoplite-backend/pkg/enums"

// Item is one redeemable code in the pool inventory.
type Item struct {
	ID                int64            `json:"id"`
	Code              string           `json:"code"`
	Status            enums.CodeStatus `json:"status"`
	AssignedToOrderID *int64           `json:"assigned_to_order_id"`
	CreatedAt         int64            `json:"created_at"`
}

// RecordID implements docstore.Record.
func (i Item) RecordID() int64 {
	return i.ID
}

// AddResult reports which codes an add call actually inserted.
type AddResult struct {
	Added []string `json:"added"`
	Total int      `json:"total"`
}
