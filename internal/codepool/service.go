package codepool

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Service manages the code pool inventory.
type Service interface {
	List(ctx context.Context, status *enums.CodeStatus) []Item
	Add(ctx context.Context, codes []string) (AddResult, error)
	MarkUsed(ctx context.Context, code string) error
}

type service struct {
	col   *docstore.Collection[Item]
	alloc docstore.Allocator
	now   func() int64
}

// NewService builds a code pool service backed by the given store.
func NewService(store *docstore.Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{
		col:   docstore.NewCollection[Item](store, docstore.DocCodePool),
		alloc: docstore.MaxPlusOne{},
		now:   func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) List(ctx context.Context, status *enums.CodeStatus) []Item {
	items := s.col.List(ctx)
	if status == nil {
		return items
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Status == *status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Add inserts the given codes, skipping any code already present in the pool
// or repeated within the call. Duplicates are not an error.
func (s *service) Add(ctx context.Context, codes []string) (AddResult, error) {
	result := AddResult{Added: []string{}}
	ts := s.now()
	_, err := s.col.Mutate(ctx, func(items []Item) ([]Item, error) {
		existing := make(map[string]struct{}, len(items))
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			existing[item.Code] = struct{}{}
			ids = append(ids, item.ID)
		}
		for _, code := range codes {
			if _, dup := existing[code]; dup {
				continue
			}
			id := s.alloc.Next(ids)
			items = append(items, Item{
				ID:        id,
				Code:      code,
				Status:    enums.CodeStatusAvailable,
				CreatedAt: ts,
			})
			ids = append(ids, id)
			existing[code] = struct{}{}
			result.Added = append(result.Added, code)
		}
		result.Total = len(items)
		return items, nil
	})
	if err != nil {
		return AddResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist code pool")
	}
	return result, nil
}

func (s *service) MarkUsed(ctx context.Context, code string) error {
	marked := false
	_, err := s.col.Mutate(ctx, func(items []Item) ([]Item, error) {
		for i := range items {
			if items[i].Code == code {
				items[i].Status = enums.CodeStatusUsed
				marked = true
				return items, nil
			}
		}
		return nil, docstore.ErrUnchanged
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist code pool")
	}
	if !marked {
		return pkgerrors.New(pkgerrors.CodeNotFound, "code not found")
	}
	return nil
}
