package products

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Service exposes catalog CRUD over the products document.
type Service interface {
	List(ctx context.Context) []Product
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, input CreateInput) (Product, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	col *docstore.Collection[Product]
	now func() int64
}

// NewService builds a product service backed by the given store.
func NewService(store *docstore.Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{
		col: docstore.NewCollection[Product](store, docstore.DocProducts),
		now: func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) List(ctx context.Context) []Product {
	return s.col.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (Product, error) {
	product, ok := s.col.Find(ctx, id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (Product, error) {
	prices := input.Prices
	if prices == nil {
		prices = []Price{}
	}
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	ts := s.now()
	product, err := s.col.Insert(ctx, func(id int64) Product {
		return Product{
			ID:          id,
			Name:        input.Name,
			Description: input.Description,
			Prices:      prices,
			Metadata:    metadata,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	})
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist product")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (Product, error) {
	product, found, err := s.col.Update(ctx, id, func(p *Product) {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Prices != nil {
			p.Prices = *input.Prices
		}
		if input.Metadata != nil {
			p.Metadata = *input.Metadata
		}
		p.UpdatedAt = s.now()
	})
	if err != nil {
		return Product{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist product")
	}
	if !found {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	removed, err := s.col.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist products")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}
