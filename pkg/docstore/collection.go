package docstore

import (
	"context"
	"errors"
)

// ErrUnchanged is returned by mutate transforms to skip the write entirely.
var ErrUnchanged = errors.New("document unchanged")

// Record is any document entry carrying an integer identifier.
type Record interface {
	RecordID() int64
}

// Allocator assigns the identifier for a new record. It exists so the
// max-plus-one scan can be swapped for a real sequence without touching
// callers.
type Allocator interface {
	Next(existing []int64) int64
}

// MaxPlusOne allocates max(existing)+1, starting at 1. A deleted maximum is
// therefore reused by the next insert.
type MaxPlusOne struct{}

func (MaxPlusOne) Next(existing []int64) int64 {
	var max int64
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Collection is the generic CRUD surface over one document. Every entity
// service is built on it; only the update whitelists differ per entity and
// those live in the services.
type Collection[T Record] struct {
	store *Store
	doc   Document
	alloc Allocator
}

// NewCollection binds a typed collection to a document with the default
// max-plus-one allocator.
func NewCollection[T Record](store *Store, doc Document) *Collection[T] {
	return &Collection[T]{store: store, doc: doc, alloc: MaxPlusOne{}}
}

// WithAllocator overrides the id allocator.
func (c *Collection[T]) WithAllocator(alloc Allocator) *Collection[T] {
	c.alloc = alloc
	return c
}

// Document returns the backing document name.
func (c *Collection[T]) Document() Document {
	return c.doc
}

// List returns every record in insertion order.
func (c *Collection[T]) List(ctx context.Context) []T {
	return ReadDoc[T](ctx, c.store, c.doc)
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(ctx context.Context, id int64) (T, bool) {
	for _, item := range c.List(ctx) {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert allocates the next id, builds the record, and appends it.
func (c *Collection[T]) Insert(ctx context.Context, build func(id int64) T) (T, error) {
	var created T
	_, err := MutateDoc(ctx, c.store, c.doc, func(items []T) ([]T, error) {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.RecordID())
		}
		created = build(c.alloc.Next(ids))
		return append(items, created), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update applies the mutation to the record in place and persists the
// document. It reports false without writing when the id is unknown.
func (c *Collection[T]) Update(ctx context.Context, id int64, apply func(item *T)) (T, bool, error) {
	var updated T
	found := false
	_, err := MutateDoc(ctx, c.store, c.doc, func(items []T) ([]T, error) {
		for i := range items {
			if items[i].RecordID() == id {
				apply(&items[i])
				updated = items[i]
				found = true
				return items, nil
			}
		}
		return nil, ErrUnchanged
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return updated, found, nil
}

// Delete physically removes the record. It reports false without writing
// when the id is unknown.
func (c *Collection[T]) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false
	_, err := MutateDoc(ctx, c.store, c.doc, func(items []T) ([]T, error) {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if item.RecordID() == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		if !removed {
			return nil, ErrUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Replace overwrites the whole document with the given record set.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	return WriteDoc(ctx, c.store, c.doc, items)
}

// Mutate exposes the raw read-modify-write cycle for operations that do not
// fit the id-keyed helpers.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) ([]T, error) {
	return MutateDoc(ctx, c.store, c.doc, fn)
}
