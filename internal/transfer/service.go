package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"

	"github.com/shoplite/shoplite-backend/internal/announcements"
	"github.com/shoplite/shoplite-backend/internal/codepool"
	"github.com/shoplite/shoplite-backend/internal/courses"
	"github.com/shoplite/shoplite-backend/internal/files"
	"github.com/shoplite/shoplite-backend/internal/orders"
	"github.com/shoplite/shoplite-backend/internal/products"
	"github.com/shoplite/shoplite-backend/pkg/docstore"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Snapshot is the full document dump produced by Export and accepted (in
// whole or in part) by Import.
type Snapshot struct {
	Products      []products.Product   `json:"products"`
	Orders        []orders.Order       `json:"orders"`
	Files         []files.Record       `json:"files"`
	CodePool      []codepool.Item      `json:"code_pool"`
	Courses       []courses.Course     `json:"courses"`
	Chapters      []courses.Chapter    `json:"chapters"`
	Announcements []announcements.Post `json:"announcements"`
}

// Service moves whole documents in and out of the store.
type Service interface {
	Export(ctx context.Context) Snapshot
	// Import overwrites each document named in the payload wholesale.
	// Documents absent from the payload are left untouched.
	Import(ctx context.Context, payload map[string]json.RawMessage) error
}

type service struct {
	store *docstore.Store
}

// NewService builds a transfer service over the given store.
func NewService(store *docstore.Store) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{store: store}, nil
}

func (s *service) Export(ctx context.Context) Snapshot {
	return Snapshot{
		Products:      docstore.ReadDoc[products.Product](ctx, s.store, docstore.DocProducts),
		Orders:        docstore.ReadDoc[orders.Order](ctx, s.store, docstore.DocOrders),
		Files:         docstore.ReadDoc[files.Record](ctx, s.store, docstore.DocFiles),
		CodePool:      docstore.ReadDoc[codepool.Item](ctx, s.store, docstore.DocCodePool),
		Courses:       docstore.ReadDoc[courses.Course](ctx, s.store, docstore.DocCourses),
		Chapters:      docstore.ReadDoc[courses.Chapter](ctx, s.store, docstore.DocChapters),
		Announcements: docstore.ReadDoc[announcements.Post](ctx, s.store, docstore.DocAnnouncements),
	}
}

func (s *service) Import(ctx context.Context, payload map[string]json.RawMessage) error {
	// Decode everything before writing anything, so a type mismatch in one
	// document never leaves a partial import behind.
	writes := make([]func() error, 0, len(payload))
	for _, doc := range docstore.AllDocuments() {
		raw, ok := payload[string(doc)]
		if !ok {
			continue
		}
		write, err := s.prepare(ctx, doc, raw)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid %s payload", doc))
		}
		writes = append(writes, write)
	}

	var errs error
	for _, write := range writes {
		errs = multierr.Append(errs, write())
	}
	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, errs, "import documents")
	}
	return nil
}

func (s *service) prepare(ctx context.Context, doc docstore.Document, raw json.RawMessage) (func() error, error) {
	switch doc {
	case docstore.DocProducts:
		return prepareDoc[products.Product](ctx, s.store, doc, raw)
	case docstore.DocOrders:
		return prepareDoc[orders.Order](ctx, s.store, doc, raw)
	case docstore.DocFiles:
		return prepareDoc[files.Record](ctx, s.store, doc, raw)
	case docstore.DocCodePool:
		return prepareDoc[codepool.Item](ctx, s.store, doc, raw)
	case docstore.DocCourses:
		return prepareDoc[courses.Course](ctx, s.store, doc, raw)
	case docstore.DocChapters:
		return prepareDoc[courses.Chapter](ctx, s.store, doc, raw)
	case docstore.DocAnnouncements:
		return prepareDoc[announcements.Post](ctx, s.store, doc, raw)
	}
	return nil, fmt.Errorf("unknown document %q", doc)
}

func prepareDoc[T any](ctx context.Context, store *docstore.Store, doc docstore.Document, raw json.RawMessage) (func() error, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return func() error {
		return docstore.WriteDoc(ctx, store, doc, items)
	}, nil
}
