package announcements

import (
	"context"
	"io"
	"testing"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store, err := docstore.New(t.TempDir(), logg)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), "title", "body", enums.PostType("blog"))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestListFiltersByType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "News", "", enums.PostTypeAnnouncement); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, "How do refunds work?", "", enums.PostTypeFAQ); err != nil {
		t.Fatalf("create: %v", err)
	}

	all := svc.List(ctx, nil)
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}

	faq := enums.PostTypeFAQ
	filtered := svc.List(ctx, &faq)
	if len(filtered) != 1 || filtered[0].Title != "How do refunds work?" {
		t.Fatalf("expected only the FAQ post, got %+v", filtered)
	}
}

func TestUpdateCanRetagType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, "Entry", "body", enums.PostTypeAnnouncement)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	faq := enums.PostTypeFAQ
	updated, err := svc.Update(ctx, post.ID, UpdateInput{Type: &faq})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != enums.PostTypeFAQ {
		t.Fatalf("expected faq, got %s", updated.Type)
	}
	if updated.Title != "Entry" || updated.Content != "body" {
		t.Fatalf("expected other fields untouched, got %+v", updated)
	}
}

func TestUpdateRejectsUnknownType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, "Entry", "", enums.PostTypeAnnouncement)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bogus := enums.PostType("blog")
	_, err = svc.Update(ctx, post.ID, UpdateInput{Type: &bogus})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), 5)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}
