package files

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

func newTestService(t *testing.T) (Service, string) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store, err := docstore.New(t.TempDir(), logg)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	uploads := t.TempDir()
	svc, err := NewService(store, uploads)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, uploads
}

func TestSaveWritesBinaryAndRecord(t *testing.T) {
	svc, uploads := newTestService(t)
	ctx := context.Background()

	content := []byte("hello world")
	record, err := svc.Save(ctx, SaveInput{
		Filename:    "greeting.txt",
		Content:     content,
		ContentType: "text/plain",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.ID != 1 {
		t.Fatalf("expected id 1, got %d", record.ID)
	}
	if record.Size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), record.Size)
	}
	if record.ContentType != "text/plain" {
		t.Fatalf("unexpected content type %s", record.ContentType)
	}

	written, err := os.ReadFile(filepath.Join(uploads, "greeting.txt"))
	if err != nil {
		t.Fatalf("read upload: %v", err)
	}
	if string(written) != "hello world" {
		t.Fatalf("unexpected content %q", written)
	}

	records := svc.List(ctx)
	if len(records) != 1 || records[0].Filename != "greeting.txt" {
		t.Fatalf("expected one record, got %+v", records)
	}
}

func TestSaveDefaultsContentType(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Save(context.Background(), SaveInput{
		Filename: "blob.bin",
		Content:  []byte{0x01, 0x02},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.ContentType != "application/octet-stream" {
		t.Fatalf("expected octet-stream default, got %s", record.ContentType)
	}
}

func TestSaveRejectsPathTraversal(t *testing.T) {
	svc, _ := newTestService(t)

	for _, filename := range []string{
		"../escape.txt",
		"../../etc/passwd",
		"nested/../../escape.txt",
	} {
		_, err := svc.Save(context.Background(), SaveInput{
			Filename: filename,
			Content:  []byte("x"),
		})
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation code for %q, got %v", filename, err)
		}
	}
}

func TestSaveRejectsEmptyFilename(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Save(context.Background(), SaveInput{Filename: "  ", Content: []byte("x")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestSaveAllowsSubdirectories(t *testing.T) {
	svc, uploads := newTestService(t)

	record, err := svc.Save(context.Background(), SaveInput{
		Filename: "images/logo.png",
		Content:  []byte("png"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.Path != filepath.Join(uploads, "images", "logo.png") {
		t.Fatalf("unexpected path %s", record.Path)
	}
	if _, err := os.Stat(record.Path); err != nil {
		t.Fatalf("stat upload: %v", err)
	}
}
