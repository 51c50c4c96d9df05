package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/shoplite/shoplite-backend/pkg/docstore"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
)

// Service persists uploaded binaries plus their document records.
type Service interface {
	List(ctx context.Context) []Record
	Save(ctx context.Context, input SaveInput) (Record, error)
}

type service struct {
	col        *docstore.Collection[Record]
	uploadsDir string
	now        func() int64
}

// NewService builds a file service writing binaries under uploadsDir.
func NewService(store *docstore.Store, uploadsDir string) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store required")
	}
	if uploadsDir == "" {
		return nil, fmt.Errorf("uploads directory required")
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}
	return &service{
		col:        docstore.NewCollection[Record](store, docstore.DocFiles),
		uploadsDir: uploadsDir,
		now:        func() int64 { return time.Now().Unix() },
	}, nil
}

func (s *service) List(ctx context.Context) []Record {
	return s.col.List(ctx)
}

func (s *service) Save(ctx context.Context, input SaveInput) (Record, error) {
	target, err := s.resolvePath(input.Filename)
	if err != nil {
		return Record{}, err
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	if err := os.WriteFile(target, input.Content, 0o644); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write upload")
	}

	ts := s.now()
	record, err := s.col.Insert(ctx, func(id int64) Record {
		return Record{
			ID:          id,
			Filename:    input.Filename,
			Path:        target,
			Size:        int64(len(input.Content)),
			ContentType: contentType,
			Metadata:    metadata,
			CreatedAt:   ts,
		}
	})
	if err != nil {
		// Do not leave an orphaned binary behind a failed record write.
		err = multierr.Append(err, os.Remove(target))
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist file record")
	}
	return record, nil
}

// resolvePath joins the filename under the uploads directory and rejects any
// name that escapes it.
func (s *service) resolvePath(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "filename required")
	}
	base, err := filepath.Abs(s.uploadsDir)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve uploads directory")
	}
	target, err := filepath.Abs(filepath.Join(base, filename))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid filename")
	}
	if target != base && !strings.HasPrefix(target, base+string(filepath.Separator)) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid filename")
	}
	if target == base {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid filename")
	}
	if dir := filepath.Dir(target); dir != base {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create upload subdirectory")
		}
	}
	return target, nil
}
