package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// Document names one persisted record sequence. Each document is stored as a
// single <name>.json file and read or replaced as a unit.
type Document string

const (
	DocProducts      Document = "products"
	DocOrders        Document = "orders"
	DocFiles         Document = "files"
	DocCodePool      Document = "code_pool"
	DocCourses       Document = "courses"
	DocChapters      Document = "chapters"
	DocAnnouncements Document = "announcements"
)

// AllDocuments lists every document the store manages, in export order.
func AllDocuments() []Document {
	return []Document{
		DocProducts,
		DocOrders,
		DocFiles,
		DocCodePool,
		DocCourses,
		DocChapters,
		DocAnnouncements,
	}
}

// Store is the flat-file persistence helper. A per-document RWMutex guards
// every read-modify-write cycle, so a single process never loses an update;
// independent processes sharing one data directory are still unguarded.
type Store struct {
	dir  string
	logg *logger.Logger

	mu    sync.Mutex
	locks map[Document]*sync.RWMutex
}

// New creates the data directory if needed and returns a store bound to it.
func New(dir string, logg *logger.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		dir:   dir,
		logg:  logg,
		locks: make(map[Document]*sync.RWMutex),
	}, nil
}

// Dir returns the data directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Ping verifies the data directory is still writable.
func (s *Store) Ping(_ context.Context) error {
	probe, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}
	name := probe.Name()
	err = probe.Close()
	return multierr.Append(err, os.Remove(name))
}

func (s *Store) path(doc Document) string {
	return filepath.Join(s.dir, string(doc)+".json")
}

func (s *Store) lockFor(doc Document) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[doc]
	if !ok {
		lock = &sync.RWMutex{}
		s.locks[doc] = lock
	}
	return lock
}

// readLocked loads a document into out. The caller holds the document lock.
// A missing or unparseable file leaves out at its zero value: the store
// trades durability visibility for availability and only logs the problem.
func (s *Store) readLocked(ctx context.Context, doc Document, out any) {
	raw, err := os.ReadFile(s.path(doc))
	if err != nil {
		if !os.IsNotExist(err) && s.logg != nil {
			ctx = s.logg.WithDocument(ctx, string(doc))
			s.logg.Warn(s.logg.WithField(ctx, "read_error", err.Error()), "document unreadable, treating as empty")
		}
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		if s.logg != nil {
			ctx = s.logg.WithDocument(ctx, string(doc))
			s.logg.Warn(s.logg.WithField(ctx, "parse_error", err.Error()), "document corrupt, treating as empty")
		}
	}
}

// writeLocked serializes v to a temporary file and renames it over the
// document, so readers never observe a partial write. The caller holds the
// document lock.
func (s *Store) writeLocked(doc Document, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", doc, err)
	}
	target := s.path(doc)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", doc, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return multierr.Append(fmt.Errorf("replacing %s: %w", doc, err), os.Remove(tmp))
	}
	return nil
}

// ReadDoc returns every record in the document. Absent or corrupt documents
// come back as an empty slice.
func ReadDoc[T any](ctx context.Context, s *Store, doc Document) []T {
	lock := s.lockFor(doc)
	lock.RLock()
	defer lock.RUnlock()

	var items []T
	s.readLocked(ctx, doc, &items)
	if items == nil {
		items = []T{}
	}
	return items
}

// WriteDoc replaces the document wholesale.
func WriteDoc[T any](_ context.Context, s *Store, doc Document, items []T) error {
	lock := s.lockFor(doc)
	lock.Lock()
	defer lock.Unlock()

	if items == nil {
		items = []T{}
	}
	return s.writeLocked(doc, items)
}

// MutateDoc runs one read-modify-write cycle under the document lock. The
// transform returns the new record set, or ErrUnchanged to skip the write.
func MutateDoc[T any](ctx context.Context, s *Store, doc Document, fn func(items []T) ([]T, error)) ([]T, error) {
	lock := s.lockFor(doc)
	lock.Lock()
	defer lock.Unlock()

	var items []T
	s.readLocked(ctx, doc, &items)
	if items == nil {
		items = []T{}
	}

	next, err := fn(items)
	if err == ErrUnchanged {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = []T{}
	}
	if err := s.writeLocked(doc, next); err != nil {
		return nil, err
	}
	return next, nil
}

// MutateDocs2 runs one read-modify-write cycle spanning two documents as a
// unit of work. Locks are taken in canonical name order. The primary document
// is written first; if the secondary write fails the primary is restored to
// its prior content, so a failure never leaves the pair half-applied.
func MutateDocs2[A any, B any](
	ctx context.Context,
	s *Store,
	primary Document,
	secondary Document,
	fn func(a []A, b []B) ([]A, []B, error),
) error {
	ordered := []Document{primary, secondary}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	for _, doc := range ordered {
		lock := s.lockFor(doc)
		lock.Lock()
		defer lock.Unlock()
	}

	var before []A
	var b []B
	s.readLocked(ctx, primary, &before)
	s.readLocked(ctx, secondary, &b)
	if before == nil {
		before = []A{}
	}
	if b == nil {
		b = []B{}
	}

	nextA, nextB, err := fn(append([]A(nil), before...), b)
	if err == ErrUnchanged {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.writeLocked(primary, nextA); err != nil {
		return err
	}
	if err := s.writeLocked(secondary, nextB); err != nil {
		// Roll the primary back so the pair stays consistent.
		if rbErr := s.writeLocked(primary, before); rbErr != nil {
			return multierr.Combine(err, fmt.Errorf("rollback of %s failed: %w", primary, rbErr))
		}
		return err
	}
	return nil
}
