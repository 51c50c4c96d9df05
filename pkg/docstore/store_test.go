package docstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-backend/pkg/logger"
)

type testRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r testRecord) RecordID() int64 {
	return r.ID
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store, err := New(t.TempDir(), logg)
	require.NoError(t, err)
	return store
}

func TestNewRequiresDir(t *testing.T) {
	_, err := New("", nil)
	require.Error(t, err)
}

func TestReadDocMissingFile(t *testing.T) {
	store := newTestStore(t)
	items := ReadDoc[testRecord](context.Background(), store, DocProducts)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestReadDocCorruptFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(store.Dir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	items := ReadDoc[testRecord](context.Background(), store, DocProducts)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestWriteDocRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []testRecord{{ID: 1, Name: "one"}, {ID: 2, Name: "two"}}
	require.NoError(t, WriteDoc(ctx, store, DocProducts, in))

	out := ReadDoc[testRecord](ctx, store, DocProducts)
	require.Equal(t, in, out)

	// The temp file from the atomic swap must not linger.
	_, err := os.Stat(filepath.Join(store.Dir(), "products.json.tmp"))
	require.True(t, os.IsNotExist(err))
}

func TestWriteDocNilBecomesEmptyArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, WriteDoc[testRecord](ctx, store, DocProducts, nil))

	raw, err := os.ReadFile(filepath.Join(store.Dir(), "products.json"))
	require.NoError(t, err)
	require.JSONEq(t, "[]", string(raw))
}

func TestMutateDocUnchangedSkipsWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := MutateDoc(ctx, store, DocProducts, func(items []testRecord) ([]testRecord, error) {
		return nil, ErrUnchanged
	})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(store.Dir(), "products.json"))
	require.True(t, os.IsNotExist(statErr))
}

func TestMutateDocPropagatesError(t *testing.T) {
	store := newTestStore(t)
	boom := errors.New("boom")

	_, err := MutateDoc(context.Background(), store, DocProducts, func(items []testRecord) ([]testRecord, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestMutateDocs2WritesBoth(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := MutateDocs2(ctx, store, DocOrders, DocCodePool,
		func(a []testRecord, b []testRecord) ([]testRecord, []testRecord, error) {
			return []testRecord{{ID: 1, Name: "order"}}, []testRecord{{ID: 9, Name: "code"}}, nil
		})
	require.NoError(t, err)

	orders := ReadDoc[testRecord](ctx, store, DocOrders)
	pool := ReadDoc[testRecord](ctx, store, DocCodePool)
	require.Len(t, orders, 1)
	require.Len(t, pool, 1)
	require.Equal(t, "order", orders[0].Name)
	require.Equal(t, "code", pool[0].Name)
}

func TestMutateDocs2RollsBackPrimaryOnSecondaryFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	before := []testRecord{{ID: 1, Name: "original"}}
	require.NoError(t, WriteDoc(ctx, store, DocOrders, before))

	// Replace the secondary document with a directory so its write fails
	// while the primary write still succeeds.
	require.NoError(t, os.MkdirAll(filepath.Join(store.Dir(), "code_pool.json"), 0o755))

	err := MutateDocs2(ctx, store, DocOrders, DocCodePool,
		func(a []testRecord, b []testRecord) ([]testRecord, []testRecord, error) {
			return []testRecord{{ID: 1, Name: "mutated"}}, []testRecord{{ID: 2, Name: "code"}}, nil
		})
	require.Error(t, err)

	after := ReadDoc[testRecord](ctx, store, DocOrders)
	require.Equal(t, before, after)
}

func TestMutateDocs2Unchanged(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := MutateDocs2(ctx, store, DocOrders, DocCodePool,
		func(a []testRecord, b []testRecord) ([]testRecord, []testRecord, error) {
			return nil, nil, ErrUnchanged
		})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(store.Dir(), "orders.json"))
	require.True(t, os.IsNotExist(statErr))
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Ping(context.Background()))
}
