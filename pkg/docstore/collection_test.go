package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxPlusOneStartsAtOne(t *testing.T) {
	require.Equal(t, int64(1), MaxPlusOne{}.Next(nil))
}

func TestMaxPlusOneSkipsGaps(t *testing.T) {
	require.Equal(t, int64(8), MaxPlusOne{}.Next([]int64{7, 2, 3}))
}

func TestCollectionInsertAllocatesSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)
	ctx := context.Background()

	first, err := col.Insert(ctx, func(id int64) testRecord {
		return testRecord{ID: id, Name: "first"}
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := col.Insert(ctx, func(id int64) testRecord {
		return testRecord{ID: id, Name: "second"}
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	require.Len(t, col.List(ctx), 2)
}

func TestCollectionDeletedMaxIDIsReused(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := col.Insert(ctx, func(id int64) testRecord {
			return testRecord{ID: id}
		})
		require.NoError(t, err)
	}

	removed, err := col.Delete(ctx, 3)
	require.NoError(t, err)
	require.True(t, removed)

	next, err := col.Insert(ctx, func(id int64) testRecord {
		return testRecord{ID: id}
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), next.ID)
}

func TestCollectionFind(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)
	ctx := context.Background()

	inserted, err := col.Insert(ctx, func(id int64) testRecord {
		return testRecord{ID: id, Name: "thing"}
	})
	require.NoError(t, err)

	found, ok := col.Find(ctx, inserted.ID)
	require.True(t, ok)
	require.Equal(t, "thing", found.Name)

	_, ok = col.Find(ctx, 99)
	require.False(t, ok)
}

func TestCollectionUpdateUnknownIDSkipsWrite(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)
	ctx := context.Background()

	_, found, err := col.Update(ctx, 42, func(item *testRecord) {
		item.Name = "changed"
	})
	require.NoError(t, err)
	require.False(t, found)
}

func TestCollectionUpdateAppliesInPlace(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)
	ctx := context.Background()

	inserted, err := col.Insert(ctx, func(id int64) testRecord {
		return testRecord{ID: id, Name: "before"}
	})
	require.NoError(t, err)

	updated, found, err := col.Update(ctx, inserted.ID, func(item *testRecord) {
		item.Name = "after"
	})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "after", updated.Name)

	reloaded, ok := col.Find(ctx, inserted.ID)
	require.True(t, ok)
	require.Equal(t, "after", reloaded.Name)
}

func TestCollectionDeleteUnknownID(t *testing.T) {
	store := newTestStore(t)
	col := NewCollection[testRecord](store, DocProducts)

	removed, err := col.Delete(context.Background(), 404)
	require.NoError(t, err)
	require.False(t, removed)
}
