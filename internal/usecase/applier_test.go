package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonmodel/sync-engine/internal/entity"
	"github.com/commonmodel/sync-engine/internal/usecase"
)

// memStore is an in-memory NormalizedStore for state-based assertions.
type memStore struct {
	records map[string]entity.Record
	upserts int
	deletes int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]entity.Record)}
}

func storeKey(kind string, key entity.NaturalKey) string {
	return kind + "|" + key.String()
}

func (s *memStore) Upsert(_ context.Context, rec entity.Record) error {
	s.upserts++
	s.records[storeKey(rec.Kind(), rec.Key())] = rec
	return nil
}

func (s *memStore) Delete(_ context.Context, kind string, key entity.NaturalKey) error {
	s.deletes++
	delete(s.records, storeKey(kind, key))
	return nil
}

func userOutcome(id string, name string, ts time.Time) entity.MappedRow {
	key := entity.NaturalKey{ID: id, CustomerID: "cust-1", ProviderName: "salesforce"}
	return entity.MappedRow{
		Kind: entity.KindUser,
		Key:  key,
		Record: &entity.User{
			ID: id, CustomerID: "cust-1", ProviderName: "salesforce",
			Name: &name, CreatedAt: ts, UpdatedAt: ts,
		},
		LastModifiedAt: ts,
	}
}

func deleteOutcome(id string, ts time.Time) entity.MappedRow {
	return entity.MappedRow{
		Deleted:        true,
		Kind:           entity.KindUser,
		Key:            entity.NaturalKey{ID: id, CustomerID: "cust-1", ProviderName: "salesforce"},
		LastModifiedAt: ts,
	}
}

func TestApplierRunningMaxSeededFromWatermark(t *testing.T) {
	since := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	applier := usecase.NewApplier(newMemStore(), &since)

	// No rows applied yet: candidate watermark is the prior one.
	assert.Equal(t, since, applier.MaxLastModifiedAt())
	assert.Equal(t, 0, applier.Rows())
}

func TestApplierRunningMaxSeededFromEpoch(t *testing.T) {
	applier := usecase.NewApplier(newMemStore(), nil)
	assert.Equal(t, time.Unix(0, 0).UTC(), applier.MaxLastModifiedAt())
}

func TestApplierAdvancesMaxInOrder(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	applier := usecase.NewApplier(store, nil)

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, applier.Apply(ctx, userOutcome("u1", "Alice", t1)))
	require.NoError(t, applier.Apply(ctx, userOutcome("u2", "Bob", t2)))

	assert.Equal(t, 2, applier.Rows())
	assert.Equal(t, t2, applier.MaxLastModifiedAt())
	assert.Len(t, store.records, 2)
}

func TestApplierLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	applier := usecase.NewApplier(store, nil)

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, applier.Apply(ctx, userOutcome("u1", "Old Name", t1)))
	require.NoError(t, applier.Apply(ctx, userOutcome("u1", "New Name", t2)))

	require.Len(t, store.records, 1)
	got := store.records[storeKey(entity.KindUser, entity.NaturalKey{ID: "u1", CustomerID: "cust-1", ProviderName: "salesforce"})].(*entity.User)
	assert.Equal(t, "New Name", *got.Name)
}

func TestApplierTombstonePrecedence(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	applier := usecase.NewApplier(store, nil)

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, applier.Apply(ctx, userOutcome("u1", "Alice", t1)))
	require.NoError(t, applier.Apply(ctx, deleteOutcome("u1", t2)))

	assert.Empty(t, store.records)
	assert.Equal(t, t2, applier.MaxLastModifiedAt())
}

func TestApplierDeleteOfMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	applier := usecase.NewApplier(store, nil)

	err := applier.Apply(ctx, deleteOutcome("never-seen", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	assert.NoError(t, err)
	assert.Equal(t, 1, applier.Rows())
}
