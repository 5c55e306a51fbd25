package usecase

import (
	"context"
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// WatermarkRepositoryInterface persists the per-scope high-water mark.
// Get returns nil (no error) when the scope has never completed a run.
type WatermarkRepositoryInterface interface {
	Get(ctx context.Context, scope entity.SyncScope) (*time.Time, error)
	Set(ctx context.Context, scope entity.SyncScope, ts time.Time) error
}

// RawRowSource reads staged rows for one (provider, object) pairing,
// ordered by last-modified ascending, optionally bounded below.
type RawRowSource interface {
	FetchNewerThan(ctx context.Context, providerName, object string, since *time.Time) ([]entity.RawRow, error)
}

// NormalizedStore is the upsert/delete surface of the normalized model.
// Delete of a missing key is not an error.
type NormalizedStore interface {
	Upsert(ctx context.Context, rec entity.Record) error
	Delete(ctx context.Context, kind string, key entity.NaturalKey) error
}

// MapperRegistryInterface resolves the row mapper for a pairing. A false
// second return means the pairing is simply not supported yet.
type MapperRegistryInterface interface {
	Lookup(providerName, object string) (entity.RowMapper, bool)
}

// StepRunner is the checkpointed-execution collaborator: a finished step's
// result is cached for the run and not recomputed when the run is retried.
type StepRunner interface {
	Run(ctx context.Context, name string, fn func(context.Context) (any, error)) (any, error)
}
