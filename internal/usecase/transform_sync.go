package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
)

const (
	eventTypeObject    = "object"
	objectTypeStandard = "standard"
	resultSuccess      = "SUCCESS"
	eventSyncComplete  = "sync.complete"
)

// TransformSyncUseCase drives one sync run: read the watermark, map and
// apply every staged row newer than it, then commit the new watermark.
// Nothing is retried in here; the queue collaborator re-invokes the whole
// run and the checkpointed steps keep finished phases from recomputing.
type TransformSyncUseCase struct {
	Watermarks WatermarkRepositoryInterface
	Rows       RawRowSource
	Store      NormalizedStore
	Registry   MapperRegistryInterface
}

func NewTransformSyncUseCase(
	watermarks WatermarkRepositoryInterface,
	rows RawRowSource,
	store NormalizedStore,
	registry MapperRegistryInterface,
) *TransformSyncUseCase {
	return &TransformSyncUseCase{
		Watermarks: watermarks,
		Rows:       rows,
		Store:      store,
		Registry:   registry,
	}
}

type batchResult struct {
	Rows int
	Max  time.Time
}

func (uc *TransformSyncUseCase) Execute(ctx context.Context, event TriggerEvent, step StepRunner) (*TransformOutput, error) {
	// Guard chain: every unsupported shape is a successful no-op with its
	// own reason, never an error.
	if event.WebhookEventType != eventSyncComplete {
		return skipped("not a sync.complete event"), nil
	}
	if event.Type != eventTypeObject || event.ObjectType != objectTypeStandard {
		return skipped("not a standard object sync"), nil
	}
	if event.Result != resultSuccess {
		return skipped("not a sync.complete SUCCESS event"), nil
	}

	mapper, ok := uc.Registry.Lookup(event.ProviderName, event.Object)
	if !ok {
		return skipped(fmt.Sprintf("no mapper registered for %s/%s", event.ProviderName, event.Object)), nil
	}

	scope := event.Scope()

	// Phase 1: read the high watermark (nil on the scope's first run).
	wmAny, err := step.Run(ctx, "get-high-watermark", func(ctx context.Context) (any, error) {
		return uc.Watermarks.Get(ctx, scope)
	})
	if err != nil {
		return nil, fmt.Errorf("get high watermark: %w", err)
	}
	since, _ := wmAny.(*time.Time)

	// Phase 2: map and apply the whole window, oldest first.
	resAny, err := step.Run(ctx, fmt.Sprintf("%s-%s-sync", event.ProviderName, event.Object), func(ctx context.Context) (any, error) {
		return uc.applyBatch(ctx, event, mapper, since)
	})
	if err != nil {
		return nil, err
	}
	res := resAny.(batchResult)

	out := &TransformOutput{Object: event.Object, RowsAffected: res.Rows}

	// Phase 3: commit, only when the batch actually moved the mark.
	prior := time.Unix(0, 0).UTC()
	if since != nil {
		prior = *since
	}
	if res.Max.After(prior) {
		if _, err := step.Run(ctx, "record-high-watermark", func(ctx context.Context) (any, error) {
			return nil, uc.Watermarks.Set(ctx, scope, res.Max)
		}); err != nil {
			return nil, fmt.Errorf("record high watermark: %w", err)
		}
		max := res.Max
		out.NewWatermark = &max
	}

	log.Printf("✅ [SYNC] %s/%s customer=%s: %d rows applied", event.ProviderName, event.Object, event.CustomerID, res.Rows)
	return out, nil
}

func (uc *TransformSyncUseCase) applyBatch(ctx context.Context, event TriggerEvent, mapper entity.RowMapper, since *time.Time) (batchResult, error) {
	rows, err := uc.Rows.FetchNewerThan(ctx, event.ProviderName, event.Object, since)
	if err != nil {
		return batchResult{}, fmt.Errorf("fetch staged %s rows: %w", event.Object, err)
	}

	applier := NewApplier(uc.Store, since)
	for _, row := range rows {
		out, err := mapper(row, event.CustomerID, event.ProviderName)
		if err != nil {
			return batchResult{}, &MappingError{Object: event.Object, RowID: row.Field("Id"), Err: err}
		}
		if err := applier.Apply(ctx, out); err != nil {
			return batchResult{}, err
		}
	}

	return batchResult{Rows: applier.Rows(), Max: applier.MaxLastModifiedAt()}, nil
}

func skipped(reason string) *TransformOutput {
	return &TransformOutput{Skipped: true, Reason: reason}
}
