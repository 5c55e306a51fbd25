package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// Applier writes mapped rows to the normalized store and advances a running
// maximum over their last-modified timestamps. Rows must arrive in ascending
// last-modified order; the later row for a repeated key wins the overwrite.
// The applier never commits the watermark itself.
type Applier struct {
	Store NormalizedStore

	rows       int
	runningMax time.Time
}

// NewApplier seeds the running maximum from the previously committed
// watermark, or the epoch when this is the scope's first run.
func NewApplier(store NormalizedStore, since *time.Time) *Applier {
	max := time.Unix(0, 0).UTC()
	if since != nil {
		max = *since
	}
	return &Applier{Store: store, runningMax: max}
}

func (a *Applier) Apply(ctx context.Context, out entity.MappedRow) error {
	if out.Deleted {
		if err := a.Store.Delete(ctx, out.Kind, out.Key); err != nil {
			return fmt.Errorf("delete %s %s: %w", out.Kind, out.Key, err)
		}
	} else {
		if err := a.Store.Upsert(ctx, out.Record); err != nil {
			return fmt.Errorf("upsert %s %s: %w", out.Kind, out.Key, err)
		}
	}

	a.rows++
	if out.LastModifiedAt.After(a.runningMax) {
		a.runningMax = out.LastModifiedAt
	}
	return nil
}

// Rows is the number of outcomes applied so far.
func (a *Applier) Rows() int { return a.rows }

// MaxLastModifiedAt is the candidate new watermark.
func (a *Applier) MaxLastModifiedAt() time.Time { return a.runningMax }
