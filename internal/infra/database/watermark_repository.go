package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type WatermarkRepository struct {
	DB *sql.DB
}

func NewWatermarkRepository(db *sql.DB) *WatermarkRepository {
	return &WatermarkRepository{DB: db}
}

// Get returns nil when the scope has never completed a run. That absence is
// meaningful ("sync from the beginning") and must not become the epoch.
func (r *WatermarkRepository) Get(ctx context.Context, scope entity.SyncScope) (*time.Time, error) {
	query := `
		SELECT max_last_modified_at FROM sync_watermarks
		WHERE type = $1 AND object_type = $2 AND object = $3
		  AND provider_name = $4 AND customer_id = $5
	`

	var ts time.Time
	err := r.DB.QueryRowContext(ctx, query,
		scope.Type, scope.ObjectType, scope.Object, scope.ProviderName, scope.CustomerID,
	).Scan(&ts)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ts = ts.UTC()
	return &ts, nil
}

// Set is an idempotent overwrite; repeating the same commit is safe.
func (r *WatermarkRepository) Set(ctx context.Context, scope entity.SyncScope, ts time.Time) error {
	query := `
		INSERT INTO sync_watermarks (type, object_type, object, provider_name, customer_id, max_last_modified_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (type, object_type, object, provider_name, customer_id)
		DO UPDATE SET max_last_modified_at = EXCLUDED.max_last_modified_at, updated_at = now()
	`

	_, err := r.DB.ExecContext(ctx, query,
		scope.Type, scope.ObjectType, scope.Object, scope.ProviderName, scope.CustomerID, ts,
	)
	return err
}
