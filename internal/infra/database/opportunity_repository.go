package database

import (
	"context"
	"database/sql"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type OpportunityRepository struct {
	DB *sql.DB
}

func NewOpportunityRepository(db *sql.DB) *OpportunityRepository {
	return &OpportunityRepository{DB: db}
}

func (r *OpportunityRepository) Upsert(ctx context.Context, o *entity.Opportunity) error {
	query := `
		INSERT INTO crm_opportunities (id, customer_id, provider_name, name, description, owner_id,
			status, stage, account_id, pipeline, amount, close_date,
			last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id, customer_id, provider_name) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			owner_id = EXCLUDED.owner_id,
			status = EXCLUDED.status,
			stage = EXCLUDED.stage,
			account_id = EXCLUDED.account_id,
			pipeline = EXCLUDED.pipeline,
			amount = EXCLUDED.amount,
			close_date = EXCLUDED.close_date,
			last_activity_at = EXCLUDED.last_activity_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.DB.ExecContext(ctx, query,
		o.ID, o.CustomerID, o.ProviderName,
		o.Name, o.Description, o.OwnerID,
		o.Status, o.Stage, o.AccountID, o.Pipeline, o.Amount, o.CloseDate,
		o.LastActivityAt, o.CreatedAt, o.UpdatedAt,
	)
	return err
}

func (r *OpportunityRepository) Delete(ctx context.Context, key entity.NaturalKey) error {
	query := `DELETE FROM crm_opportunities WHERE id = $1 AND customer_id = $2 AND provider_name = $3`

	_, err := r.DB.ExecContext(ctx, query, key.ID, key.CustomerID, key.ProviderName)
	return err
}
