package database

import (
	"context"
	"database/sql"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Upsert(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO crm_users (id, customer_id, provider_name, name, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id, customer_id, provider_name) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			is_active = EXCLUDED.is_active,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.CustomerID, u.ProviderName,
		u.Name, u.Email, u.IsActive,
		u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, key entity.NaturalKey) error {
	query := `DELETE FROM crm_users WHERE id = $1 AND customer_id = $2 AND provider_name = $3`

	_, err := r.DB.ExecContext(ctx, query, key.ID, key.CustomerID, key.ProviderName)
	return err
}
