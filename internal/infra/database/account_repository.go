package database

import (
	"context"
	"database/sql"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Upsert(ctx context.Context, a *entity.Account) error {
	addresses, err := listJSON(a.Addresses)
	if err != nil {
		return err
	}
	phones, err := listJSON(a.PhoneNumbers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO crm_accounts (id, customer_id, provider_name, name, description, owner_id,
			industry, website, number_of_employees, addresses, phone_numbers,
			last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id, customer_id, provider_name) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			owner_id = EXCLUDED.owner_id,
			industry = EXCLUDED.industry,
			website = EXCLUDED.website,
			number_of_employees = EXCLUDED.number_of_employees,
			addresses = EXCLUDED.addresses,
			phone_numbers = EXCLUDED.phone_numbers,
			last_activity_at = EXCLUDED.last_activity_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query,
		a.ID, a.CustomerID, a.ProviderName,
		a.Name, a.Description, a.OwnerID,
		a.Industry, a.Website, a.NumberOfEmployees,
		addresses, phones,
		a.LastActivityAt, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, key entity.NaturalKey) error {
	query := `DELETE FROM crm_accounts WHERE id = $1 AND customer_id = $2 AND provider_name = $3`

	_, err := r.DB.ExecContext(ctx, query, key.ID, key.CustomerID, key.ProviderName)
	return err
}
