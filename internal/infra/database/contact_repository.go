package database

import (
	"context"
	"database/sql"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Upsert(ctx context.Context, c *entity.Contact) error {
	emails, err := listJSON(c.EmailAddresses)
	if err != nil {
		return err
	}
	phones, err := listJSON(c.PhoneNumbers)
	if err != nil {
		return err
	}
	addresses, err := listJSON(c.Addresses)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO crm_contacts (id, customer_id, provider_name, account_id, owner_id,
			first_name, last_name, email_addresses, phone_numbers, addresses,
			last_activity_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id, customer_id, provider_name) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			owner_id = EXCLUDED.owner_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email_addresses = EXCLUDED.email_addresses,
			phone_numbers = EXCLUDED.phone_numbers,
			addresses = EXCLUDED.addresses,
			last_activity_at = EXCLUDED.last_activity_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query,
		c.ID, c.CustomerID, c.ProviderName,
		c.AccountID, c.OwnerID,
		c.FirstName, c.LastName,
		emails, phones, addresses,
		c.LastActivityAt, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, key entity.NaturalKey) error {
	query := `DELETE FROM crm_contacts WHERE id = $1 AND customer_id = $2 AND provider_name = $3`

	_, err := r.DB.ExecContext(ctx, query, key.ID, key.CustomerID, key.ProviderName)
	return err
}
