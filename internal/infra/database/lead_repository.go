package database

import (
	"context"
	"database/sql"

	"github.com/commonmodel/sync-engine/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Upsert(ctx context.Context, l *entity.Lead) error {
	emails, err := listJSON(l.EmailAddresses)
	if err != nil {
		return err
	}
	phones, err := listJSON(l.PhoneNumbers)
	if err != nil {
		return err
	}
	addresses, err := listJSON(l.Addresses)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO crm_leads (id, customer_id, provider_name, first_name, last_name, owner_id,
			title, company, lead_source, email_addresses, phone_numbers, addresses,
			converted_account_id, converted_contact_id, converted_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id, customer_id, provider_name) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			owner_id = EXCLUDED.owner_id,
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			lead_source = EXCLUDED.lead_source,
			email_addresses = EXCLUDED.email_addresses,
			phone_numbers = EXCLUDED.phone_numbers,
			addresses = EXCLUDED.addresses,
			converted_account_id = EXCLUDED.converted_account_id,
			converted_contact_id = EXCLUDED.converted_contact_id,
			converted_date = EXCLUDED.converted_date,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query,
		l.ID, l.CustomerID, l.ProviderName,
		l.FirstName, l.LastName, l.OwnerID,
		l.Title, l.Company, l.LeadSource,
		emails, phones, addresses,
		l.ConvertedAccountID, l.ConvertedContactID, l.ConvertedDate,
		l.CreatedAt, l.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, key entity.NaturalKey) error {
	query := `DELETE FROM crm_leads WHERE id = $1 AND customer_id = $2 AND provider_name = $3`

	_, err := r.DB.ExecContext(ctx, query, key.ID, key.CustomerID, key.ProviderName)
	return err
}
