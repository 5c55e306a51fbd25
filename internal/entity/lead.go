package entity

import "time"

// Entidade: Lead
type Lead struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`

	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	OwnerID    *string `json:"owner_id"`
	Title      *string `json:"title"`
	Company    *string `json:"company"`
	LeadSource *string `json:"lead_source"`

	EmailAddresses []EmailAddress `json:"email_addresses"`
	PhoneNumbers   []PhoneNumber  `json:"phone_numbers"`
	Addresses      []Address      `json:"addresses"`

	ConvertedAccountID *string    `json:"converted_account_id"`
	ConvertedContactID *string    `json:"converted_contact_id"`
	ConvertedDate      *time.Time `json:"converted_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lead) Kind() string { return KindLead }

func (l *Lead) Key() NaturalKey {
	return NaturalKey{ID: l.ID, CustomerID: l.CustomerID, ProviderName: l.ProviderName}
}
