package entity

import "time"

// Entidade: Contact
type Contact struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`

	AccountID *string `json:"account_id"`
	OwnerID   *string `json:"owner_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	EmailAddresses []EmailAddress `json:"email_addresses"`
	PhoneNumbers   []PhoneNumber  `json:"phone_numbers"`
	Addresses      []Address      `json:"addresses"`

	LastActivityAt *time.Time `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Contact) Kind() string { return KindContact }

func (c *Contact) Key() NaturalKey {
	return NaturalKey{ID: c.ID, CustomerID: c.CustomerID, ProviderName: c.ProviderName}
}
