package entity

import "time"

// Entidade: Account
type Account struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`

	Name              *string `json:"name"`
	Description       *string `json:"description"`
	OwnerID           *string `json:"owner_id"`
	Industry          *string `json:"industry"`
	Website           *string `json:"website"`
	NumberOfEmployees *int64  `json:"number_of_employees"`

	Addresses    []Address     `json:"addresses"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`

	LastActivityAt *time.Time `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (a *Account) Kind() string { return KindAccount }

func (a *Account) Key() NaturalKey {
	return NaturalKey{ID: a.ID, CustomerID: a.CustomerID, ProviderName: a.ProviderName}
}
