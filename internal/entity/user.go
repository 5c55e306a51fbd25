package entity

import "time"

// Entidade: User (provider CRM user)
type User struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`

	Name     *string `json:"name"`
	Email    *string `json:"email"`
	IsActive bool    `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Kind() string { return KindUser }

func (u *User) Key() NaturalKey {
	return NaturalKey{ID: u.ID, CustomerID: u.CustomerID, ProviderName: u.ProviderName}
}
