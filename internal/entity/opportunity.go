package entity

import "time"

// Entidade: Opportunity
type Opportunity struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`

	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	OwnerID     *string  `json:"owner_id"`
	Status      *string  `json:"status"`
	Stage       *string  `json:"stage"`
	AccountID   *string  `json:"account_id"`
	Pipeline    *string  `json:"pipeline"`
	Amount      *float64 `json:"amount"`

	CloseDate      *time.Time `json:"close_date"`
	LastActivityAt *time.Time `json:"last_activity_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (o *Opportunity) Kind() string { return KindOpportunity }

func (o *Opportunity) Key() NaturalKey {
	return NaturalKey{ID: o.ID, CustomerID: o.CustomerID, ProviderName: o.ProviderName}
}
