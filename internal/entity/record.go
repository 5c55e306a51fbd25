package entity

import "fmt"

// Entity kinds match the provider object names carried on the trigger.
const (
	KindUser        = "User"
	KindAccount     = "Account"
	KindContact     = "Contact"
	KindLead        = "Lead"
	KindOpportunity = "Opportunity"
)

// NaturalKey identifies one normalized entity across runs. The provider id
// alone is not unique: the same Salesforce id can show up for two tenants.
type NaturalKey struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderName string `json:"provider_name"`
}

func (k NaturalKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ProviderName, k.CustomerID, k.ID)
}

// Record is any normalized entity the store can upsert.
type Record interface {
	Kind() string
	Key() NaturalKey
}

// Value Object: Address
type Address struct {
	AddressType string  `json:"addressType"`
	Street1     *string `json:"street1"`
	Street2     *string `json:"street2"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	PostalCode  *string `json:"postalCode"`
	Country     *string `json:"country"`
}

// Value Object: PhoneNumber
type PhoneNumber struct {
	PhoneNumber     string `json:"phoneNumber"`
	PhoneNumberType string `json:"phoneNumberType"`
}

// Value Object: EmailAddress
type EmailAddress struct {
	EmailAddress     string `json:"emailAddress"`
	EmailAddressType string `json:"emailAddressType"`
}
