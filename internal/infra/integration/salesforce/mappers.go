// Package salesforce maps raw staged Salesforce standard objects into the
// normalized model. One mapper per object; all of them are pure functions
// over the staged row.
package salesforce

import (
	"errors"
	"time"

	"github.com/commonmodel/sync-engine/internal/entity"
	"github.com/commonmodel/sync-engine/internal/infra/integration"
)

const ProviderName = "salesforce"

// Register installs the standard-object mappers. Objects not listed here
// are skipped by the orchestrator, not failed.
func Register(r *integration.Registry) {
	r.Register(ProviderName, entity.KindUser, MapUser)
	r.Register(ProviderName, entity.KindAccount, MapAccount)
	r.Register(ProviderName, entity.KindContact, MapContact)
	r.Register(ProviderName, entity.KindLead, MapLead)
	r.Register(ProviderName, entity.KindOpportunity, MapOpportunity)
}

func MapUser(row entity.RawRow, customerID, providerName string) (entity.MappedRow, error) {
	key, err := naturalKey(row, customerID, providerName)
	if err != nil {
		return entity.MappedRow{}, err
	}
	if row.IsDeleted {
		return tombstone(entity.KindUser, key, row), nil
	}

	createdAt, updatedAt, err := auditTimes(row)
	if err != nil {
		return entity.MappedRow{}, err
	}

	user := &entity.User{
		ID:           key.ID,
		CustomerID:   key.CustomerID,
		ProviderName: key.ProviderName,
		Name:         optional(row.Field("Name")),
		Email:        optional(row.Field("Email")),
		IsActive:     parseBool(row.Field("IsActive")),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	return upsert(entity.KindUser, key, user, row), nil
}

func MapAccount(row entity.RawRow, customerID, providerName string) (entity.MappedRow, error) {
	key, err := naturalKey(row, customerID, providerName)
	if err != nil {
		return entity.MappedRow{}, err
	}
	if row.IsDeleted {
		return tombstone(entity.KindAccount, key, row), nil
	}

	createdAt, updatedAt, err := auditTimes(row)
	if err != nil {
		return entity.MappedRow{}, err
	}
	lastActivityAt, err := parseOptionalTime(row.Field("LastActivityDate"))
	if err != nil {
		return entity.MappedRow{}, err
	}
	employees, err := parseClampedInt(row.Field("NumberOfEmployees"), maxEmployeeCount)
	if err != nil {
		return entity.MappedRow{}, err
	}

	// Shipping before billing, by contract.
	var addresses []entity.Address
	addresses = appendAddress(addresses, "shipping",
		row.Field("ShippingStreet"), row.Field("ShippingCity"), row.Field("ShippingState"),
		row.Field("ShippingPostalCode"), row.Field("ShippingCountry"))
	addresses = appendAddress(addresses, "billing",
		row.Field("BillingStreet"), row.Field("BillingCity"), row.Field("BillingState"),
		row.Field("BillingPostalCode"), row.Field("BillingCountry"))

	var phones []entity.PhoneNumber
	phones = appendPhone(phones, row.Field("Phone"), "primary")
	phones = appendPhone(phones, row.Field("Fax"), "fax")

	account := &entity.Account{
		ID:                key.ID,
		CustomerID:        key.CustomerID,
		ProviderName:      key.ProviderName,
		Name:              optional(row.Field("Name")),
		Description:       optional(row.Field("Description")),
		OwnerID:           optional(row.Field("OwnerId")),
		Industry:          optional(row.Field("Industry")),
		Website:           optional(row.Field("Website")),
		NumberOfEmployees: employees,
		Addresses:         addresses,
		PhoneNumbers:      phones,
		LastActivityAt:    lastActivityAt,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	return upsert(entity.KindAccount, key, account, row), nil
}

func MapContact(row entity.RawRow, customerID, providerName string) (entity.MappedRow, error) {
	key, err := naturalKey(row, customerID, providerName)
	if err != nil {
		return entity.MappedRow{}, err
	}
	if row.IsDeleted {
		return tombstone(entity.KindContact, key, row), nil
	}

	createdAt, updatedAt, err := auditTimes(row)
	if err != nil {
		return entity.MappedRow{}, err
	}
	lastActivityAt, err := parseOptionalTime(row.Field("LastActivityDate"))
	if err != nil {
		return entity.MappedRow{}, err
	}

	// Mailing before other, by contract.
	var addresses []entity.Address
	addresses = appendAddress(addresses, "mailing",
		row.Field("MailingStreet"), row.Field("MailingCity"), row.Field("MailingState"),
		row.Field("MailingPostalCode"), row.Field("MailingCountry"))
	addresses = appendAddress(addresses, "other",
		row.Field("OtherStreet"), row.Field("OtherCity"), row.Field("OtherState"),
		row.Field("OtherPostalCode"), row.Field("OtherCountry"))

	var phones []entity.PhoneNumber
	phones = appendPhone(phones, row.Field("Phone"), "primary")
	phones = appendPhone(phones, row.Field("MobilePhone"), "mobile")
	phones = appendPhone(phones, row.Field("Fax"), "fax")

	contact := &entity.Contact{
		ID:             key.ID,
		CustomerID:     key.CustomerID,
		ProviderName:   key.ProviderName,
		AccountID:      optional(row.Field("AccountId")),
		OwnerID:        optional(row.Field("OwnerId")),
		FirstName:      optional(row.Field("FirstName")),
		LastName:       optional(row.Field("LastName")),
		EmailAddresses: primaryEmail(row.Field("Email")),
		PhoneNumbers:   phones,
		Addresses:      addresses,
		LastActivityAt: lastActivityAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	return upsert(entity.KindContact, key, contact, row), nil
}

func MapLead(row entity.RawRow, customerID, providerName string) (entity.MappedRow, error) {
	key, err := naturalKey(row, customerID, providerName)
	if err != nil {
		return entity.MappedRow{}, err
	}
	if row.IsDeleted {
		return tombstone(entity.KindLead, key, row), nil
	}

	createdAt, updatedAt, err := auditTimes(row)
	if err != nil {
		return entity.MappedRow{}, err
	}
	convertedDate, err := parseOptionalTime(row.Field("ConvertedDate"))
	if err != nil {
		return entity.MappedRow{}, err
	}

	var addresses []entity.Address
	addresses = appendAddress(addresses, "primary",
		row.Field("Street"), row.Field("City"), row.Field("State"),
		row.Field("PostalCode"), row.Field("Country"))

	var phones []entity.PhoneNumber
	phones = appendPhone(phones, row.Field("Phone"), "primary")

	lead := &entity.Lead{
		ID:                 key.ID,
		CustomerID:         key.CustomerID,
		ProviderName:       key.ProviderName,
		FirstName:          optional(row.Field("FirstName")),
		LastName:           optional(row.Field("LastName")),
		OwnerID:            optional(row.Field("OwnerId")),
		Title:              optional(row.Field("Title")),
		Company:            optional(row.Field("Company")),
		LeadSource:         optional(row.Field("LeadSource")),
		EmailAddresses:     primaryEmail(row.Field("Email")),
		PhoneNumbers:       phones,
		Addresses:          addresses,
		ConvertedAccountID: optional(row.Field("ConvertedAccountId")),
		ConvertedContactID: optional(row.Field("ConvertedContactId")),
		ConvertedDate:      convertedDate,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	return upsert(entity.KindLead, key, lead, row), nil
}

func MapOpportunity(row entity.RawRow, customerID, providerName string) (entity.MappedRow, error) {
	key, err := naturalKey(row, customerID, providerName)
	if err != nil {
		return entity.MappedRow{}, err
	}
	if row.IsDeleted {
		return tombstone(entity.KindOpportunity, key, row), nil
	}

	createdAt, updatedAt, err := auditTimes(row)
	if err != nil {
		return entity.MappedRow{}, err
	}
	closeDate, err := parseOptionalTime(row.Field("CloseDate"))
	if err != nil {
		return entity.MappedRow{}, err
	}
	lastActivityAt, err := parseOptionalTime(row.Field("LastActivityDate"))
	if err != nil {
		return entity.MappedRow{}, err
	}
	amount, err := parseOptionalFloat(row.Field("Amount"))
	if err != nil {
		return entity.MappedRow{}, err
	}

	opp := &entity.Opportunity{
		ID:             key.ID,
		CustomerID:     key.CustomerID,
		ProviderName:   key.ProviderName,
		Name:           optional(row.Field("Name")),
		Description:    optional(row.Field("Description")),
		OwnerID:        optional(row.Field("OwnerId")),
		Status:         optional(row.Field("Status")),
		Stage:          optional(row.Field("Stage")),
		AccountID:      optional(row.Field("AccountId")),
		Pipeline:       optional(row.Field("Pipeline")),
		Amount:         amount,
		CloseDate:      closeDate,
		LastActivityAt: lastActivityAt,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	return upsert(entity.KindOpportunity, key, opp, row), nil
}

func naturalKey(row entity.RawRow, customerID, providerName string) (entity.NaturalKey, error) {
	id := row.Field("Id")
	if id == "" {
		return entity.NaturalKey{}, errors.New("staged row is missing Id")
	}
	return entity.NaturalKey{ID: id, CustomerID: customerID, ProviderName: providerName}, nil
}

// CreatedDate and SystemModstamp are contractually required on every live
// Salesforce row; a missing or garbled value fails the mapping.
func auditTimes(row entity.RawRow) (time.Time, time.Time, error) {
	createdAt, err := parseRequiredTime(row.Field("CreatedDate"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	updatedAt, err := parseRequiredTime(row.Field("SystemModstamp"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return createdAt, updatedAt, nil
}

func tombstone(kind string, key entity.NaturalKey, row entity.RawRow) entity.MappedRow {
	return entity.MappedRow{Deleted: true, Kind: kind, Key: key, LastModifiedAt: row.LastModifiedAt}
}

func upsert(kind string, key entity.NaturalKey, rec entity.Record, row entity.RawRow) entity.MappedRow {
	return entity.MappedRow{Kind: kind, Key: key, Record: rec, LastModifiedAt: row.LastModifiedAt}
}

// appendAddress adds an entry only when at least one column carries data.
// Street2 stays nil: the staged schema has a single street line.
func appendAddress(list []entity.Address, addressType, street, city, state, postalCode, country string) []entity.Address {
	if street == "" && city == "" && state == "" && postalCode == "" && country == "" {
		return list
	}
	return append(list, entity.Address{
		AddressType: addressType,
		Street1:     optional(street),
		City:        optional(city),
		State:       optional(state),
		PostalCode:  optional(postalCode),
		Country:     optional(country),
	})
}

func appendPhone(list []entity.PhoneNumber, number, numberType string) []entity.PhoneNumber {
	if number == "" {
		return list
	}
	return append(list, entity.PhoneNumber{PhoneNumber: number, PhoneNumberType: numberType})
}

func primaryEmail(email string) []entity.EmailAddress {
	if email == "" {
		return nil
	}
	return []entity.EmailAddress{{EmailAddress: email, EmailAddressType: "primary"}}
}
