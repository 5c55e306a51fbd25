package salesforce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonmodel/sync-engine/internal/entity"
)

func rawRow(fields map[string]string) entity.RawRow {
	base := map[string]string{
		"Id":             "001xx000003DGb2AAG",
		"CreatedDate":    "2024-01-01T10:00:00.000+0000",
		"SystemModstamp": "2024-01-02T10:00:00.000+0000",
	}
	for k, v := range fields {
		base[k] = v
	}
	return entity.RawRow{
		Fields:         base,
		LastModifiedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestMapAccountBillingCityOnly(t *testing.T) {
	row := rawRow(map[string]string{"BillingCity": "NYC"})

	out, err := MapAccount(row, "cust-1", "salesforce")
	require.NoError(t, err)
	require.False(t, out.Deleted)

	account := out.Record.(*entity.Account)
	require.Len(t, account.Addresses, 1)
	assert.Equal(t, "billing", account.Addresses[0].AddressType)
	require.NotNil(t, account.Addresses[0].City)
	assert.Equal(t, "NYC", *account.Addresses[0].City)
	assert.Nil(t, account.Addresses[0].Street1)
}

func TestMapAccountNoAddressColumns(t *testing.T) {
	row := rawRow(map[string]string{"Name": "Acme"})

	out, err := MapAccount(row, "cust-1", "salesforce")
	require.NoError(t, err)

	account := out.Record.(*entity.Account)
	assert.Empty(t, account.Addresses)
}

func TestMapAccountShippingBeforeBilling(t *testing.T) {
	row := rawRow(map[string]string{
		"ShippingCity": "Austin",
		"BillingCity":  "NYC",
	})

	out, err := MapAccount(row, "cust-1", "salesforce")
	require.NoError(t, err)

	account := out.Record.(*entity.Account)
	require.Len(t, account.Addresses, 2)
	assert.Equal(t, "shipping", account.Addresses[0].AddressType)
	assert.Equal(t, "billing", account.Addresses[1].AddressType)
}

func TestMapAccountEmployeeClamp(t *testing.T) {
	row := rawRow(map[string]string{"NumberOfEmployees": "99999999999999"})

	out, err := MapAccount(row, "cust-1", "salesforce")
	require.NoError(t, err)

	account := out.Record.(*entity.Account)
	require.NotNil(t, account.NumberOfEmployees)
	assert.Equal(t, maxEmployeeCount, *account.NumberOfEmployees)
}

func TestMapAccountEmployeeUnparseable(t *testing.T) {
	row := rawRow(map[string]string{"NumberOfEmployees": "a lot"})

	_, err := MapAccount(row, "cust-1", "salesforce")
	assert.Error(t, err)
}

func TestMapAccountPhonePrecedence(t *testing.T) {
	row := rawRow(map[string]string{
		"Fax":   "+1 555 0100",
		"Phone": "+1 555 0199",
	})

	out, err := MapAccount(row, "cust-1", "salesforce")
	require.NoError(t, err)

	account := out.Record.(*entity.Account)
	require.Len(t, account.PhoneNumbers, 2)
	assert.Equal(t, "primary", account.PhoneNumbers[0].PhoneNumberType)
	assert.Equal(t, "fax", account.PhoneNumbers[1].PhoneNumberType)
}

func TestMapUserBooleanExact(t *testing.T) {
	for raw, want := range map[string]bool{
		"true":  true,
		"false": false,
		"True":  false,
		"1":     false,
		"":      false,
	} {
		out, err := MapUser(rawRow(map[string]string{"IsActive": raw}), "cust-1", "salesforce")
		require.NoError(t, err)
		assert.Equal(t, want, out.Record.(*entity.User).IsActive, "IsActive=%q", raw)
	}
}

func TestMapUserTombstone(t *testing.T) {
	row := rawRow(nil)
	row.IsDeleted = true

	out, err := MapUser(row, "cust-1", "salesforce")
	require.NoError(t, err)

	assert.True(t, out.Deleted)
	assert.Nil(t, out.Record)
	assert.Equal(t, entity.KindUser, out.Kind)
	assert.Equal(t, "001xx000003DGb2AAG", out.Key.ID)
	assert.Equal(t, row.LastModifiedAt, out.LastModifiedAt)
}

func TestMapUserMissingID(t *testing.T) {
	row := rawRow(nil)
	delete(row.Fields, "Id")

	_, err := MapUser(row, "cust-1", "salesforce")
	assert.Error(t, err)
}

func TestMapUserRequiredAuditFields(t *testing.T) {
	row := rawRow(nil)
	delete(row.Fields, "SystemModstamp")

	_, err := MapUser(row, "cust-1", "salesforce")
	assert.Error(t, err)
}

func TestMapContactSubCollections(t *testing.T) {
	row := rawRow(map[string]string{
		"FirstName":    "Alice",
		"Email":        "alice@example.com",
		"Phone":        "+1 555 0100",
		"MobilePhone":  "+1 555 0101",
		"Fax":          "+1 555 0102",
		"OtherCity":    "Boston",
		"MailingCity":  "NYC",
		"MailingState": "NY",
	})

	out, err := MapContact(row, "cust-1", "salesforce")
	require.NoError(t, err)

	contact := out.Record.(*entity.Contact)

	require.Len(t, contact.EmailAddresses, 1)
	assert.Equal(t, "primary", contact.EmailAddresses[0].EmailAddressType)

	require.Len(t, contact.PhoneNumbers, 3)
	assert.Equal(t, "primary", contact.PhoneNumbers[0].PhoneNumberType)
	assert.Equal(t, "mobile", contact.PhoneNumbers[1].PhoneNumberType)
	assert.Equal(t, "fax", contact.PhoneNumbers[2].PhoneNumberType)

	require.Len(t, contact.Addresses, 2)
	assert.Equal(t, "mailing", contact.Addresses[0].AddressType)
	assert.Equal(t, "other", contact.Addresses[1].AddressType)
}

func TestMapLeadConversionFields(t *testing.T) {
	row := rawRow(map[string]string{
		"LastName":           "Smith",
		"Company":            "Acme",
		"ConvertedDate":      "2024-02-01",
		"ConvertedAccountId": "001A",
		"ConvertedContactId": "003C",
	})

	out, err := MapLead(row, "cust-1", "salesforce")
	require.NoError(t, err)

	lead := out.Record.(*entity.Lead)
	require.NotNil(t, lead.ConvertedDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *lead.ConvertedDate)
	assert.Equal(t, "001A", *lead.ConvertedAccountID)
	assert.Equal(t, "003C", *lead.ConvertedContactID)
}

func TestMapOpportunityAmountAndDates(t *testing.T) {
	row := rawRow(map[string]string{
		"Name":      "Big Deal",
		"Stage":     "Prospecting",
		"Amount":    "15000.50",
		"CloseDate": "2024-06-30",
	})

	out, err := MapOpportunity(row, "cust-1", "salesforce")
	require.NoError(t, err)

	opp := out.Record.(*entity.Opportunity)
	require.NotNil(t, opp.Amount)
	assert.Equal(t, 15000.50, *opp.Amount)
	assert.Equal(t, "Prospecting", *opp.Stage)
	require.NotNil(t, opp.CloseDate)
	assert.Nil(t, opp.LastActivityAt) // absent date stays null, no sentinel
}

func TestMapOpportunityBadAmount(t *testing.T) {
	row := rawRow(map[string]string{"Amount": "fifteen"})

	_, err := MapOpportunity(row, "cust-1", "salesforce")
	assert.Error(t, err)
}
