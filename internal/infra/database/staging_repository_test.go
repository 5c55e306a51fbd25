package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagingTableName(t *testing.T) {
	table, err := stagingTable("salesforce", "User")
	require.NoError(t, err)
	assert.Equal(t, "supaglue.salesforce_user", table)

	table, err = stagingTable("Salesforce", "Opportunity")
	require.NoError(t, err)
	assert.Equal(t, "supaglue.salesforce_opportunity", table)
}

func TestStagingTableRejectsBadIdentifiers(t *testing.T) {
	for _, object := range []string{"User; DROP TABLE", "a-b", "", "1user"} {
		_, err := stagingTable("salesforce", object)
		assert.Error(t, err, "object %q", object)
	}
}

func TestRawFieldsProjection(t *testing.T) {
	raw := []byte(`{
		"Id": "001",
		"Name": "Acme",
		"IsDeleted": false,
		"NumberOfEmployees": 250,
		"Website": null
	}`)

	fields, err := rawFields(raw)
	require.NoError(t, err)

	assert.Equal(t, "001", fields["Id"])
	assert.Equal(t, "Acme", fields["Name"])
	assert.Equal(t, "false", fields["IsDeleted"])
	assert.Equal(t, "250", fields["NumberOfEmployees"])

	// Nulls are absent, same as a ->> projection feeding an empty string.
	_, ok := fields["Website"]
	assert.False(t, ok)
}
