package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonmodel/sync-engine/internal/entity"
	"github.com/commonmodel/sync-engine/internal/infra/integration"
	"github.com/commonmodel/sync-engine/internal/infra/integration/salesforce"
)

func TestLookupUnknownPairingIsNotAnError(t *testing.T) {
	reg := integration.NewRegistry()
	salesforce.Register(reg)

	_, ok := reg.Lookup("salesforce", "CustomObject")
	assert.False(t, ok)

	_, ok = reg.Lookup("hubspot", "Contact")
	assert.False(t, ok)
}

func TestStandardObjectsAreRegistered(t *testing.T) {
	reg := integration.NewRegistry()
	salesforce.Register(reg)

	for _, object := range []string{
		entity.KindUser, entity.KindAccount, entity.KindContact,
		entity.KindLead, entity.KindOpportunity,
	} {
		mapper, ok := reg.Lookup("salesforce", object)
		require.True(t, ok, "missing mapper for %s", object)
		require.NotNil(t, mapper)
	}
}

func TestProviderNameIsCaseInsensitiveObjectIsNot(t *testing.T) {
	reg := integration.NewRegistry()
	salesforce.Register(reg)

	_, ok := reg.Lookup("Salesforce", "User")
	assert.True(t, ok)

	_, ok = reg.Lookup("salesforce", "user")
	assert.False(t, ok)
}
