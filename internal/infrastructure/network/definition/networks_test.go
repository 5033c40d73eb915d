package networkdefinition

import (
	"testing"

	"facilitator_balances/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversEveryNetworkExactlyOnce(t *testing.T) {
	reg := NewRegistry()

	all := reg.AllNetworks()
	require.Len(t, all, 32)

	seen := make(map[string]bool, len(all))
	for _, desc := range all {
		assert.False(t, seen[desc.ID], "duplicate network id %s", desc.ID)
		seen[desc.ID] = true
	}
}

func TestEveryDescriptorHasAConcreteEndpointSource(t *testing.T) {
	reg := NewRegistry()

	for _, desc := range reg.AllNetworks() {
		if desc.Kind.IsAccountAPI() {
			assert.NotEmpty(t, desc.APIURL, "%s: account-API network needs an api url", desc.ID)
			assert.Empty(t, desc.PublicRPCURLs, "%s: account-API network must not carry rpc tiers", desc.ID)
			continue
		}
		assert.NotEmpty(t, desc.PublicRPCURLs, "%s: rpc network needs at least one public fallback", desc.ID)
		assert.Empty(t, desc.APIURL, "%s: rpc network must not carry an api url", desc.ID)
	}
}

func TestNetworksForKind(t *testing.T) {
	reg := NewRegistry()

	evm := reg.NetworksForKind(entity.ProtocolEVM)
	assert.Len(t, evm, 20)

	solana := reg.NetworksForKind(entity.ProtocolSolana)
	assert.Len(t, solana, 4)

	for _, kind := range []entity.ProtocolKind{
		entity.ProtocolSui, entity.ProtocolNEAR, entity.ProtocolStellar, entity.ProtocolAlgorand,
	} {
		assert.Len(t, reg.NetworksForKind(kind), 2, "kind %s", kind)
	}
}

func TestNetworkByID(t *testing.T) {
	reg := NewRegistry()

	desc, ok := reg.NetworkByID("base-mainnet")
	require.True(t, ok)
	assert.Equal(t, entity.ProtocolEVM, desc.Kind)
	assert.Equal(t, "base", desc.SecretKey)
	assert.Equal(t, "RPC_URL_BASE", desc.EnvVar)

	_, ok = reg.NetworkByID("bitcoin-mainnet")
	assert.False(t, ok)
}

func TestMainnetAndTestnetUseDistinctAddresses(t *testing.T) {
	reg := NewRegistry()

	main, ok := reg.NetworkByID("ethereum-mainnet")
	require.True(t, ok)
	test, ok := reg.NetworkByID("ethereum-testnet")
	require.True(t, ok)
	assert.NotEqual(t, main.Address, test.Address)
}
