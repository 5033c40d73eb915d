package secrets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	networkdefinition "facilitator_balances/internal/infrastructure/network/definition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapSecretStore is a behaviour-focused fake: configure what exists, the
// resolver should not care how lookups happen.
type mapSecretStore struct {
	values map[string]string
}

func (m *mapSecretStore) GetSecret(_ context.Context, name, key string) (string, bool) {
	v, ok := m.values[name+":"+key]
	return v, ok
}

func noEnv(string) string { return "" }

func testResolver(store *mapSecretStore, getenv func(string) string) *Resolver {
	return NewResolver(store, "facilitator-rpc-mainnet", zap.NewNop()).WithGetenv(getenv)
}

func TestResolveEndpointsTierOrder(t *testing.T) {
	store := &mapSecretStore{values: map[string]string{
		"facilitator-rpc-mainnet:base": "https://base.private.example",
	}}
	env := func(name string) string {
		if name == "RPC_URL_BASE" {
			return "https://base.env.example"
		}
		return ""
	}

	got := testResolver(store, env).ResolveEndpoints(context.Background(), networkdefinition.BaseMainnet)

	assert.Equal(t, []string{
		"https://base.private.example",
		"https://base.env.example",
		"https://mainnet.base.org",
	}, got)
}

func TestResolveEndpointsSkipsAbsentTiers(t *testing.T) {
	got := testResolver(&mapSecretStore{}, noEnv).ResolveEndpoints(context.Background(), networkdefinition.BaseMainnet)

	assert.Equal(t, []string{"https://mainnet.base.org"}, got)
	for _, url := range got {
		assert.NotEmpty(t, url)
	}
}

func TestResolveEndpointsAccountAPINetwork(t *testing.T) {
	got := testResolver(&mapSecretStore{}, noEnv).ResolveEndpoints(context.Background(), networkdefinition.StellarMainnet)

	assert.Equal(t, []string{networkdefinition.StellarMainnet.APIURL}, got)
}

func TestResolveEndpointsNeverEmptyForPublicFallback(t *testing.T) {
	resolver := testResolver(&mapSecretStore{}, noEnv)
	for _, desc := range networkdefinition.NewRegistry().AllNetworks() {
		got := resolver.ResolveEndpoints(context.Background(), desc)
		assert.NotEmpty(t, got, "network %s resolved to no endpoints", desc.ID)
	}
}

func TestResolveEndpointsIdempotent(t *testing.T) {
	store := &mapSecretStore{values: map[string]string{
		"facilitator-rpc-mainnet:solana": "https://solana.private.example",
	}}
	resolver := testResolver(store, noEnv)

	first := resolver.ResolveEndpoints(context.Background(), networkdefinition.SolanaMainnet)
	second := resolver.ResolveEndpoints(context.Background(), networkdefinition.SolanaMainnet)
	assert.Equal(t, first, second)
}

func TestFileStoreReadsJSONSubKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base":"https://base.private.example","near":"https://near.private.example"}`), 0o600))

	store := NewFileStore(map[string]string{"facilitator-rpc-mainnet": path}, zap.NewNop())

	v, ok := store.GetSecret(context.Background(), "facilitator-rpc-mainnet", "base")
	require.True(t, ok)
	assert.Equal(t, "https://base.private.example", v)

	_, ok = store.GetSecret(context.Background(), "facilitator-rpc-mainnet", "polygon")
	assert.False(t, ok)
}

func TestFileStoreCachesForProcessLifetime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base":"https://one.example"}`), 0o600))

	store := NewFileStore(map[string]string{"facilitator-rpc-mainnet": path}, zap.NewNop())

	v, ok := store.GetSecret(context.Background(), "facilitator-rpc-mainnet", "base")
	require.True(t, ok)
	require.Equal(t, "https://one.example", v)

	// Mutating the backing file must not change an already-resolved value.
	require.NoError(t, os.WriteFile(path, []byte(`{"base":"https://two.example"}`), 0o600))

	v, ok = store.GetSecret(context.Background(), "facilitator-rpc-mainnet", "base")
	require.True(t, ok)
	assert.Equal(t, "https://one.example", v)
}

func TestFileStoreUnreadableFileDegrades(t *testing.T) {
	store := NewFileStore(map[string]string{"facilitator-rpc-mainnet": "/nonexistent/rpc.json"}, zap.NewNop())

	_, ok := store.GetSecret(context.Background(), "facilitator-rpc-mainnet", "base")
	assert.False(t, ok)
}

func TestResolverUnknownSecretStillYieldsPublic(t *testing.T) {
	// Store with nothing configured at all behaves like an unreachable
	// secret backend: the public tier still resolves.
	got := testResolver(&mapSecretStore{}, noEnv).ResolveEndpoints(context.Background(), networkdefinition.NEARMainnet)
	assert.Equal(t, networkdefinition.NEARMainnet.PublicRPCURLs, got)
}
