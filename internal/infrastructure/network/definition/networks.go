package networkdefinition

import (
	"facilitator_balances/internal/app/port"
	"facilitator_balances/internal/domain/entity"
)

// Facilitator wallet addresses. One address per chain family; mainnet and
// testnet deployments use separate keys.
const (
	evmMainnetAddress = "0x103040545AC5031A11E8C03dd11324C7333a13C7"
	evmTestnetAddress = "0x34033041a5944B8F10f8E4D8496Bfb84f1A293A8"

	solanaMainnetAddress = "F742C4VfFLQ9zRQyithoj5229ZgtX2WqKCSFKgH2EThq"
	solanaTestnetAddress = "6xNPewUdKRbEZDReQdpyfNUdgNg8QRc8Mt263T5GZSRv"

	suiMainnetAddress = "0xe7bbf2b13f7d72714760aa16e024fa1b35a978793f9893d0568a4fbf356a764a"
	suiTestnetAddress = "0xabbd16a2fab2a502c9cfe835195a6fc7d70bfc27cffb40b8b286b52a97006e67"

	nearMainnetAddress = "uvd-facilitator.near"
	nearTestnetAddress = "uvd-facilitator.testnet"

	stellarMainnetAddress = "GCHPGXJT2WFFRFCA5TV4G4E3PMMXLNIDUH27PKDYA4QJ2XGYZWGFZNHB"
	stellarTestnetAddress = "GBBFZMLUJEZVI32EN4XA2KPP445XIBTMTRBLYWFIL556RDTHS2OWFQ2Z"

	algorandMainnetAddress = "KIMS5H6QLCUDL65L5UBTOXDPWLMTS7N3AAC3I6B2NCONEI5QIVK7LH2C2I"
	algorandTestnetAddress = "5DPPDQNYUPCTXRZWRYSF3WPYU6RKAUR25F3YG4EKXQRHV5AUAI62H5GXL4"
)

// Predefined network descriptors.
var ( //nolint:gochecknoglobals // Global for definitions
	// EVM mainnets. Privileged endpoints (secret sub-key) first, then an
	// environment override, then the public fallback.
	AvalancheMainnet = entity.NetworkDescriptor{
		ID:            "avalanche-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "avalanche",
		EnvVar:        "RPC_URL_AVALANCHE",
		PublicRPCURLs: []string{"https://avalanche-c-chain-rpc.publicnode.com"},
	}
	BaseMainnet = entity.NetworkDescriptor{
		ID:            "base-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "base",
		EnvVar:        "RPC_URL_BASE",
		PublicRPCURLs: []string{"https://mainnet.base.org"},
	}
	CeloMainnet = entity.NetworkDescriptor{
		ID:            "celo-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "celo",
		EnvVar:        "RPC_URL_CELO",
		PublicRPCURLs: []string{"https://rpc.celocolombia.org"},
	}
	HyperevmMainnet = entity.NetworkDescriptor{
		ID:            "hyperevm-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "hyperevm",
		EnvVar:        "RPC_URL_HYPEREVM",
		PublicRPCURLs: []string{"https://rpc.hyperliquid.xyz/evm"},
	}
	PolygonMainnet = entity.NetworkDescriptor{
		ID:            "polygon-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "polygon",
		EnvVar:        "RPC_URL_POLYGON",
		PublicRPCURLs: []string{"https://polygon.drpc.org"},
	}
	OptimismMainnet = entity.NetworkDescriptor{
		ID:            "optimism-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "optimism",
		EnvVar:        "RPC_URL_OPTIMISM",
		PublicRPCURLs: []string{"https://mainnet.optimism.io"},
	}
	EthereumMainnet = entity.NetworkDescriptor{
		ID:            "ethereum-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "ethereum",
		EnvVar:        "RPC_URL_ETHEREUM",
		PublicRPCURLs: []string{"https://ethereum-rpc.publicnode.com"},
	}
	ArbitrumMainnet = entity.NetworkDescriptor{
		ID:            "arbitrum-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "arbitrum",
		EnvVar:        "RPC_URL_ARBITRUM",
		PublicRPCURLs: []string{"https://arb1.arbitrum.io/rpc"},
	}
	UnichainMainnet = entity.NetworkDescriptor{
		ID:            "unichain-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		SecretKey:     "unichain",
		EnvVar:        "RPC_URL_UNICHAIN",
		PublicRPCURLs: []string{"https://unichain-rpc.publicnode.com"},
	}
	// Monad and BSC have no privileged endpoint yet.
	MonadMainnet = entity.NetworkDescriptor{
		ID:            "monad-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		EnvVar:        "RPC_URL_MONAD",
		PublicRPCURLs: []string{"https://rpc.monad.xyz"},
	}
	BSCMainnet = entity.NetworkDescriptor{
		ID:            "bsc-mainnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmMainnetAddress,
		EnvVar:        "RPC_URL_BSC",
		PublicRPCURLs: []string{"https://bsc-dataseed.binance.org/"},
	}

	// EVM testnets, public endpoints only.
	AvalancheTestnet = entity.NetworkDescriptor{
		ID:            "avalanche-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://avalanche-fuji-c-chain-rpc.publicnode.com"},
	}
	BaseTestnet = entity.NetworkDescriptor{
		ID:            "base-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://sepolia.base.org"},
	}
	CeloTestnet = entity.NetworkDescriptor{
		ID:            "celo-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://rpc.ankr.com/celo_sepolia"},
	}
	PolygonTestnet = entity.NetworkDescriptor{
		ID:            "polygon-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://rpc-amoy.polygon.technology"},
	}
	OptimismTestnet = entity.NetworkDescriptor{
		ID:            "optimism-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://sepolia.optimism.io"},
	}
	EthereumTestnet = entity.NetworkDescriptor{
		ID:            "ethereum-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://ethereum-sepolia-rpc.publicnode.com"},
	}
	ArbitrumTestnet = entity.NetworkDescriptor{
		ID:            "arbitrum-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://arbitrum-sepolia-rpc.publicnode.com"},
	}
	UnichainTestnet = entity.NetworkDescriptor{
		ID:            "unichain-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://unichain-sepolia.drpc.org"},
	}
	HyperevmTestnet = entity.NetworkDescriptor{
		ID:            "hyperevm-testnet",
		Kind:          entity.ProtocolEVM,
		Address:       evmTestnetAddress,
		PublicRPCURLs: []string{"https://rpc.hyperliquid-testnet.xyz/evm"},
	}

	// Solana family. Fogo is Solana-based and reuses the Solana keys.
	SolanaMainnet = entity.NetworkDescriptor{
		ID:            "solana-mainnet",
		Kind:          entity.ProtocolSolana,
		Address:       solanaMainnetAddress,
		SecretKey:     "solana",
		EnvVar:        "RPC_URL_SOLANA",
		PublicRPCURLs: []string{"https://api.mainnet-beta.solana.com"},
	}
	SolanaDevnet = entity.NetworkDescriptor{
		ID:            "solana-devnet",
		Kind:          entity.ProtocolSolana,
		Address:       solanaTestnetAddress,
		PublicRPCURLs: []string{"https://api.devnet.solana.com"},
	}
	FogoMainnet = entity.NetworkDescriptor{
		ID:            "fogo-mainnet",
		Kind:          entity.ProtocolSolana,
		Address:       solanaMainnetAddress,
		PublicRPCURLs: []string{"https://rpc.fogo.nightly.app/"},
	}
	FogoTestnet = entity.NetworkDescriptor{
		ID:            "fogo-testnet",
		Kind:          entity.ProtocolSolana,
		Address:       solanaTestnetAddress,
		PublicRPCURLs: []string{"https://testnet.fogo.io/"},
	}

	// Sui.
	SuiMainnet = entity.NetworkDescriptor{
		ID:            "sui-mainnet",
		Kind:          entity.ProtocolSui,
		Address:       suiMainnetAddress,
		EnvVar:        "RPC_URL_SUI",
		PublicRPCURLs: []string{"https://fullnode.mainnet.sui.io:443"},
	}
	SuiTestnet = entity.NetworkDescriptor{
		ID:            "sui-testnet",
		Kind:          entity.ProtocolSui,
		Address:       suiTestnetAddress,
		PublicRPCURLs: []string{"https://fullnode.testnet.sui.io:443"},
	}

	// NEAR. Public endpoints churn often, hence the deeper fallback lists.
	NEARMainnet = entity.NetworkDescriptor{
		ID:        "near-mainnet",
		Kind:      entity.ProtocolNEAR,
		Address:   nearMainnetAddress,
		SecretKey: "near",
		PublicRPCURLs: []string{
			"https://free.rpc.fastnear.com",
			"https://near.lava.build",
			"https://near.drpc.org",
		},
	}
	NEARTestnet = entity.NetworkDescriptor{
		ID:      "near-testnet",
		Kind:    entity.ProtocolNEAR,
		Address: nearTestnetAddress,
		PublicRPCURLs: []string{
			"https://test.rpc.fastnear.com",
			"https://rpc.testnet.fastnear.com",
			"https://near-testnet.drpc.org",
		},
	}

	// Stellar and Algorand are account-API chains: a single per-account REST
	// URL instead of an RPC endpoint list.
	StellarMainnet = entity.NetworkDescriptor{
		ID:      "stellar-mainnet",
		Kind:    entity.ProtocolStellar,
		Address: stellarMainnetAddress,
		APIURL:  "https://horizon.stellar.org/accounts/" + stellarMainnetAddress,
	}
	StellarTestnet = entity.NetworkDescriptor{
		ID:      "stellar-testnet",
		Kind:    entity.ProtocolStellar,
		Address: stellarTestnetAddress,
		APIURL:  "https://horizon-testnet.stellar.org/accounts/" + stellarTestnetAddress,
	}
	AlgorandMainnet = entity.NetworkDescriptor{
		ID:      "algorand-mainnet",
		Kind:    entity.ProtocolAlgorand,
		Address: algorandMainnetAddress,
		APIURL:  "https://mainnet-api.algonode.cloud/v2/accounts/" + algorandMainnetAddress,
	}
	AlgorandTestnet = entity.NetworkDescriptor{
		ID:      "algorand-testnet",
		Kind:    entity.ProtocolAlgorand,
		Address: algorandTestnetAddress,
		APIURL:  "https://testnet-api.algonode.cloud/v2/accounts/" + algorandTestnetAddress,
	}
)

// allKnownDescriptors lists every tracked network. The order here is the
// order aggregation tasks are scheduled in; results are order-independent.
var allKnownDescriptors = []entity.NetworkDescriptor{
	AvalancheMainnet,
	BaseMainnet,
	CeloMainnet,
	HyperevmMainnet,
	PolygonMainnet,
	OptimismMainnet,
	EthereumMainnet,
	ArbitrumMainnet,
	UnichainMainnet,
	MonadMainnet,
	BSCMainnet,
	AvalancheTestnet,
	BaseTestnet,
	CeloTestnet,
	PolygonTestnet,
	OptimismTestnet,
	EthereumTestnet,
	ArbitrumTestnet,
	UnichainTestnet,
	HyperevmTestnet,
	SolanaMainnet,
	SolanaDevnet,
	FogoMainnet,
	FogoTestnet,
	SuiMainnet,
	SuiTestnet,
	NEARMainnet,
	NEARTestnet,
	StellarMainnet,
	StellarTestnet,
	AlgorandMainnet,
	AlgorandTestnet,
}

// Registry provides the static network descriptor table. Pure data, no
// failure modes.
type Registry struct {
	ordered []entity.NetworkDescriptor
	byID    map[string]entity.NetworkDescriptor
}

// NewRegistry creates a Registry over the predefined descriptor set.
func NewRegistry() port.NetworkRegistry {
	byID := make(map[string]entity.NetworkDescriptor, len(allKnownDescriptors))
	for _, desc := range allKnownDescriptors {
		byID[desc.ID] = desc
	}
	return &Registry{ordered: allKnownDescriptors, byID: byID}
}

// AllNetworks returns every configured network descriptor.
func (r *Registry) AllNetworks() []entity.NetworkDescriptor {
	out := make([]entity.NetworkDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// NetworksForKind returns the descriptors speaking the given protocol.
func (r *Registry) NetworksForKind(kind entity.ProtocolKind) []entity.NetworkDescriptor {
	var out []entity.NetworkDescriptor
	for _, desc := range r.ordered {
		if desc.Kind == kind {
			out = append(out, desc)
		}
	}
	return out
}

// NetworkByID returns a descriptor by its unique id, and true if found.
func (r *Registry) NetworkByID(id string) (entity.NetworkDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}
