package entity

// ProtocolKind identifies the wire protocol a network speaks. Networks are
// dispatched to protocol clients by this kind, never by string matching on
// network names.
type ProtocolKind int

const (
	ProtocolEVM ProtocolKind = iota
	ProtocolSolana
	ProtocolSui
	ProtocolNEAR
	ProtocolStellar
	ProtocolAlgorand
)

// String returns the lowercase protocol name used in logs and metrics labels.
func (k ProtocolKind) String() string {
	switch k {
	case ProtocolEVM:
		return "evm"
	case ProtocolSolana:
		return "solana"
	case ProtocolSui:
		return "sui"
	case ProtocolNEAR:
		return "near"
	case ProtocolStellar:
		return "stellar"
	case ProtocolAlgorand:
		return "algorand"
	default:
		return "unknown"
	}
}

// IsAccountAPI reports whether networks of this kind are queried through a
// per-account REST endpoint instead of a JSON-RPC endpoint list.
func (k ProtocolKind) IsAccountAPI() bool {
	return k == ProtocolStellar || k == ProtocolAlgorand
}

// NetworkDescriptor holds the configuration for a single tracked network.
// Descriptors are immutable and defined at process start.
type NetworkDescriptor struct {
	ID   string       `json:"id" yaml:"id"` // unique key, e.g. "base-mainnet"
	Kind ProtocolKind `json:"-" yaml:"-"`

	// Address is the wallet address queried on this network. Mainnet and
	// testnet variants of the same chain family use different addresses.
	Address string `json:"address" yaml:"address"`

	// SecretKey is the sub-key inside the shared RPC secret holding a
	// privileged endpoint for this network. Empty means no secret tier.
	SecretKey string `json:"-" yaml:"-"`

	// EnvVar names an environment variable that may override the endpoint,
	// e.g. "RPC_URL_BASE". Empty means no environment tier.
	EnvVar string `json:"-" yaml:"-"`

	// PublicRPCURLs are the hardcoded public endpoints, highest priority
	// first. The last resort of the credential tier walk.
	PublicRPCURLs []string `json:"publicRpcUrls,omitempty" yaml:"publicRpcUrls,omitempty"`

	// APIURL is the full per-account REST URL for account-API networks
	// (Stellar, Algorand). Such descriptors carry no RPC tiers.
	APIURL string `json:"apiUrl,omitempty" yaml:"apiUrl,omitempty"`
}
