package port

import (
	"context"

	"facilitator_balances/internal/domain/entity"
)

// NetworkRegistry provides the static set of tracked network descriptors.
type NetworkRegistry interface {
	// AllNetworks returns every configured network descriptor.
	AllNetworks() []entity.NetworkDescriptor

	// NetworksForKind returns the descriptors speaking the given protocol.
	NetworksForKind(kind entity.ProtocolKind) []entity.NetworkDescriptor

	// NetworkByID returns a descriptor by its unique id, and true if found.
	NetworkByID(id string) (entity.NetworkDescriptor, bool)
}

// EndpointResolver produces the ordered endpoint list to try for a network,
// walking the credential tiers (privileged secret, environment override,
// public fallback) and filtering out absent tiers.
type EndpointResolver interface {
	ResolveEndpoints(ctx context.Context, desc entity.NetworkDescriptor) []string
}

// NetworkFetcher fetches the native balance for one network by walking its
// resolved endpoint list. A nil error with a non-empty balance means one
// endpoint answered; exhaustion is reported as a *entity.FetchError of kind
// NetworkUnavailable, never as a batch abort.
type NetworkFetcher interface {
	FetchBalance(ctx context.Context, desc entity.NetworkDescriptor, endpoints []string) (string, error)
}
