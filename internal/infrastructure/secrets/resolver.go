package secrets

import (
	"context"
	"os"

	"facilitator_balances/internal/app/port"
	"facilitator_balances/internal/domain/entity"

	"go.uber.org/zap"
)

// Resolver walks the credential tiers for a network and produces the ordered
// endpoint list to try: privileged secret endpoint, then environment
// override, then the public fallbacks baked into the registry. Absent tiers
// are skipped, never emitted as empty strings.
type Resolver struct {
	store      port.SecretStore
	secretName string
	getenv     func(string) string
	logger     *zap.Logger
}

// NewResolver creates a Resolver reading privileged endpoints from the given
// shared secret name. A nil store disables the privileged tier.
func NewResolver(store port.SecretStore, secretName string, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:      store,
		secretName: secretName,
		getenv:     os.Getenv,
		logger:     logger.Named("EndpointResolver"),
	}
}

// WithGetenv replaces the environment lookup. Tests use this to avoid
// mutating the process environment.
func (r *Resolver) WithGetenv(getenv func(string) string) *Resolver {
	r.getenv = getenv
	return r
}

// ResolveEndpoints returns the concrete endpoints for a descriptor, highest
// priority first. Account-API networks carry a single per-account URL and
// skip the tier walk entirely.
func (r *Resolver) ResolveEndpoints(ctx context.Context, desc entity.NetworkDescriptor) []string {
	if desc.Kind.IsAccountAPI() {
		return []string{desc.APIURL}
	}

	endpoints := make([]string, 0, len(desc.PublicRPCURLs)+2)

	if desc.SecretKey != "" && r.store != nil {
		if url, ok := r.store.GetSecret(ctx, r.secretName, desc.SecretKey); ok {
			endpoints = append(endpoints, url)
			r.logger.Debug("Using privileged endpoint from secret store",
				zap.String("network", desc.ID), zap.String("secretKey", desc.SecretKey))
		} else {
			r.logger.Debug("No privileged endpoint configured",
				zap.String("network", desc.ID), zap.String("secretKey", desc.SecretKey))
		}
	}

	if desc.EnvVar != "" {
		if url := r.getenv(desc.EnvVar); url != "" {
			endpoints = append(endpoints, url)
			r.logger.Debug("Using endpoint override from environment",
				zap.String("network", desc.ID), zap.String("envVar", desc.EnvVar))
		}
	}

	endpoints = append(endpoints, desc.PublicRPCURLs...)
	return endpoints
}
