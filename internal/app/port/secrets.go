package port

import "context"

// SecretStore retrieves named secrets. A secret value is a JSON document;
// passing a non-empty key extracts that field from the document. Absence is
// reported with ok=false and is not an error condition for callers: the
// resolver falls back to the next credential tier.
type SecretStore interface {
	GetSecret(ctx context.Context, name, key string) (value string, ok bool)
}
