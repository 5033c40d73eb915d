package entity

import "fmt"

// FetchErrorKind classifies failures along the fetch pipeline. Kinds other
// than FetchFatal are recovered internally and never surface to API callers.
type FetchErrorKind int

const (
	// EndpointUnreachable covers network and timeout errors talking to one
	// endpoint; the fallback walk advances to the next endpoint.
	EndpointUnreachable FetchErrorKind = iota
	// MalformedResponse covers non-2xx statuses, non-JSON bodies, JSON-RPC
	// error payloads and missing expected fields; the walk advances.
	MalformedResponse
	// NetworkUnavailable means every endpoint in a network's fallback list
	// was exhausted; the network's balance is recorded as null.
	NetworkUnavailable
	// CredentialFailure means the secret store could not be reached; the
	// resolver degrades to lower tiers.
	CredentialFailure
	// FetchFatal marks resource failures of the aggregation itself. This is
	// the only kind converted into an error response for callers.
	FetchFatal
)

func (k FetchErrorKind) String() string {
	switch k {
	case EndpointUnreachable:
		return "endpoint_unreachable"
	case MalformedResponse:
		return "malformed_response"
	case NetworkUnavailable:
		return "network_unavailable"
	case CredentialFailure:
		return "credential_failure"
	case FetchFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// FetchError is a typed fetch failure. It keeps the failing network and
// endpoint so failures can be logged centrally without losing their identity.
type FetchError struct {
	Kind      FetchErrorKind
	NetworkID string
	Endpoint  string
	Err       error
}

func (e *FetchError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.NetworkID, e.Kind, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.NetworkID, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
