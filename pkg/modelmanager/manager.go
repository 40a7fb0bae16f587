// Package modelmanager defines the contract the firewall access-domain
// engine uses to reach tenant rule data. The Model Manager itself is an
// external collaborator; this package specifies only the interfaces a
// concrete adapter must satisfy (see pkg/modelmanager/memory for a
// reference, in-memory implementation used by tests and local runs).
package modelmanager

import (
	"context"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
)

// ScopedSession represents an acquired, model-scoped session. Close
// must be safe to call exactly once and must be called on every code
// path that acquired the session, including cancellation and error
// paths.
type ScopedSession interface {
	Close() error
}

// DataAccess yields the firewall rules applicable to an address
// lookup. Semantics of applicability (ingress vs. egress selection)
// live in the Model Manager; callers treat the returned rules
// opaquely and do not re-filter them.
type DataAccess interface {
	// GetFirewallRules returns the rules applicable to address within
	// the given session. Implementations should respect ctx
	// cancellation promptly.
	GetFirewallRules(ctx context.Context, session ScopedSession, direction endpointdomain.Direction, address string) ([]endpointdomain.Rule, error)
}

// Manager resolves a model handle (an opaque, client-supplied string
// selecting a tenant's rule dataset) to a scoped session and its
// associated DataAccess adapter.
type Manager interface {
	// Get acquires a session for modelName. The returned session must
	// be released via ScopedSession.Close by the caller. Get returns
	// *ModelNotFoundError when modelName is not a known handle.
	Get(ctx context.Context, modelName string) (ScopedSession, DataAccess, error)
}
