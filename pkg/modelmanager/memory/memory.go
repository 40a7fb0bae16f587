// Package memory provides an in-memory reference implementation of the
// modelmanager contract, backing tests and local/demo wiring. It is
// not a production datastore: rule sets live only in memory, as given
// to NewManager or registered later via Put, and are never persisted.
package memory

import (
	"context"
	"sync"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
	"github.com/accessdomain/fwengine/pkg/modelmanager"
)

// RuleSet holds the ingress and egress rules for one modeled tenant.
type RuleSet struct {
	Ingress []endpointdomain.Rule
	Egress  []endpointdomain.Rule
}

// Manager is a map-backed modelmanager.Manager.
type Manager struct {
	mu     sync.RWMutex
	models map[string]RuleSet
}

// NewManager builds a Manager seeded with the given named rule sets.
func NewManager(models map[string]RuleSet) *Manager {
	m := &Manager{models: make(map[string]RuleSet, len(models))}
	for name, rs := range models {
		m.models[name] = rs
	}
	return m
}

// Put registers (or replaces) the rule set for a model handle.
func (m *Manager) Put(handle string, rs RuleSet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models[handle] = rs
}

// Get implements modelmanager.Manager.
func (m *Manager) Get(_ context.Context, modelName string) (modelmanager.ScopedSession, modelmanager.DataAccess, error) {
	m.mu.RLock()
	rs, ok := m.models[modelName]
	m.mu.RUnlock()
	if !ok {
		return nil, nil, modelmanager.NewModelNotFoundError(modelName)
	}
	return &session{}, &dataAccess{rules: rs}, nil
}

type session struct {
	closed bool
	mu     sync.Mutex
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type dataAccess struct {
	rules RuleSet
}

// GetFirewallRules implements modelmanager.DataAccess. The address
// parameter is accepted for interface conformance; this reference
// adapter does not filter by address — the rule sets passed to
// NewManager/Put are assumed pre-scoped to whatever address selection
// the caller wants to demonstrate.
func (d *dataAccess) GetFirewallRules(_ context.Context, _ modelmanager.ScopedSession, direction endpointdomain.Direction, _ string) ([]endpointdomain.Rule, error) {
	if direction == endpointdomain.Egress {
		return d.rules.Egress, nil
	}
	return d.rules.Ingress, nil
}
