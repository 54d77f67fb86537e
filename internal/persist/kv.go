// Package persist keeps the current session and per-user statistics in local storage.
// Storage failures never reach callers: the adapter logs them and carries on in memory.
package persist

import (
	"context"
	"sort"
	"sync"
)

// KV is scoped key-value storage. The sqlite store satisfies it.
type KV interface {
	Get(ctx context.Context, scope, key string) (string, bool, error)
	Set(ctx context.Context, scope, key, value string) error
	Remove(ctx context.Context, scope, key string) error
	RemoveScope(ctx context.Context, scope string) error
}

// MemoryKV is an in-process KV used when durable storage is unavailable.
type MemoryKV struct {
	mu     sync.Mutex
	scopes map[string]map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{scopes: map[string]map[string]string{}}
}

// Get implements KV.
func (m *MemoryKV) Get(_ context.Context, scope, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.scopes[scope][key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.scopes[scope]
	if !ok {
		entries = map[string]string{}
		m.scopes[scope] = entries
	}
	entries[key] = value
	return nil
}

// Remove implements KV.
func (m *MemoryKV) Remove(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scopes[scope], key)
	return nil
}

// RemoveScope implements KV.
func (m *MemoryKV) RemoveScope(_ context.Context, scope string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scopes, scope)
	return nil
}

// Snapshot returns a sorted "scope/key=value" dump, mostly for tests.
func (m *MemoryKV) Snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for scope, entries := range m.scopes {
		for k, v := range entries {
			out = append(out, scope+"/"+k+"="+v)
		}
	}
	sort.Strings(out)
	return out
}
