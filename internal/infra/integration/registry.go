package integration

import (
	"strings"
	"sync"

	"github.com/commonmodel/sync-engine/internal/entity"
)

// Registry maps a (provider, object) pairing to its row mapper. A missing
// entry is not an error: it means the pairing is not supported yet and the
// orchestrator reports a no-op.
type Registry struct {
	mu      sync.RWMutex
	mappers map[string]entity.RowMapper
}

func NewRegistry() *Registry {
	return &Registry{mappers: make(map[string]entity.RowMapper)}
}

func (r *Registry) Register(providerName, object string, mapper entity.RowMapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappers[mapperKey(providerName, object)] = mapper
}

func (r *Registry) Lookup(providerName, object string) (entity.RowMapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mappers[mapperKey(providerName, object)]
	return m, ok
}

// Object names are case-sensitive on purpose ("Account" vs "account" are
// different provider objects); only the provider name is folded.
func mapperKey(providerName, object string) string {
	return strings.ToLower(providerName) + "/" + object
}
