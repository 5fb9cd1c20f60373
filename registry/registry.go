package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/model"
)

// NotConnectedError signals that a catalog entry's provider has not been
// authorized yet. The editor surfaces it as a "connect first" notice
// instead of adding the node.
type NotConnectedError struct {
	Provider string
}

func (e NotConnectedError) Error() string {
	return fmt.Sprintf("connect your %s account before using it in a workflow", e.Provider)
}

// Registry tracks which third party services the current user has
// authorized. It gates which catalog entries may be placed in a draft; it
// never owns the connection state, only reads it.
type Registry struct {
	service *api.OAuthService
	mu      sync.RWMutex
	byName  map[string]model.ServiceConnection
}

func New(service *api.OAuthService) *Registry {
	return &Registry{
		service: service,
		byName:  make(map[string]model.ServiceConnection),
	}
}

// Load refreshes the connection list from the backend.
func (r *Registry) Load(ctx context.Context) ([]model.ServiceConnection, error) {
	providers, err := r.service.Providers(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.byName = make(map[string]model.ServiceConnection, len(providers))
	for _, p := range providers {
		r.byName[p.Provider] = p
	}
	r.mu.Unlock()
	return providers, nil
}

func (r *Registry) IsConnected(provider string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.byName[provider]
	return ok && conn.Connected
}

// Gate returns nil when the entry's provider is connected, and a
// NotConnectedError otherwise.
func (r *Registry) Gate(entry model.CatalogEntry) error {
	if r.IsConnected(entry.Service) {
		return nil
	}
	return NotConnectedError{Provider: entry.Service}
}
