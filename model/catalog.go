package model

import "fmt"

type NodeKind string

const KIND_ACTION NodeKind = "action"
const KIND_REACTION NodeKind = "reaction"

func ToNodeKind(s string) (NodeKind, error) {
	switch s {
	case string(KIND_ACTION):
		return KIND_ACTION, nil
	case string(KIND_REACTION):
		return KIND_REACTION, nil
	}
	return "", fmt.Errorf("unknown step type %s", s)
}

// CatalogEntry describes one action or reaction the backend can run.
// Entries are immutable once fetched and keyed by service.event.
type CatalogEntry struct {
	Service     string               `json:"service"`
	Event       string               `json:"event"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Kind        NodeKind             `json:"kind"`
	Available   bool                 `json:"available"`
	Params      map[string]ParamSpec `json:"params,omitempty"`
}

func (e CatalogEntry) Key() string {
	return e.Service + "." + e.Event
}

type Catalog struct {
	Actions   []CatalogEntry `json:"actions"`
	Reactions []CatalogEntry `json:"reactions"`
}

// ServiceConnection reports whether the current user has authorized a
// third party provider. Read only from the workflow model's perspective.
type ServiceConnection struct {
	Provider  string `json:"provider"`
	Connected bool   `json:"connected"`
	LogoUrl   string `json:"logo_url,omitempty"`
}

type ConnectionStatus struct {
	LoggedIn bool `json:"logged_in"`
	HasToken bool `json:"has_token,omitempty"`
}
