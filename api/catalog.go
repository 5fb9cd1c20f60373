package api

import (
	"context"
	"sort"
	"strings"

	"github.com/areahq/areactl/model"
)

// CatalogService fetches the available action and reaction definitions.
// The backend keys each entry by "service.event"; entries are normalized
// into flat slices sorted by key.
type CatalogService struct {
	client *Client
}

func NewCatalogService(client *Client) *CatalogService {
	return &CatalogService{client: client}
}

func (s *CatalogService) Actions(ctx context.Context) ([]model.CatalogEntry, error) {
	return s.fetch(ctx, "/catalog/actions", model.KIND_ACTION)
}

func (s *CatalogService) Reactions(ctx context.Context) ([]model.CatalogEntry, error) {
	return s.fetch(ctx, "/catalog/reactions", model.KIND_REACTION)
}

func (s *CatalogService) fetch(ctx context.Context, path string, kind model.NodeKind) ([]model.CatalogEntry, error) {
	var raw map[string]model.CatalogEntry
	if err := s.client.do(ctx, "GET", path, nil, &raw); err != nil {
		return nil, err
	}
	entries := make([]model.CatalogEntry, 0, len(raw))
	for key, entry := range raw {
		entry.Kind = kind
		if entry.Service == "" || entry.Event == "" {
			service, event, ok := strings.Cut(key, ".")
			if ok {
				if entry.Service == "" {
					entry.Service = service
				}
				if entry.Event == "" {
					entry.Event = event
				}
			}
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key() < entries[j].Key()
	})
	return entries, nil
}
