package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/logger"
	"github.com/areahq/areactl/model"
	c "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const catalogKey = "catalog"

// Cache holds the catalog for the duration of an editor session. The
// backend is hit once; a failed load yields an empty catalog and the error,
// and the next Load tries again.
type Cache struct {
	service *api.CatalogService
	cache   *c.Cache
}

func NewCache(service *api.CatalogService) *Cache {
	return &Cache{
		service: service,
		cache:   c.New(c.NoExpiration, 10*time.Minute),
	}
}

func (ch *Cache) Load(ctx context.Context) (*model.Catalog, error) {
	if cached, found := ch.cache.Get(catalogKey); found {
		return cached.(*model.Catalog), nil
	}
	actions, err := ch.service.Actions(ctx)
	if err != nil {
		logger.Error("loading actions catalog", zap.Error(err))
		return &model.Catalog{}, err
	}
	reactions, err := ch.service.Reactions(ctx)
	if err != nil {
		logger.Error("loading reactions catalog", zap.Error(err))
		return &model.Catalog{}, err
	}
	catalog := &model.Catalog{Actions: actions, Reactions: reactions}
	ch.cache.Set(catalogKey, catalog, c.NoExpiration)
	return catalog, nil
}

// Lookup finds an entry by its service.event key in the loaded catalog.
func (ch *Cache) Lookup(ctx context.Context, key string) (model.CatalogEntry, bool) {
	catalog, err := ch.Load(ctx)
	if err != nil {
		return model.CatalogEntry{}, false
	}
	for _, entry := range catalog.Actions {
		if entry.Key() == key {
			return entry, true
		}
	}
	for _, entry := range catalog.Reactions {
		if entry.Key() == key {
			return entry, true
		}
	}
	return model.CatalogEntry{}, false
}

func (ch *Cache) Invalidate() {
	ch.cache.Delete(catalogKey)
}

// GroupByService arranges entries for display, one bucket per provider,
// buckets and bucket contents sorted by name.
func GroupByService(entries []model.CatalogEntry) map[string][]model.CatalogEntry {
	grouped := make(map[string][]model.CatalogEntry)
	for _, entry := range entries {
		grouped[entry.Service] = append(grouped[entry.Service], entry)
	}
	for service := range grouped {
		bucket := grouped[service]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].Event < bucket[j].Event
		})
	}
	return grouped
}
