package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/catalog"
	"github.com/areahq/areactl/model"
	"github.com/areahq/areactl/session"
	"github.com/stretchr/testify/require"
)

func catalogBackend(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		var payload map[string]model.CatalogEntry
		switch r.URL.Path {
		case "/catalog/actions":
			payload = map[string]model.CatalogEntry{
				"discord.message_received": {Title: "Message received", Available: true},
			}
		case "/catalog/reactions":
			payload = map[string]model.CatalogEntry{
				"spotify.play_playlist": {Title: "Start a playlist"},
				"twitter.tweet":         {Service: "twitter", Event: "tweet", Title: "Post a tweet"},
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(backend.Close)
	return backend
}

func newCache(t *testing.T, url string) *catalog.Cache {
	t.Helper()
	client := api.NewClient(url, session.New(session.NewMemoryStore()))
	return catalog.NewCache(api.NewCatalogService(client))
}

func TestLoadFetchesOncePerSession(t *testing.T) {
	var hits int64
	backend := catalogBackend(t, &hits)
	cache := newCache(t, backend.URL)
	ctx := context.Background()

	cat, err := cache.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cat.Actions, 1)
	require.Len(t, cat.Reactions, 2)
	require.EqualValues(t, 2, atomic.LoadInt64(&hits))

	// second load is served from the cache
	_, err = cache.Load(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt64(&hits))

	cache.Invalidate()
	_, err = cache.Load(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, atomic.LoadInt64(&hits))
}

func TestEntriesNormalizedFromKeys(t *testing.T) {
	var hits int64
	backend := catalogBackend(t, &hits)
	cache := newCache(t, backend.URL)

	entry, ok := cache.Lookup(context.Background(), "discord.message_received")
	require.True(t, ok)
	require.Equal(t, "discord", entry.Service)
	require.Equal(t, "message_received", entry.Event)
	require.Equal(t, model.KIND_ACTION, entry.Kind)

	_, ok = cache.Lookup(context.Background(), "nope.nothing")
	require.False(t, ok)
}

func TestLoadFailureYieldsEmptyCatalog(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(backend.Close)
	cache := newCache(t, backend.URL)

	cat, err := cache.Load(context.Background())
	require.Error(t, err)
	require.NotNil(t, cat)
	require.Empty(t, cat.Actions)
	require.Empty(t, cat.Reactions)
}

func TestGroupByService(t *testing.T) {
	entries := []model.CatalogEntry{
		{Service: "spotify", Event: "play_playlist"},
		{Service: "discord", Event: "message_received"},
		{Service: "spotify", Event: "add_to_queue"},
	}
	grouped := catalog.GroupByService(entries)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["spotify"], 2)
	require.Equal(t, "add_to_queue", grouped["spotify"][0].Event)
}
