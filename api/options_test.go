package api_test

import (
	"context"
	"testing"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/model"
	"github.com/stretchr/testify/require"
)

func TestDynamicOptions(t *testing.T) {
	backend := newBackend(t)
	client := newUser(t, backend, "options@example.com")
	service := api.NewOptionsService(client)
	ctx := context.Background()

	t.Run("static specs skip the fetch", func(t *testing.T) {
		spec := model.ParamSpec{Kind: model.PARAM_SELECT, Options: []string{"a", "b"}}
		options, err := service.Fetch(ctx, spec)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, options)
	})

	t.Run("dynamic specs pluck the source response", func(t *testing.T) {
		spec := model.ParamSpec{
			Kind:     model.PARAM_SELECT,
			Source:   "spotify_playlists",
			Pluck:    "$.items",
			Required: true,
		}
		options, err := service.Fetch(ctx, spec)
		require.NoError(t, err)
		require.Equal(t, []string{"Focus", "Workout", "Road trip"}, options)
	})

	t.Run("unknown source maps to NotFound", func(t *testing.T) {
		spec := model.ParamSpec{Kind: model.PARAM_SELECT, Source: "nope"}
		_, err := service.Fetch(ctx, spec)
		require.ErrorAs(t, err, &api.NotFoundError{})
	})
}
