package mock

import "github.com/areahq/areactl/model"

type seedCatalog struct {
	actions   map[string]model.CatalogEntry
	reactions map[string]model.CatalogEntry
	options   map[string]any
}

// defaultCatalog mirrors the catalog the real backend serves: a couple of
// providers with one action or reaction each, one of them with a dynamic
// select sourced from /services/spotify_playlists.
func defaultCatalog() seedCatalog {
	return seedCatalog{
		actions: map[string]model.CatalogEntry{
			"discord.message_received": {
				Service:     "discord",
				Event:       "message_received",
				Title:       "Message received on Discord",
				Description: "Fires when a message arrives in a connected channel.",
				Params: map[string]model.ParamSpec{
					"channel": {Kind: model.PARAM_TEXT, Label: "Channel", Required: true},
				},
			},
			"faceit.match_finished": {
				Service:     "faceit",
				Event:       "match_finished",
				Title:       "FACEIT match finished",
				Description: "Fires when one of your matches ends.",
			},
		},
		reactions: map[string]model.CatalogEntry{
			"spotify.play_playlist": {
				Service:     "spotify",
				Event:       "play_playlist",
				Title:       "Start a playlist",
				Description: "Starts playback of a playlist.",
				Params: map[string]model.ParamSpec{
					"playlist": {
						Kind:     model.PARAM_SELECT,
						Label:    "Playlist",
						Required: true,
						Source:   "spotify_playlists",
						Pluck:    "$.items",
					},
				},
			},
			"twitter.tweet": {
				Service:     "twitter",
				Event:       "tweet",
				Title:       "Post a tweet",
				Description: "Publishes a tweet with the given text.",
				Params: map[string]model.ParamSpec{
					"text": {Kind: model.PARAM_TEXT, Label: "Text", Required: true},
				},
			},
		},
		options: map[string]any{
			"spotify_playlists": map[string]any{
				"items": []any{"Focus", "Workout", "Road trip"},
			},
		},
	}
}
