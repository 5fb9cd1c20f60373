package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamSpecValidate(t *testing.T) {
	for scenario, tc := range map[string]struct {
		spec  ParamSpec
		valid bool
	}{
		"plain text":          {ParamSpec{Kind: PARAM_TEXT, Label: "Channel"}, true},
		"number":              {ParamSpec{Kind: PARAM_NUMBER, Label: "Limit"}, true},
		"select with options": {ParamSpec{Kind: PARAM_SELECT, Options: []string{"a"}}, true},
		"select with source":  {ParamSpec{Kind: PARAM_SELECT, Source: "spotify_playlists"}, true},
		"text with options":   {ParamSpec{Kind: PARAM_TEXT, Options: []string{"a"}}, false},
		"select with both":    {ParamSpec{Kind: PARAM_SELECT, Options: []string{"a"}, Source: "s"}, false},
		"select with neither": {ParamSpec{Kind: PARAM_SELECT}, false},
		"unknown kind":        {ParamSpec{Kind: "checkbox"}, false},
	} {
		t.Run(scenario, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDynamic(t *testing.T) {
	require.True(t, ParamSpec{Kind: PARAM_SELECT, Source: "x"}.Dynamic())
	require.False(t, ParamSpec{Kind: PARAM_SELECT, Options: []string{"a"}}.Dynamic())
	require.False(t, ParamSpec{Kind: PARAM_TEXT, Source: "x"}.Dynamic())
}

func TestToNodeKind(t *testing.T) {
	kind, err := ToNodeKind("action")
	require.NoError(t, err)
	require.Equal(t, KIND_ACTION, kind)

	_, err = ToNodeKind("trigger")
	require.Error(t, err)
}
