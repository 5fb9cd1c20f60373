package draft

import (
	"testing"

	"github.com/areahq/areactl/model"
	"github.com/stretchr/testify/require"
)

func linkedDraft(t *testing.T) *Draft {
	t.Helper()
	d := New()
	d.Name = "Test"
	action := d.AddNode(discordAction())
	reaction := d.AddNode(spotifyReaction())
	require.NoError(t, d.Connect(action.Id, reaction.Id))
	require.NoError(t, d.UpdateParams(action.Id, map[string]string{"channel": "general"}))
	require.NoError(t, d.UpdateParams(reaction.Id, map[string]string{"playlist": "Focus"}))
	return d
}

func TestValidateRejectsEmptyName(t *testing.T) {
	d := linkedDraft(t)
	d.Name = ""
	require.ErrorIs(t, d.Validate(), ErrMissingName)
}

func TestValidateRejectsZeroConnections(t *testing.T) {
	d := New()
	d.Name = "Test"
	d.AddNode(discordAction())
	d.AddNode(spotifyReaction())
	require.ErrorIs(t, d.Validate(), ErrNoConnection)
}

func TestValidateActionCardinality(t *testing.T) {
	d := New()
	d.Name = "Test"
	first := d.AddNode(spotifyReaction())
	second := d.AddNode(spotifyReaction())
	require.NoError(t, d.Connect(first.Id, second.Id))
	require.NoError(t, d.UpdateParams(first.Id, map[string]string{"playlist": "a"}))
	require.NoError(t, d.UpdateParams(second.Id, map[string]string{"playlist": "b"}))
	require.ErrorIs(t, d.Validate(), ErrNoAction)

	d = linkedDraft(t)
	extra := d.AddNode(discordAction())
	reaction := d.AddNode(spotifyReaction())
	require.NoError(t, d.Connect(extra.Id, reaction.Id))
	require.ErrorIs(t, d.Validate(), ErrMultipleActions)
}

func TestValidateRequiredParams(t *testing.T) {
	d := linkedDraft(t)
	for _, node := range d.Nodes() {
		if node.Kind == model.KIND_REACTION {
			require.NoError(t, d.UpdateParams(node.Id, map[string]string{"playlist": ""}))
		}
	}
	err := d.Validate()
	var missing MissingParamError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "playlist", missing.Param)
}

func TestValidateIgnoresScratchNodes(t *testing.T) {
	d := linkedDraft(t)
	// an unlinked action on the canvas must not trip the cardinality rule
	d.AddNode(discordAction())
	require.NoError(t, d.Validate())
}
