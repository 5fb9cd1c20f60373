package draft

import (
	"testing"

	"github.com/areahq/areactl/model"
	"github.com/stretchr/testify/require"
)

func TestSerializeScenarios(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"round trip preserves steps":   testRoundTrip,
		"action reaction pair":         testActionReactionPair,
		"scratch nodes stay local":     testScratchExcluded,
		"edit mode rebuilds the chain": testFromStepsChain,
		"edit mode rebinds schemas":    testBindSpecs,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t)
		})
	}
}

func testRoundTrip(t *testing.T) {
	steps := []model.WorkflowStep{
		{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{"channel": "general"}},
		{Type: model.KIND_REACTION, Service: "spotify", Event: "play_playlist", Params: map[string]string{"playlist": "Focus"}},
		{Type: model.KIND_REACTION, Service: "twitter", Event: "tweet", Params: map[string]string{"text": "hi"}},
	}
	wf := &model.Workflow{Id: 7, Name: "Test", Steps: steps}

	d := FromSteps(wf)
	require.Equal(t, "Test", d.Name)
	require.Equal(t, int64(7), d.WorkflowId)

	out := d.ToSteps()
	require.ElementsMatch(t, steps, out)
}

func testActionReactionPair(t *testing.T) {
	d := New()
	d.Name = "Test"
	action := d.AddNode(discordAction())
	reaction := d.AddNode(spotifyReaction())
	require.NoError(t, d.Connect(action.Id, reaction.Id))

	steps := d.ToSteps()
	require.Len(t, steps, 2)
	require.ElementsMatch(t, []model.WorkflowStep{
		{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{"channel": ""}},
		{Type: model.KIND_REACTION, Service: "spotify", Event: "play_playlist", Params: map[string]string{"playlist": ""}},
	}, steps)
}

func testScratchExcluded(t *testing.T) {
	d := New()
	action := d.AddNode(discordAction())
	reaction := d.AddNode(spotifyReaction())
	d.AddNode(spotifyReaction())
	require.NoError(t, d.Connect(action.Id, reaction.Id))

	require.Len(t, d.ToSteps(), 2)
}

func testFromStepsChain(t *testing.T) {
	wf := &model.Workflow{
		Id:   3,
		Name: "Fanout",
		Steps: []model.WorkflowStep{
			{Type: model.KIND_REACTION, Service: "spotify", Event: "play_playlist", Params: map[string]string{}},
			{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{}},
			{Type: model.KIND_REACTION, Service: "twitter", Event: "tweet", Params: map[string]string{}},
		},
	}
	d := FromSteps(wf)

	conns := d.Connections()
	require.Len(t, conns, 2)
	var actionId string
	for _, node := range d.Nodes() {
		if node.Kind == model.KIND_ACTION {
			actionId = node.Id
		}
	}
	for _, conn := range conns {
		require.Equal(t, actionId, conn.Source)
		require.NotEqual(t, actionId, conn.Target)
	}
	require.NoError(t, d.Validate())
}

func testBindSpecs(t *testing.T) {
	wf := &model.Workflow{
		Id:   5,
		Name: "Edit",
		Steps: []model.WorkflowStep{
			{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{"channel": ""}},
			{Type: model.KIND_REACTION, Service: "spotify", Event: "play_playlist", Params: map[string]string{"playlist": "Focus"}},
		},
	}
	entries := map[string]model.CatalogEntry{
		"discord.message_received": discordAction(),
		"spotify.play_playlist":    spotifyReaction(),
	}
	resolve := func(key string) (model.CatalogEntry, bool) {
		entry, ok := entries[key]
		return entry, ok
	}

	// Nodes off the wire carry no schema, so the required check has
	// nothing to flag until the specs are rebound.
	d := FromSteps(wf)
	require.NoError(t, d.Validate())

	d.BindSpecs(resolve)
	var missing MissingParamError
	require.ErrorAs(t, d.Validate(), &missing)
	require.Equal(t, "discord.message_received", missing.Node)
	require.Equal(t, "channel", missing.Param)

	for _, node := range d.Nodes() {
		if node.Kind == model.KIND_ACTION {
			require.NoError(t, d.UpdateParams(node.Id, map[string]string{"channel": "general"}))
		}
	}
	require.NoError(t, d.Validate())

	// Entries gone from the catalog are left schemaless rather than
	// blocking the edit.
	stale := FromSteps(&model.Workflow{
		Id:   6,
		Name: "Stale",
		Steps: []model.WorkflowStep{
			{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{}},
			{Type: model.KIND_REACTION, Service: "gone", Event: "removed", Params: map[string]string{}},
		},
	})
	stale.BindSpecs(resolve)
	require.NoError(t, stale.UpdateParams(actionNode(t, stale).Id, map[string]string{"channel": "general"}))
	require.NoError(t, stale.Validate())
}

func actionNode(t *testing.T, d *Draft) *Node {
	t.Helper()
	for _, node := range d.Nodes() {
		if node.Kind == model.KIND_ACTION {
			return node
		}
	}
	t.Fatal("no action node in draft")
	return nil
}
