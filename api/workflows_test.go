package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/model"
	"github.com/areahq/areactl/session"
	"github.com/stretchr/testify/require"
)

func testSteps() []model.WorkflowStep {
	return []model.WorkflowStep{
		{Type: model.KIND_ACTION, Service: "discord", Event: "message_received", Params: map[string]string{"channel": "general"}},
		{Type: model.KIND_REACTION, Service: "spotify", Event: "play_playlist", Params: map[string]string{"playlist": "Focus"}},
	}
}

func TestCreateAndUpdateWorkflow(t *testing.T) {
	backend := newBackend(t)
	client := newUser(t, backend, "wf@example.com")
	service := api.NewWorkflowService(client)
	ctx := context.Background()

	created, err := service.Create(ctx, "draft-1", "Test", testSteps())
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	require.Equal(t, "Test", created.Name)
	require.Equal(t, "private", created.Visibility)
	require.ElementsMatch(t, testSteps(), created.Steps)

	updated, err := service.Update(ctx, "draft-1", created.Id, "Renamed", testSteps())
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)

	fetched, err := service.Get(ctx, created.Id)
	require.NoError(t, err)
	require.Equal(t, "Renamed", fetched.Name)
}

func TestToggleFollowsServerState(t *testing.T) {
	backend := newBackend(t)
	client := newUser(t, backend, "toggle@example.com")
	service := api.NewWorkflowService(client)
	list := api.NewWorkflowList(service)
	ctx := context.Background()

	created, err := service.Create(ctx, "draft-1", "Toggled", testSteps())
	require.NoError(t, err)
	require.True(t, created.Active)
	require.NoError(t, list.Refresh(ctx))

	// server flips to off; the displayed state must follow the response
	// even though the local guess before the call was on
	active, err := list.Toggle(ctx, created.Id)
	require.NoError(t, err)
	require.False(t, active)
	require.False(t, list.Items()[0].Active)

	active, err = list.Toggle(ctx, created.Id)
	require.NoError(t, err)
	require.True(t, active)
	require.True(t, list.Items()[0].Active)
}

func TestDeleteRejectedLeavesListUnchanged(t *testing.T) {
	backend := newBackend(t)
	client := newUser(t, backend, "delete@example.com")
	service := api.NewWorkflowService(client)
	list := api.NewWorkflowList(service)
	ctx := context.Background()

	created, err := service.Create(ctx, "draft-1", "Keep me", testSteps())
	require.NoError(t, err)
	require.NoError(t, list.Refresh(ctx))
	require.Len(t, list.Items(), 1)

	err = list.Delete(ctx, created.Id+1000)
	require.ErrorAs(t, err, &api.NotFoundError{})
	require.Len(t, list.Items(), 1)

	require.NoError(t, list.Delete(ctx, created.Id))
	require.Empty(t, list.Items())
}

func TestSubmissionInFlightGuard(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.WorkflowCreateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Name == "Slow" {
			<-release
		}
		json.NewEncoder(w).Encode(model.Workflow{Id: 1, Name: req.Name})
	}))
	defer backend.Close()

	client := api.NewClient(backend.URL, session.New(session.NewMemoryStore()))
	service := api.NewWorkflowService(client)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := service.Create(ctx, "draft-1", "Slow", testSteps())
		done <- err
	}()

	// wait until the first create holds the guard
	var err error
	require.Eventually(t, func() bool {
		_, err = service.Create(ctx, "draft-1", "Dup", testSteps())
		_, blocked := err.(api.SubmissionInFlightError)
		return blocked
	}, time.Second, 5*time.Millisecond)
	var inflight api.SubmissionInFlightError
	require.ErrorAs(t, err, &inflight)
	require.Equal(t, "draft-1", inflight.Draft)

	// another draft is free to submit while the first is pending
	_, err = service.Create(ctx, "draft-2", "Other", testSteps())
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	// the guard clears once the first submission resolves
	_, err = service.Create(ctx, "draft-1", "Again", testSteps())
	require.NoError(t, err)
}
