package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/areahq/areactl/api"
	"github.com/areahq/areactl/model"
	"github.com/stretchr/testify/require"
)

func TestAdminUserManagement(t *testing.T) {
	backend := newBackend(t)
	admin := newUser(t, backend, "root@example.com")
	service := api.NewAdminService(admin)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, model.AdminUserRequest{
		Username: "managed",
		Email:    "managed@example.com",
		Password: "longenough",
		Role:     "user",
	})
	require.NoError(t, err)
	require.Equal(t, "user", created.Role)

	updated, err := service.UpdateUser(ctx, created.Id, model.AdminUserRequest{
		Username: "managed",
		Email:    "managed@example.com",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Role)

	users, err := service.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, service.DeleteUser(ctx, created.Id))
	users, err = service.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestFeedListsPublicWorkflows(t *testing.T) {
	backend := newBackend(t)
	client := newUser(t, backend, "feed@example.com")
	ctx := context.Background()

	// the client only creates private workflows; publish one by hand to
	// exercise the feed
	body, err := json.Marshal(model.WorkflowCreateRequest{
		Name:       "Shared flow",
		Visibility: "public",
		Steps:      testSteps(),
	})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, backend.URL+"/workflows/", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+client.Session().Token())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	service := api.NewWorkflowService(client)
	_, err = service.Create(ctx, "draft-1", "Private flow", testSteps())
	require.NoError(t, err)

	feed := api.NewFeedService(client)
	items, err := feed.Workflows(ctx, api.FeedQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Shared flow", items[0].Name)
	require.Equal(t, 2, items[0].StepsCount)

	items, err = feed.Workflows(ctx, api.FeedQuery{Search: "nothing matches"})
	require.NoError(t, err)
	require.Empty(t, items)
}
