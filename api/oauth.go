package api

import (
	"context"
	"fmt"

	"github.com/areahq/areactl/model"
)

// OAuthService wraps the /oauth endpoints. The authorize flow itself runs
// in a browser against the backend; this client only reads connection
// status and disconnects providers.
type OAuthService struct {
	client *Client
}

func NewOAuthService(client *Client) *OAuthService {
	return &OAuthService{client: client}
}

func (s *OAuthService) Providers(ctx context.Context) ([]model.ServiceConnection, error) {
	var providers []model.ServiceConnection
	if err := s.client.do(ctx, "GET", "/oauth/services", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *OAuthService) Status(ctx context.Context, provider string) (bool, error) {
	var status model.ConnectionStatus
	path := fmt.Sprintf("/oauth/%s/status", provider)
	if err := s.client.do(ctx, "GET", path, nil, &status); err != nil {
		return false, err
	}
	return status.LoggedIn, nil
}

func (s *OAuthService) Disconnect(ctx context.Context, provider string) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/oauth/%s/disconnect", provider), nil, nil)
}

// AuthorizeURL returns the browser URL that starts the OAuth dance for a
// provider. The redirect back lands on the backend, not on this client.
func (s *OAuthService) AuthorizeURL(provider string) string {
	return fmt.Sprintf("%s/oauth/%s/login", s.client.baseUrl, provider)
}
