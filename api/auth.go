package api

import (
	"context"

	"github.com/areahq/areactl/model"
)

// AuthService wraps the /auth endpoints. Login and Register persist the
// returned token into the session; Logout only discards it locally.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	var token model.Token
	if err := s.client.do(ctx, "POST", "/auth/register", req, &token); err != nil {
		return err
	}
	return s.client.session.Login(token.AccessToken)
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	var token model.Token
	req := model.LoginRequest{Email: email, Password: password}
	if err := s.client.do(ctx, "POST", "/auth/login", req, &token); err != nil {
		return err
	}
	return s.client.session.Login(token.AccessToken)
}

func (s *AuthService) Logout() error {
	return s.client.session.Logout()
}

func (s *AuthService) Me(ctx context.Context) (*model.UserInfo, error) {
	var info model.UserInfo
	if err := s.client.do(ctx, "GET", "/auth/me", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	req := model.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return s.client.do(ctx, "PATCH", "/auth/password", req, nil)
}

func (s *AuthService) Verify(ctx context.Context, email, code string) error {
	req := map[string]string{"email": email, "code": code}
	return s.client.do(ctx, "POST", "/auth/verify", req, nil)
}
