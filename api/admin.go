package api

import (
	"context"
	"fmt"

	"github.com/areahq/areactl/model"
)

// AdminService manages users. Every call requires the admin role; a 403
// maps to ForbiddenError.
type AdminService struct {
	client *Client
}

func NewAdminService(client *Client) *AdminService {
	return &AdminService{client: client}
}

func (s *AdminService) Users(ctx context.Context) ([]model.UserInfo, error) {
	var users []model.UserInfo
	if err := s.client.do(ctx, "GET", "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) CreateUser(ctx context.Context, req model.AdminUserRequest) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := s.client.do(ctx, "POST", "/admin/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id int64, req model.AdminUserRequest) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := s.client.do(ctx, "PUT", fmt.Sprintf("/admin/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", id), nil, nil)
}
