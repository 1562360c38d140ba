package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.Me, error) {
	var out models.Me
	if err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
