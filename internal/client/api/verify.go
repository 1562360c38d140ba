package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) VerifyStart(ctx context.Context) (*models.VerifySession, error) {
	var out models.VerifySession
	if err := c.do(ctx, http.MethodPost, "/v1/verify/start", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyUpload(ctx context.Context, req models.VerifyUploadRequest) (*models.VerifySession, error) {
	var out models.VerifySession
	if err := c.do(ctx, http.MethodPost, "/v1/verify/upload", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyStatus(ctx context.Context) (*models.VerifyStatusResponse, error) {
	var out models.VerifyStatusResponse
	if err := c.do(ctx, http.MethodGet, "/v1/verify/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
