package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) GuaranteeStatus(ctx context.Context) (*models.GuaranteeStatus, error) {
	var out models.GuaranteeStatus
	if err := c.do(ctx, http.MethodGet, "/v1/guarantee/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RequestRefund(ctx context.Context, reason string) (*models.GuaranteeRequestResult, error) {
	var out models.GuaranteeRequestResult
	if err := c.do(ctx, http.MethodPost, "/v1/guarantee/request", models.GuaranteeRequest{Reason: reason}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
