package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) KYCSubmit(ctx context.Context, req models.KYCSubmission) (*models.KYCSubmitResult, error) {
	var out models.KYCSubmitResult
	if err := c.do(ctx, http.MethodPost, "/v1/kyc/submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) KYCStatus(ctx context.Context) (*models.KYCStatus, error) {
	var out models.KYCStatus
	if err := c.do(ctx, http.MethodGet, "/v1/kyc/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) KYCPoll(ctx context.Context, verificationID int64) (*models.KYCPoll, error) {
	var out models.KYCPoll
	path := "/v1/kyc/poll/" + strconv.FormatInt(verificationID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
