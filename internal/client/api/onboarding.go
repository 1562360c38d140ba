package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) TestQuestions(ctx context.Context) (*models.QuestionSet, error) {
	var out models.QuestionSet
	if err := c.do(ctx, http.MethodGet, "/v1/onboarding/test/questions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitTest(ctx context.Context, req models.TestSubmission) (*models.TestResult, error) {
	var out models.TestResult
	if err := c.do(ctx, http.MethodPost, "/v1/onboarding/test/submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TestStatus(ctx context.Context) (*models.TestStatus, error) {
	var out models.TestStatus
	if err := c.do(ctx, http.MethodGet, "/v1/onboarding/test/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
