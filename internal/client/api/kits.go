package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) GenerateKit(ctx context.Context, req models.GenerateKitRequest) (*models.KitResult, error) {
	if req.Profile == nil {
		req.Profile = map[string]string{}
	}
	var out models.KitResult
	if err := c.do(ctx, http.MethodPost, "/v1/kit/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListKits(ctx context.Context) ([]models.Kit, error) {
	var out models.KitList
	if err := c.do(ctx, http.MethodGet, "/v1/kit/list", nil, &out); err != nil {
		return nil, err
	}
	if out.Kits == nil {
		out.Kits = []models.Kit{}
	}
	return out.Kits, nil
}

func (c *Client) ATSScore(ctx context.Context, cvText, jobID string) (*models.ATSScore, error) {
	var out models.ATSScore
	if err := c.do(ctx, http.MethodPost, "/v1/ats/score", models.ATSRequest{CVText: cvText, JobID: jobID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PrepareInterview builds an interview pack for a parsed job. company may be empty.
func (c *Client) PrepareInterview(ctx context.Context, jobID, company string) (*models.InterviewResult, error) {
	req := models.InterviewRequest{JobID: jobID, CompanyContext: map[string]string{}}
	if company != "" {
		req.CompanyContext["company"] = company
	}
	var out models.InterviewResult
	if err := c.do(ctx, http.MethodPost, "/v1/interview/prepare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
