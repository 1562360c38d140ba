package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/thronos/careerforge/internal/client/models"
)

// AnalyzeCVFile uploads a CV document for analysis.
func (c *Client) AnalyzeCVFile(ctx context.Context, filename string, file io.Reader) (*models.CVAnalyzeResult, error) {
	var out models.CVAnalyzeResult
	if err := c.upload(ctx, "/v1/cv/analyze", filename, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeCVText(ctx context.Context, text string) (*models.CVAnalyzeResult, error) {
	var out models.CVAnalyzeResult
	if err := c.do(ctx, http.MethodPost, "/v1/cv/analyze", models.AnalyzeCVRequest{CVText: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCVAnalyses(ctx context.Context) ([]models.CVAnalysisMeta, error) {
	var out models.CVList
	if err := c.do(ctx, http.MethodGet, "/v1/cv/list", nil, &out); err != nil {
		return nil, err
	}
	if out.Analyses == nil {
		out.Analyses = []models.CVAnalysisMeta{}
	}
	return out.Analyses, nil
}

func (c *Client) CVAnalysis(ctx context.Context, id string) (*models.CVAnalysisDetail, error) {
	var out models.CVAnalysisDetail
	if err := c.do(ctx, http.MethodGet, "/v1/cv/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetCVVisibility(ctx context.Context, req models.VisibilityRequest) error {
	var out models.Ack
	return c.do(ctx, http.MethodPost, "/v1/cv/visibility", req, &out)
}
