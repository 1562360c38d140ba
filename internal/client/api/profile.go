package api

import (
	"context"
	"io"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

// Profile returns the stored profile or nil when none was saved yet.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.ProfileEnvelope
	if err := c.do(ctx, http.MethodGet, "/v1/profile", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpsertProfile replaces the whole profile.
func (c *Client) UpsertProfile(ctx context.Context, p *models.Profile) error {
	var out models.Ack
	return c.do(ctx, http.MethodPost, "/v1/profile/upsert", models.UpsertProfileRequest{Profile: p}, &out)
}

// ParseCV extracts the text of a PDF CV.
func (c *Client) ParseCV(ctx context.Context, filename string, pdf io.Reader) (*models.ParsedCV, error) {
	var out models.ParsedCV
	if err := c.upload(ctx, "/v1/profile/parse-cv", filename, pdf, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
