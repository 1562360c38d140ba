package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) ParseJob(ctx context.Context, rawText, source string) (*models.ParsedJob, error) {
	if source == "" {
		source = models.JobSourcePaste
	}
	var out models.ParsedJob
	if err := c.do(ctx, http.MethodPost, "/v1/job/parse", models.ParseJobRequest{Source: source, RawText: rawText}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoteOkJobs lists jobs, optionally filtered by tag.
func (c *Client) RemoteOkJobs(ctx context.Context, tag string) (*models.RemoteOkList, error) {
	path := "/v1/job/remoteok"
	if tag != "" {
		path += "?" + url.Values{"tag": {tag}}.Encode()
	}
	var out models.RemoteOkList
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IngestRemoteOk(ctx context.Context, slug string) (*models.ParsedJob, error) {
	var out models.ParsedJob
	if err := c.do(ctx, http.MethodPost, "/v1/job/remoteok/ingest", models.IngestRequest{Slug: slug}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Countries(ctx context.Context) ([]models.CountrySummary, error) {
	var out models.CountryList
	if err := c.do(ctx, http.MethodGet, "/v1/job/countries", nil, &out); err != nil {
		return nil, err
	}
	return out.Countries, nil
}

func (c *Client) CountryContext(ctx context.Context, country string) (*models.CountryContext, error) {
	path := "/v1/job/country-context?" + url.Values{"country": {country}}.Encode()
	var out models.CountryContext
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
