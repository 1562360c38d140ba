package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) PendingSessions(ctx context.Context) (*models.PendingSessions, error) {
	var out models.PendingSessions
	if err := c.do(ctx, http.MethodGet, "/v1/manager/pending", nil, &out); err != nil {
		return nil, err
	}
	if out.Sessions == nil {
		out.Sessions = []models.ReviewSession{}
	}
	return &out, nil
}

func (c *Client) SessionDetail(ctx context.Context, id string) (*models.ReviewSession, error) {
	var out models.ReviewSession
	if err := c.do(ctx, http.MethodGet, "/v1/manager/session/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReviewSession(ctx context.Context, id string, decision models.Decision, note string) (*models.ReviewResult, error) {
	var out models.ReviewResult
	path := "/v1/manager/session/" + url.PathEscape(id) + "/review"
	if err := c.do(ctx, http.MethodPost, path, models.ReviewRequest{Decision: decision, Note: note}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SessionDocument fetches a document or video of a session. The token travels
// in the Authorization header only.
func (c *Client) SessionDocument(ctx context.Context, id string, doc models.DocType) (*models.Document, error) {
	if !doc.Valid() {
		return nil, fmt.Errorf("unknown document type %q", doc)
	}
	path := "/v1/manager/session/" + url.PathEscape(id) + "/doc/" + string(doc)
	data, header, err := c.send(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	ct := header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return &models.Document{ContentType: ct, Data: data}, nil
}
