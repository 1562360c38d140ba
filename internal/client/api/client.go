package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
)

// TokenSource supplies the bearer token; "" means anonymous.
type TokenSource interface {
	BearerToken(ctx context.Context) (string, error)
}

// Anonymous is a TokenSource without a token.
type Anonymous struct{}

func (Anonymous) BearerToken(context.Context) (string, error) { return "", nil }

type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	log       logging.Logger
	requestID func() string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestID replaces the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(c *Client) { c.requestID = fn }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = Anonymous{}
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		tokens:    tokens,
		log:       logging.Discard(),
		requestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// do sends an optional JSON body and decodes the reply into out (may be nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out models.Validator) error {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	data, _, err := c.send(ctx, method, path, reader, contentType)
	if err != nil {
		return err
	}
	return decode(method, path, data, out)
}

// upload posts a single "file" form part.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, out models.Validator) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart: %w", err)
	}

	data, _, err := c.send(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	return decode(http.MethodPost, path, data, out)
}

// send performs the request and returns the body of a 2xx reply.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.tokens.BearerToken(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("token: %w", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}

	rid := c.requestID()
	req.Header.Set(common.RequestIDHeader, rid)
	log := c.log.With("method", method, "path", path, "request_id", rid)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return nil, nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s %s: %v", ErrUnavailable, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: serverMessage(resp.StatusCode, data)}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "error", apiErr.Message)
		return nil, nil, apiErr
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "bytes", len(data))
	return data, resp.Header, nil
}

func decode(method, path string, data []byte, out models.Validator) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// IsUnavailable reports a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
