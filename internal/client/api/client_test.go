package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thronos/careerforge/internal/client/models"
)

type staticToken string

func (s staticToken) BearerToken(context.Context) (string, error) { return string(s), nil }

type failingToken struct{ err error }

func (f failingToken) BearerToken(context.Context) (string, error) { return "", f.err }

func newBackend(t *testing.T, tokens TokenSource) (*mux.Router, *Client) {
	t.Helper()
	r := mux.NewRouter()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return r, New(srv.URL+"/", tokens, WithRequestID(func() string { return "req-1" }))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error string", 400, `{"error":"X"}`, "X"},
		{"error object", 402, `{"error":{"code":"insufficient_credits","message":"Not enough credits"}}`, "Not enough credits"},
		{"detail", 422, `{"detail":"job_id required"}`, "job_id required"},
		{"error wins over detail", 400, `{"error":"first","detail":"second"}`, "first"},
		{"empty error falls to detail", 400, `{"error":"","detail":"second"}`, "second"},
		{"invalid json", 500, `<html>oops</html>`, "HTTP 500"},
		{"empty body", 503, ``, "HTTP 503"},
		{"no known field", 404, `{"message":"nope"}`, "HTTP 404"},
		{"error null", 409, `{"error":null}`, "HTTP 409"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serverMessage(tc.status, []byte(tc.body)))
		})
	}
}

// Every call must surface the server message verbatim.
func TestEveryCall_PropagatesServerMessage(t *testing.T) {
	for _, tc := range []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"structured", `{"error":"X"}`, http.StatusBadRequest, "X"},
		{"unparsable", `not json`, http.StatusBadGateway, "HTTP 502"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, c := newBackend(t, staticToken("tok"))
			r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			ctx := context.Background()
			for name, call := range allCalls(c) {
				err := call(ctx)
				var apiErr *Error
				require.Truef(t, errors.As(err, &apiErr), "%s: want *Error, got %v", name, err)
				assert.Equalf(t, tc.want, err.Error(), "%s", name)
				assert.Equalf(t, tc.status, apiErr.Status, "%s", name)
			}
		})
	}
}

func allCalls(c *Client) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"register": func(ctx context.Context) error { _, err := c.Register(ctx, "a@b.c", "pw", "A"); return err },
		"login":    func(ctx context.Context) error { _, err := c.Login(ctx, "a@b.c", "pw"); return err },
		"me":       func(ctx context.Context) error { _, err := c.Me(ctx); return err },
		"balance":  func(ctx context.Context) error { _, err := c.Balance(ctx); return err },
		"checkout": func(ctx context.Context) error { _, err := c.Checkout(ctx, models.Pack30); return err },
		"profile":  func(ctx context.Context) error { _, err := c.Profile(ctx); return err },
		"upsert":   func(ctx context.Context) error { return c.UpsertProfile(ctx, models.NewProfile()) },
		"parse-cv": func(ctx context.Context) error {
			_, err := c.ParseCV(ctx, "cv.pdf", strings.NewReader("%PDF"))
			return err
		},
		"parse-job": func(ctx context.Context) error { _, err := c.ParseJob(ctx, "Go dev", ""); return err },
		"remoteok":  func(ctx context.Context) error { _, err := c.RemoteOkJobs(ctx, "golang"); return err },
		"ingest":    func(ctx context.Context) error { _, err := c.IngestRemoteOk(ctx, "slug"); return err },
		"countries": func(ctx context.Context) error { _, err := c.Countries(ctx); return err },
		"country":   func(ctx context.Context) error { _, err := c.CountryContext(ctx, "GR"); return err },
		"generate":  func(ctx context.Context) error { _, err := c.GenerateKit(ctx, models.GenerateKitRequest{}); return err },
		"list-kits": func(ctx context.Context) error { _, err := c.ListKits(ctx); return err },
		"ats":       func(ctx context.Context) error { _, err := c.ATSScore(ctx, "cv", "j1"); return err },
		"interview": func(ctx context.Context) error { _, err := c.PrepareInterview(ctx, "j1", ""); return err },
		"cv-text":   func(ctx context.Context) error { _, err := c.AnalyzeCVText(ctx, "cv"); return err },
		"cv-file": func(ctx context.Context) error {
			_, err := c.AnalyzeCVFile(ctx, "cv.pdf", strings.NewReader("x"))
			return err
		},
		"cv-list":    func(ctx context.Context) error { _, err := c.ListCVAnalyses(ctx); return err },
		"cv-get":     func(ctx context.Context) error { _, err := c.CVAnalysis(ctx, "a1"); return err },
		"visibility": func(ctx context.Context) error { return c.SetCVVisibility(ctx, models.VisibilityRequest{}) },
		"v-start":    func(ctx context.Context) error { _, err := c.VerifyStart(ctx); return err },
		"v-upload": func(ctx context.Context) error {
			_, err := c.VerifyUpload(ctx, models.VerifyUploadRequest{})
			return err
		},
		"v-status":  func(ctx context.Context) error { _, err := c.VerifyStatus(ctx); return err },
		"m-pending": func(ctx context.Context) error { _, err := c.PendingSessions(ctx); return err },
		"m-detail":  func(ctx context.Context) error { _, err := c.SessionDetail(ctx, "s1"); return err },
		"m-review": func(ctx context.Context) error {
			_, err := c.ReviewSession(ctx, "s1", models.DecisionApproved, "")
			return err
		},
		"m-doc":       func(ctx context.Context) error { _, err := c.SessionDocument(ctx, "s1", models.DocFront); return err },
		"kyc-submit":  func(ctx context.Context) error { _, err := c.KYCSubmit(ctx, models.KYCSubmission{}); return err },
		"kyc-status":  func(ctx context.Context) error { _, err := c.KYCStatus(ctx); return err },
		"kyc-poll":    func(ctx context.Context) error { _, err := c.KYCPoll(ctx, 7); return err },
		"t-questions": func(ctx context.Context) error { _, err := c.TestQuestions(ctx); return err },
		"t-submit":    func(ctx context.Context) error { _, err := c.SubmitTest(ctx, models.TestSubmission{}); return err },
		"t-status":    func(ctx context.Context) error { _, err := c.TestStatus(ctx); return err },
		"g-status":    func(ctx context.Context) error { _, err := c.GuaranteeStatus(ctx); return err },
		"g-request":   func(ctx context.Context) error { _, err := c.RequestRefund(ctx, ""); return err },
	}
}

func TestHeaders_BearerAndRequestID(t *testing.T) {
	r, c := newBackend(t, staticToken("tok-123"))

	var got http.Header
	r.HandleFunc("/v1/credits/balance", func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Clone()
		writeJSON(w, 200, map[string]int{"balance": 12})
	}).Methods(http.MethodGet)

	bal, err := c.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, bal)
	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "req-1", got.Get("X-Request-ID"))
}

func TestHeaders_AnonymousHasNoAuthorization(t *testing.T) {
	r, c := newBackend(t, nil)

	var auth, ct string
	var body map[string]string
	r.HandleFunc("/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		auth = req.Header.Get("Authorization")
		ct = req.Header.Get("Content-Type")
		_ = json.NewDecoder(req.Body).Decode(&body)
		writeJSON(w, 200, map[string]string{"token": "t", "sub": "u1", "email": "a@b.c"})
	}).Methods(http.MethodPost)

	res, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)
	assert.Empty(t, auth)
	assert.Equal(t, "application/json", ct)
	assert.Equal(t, map[string]string{"email": "a@b.c", "password": "pw"}, body)
}

func TestTokenSourceError(t *testing.T) {
	boom := errors.New("disk gone")
	_, c := newBackend(t, failingToken{err: boom})

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestUnauthorized(t *testing.T) {
	r, c := newBackend(t, staticToken("expired"))
	r.HandleFunc("/v1/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": map[string]string{"code": "unauthorized", "message": "Token expired"}})
	})

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Token expired", err.Error())
	assert.Equal(t, "Token expired", Message(err))
}

func TestMalformedResponse(t *testing.T) {
	r, c := newBackend(t, nil)
	r.HandleFunc("/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"sub": "u1"})
	})
	r.HandleFunc("/v1/kit/list", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"kits": "nope"`)
	})

	_, err := c.Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrMalformedResponse)
	var fe *models.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "token", fe.Field)

	_, err = c.ListKits(context.Background())
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Balance(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsUnavailable(err))
}

func TestCanceledContext(t *testing.T) {
	r, c := newBackend(t, nil)
	r.HandleFunc("/v1/kit/list", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]any{"kits": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListKits(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsUnavailable(err))
}

func TestUpload_SendsFilePart(t *testing.T) {
	r, c := newBackend(t, staticToken("tok"))

	var filename, content, auth string
	r.HandleFunc("/v1/profile/parse-cv", func(w http.ResponseWriter, req *http.Request) {
		auth = req.Header.Get("Authorization")
		f, hdr, err := req.FormFile("file")
		if err != nil {
			writeJSON(w, 400, map[string]string{"error": err.Error()})
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		filename, content = hdr.Filename, string(b)
		writeJSON(w, 200, map[string]any{"text": "Jane Doe\nGo engineer", "pages": 1, "word_count": 4})
	}).Methods(http.MethodPost)

	res, err := c.ParseCV(context.Background(), "jane.pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", res.Text)
	assert.Equal(t, 4, res.WordCount)
	assert.Equal(t, "jane.pdf", filename)
	assert.Equal(t, "%PDF-1.7", content)
	assert.Equal(t, "Bearer tok", auth)
}

func TestUpload_ErrorObjectMessage(t *testing.T) {
	r, c := newBackend(t, nil)
	r.HandleFunc("/v1/cv/analyze", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 413, map[string]any{"error": map[string]string{"code": "too_large", "message": "File exceeds 5 MB"}})
	})

	_, err := c.AnalyzeCVFile(context.Background(), "cv.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "File exceeds 5 MB", err.Error())
}
