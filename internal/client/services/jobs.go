package services

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/logging"
)

type JobsAPI interface {
	RemoteOkJobs(ctx context.Context, tag string) (*models.RemoteOkList, error)
	IngestRemoteOk(ctx context.Context, slug string) (*models.ParsedJob, error)
	Countries(ctx context.Context) ([]models.CountrySummary, error)
	CountryContext(ctx context.Context, country string) (*models.CountryContext, error)
}

// Jobs browses the RemoteOK board and the country guides.
type Jobs struct {
	api JobsAPI
	log logging.Logger

	mu        sync.Mutex
	ingesting string
	ingested  map[string]bool

	List      []models.RemoteOkJob
	Err       string
	Countries []models.CountrySummary
}

func NewJobs(api JobsAPI, log logging.Logger) *Jobs {
	return &Jobs{api: api, log: log, ingested: map[string]bool{}}
}

// NormalizeTag lowercases tag and strips diacritics so "Gólang " and
// "golang" query the same board.
func NormalizeTag(tag string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(tag))
	if err != nil {
		out = strings.TrimSpace(tag)
	}
	return strings.ToLower(out)
}

func (j *Jobs) Load(ctx context.Context, tag string) error {
	list, err := j.api.RemoteOkJobs(ctx, NormalizeTag(tag))
	if err != nil {
		j.Err = "Failed to load jobs"
		j.List = nil
		return err
	}
	j.List, j.Err = list.Jobs, ""
	return nil
}

// Ingest imports a listing as a job. Only one ingest runs at a time; a call
// made while another is in flight is ignored and returns false. Failures are
// logged but not surfaced.
func (j *Jobs) Ingest(ctx context.Context, slug string) bool {
	j.mu.Lock()
	if j.ingesting != "" {
		j.mu.Unlock()
		return false
	}
	j.ingesting = slug
	j.mu.Unlock()

	_, err := j.api.IngestRemoteOk(ctx, slug)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.ingesting = ""
	if err != nil {
		j.log.Debug(ctx, "ingest failed", "slug", slug, "err", err)
		return false
	}
	j.ingested[slug] = true
	return true
}

func (j *Jobs) Ingested(slug string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ingested[slug]
}

func (j *Jobs) LoadCountries(ctx context.Context) error {
	list, err := j.api.Countries(ctx)
	if err != nil {
		j.Err = errText(err)
		return err
	}
	j.Countries, j.Err = list, ""
	return nil
}

func (j *Jobs) Country(ctx context.Context, code string) (*models.CountryContext, error) {
	c, err := j.api.CountryContext(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		j.Err = errText(err)
		return nil, err
	}
	return c, nil
}
