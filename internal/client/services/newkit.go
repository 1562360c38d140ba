package services

import (
	"context"
	"strings"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/repositories/kits"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
)

type GenerateAPI interface {
	ParseJob(ctx context.Context, rawText, source string) (*models.ParsedJob, error)
	GenerateKit(ctx context.Context, req models.GenerateKitRequest) (*models.KitResult, error)
}

// KitGenerator parses a pasted job description and generates a kit for it.
// Generated kits are kept in the local cache for export.
type KitGenerator struct {
	api   GenerateAPI
	cache kits.Repository
	log   logging.Logger
	now   func() time.Time

	JobID  string
	Result *models.KitResult
	Err    string
}

// NewKitGenerator creates the generator. cache may be nil.
func NewKitGenerator(api GenerateAPI, cache kits.Repository, log logging.Logger) *KitGenerator {
	return &KitGenerator{api: api, cache: cache, log: log, now: time.Now}
}

// Generate parses jobText and generates a kit of the given kind.
// cvText, when not blank, is sent as the profile's raw CV.
func (g *KitGenerator) Generate(ctx context.Context, jobText, cvText string, kind models.KitKind) (*models.KitResult, error) {
	if strings.TrimSpace(jobText) == "" {
		err := common.Invalid("Paste a job description to continue.")
		g.Err = errText(err)
		return nil, err
	}
	if kind == "" {
		kind = models.KindFull
	}
	if !kind.Valid() {
		err := common.Invalid("Unknown kit kind.")
		g.Err = errText(err)
		return nil, err
	}

	g.Result, g.Err = nil, ""

	job, err := g.api.ParseJob(ctx, jobText, models.JobSourcePaste)
	if err != nil {
		g.Err = errText(err)
		return nil, err
	}
	g.JobID = job.JobID

	profile := map[string]string{}
	if strings.TrimSpace(cvText) != "" {
		profile["raw_cv"] = cvText
	}

	res, err := g.api.GenerateKit(ctx, models.GenerateKitRequest{
		JobID:   job.JobID,
		Profile: profile,
		Kind:    kind,
	})
	if err != nil {
		g.Err = errText(err)
		return nil, err
	}
	g.Result = res
	g.remember(ctx, kind, job.JobID, res)
	return res, nil
}

// Tabs lists the artifact tabs of the last result.
func (g *KitGenerator) Tabs() []models.Tab {
	if g.Result == nil {
		return nil
	}
	return g.Result.Artifacts.Tabs()
}

func (g *KitGenerator) remember(ctx context.Context, kind models.KitKind, jobID string, res *models.KitResult) {
	if g.cache == nil {
		return
	}
	err := g.cache.Save(ctx, &kits.CachedKit{
		ID:             res.KitID,
		Kind:           kind,
		JobID:          jobID,
		CreditsCharged: res.CreditsCharged,
		CreatedAt:      g.now().Unix(),
		Result:         res,
	})
	if err != nil {
		g.log.Warn(ctx, "cache kit failed", "kit_id", res.KitID, "err", err)
	}
}
