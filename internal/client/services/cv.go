package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type CVAPI interface {
	AnalyzeCVFile(ctx context.Context, filename string, file io.Reader) (*models.CVAnalyzeResult, error)
	AnalyzeCVText(ctx context.Context, text string) (*models.CVAnalyzeResult, error)
	ListCVAnalyses(ctx context.Context) ([]models.CVAnalysisMeta, error)
	CVAnalysis(ctx context.Context, id string) (*models.CVAnalysisDetail, error)
	SetCVVisibility(ctx context.Context, req models.VisibilityRequest) error
}

// CVAnalyzer analyzes CVs and keeps the analysis history, newest first.
type CVAnalyzer struct {
	api CVAPI
	now func() time.Time

	History []models.CVAnalysisMeta
	Last    *models.CVAnalyzeResult
	Err     string
}

func NewCVAnalyzer(api CVAPI) *CVAnalyzer {
	return &CVAnalyzer{api: api, now: time.Now}
}

func (c *CVAnalyzer) LoadHistory(ctx context.Context) error {
	list, err := c.api.ListCVAnalyses(ctx)
	if err != nil {
		c.Err = errText(err)
		return err
	}
	c.History, c.Err = list, ""
	return nil
}

func (c *CVAnalyzer) AnalyzeFile(ctx context.Context, filename string, file io.Reader) (*models.CVAnalyzeResult, error) {
	res, err := c.api.AnalyzeCVFile(ctx, filename, file)
	return c.done(res, filename, err)
}

func (c *CVAnalyzer) AnalyzeText(ctx context.Context, text string) (*models.CVAnalyzeResult, error) {
	if strings.TrimSpace(text) == "" {
		err := common.Invalid("Paste your CV text to continue.")
		c.Err = errText(err)
		return nil, err
	}
	res, err := c.api.AnalyzeCVText(ctx, text)
	return c.done(res, "", err)
}

func (c *CVAnalyzer) done(res *models.CVAnalyzeResult, filename string, err error) (*models.CVAnalyzeResult, error) {
	if err != nil {
		c.Err = errText(err)
		return nil, err
	}
	c.Last, c.Err = res, ""
	meta := models.CVAnalysisMeta{
		ID:             res.AnalysisID,
		Filename:       filename,
		ATSScore:       res.Analysis.ATSScore,
		CreditsCharged: res.CreditsCharged,
		CreatedAt:      c.now().Unix(),
	}
	c.History = append([]models.CVAnalysisMeta{meta}, c.History...)
	return res, nil
}

func (c *CVAnalyzer) Get(ctx context.Context, id string) (*models.CVAnalysisDetail, error) {
	d, err := c.api.CVAnalysis(ctx, id)
	if err != nil {
		c.Err = errText(err)
		return nil, err
	}
	return d, nil
}

// SetVisibility shares or hides the CV from recruiters. The list arguments
// are comma separated.
func (c *CVAnalyzer) SetVisibility(ctx context.Context, visible bool, roles, locations, keywords string) error {
	err := c.api.SetCVVisibility(ctx, models.VisibilityRequest{
		Visible:          visible,
		DesiredRoles:     common.SplitTrim(roles, ","),
		DesiredLocations: common.SplitTrim(locations, ","),
		Keywords:         common.SplitTrim(keywords, ","),
	})
	if err != nil {
		c.Err = errText(err)
	}
	return err
}
