package services

import (
	"context"
	"strings"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type InterviewAPI interface {
	ListKits(ctx context.Context) ([]models.Kit, error)
	PrepareInterview(ctx context.Context, jobID, company string) (*models.InterviewResult, error)
}

// Interview prepares an interview pack for a job that already has a kit.
type Interview struct {
	api InterviewAPI

	Jobs     []models.Kit
	Selected string
	Pack     *models.InterviewPack
	Err      string
}

func NewInterview(api InterviewAPI) *Interview {
	return &Interview{api: api}
}

// Load lists kits that carry a job id and preselects the first one.
func (iv *Interview) Load(ctx context.Context) error {
	all, err := iv.api.ListKits(ctx)
	if err != nil {
		iv.Err = errText(err)
		return err
	}
	iv.Jobs = iv.Jobs[:0]
	for _, k := range all {
		if k.JobID != "" {
			iv.Jobs = append(iv.Jobs, k)
		}
	}
	if len(iv.Jobs) > 0 {
		iv.Selected = iv.Jobs[0].JobID
	}
	iv.Err = ""
	return nil
}

func (iv *Interview) Prepare(ctx context.Context, company string) (*models.InterviewPack, error) {
	if strings.TrimSpace(iv.Selected) == "" {
		err := common.Invalid("Select a job first")
		iv.Err = errText(err)
		return nil, err
	}
	res, err := iv.api.PrepareInterview(ctx, iv.Selected, company)
	if err != nil {
		iv.Err = errText(err)
		return nil, err
	}
	iv.Pack, iv.Err = res.InterviewPack, ""
	return res.InterviewPack, nil
}
