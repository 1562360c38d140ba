package services

import (
	"context"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type ATSAPI interface {
	ATSScore(ctx context.Context, cvText, jobID string) (*models.ATSScore, error)
}

type ATS struct {
	api ATSAPI

	Result *models.ATSScore
	Err    string
}

func NewATS(api ATSAPI) *ATS {
	return &ATS{api: api}
}

func (a *ATS) Score(ctx context.Context, cvText, jobID string) (*models.ATSScore, error) {
	if common.Blank(cvText, jobID) {
		err := common.Invalid("CV text and job id are required.")
		a.Err = errText(err)
		return nil, err
	}
	res, err := a.api.ATSScore(ctx, cvText, jobID)
	if err != nil {
		a.Err = errText(err)
		return nil, err
	}
	a.Result, a.Err = res, ""
	return res, nil
}
