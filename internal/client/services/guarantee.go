package services

import (
	"context"

	"github.com/thronos/careerforge/internal/client/models"
)

type GuaranteeAPI interface {
	GuaranteeStatus(ctx context.Context) (*models.GuaranteeStatus, error)
	RequestRefund(ctx context.Context, reason string) (*models.GuaranteeRequestResult, error)
}

// Guarantee shows the money-back guarantee and files refund requests.
type Guarantee struct {
	api GuaranteeAPI

	Status  *models.GuaranteeStatus
	Message string
	Err     string
}

func NewGuarantee(api GuaranteeAPI) *Guarantee {
	return &Guarantee{api: api}
}

func (g *Guarantee) Load(ctx context.Context) error {
	st, err := g.api.GuaranteeStatus(ctx)
	if err != nil {
		g.Err = errText(err)
		return err
	}
	g.Status, g.Err = st, ""
	return nil
}

func (g *Guarantee) DaysRemaining() int {
	if g.Status == nil {
		return models.GuaranteeDays
	}
	return g.Status.DaysRemaining()
}

// Request files a refund and records it as a pending request locally.
func (g *Guarantee) Request(ctx context.Context, reason string) error {
	res, err := g.api.RequestRefund(ctx, reason)
	if err != nil {
		g.Err = errText(err)
		return err
	}
	if g.Status == nil {
		g.Status = &models.GuaranteeStatus{}
	}
	g.Status.ExistingRequest = &models.RefundRequest{
		ID:     res.RequestID,
		Status: models.RefundPending,
	}
	g.Message, g.Err = res.Message, ""
	return nil
}
