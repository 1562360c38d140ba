package services

import (
	"context"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type CreditsAPI interface {
	Balance(ctx context.Context) (int, error)
	Checkout(ctx context.Context, pack models.Pack) (string, error)
}

type Credits struct {
	api CreditsAPI

	Balance    *int
	BalanceErr string
}

func NewCredits(api CreditsAPI) *Credits {
	return &Credits{api: api}
}

func (c *Credits) Load(ctx context.Context) {
	bal, err := c.api.Balance(ctx)
	if err != nil {
		c.BalanceErr = errText(err)
		return
	}
	c.Balance, c.BalanceErr = &bal, ""
}

// Buy starts a checkout for pack and returns the payment page URL.
func (c *Credits) Buy(ctx context.Context, pack models.Pack) (string, error) {
	if !pack.Valid() {
		return "", common.Invalid("Unknown credit pack.")
	}
	return c.api.Checkout(ctx, pack)
}
