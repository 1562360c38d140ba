package api

import (
	"context"
	"net/http"

	"github.com/thronos/careerforge/internal/client/models"
)

func (c *Client) Balance(ctx context.Context) (int, error) {
	var out models.Balance
	if err := c.do(ctx, http.MethodGet, "/v1/credits/balance", nil, &out); err != nil {
		return 0, err
	}
	return out.Value(), nil
}

// Checkout creates a payment session for pack and returns its URL.
func (c *Client) Checkout(ctx context.Context, pack models.Pack) (string, error) {
	var out models.CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/credits/checkout-session", models.CheckoutRequest{Pack: pack}, &out); err != nil {
		return "", err
	}
	return out.CheckoutURL, nil
}
