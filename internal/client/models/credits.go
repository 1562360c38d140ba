package models

// Pack identifies a purchasable credit bundle.
type Pack string

const (
	Pack30  Pack = "pack_30"
	Pack100 Pack = "pack_100"
	Pack300 Pack = "pack_300"
)

// Packs lists the bundles in display order.
var Packs = []Pack{Pack30, Pack100, Pack300}

func (p Pack) Valid() bool {
	switch p {
	case Pack30, Pack100, Pack300:
		return true
	}
	return false
}

type Balance struct {
	Balance *int `json:"balance"`
}

func (b *Balance) Validate() error {
	return need("balance", b.Balance != nil)
}

// Value returns the balance, zero when absent.
func (b *Balance) Value() int {
	if b == nil || b.Balance == nil {
		return 0
	}
	return *b.Balance
}

type CheckoutRequest struct {
	Pack Pack `json:"pack"`
}

type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
}

func (c *CheckoutSession) Validate() error {
	return need("checkout_url", c.CheckoutURL != "")
}
