package models

// GuaranteeDays is the length of the refund promise.
const GuaranteeDays = 7

// Refund request statuses.
const (
	RefundPending  = "pending"
	RefundResolved = "resolved"
)

type RefundRequest struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	CreditsRefunded int    `json:"credits_refunded"`
}

type GuaranteeStatus struct {
	KitCount          int            `json:"kit_count"`
	DaysActive        int            `json:"days_active"`
	EligibleForRefund bool           `json:"eligible_for_refund"`
	ExistingRequest   *RefundRequest `json:"existing_request"`
}

func (g *GuaranteeStatus) Validate() error { return nil }

// DaysRemaining is the number of days until a refund can be requested.
func (g *GuaranteeStatus) DaysRemaining() int {
	return max(0, GuaranteeDays-g.DaysActive)
}

type GuaranteeRequest struct {
	Reason string `json:"reason,omitempty"`
}

type GuaranteeRequestResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

func (r *GuaranteeRequestResult) Validate() error {
	return need("request_id", r.RequestID != "")
}
