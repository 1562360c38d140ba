package models

// VerifyStatus is the state of an identity-verification session.
type VerifyStatus string

const (
	VerifyPending       VerifyStatus = "pending"
	VerifyManagerReview VerifyStatus = "manager_review"
	VerifyApproved      VerifyStatus = "approved"
	VerifyRejected      VerifyStatus = "rejected"
)

// ChannelAgent marks sessions routed to a human reviewer.
const ChannelAgent = "agent"

// VerifySession is both the start and the upload response; upload carries the
// fraud assessment.
type VerifySession struct {
	SessionID  string       `json:"session_id"`
	Channel    string       `json:"channel,omitempty"`
	Status     VerifyStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	FraudScore *float64     `json:"fraud_score,omitempty"`
	Flags      []string     `json:"flags,omitempty"`
}

func (s *VerifySession) Validate() error {
	return firstErr(
		need("session_id", s.SessionID != ""),
		need("status", s.Status != ""),
	)
}

// Merge overlays the non-empty fields of o onto s.
func (s *VerifySession) Merge(o *VerifySession) {
	if o == nil {
		return
	}
	if o.SessionID != "" {
		s.SessionID = o.SessionID
	}
	if o.Channel != "" {
		s.Channel = o.Channel
	}
	if o.Status != "" {
		s.Status = o.Status
	}
	if o.Message != "" {
		s.Message = o.Message
	}
	if o.FraudScore != nil {
		s.FraudScore = o.FraudScore
	}
	if o.Flags != nil {
		s.Flags = o.Flags
	}
}

// VerifyUploadRequest carries documents as base64 data URLs.
type VerifyUploadRequest struct {
	SessionID      string `json:"session_id"`
	DocFront       string `json:"doc_front"`
	DocBack        string `json:"doc_back,omitempty"`
	Video          string `json:"video,omitempty"`
	VideoDurationS int    `json:"video_duration_s,omitempty"`
}

type VerifyStatusResponse struct {
	Status     VerifyStatus `json:"status"`
	SessionID  string       `json:"session_id,omitempty"`
	FraudScore *float64     `json:"fraud_score,omitempty"`
	Channel    string       `json:"channel,omitempty"`
}

func (s *VerifyStatusResponse) Validate() error {
	return need("status", s.Status != "")
}
