package models

// ReviewSession is a verification session as seen by a manager.
type ReviewSession struct {
	ID             string       `json:"id"`
	Sub            string       `json:"sub"`
	Status         VerifyStatus `json:"status"`
	Channel        string       `json:"channel"`
	FraudScore     *float64     `json:"fraud_score,omitempty"`
	FraudFlags     []string     `json:"fraud_flags,omitempty"`
	VideoDurationS int          `json:"video_duration_s,omitempty"`
	CreatedAt      int64        `json:"created_at"`
	UserEmail      string       `json:"user_email,omitempty"`
	UserFullName   string       `json:"user_full_name,omitempty"`
	ManagerNote    string       `json:"manager_note,omitempty"`
}

func (s *ReviewSession) Validate() error {
	return need("id", s.ID != "")
}

// Who returns the e-mail or, failing that, a short subject prefix.
func (s *ReviewSession) Who() string {
	if s.UserEmail != "" {
		return s.UserEmail
	}
	if len(s.Sub) > 16 {
		return s.Sub[:16]
	}
	return s.Sub
}

type PendingSessions struct {
	Sessions []ReviewSession `json:"sessions"`
	Count    int             `json:"count"`
}

func (p *PendingSessions) Validate() error {
	for i := range p.Sessions {
		if err := p.Sessions[i].Validate(); err != nil {
			return &FieldError{Field: "sessions[].id"}
		}
	}
	return nil
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionEscalate Decision = "escalate"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionEscalate:
		return true
	}
	return false
}

type ReviewRequest struct {
	Decision Decision `json:"decision"`
	Note     string   `json:"note,omitempty"`
}

type ReviewResult struct {
	SessionID string   `json:"session_id"`
	Decision  Decision `json:"decision"`
	Message   string   `json:"message"`
}

func (r *ReviewResult) Validate() error { return nil }

// DocType selects one of the media attached to a session.
type DocType string

const (
	DocFront DocType = "front"
	DocBack  DocType = "back"
	DocVideo DocType = "video"
)

func (d DocType) Valid() bool {
	return d == DocFront || d == DocBack || d == DocVideo
}

// Document is fetched media, kept in memory for display only.
type Document struct {
	ContentType string
	Data        []byte
}
