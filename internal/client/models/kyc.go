package models

// DocumentType is the kind of identity document submitted for KYC.
type DocumentType string

const (
	DocPassport       DocumentType = "passport"
	DocNationalID     DocumentType = "national_id"
	DocDriversLicense DocumentType = "drivers_license"
)

func (d DocumentType) Valid() bool {
	switch d {
	case DocPassport, DocNationalID, DocDriversLicense:
		return true
	}
	return false
}

// KYCSubmission carries images as bare base64 without a data-URL prefix.
type KYCSubmission struct {
	DocumentType   DocumentType `json:"document_type"`
	FullName       string       `json:"full_name"`
	DocumentNumber string       `json:"document_number"`
	DateOfBirth    string       `json:"date_of_birth"`
	Nationality    string       `json:"nationality"`
	FrontImage     string       `json:"front_image"`
	BackImage      string       `json:"back_image,omitempty"`
}

type KYCSubmitResult struct {
	VerificationID int64  `json:"verification_id"`
	Status         string `json:"status"`
}

func (r *KYCSubmitResult) Validate() error {
	return need("verification_id", r.VerificationID != 0)
}

type KYCStatus struct {
	Verified      bool `json:"verified"`
	BonusReceived bool `json:"bonus_received"`
	Balance       int  `json:"balance"`
}

func (s *KYCStatus) Validate() error { return nil }

// KYC poll statuses the onboarding flow reacts to.
const (
	KYCCompleted = "completed"
	KYCApproved  = "approved"
	KYCRejected  = "rejected"
)

type KYCPoll struct {
	VerificationID int64    `json:"verification_id"`
	Status         string   `json:"status"`
	AIScore        *float64 `json:"ai_score"`
}

func (p *KYCPoll) Validate() error {
	return need("status", p.Status != "")
}
