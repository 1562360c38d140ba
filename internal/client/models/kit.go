package models

import "strings"

// KitKind selects which artifacts a generation produces.
type KitKind string

const (
	KindFull    KitKind = "full"
	KindCVOnly  KitKind = "cv_only"
	KindATSOnly KitKind = "ats_only"
)

// KitKinds lists the kinds in display order.
var KitKinds = []KitKind{KindFull, KindCVOnly, KindATSOnly}

// Cost is the advertised credit price of a kind.
func (k KitKind) Cost() int {
	switch k {
	case KindFull:
		return 7
	case KindCVOnly:
		return 3
	case KindATSOnly:
		return 1
	}
	return 0
}

func (k KitKind) Valid() bool { return k.Cost() > 0 }

// Kit is a kit list entry.
type Kit struct {
	ID             string  `json:"id"`
	Kind           KitKind `json:"kind"`
	JobID          string  `json:"job_id,omitempty"`
	CreditsCharged int     `json:"credits_charged"`
	CreatedAt      int64   `json:"created_at"`
}

type KitList struct {
	Kits []Kit `json:"kits"`
}

func (l *KitList) Validate() error {
	for _, k := range l.Kits {
		if k.ID == "" {
			return &FieldError{Field: "kits[].id"}
		}
	}
	return nil
}

// GenerateKitRequest asks the backend to build a kit for a parsed job.
// Profile is {"raw_cv": text} when CV text is supplied, {} otherwise.
type GenerateKitRequest struct {
	JobID   string            `json:"job_id"`
	Profile map[string]string `json:"profile"`
	Kind    KitKind           `json:"kind"`
}

type CVArtifact struct {
	Summary  string   `json:"summary"`
	Bullets  []string `json:"bullets"`
	ATSNotes []string `json:"ats_notes,omitempty"`
}

// Text renders the CV as summary followed by bullets, one per line.
func (c *CVArtifact) Text() string {
	return strings.Join(append([]string{c.Summary}, c.Bullets...), "\n")
}

type Artifacts struct {
	CV              *CVArtifact       `json:"cv,omitempty"`
	CoverLetter     string            `json:"cover_letter,omitempty"`
	InterviewPack   *InterviewPack    `json:"interview_pack,omitempty"`
	OutreachPack    map[string]string `json:"outreach_pack,omitempty"`
	ATSScore        *float64          `json:"ats_score,omitempty"`
	MissingKeywords []string          `json:"missing_keywords,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// KitResult is the generate response.
type KitResult struct {
	KitID          string    `json:"kit_id"`
	CreditsCharged int       `json:"credits_charged"`
	Artifacts      Artifacts `json:"artifacts"`
}

func (r *KitResult) Validate() error {
	return need("kit_id", r.KitID != "")
}

// Tab names a result view. The order of the constants is the display order.
type Tab string

const (
	TabCV          Tab = "CV"
	TabCoverLetter Tab = "Cover Letter"
	TabInterview   Tab = "Interview Prep"
	TabOutreach    Tab = "Outreach"
	TabATS         Tab = "ATS Score"
)

// Tabs returns one tab per artifact present, in display order.
func (a *Artifacts) Tabs() []Tab {
	tabs := make([]Tab, 0, 5)
	if a.CV != nil {
		tabs = append(tabs, TabCV)
	}
	if a.CoverLetter != "" {
		tabs = append(tabs, TabCoverLetter)
	}
	if a.InterviewPack != nil {
		tabs = append(tabs, TabInterview)
	}
	if a.OutreachPack != nil {
		tabs = append(tabs, TabOutreach)
	}
	if a.ATSScore != nil {
		tabs = append(tabs, TabATS)
	}
	return tabs
}
