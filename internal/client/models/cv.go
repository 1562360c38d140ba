package models

import "encoding/json"

type CVAnalysis struct {
	CandidateName  string   `json:"candidate_name"`
	Summary        string   `json:"summary"`
	ATSScore       float64  `json:"ats_score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Improvements   []string `json:"improvements"`
	DetectedSkills []string `json:"detected_skills"`
	SectionsFound  []string `json:"sections_found"`
	WordCount      int      `json:"word_count"`
}

// CVAnalysisMeta is a history list entry.
type CVAnalysisMeta struct {
	ID             string  `json:"id"`
	Filename       string  `json:"filename"`
	ATSScore       float64 `json:"ats_score"`
	CreditsCharged int     `json:"credits_charged"`
	CreatedAt      int64   `json:"created_at"`
}

type AnalyzeCVRequest struct {
	CVText string `json:"cv_text"`
}

type CVAnalyzeResult struct {
	AnalysisID     string          `json:"analysis_id"`
	Analysis       *CVAnalysis     `json:"analysis"`
	CreditsCharged int             `json:"credits_charged"`
	Attestation    json.RawMessage `json:"attestation,omitempty"`
}

func (r *CVAnalyzeResult) Validate() error {
	return firstErr(
		need("analysis_id", r.AnalysisID != ""),
		need("analysis", r.Analysis != nil),
	)
}

type CVList struct {
	Analyses []CVAnalysisMeta `json:"analyses"`
}

func (l *CVList) Validate() error {
	for _, a := range l.Analyses {
		if a.ID == "" {
			return &FieldError{Field: "analyses[].id"}
		}
	}
	return nil
}

// CVAnalysisDetail is a stored analysis fetched by id.
type CVAnalysisDetail struct {
	AnalysisID string `json:"analysis_id"`
	CVAnalysis
}

func (d *CVAnalysisDetail) Validate() error {
	return need("analysis_id", d.AnalysisID != "")
}

// VisibilityRequest opts the CV in or out of recruiter search.
type VisibilityRequest struct {
	Visible          bool     `json:"visible"`
	DesiredRoles     []string `json:"desired_roles"`
	DesiredLocations []string `json:"desired_locations"`
	Keywords         []string `json:"keywords"`
}
