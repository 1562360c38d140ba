package models

type ATSRequest struct {
	CVText string `json:"cv_text"`
	JobID  string `json:"job_id"`
}

type ATSScore struct {
	ATSScore        *float64 `json:"ats_score"`
	MissingKeywords []string `json:"missing_keywords"`
	Recommendations []string `json:"recommendations"`
}

func (s *ATSScore) Validate() error {
	return need("ats_score", s.ATSScore != nil)
}

// Score returns the score, zero when absent.
func (s *ATSScore) Score() float64 {
	if s.ATSScore == nil {
		return 0
	}
	return *s.ATSScore
}
