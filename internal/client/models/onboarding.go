package models

// Question is one multiple-choice item of the onboarding psychology test.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// HasOption reports whether v is one of the option values.
func (q *Question) HasOption(v string) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

type QuestionSet struct {
	Questions     []Question `json:"questions"`
	PassThreshold float64    `json:"pass_threshold"`
}

func (q *QuestionSet) Validate() error {
	for _, item := range q.Questions {
		if item.ID == "" {
			return &FieldError{Field: "questions[].id"}
		}
	}
	return nil
}

type Answer struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

type TestSubmission struct {
	Answers    []Answer `json:"answers"`
	DurationMS int64    `json:"duration_ms"`
}

type TestResult struct {
	TestID  string   `json:"test_id"`
	Score   float64  `json:"score"`
	Passed  bool     `json:"passed"`
	Flags   []string `json:"flags,omitempty"`
	Message string   `json:"message"`
}

func (r *TestResult) Validate() error {
	return need("test_id", r.TestID != "")
}

type TestStatus struct {
	Passed  bool     `json:"passed"`
	Score   *float64 `json:"score,omitempty"`
	Message string   `json:"message"`
}

func (s *TestStatus) Validate() error { return nil }
