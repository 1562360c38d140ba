package models

type StarStory struct {
	Title     string `json:"title"`
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

type InterviewPack struct {
	TechnicalTopics     []string    `json:"technical_topics,omitempty"`
	BehavioralQuestions []string    `json:"behavioral_questions,omitempty"`
	StarStories         []StarStory `json:"star_stories,omitempty"`
	QuestionsToAsk      []string    `json:"questions_to_ask,omitempty"`
}

type InterviewRequest struct {
	JobID          string            `json:"job_id"`
	CompanyContext map[string]string `json:"company_context"`
}

type InterviewResult struct {
	InterviewPack  *InterviewPack `json:"interview_pack"`
	CreditsCharged int            `json:"credits_charged"`
}

func (r *InterviewResult) Validate() error {
	return need("interview_pack", r.InterviewPack != nil)
}
