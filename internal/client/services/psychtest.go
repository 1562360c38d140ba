package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type PsychAPI interface {
	TestQuestions(ctx context.Context) (*models.QuestionSet, error)
	SubmitTest(ctx context.Context, req models.TestSubmission) (*models.TestResult, error)
	TestStatus(ctx context.Context) (*models.TestStatus, error)
}

// PsychTest runs the onboarding questionnaire. The time between Start and
// Submit is reported as the test duration.
type PsychTest struct {
	api PsychAPI
	now func() time.Time

	Questions []models.Question
	answers   map[string]string
	started   time.Time

	Result *models.TestResult
	Err    string
}

func NewPsychTest(api PsychAPI) *PsychTest {
	return &PsychTest{api: api, now: time.Now, answers: map[string]string{}}
}

func (p *PsychTest) Start(ctx context.Context) error {
	set, err := p.api.TestQuestions(ctx)
	if err != nil {
		p.Err = errText(err)
		return err
	}
	p.Questions, p.Err = set.Questions, ""
	p.answers = map[string]string{}
	p.started = p.now()
	return nil
}

// Answer records value for question id. The value must be one of the
// question's options.
func (p *PsychTest) Answer(id, value string) error {
	for i := range p.Questions {
		if p.Questions[i].ID != id {
			continue
		}
		if !p.Questions[i].HasOption(value) {
			return common.Invalid(fmt.Sprintf("%q is not an option of question %s.", value, id))
		}
		p.answers[id] = value
		return nil
	}
	return common.Invalid(fmt.Sprintf("Unknown question %s.", id))
}

func (p *PsychTest) Complete() bool {
	return len(p.Questions) > 0 && len(p.answers) == len(p.Questions)
}

func (p *PsychTest) Submit(ctx context.Context) (*models.TestResult, error) {
	if !p.Complete() {
		err := common.Invalid("Please answer all questions.")
		p.Err = errText(err)
		return nil, err
	}
	answers := make([]models.Answer, 0, len(p.Questions))
	for _, q := range p.Questions {
		answers = append(answers, models.Answer{QuestionID: q.ID, Value: p.answers[q.ID]})
	}
	res, err := p.api.SubmitTest(ctx, models.TestSubmission{
		Answers:    answers,
		DurationMS: p.now().Sub(p.started).Milliseconds(),
	})
	if err != nil {
		p.Err = errText(err)
		return nil, err
	}
	p.Result, p.Err = res, ""
	return res, nil
}

func (p *PsychTest) Status(ctx context.Context) (*models.TestStatus, error) {
	return p.api.TestStatus(ctx)
}
