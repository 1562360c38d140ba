package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

func TestPsychTest(t *testing.T) {
	opts := []models.Option{{Value: "a", Label: "Agree"}, {Value: "d", Label: "Disagree"}}
	var sent models.TestSubmission
	f := &fakeAPI{
		questions: func() (*models.QuestionSet, error) {
			return &models.QuestionSet{Questions: []models.Question{
				{ID: "q1", Text: "?", Options: opts},
				{ID: "q2", Text: "?", Options: opts},
			}}, nil
		},
		submitTest: func(s models.TestSubmission) (*models.TestResult, error) {
			sent = s
			return &models.TestResult{TestID: "t1", Passed: true, Score: 0.8}, nil
		},
	}
	clock := time.Unix(1000, 0)
	p := NewPsychTest(f)
	p.now = func() time.Time { return clock }

	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Answer("q2", "d"))
	require.ErrorIs(t, p.Answer("q1", "x"), common.ErrValidation)
	require.ErrorIs(t, p.Answer("q9", "a"), common.ErrValidation)

	_, err := p.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, p.Answer("q1", "a"))
	clock = clock.Add(90 * time.Second)
	res, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, models.TestSubmission{
		Answers:    []models.Answer{{QuestionID: "q1", Value: "a"}, {QuestionID: "q2", Value: "d"}},
		DurationMS: 90_000,
	}, sent)
}
