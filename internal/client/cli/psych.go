package cli

import (
	"context"
	"strings"
)

// PsychTest shows the onboarding test status, or runs the test when it has
// not been passed yet.
func (a *App) PsychTest(ctx context.Context, _ []string) error {
	st, err := a.psych.Status(ctx)
	if err != nil {
		return err
	}
	if st.Passed {
		a.println(st.Message)
		if st.Score != nil {
			a.printf("Score: %.2f\n", *st.Score)
		}
		return nil
	}

	if err := a.psych.Start(ctx); err != nil {
		return err
	}
	for i, q := range a.psych.Questions {
		a.printf("\n%d/%d %s\n", i+1, len(a.psych.Questions), q.Text)
		values := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			a.printf("  %s) %s\n", o.Value, o.Label)
			values = append(values, o.Value)
		}
		v, err := GetChoice(a.reader, "Answer", values, values[0], a.out)
		if err != nil {
			return err
		}
		if err := a.psych.Answer(q.ID, v); err != nil {
			return err
		}
	}

	res, err := a.psych.Submit(ctx)
	if err != nil {
		return err
	}
	a.println(res.Message)
	a.printf("Score: %.2f, passed: %t\n", res.Score, res.Passed)
	if len(res.Flags) > 0 {
		a.printf("Flags: %s\n", strings.Join(res.Flags, ", "))
	}
	return nil
}
