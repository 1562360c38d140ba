package cli

import (
	"context"

	"github.com/thronos/careerforge/internal/client/export"
	"github.com/thronos/careerforge/internal/client/models"
)

func (a *App) Interview(ctx context.Context, _ []string) error {
	if err := a.interview.Load(ctx); err != nil {
		return err
	}
	if len(a.interview.Jobs) > 0 {
		ids := make([]string, 0, len(a.interview.Jobs))
		for _, k := range a.interview.Jobs {
			ids = append(ids, k.JobID)
		}
		sel, err := GetChoice(a.reader, "Job", ids, a.interview.Selected, a.out)
		if err != nil {
			return err
		}
		a.interview.Selected = sel
	}

	company, err := a.prompt("Company (optional): ")
	if err != nil {
		return err
	}
	pack, err := a.interview.Prepare(ctx, company)
	if err != nil {
		return err
	}
	a.printFiles(export.Render(&models.KitResult{Artifacts: models.Artifacts{InterviewPack: pack}}))
	return nil
}
