package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/thronos/careerforge/internal/client/export"
	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

func (a *App) Kits(ctx context.Context, args []string) error {
	if err := a.kits.Load(ctx); err != nil {
		return err
	}
	if len(args) > 0 {
		a.kits.SetFilter(args[0])
	}

	a.println(a.Sprintf("kits_summary", len(a.kits.Kits), a.kits.TotalCredits()))
	a.printf("%s: %d\n", a.T("kits_this_month"), a.kits.ThisMonth())

	list := a.kits.Filtered()
	if len(list) == 0 {
		a.println(a.T("kits_none"))
		return nil
	}
	for _, k := range list {
		a.printKit(k)
	}
	return nil
}

func kindNames() []string {
	out := make([]string, 0, len(models.KitKinds))
	for _, k := range models.KitKinds {
		out = append(out, string(k))
	}
	return out
}

// NewKit reads a job description and optional CV text and generates a kit.
func (a *App) NewKit(ctx context.Context, args []string) error {
	kind := models.KindFull
	if len(args) > 0 {
		kind = models.KitKind(args[0])
	} else {
		k, err := GetChoice(a.reader, "Kit kind", kindNames(), string(models.KindFull), a.out)
		if err != nil {
			return err
		}
		kind = models.KitKind(k)
	}

	job, err := GetMultiline(a.reader, "Paste the job description", a.out)
	if err != nil {
		return err
	}
	cv, err := GetMultiline(a.reader, "Paste your CV (optional)", a.out)
	if err != nil {
		return err
	}

	a.printf("Generating %s (%d credits)...\n", a.kits.Label(kind), kind.Cost())
	res, err := a.newKit.Generate(ctx, job, cv, kind)
	if err != nil {
		return err
	}

	a.printf("Kit %s ready, %d credits charged.\n", res.KitID, res.CreditsCharged)
	a.printFiles(export.Render(res))
	return nil
}

func (a *App) printFiles(files []export.File) {
	for _, f := range files {
		a.printf("\n--- %s ---\n", strings.TrimSuffix(f.Name, ".txt"))
		a.printf("%s", f.Body)
	}
}

func (a *App) ATS(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("ats <job id>")
	}
	cv, err := GetMultiline(a.reader, "Paste your CV", a.out)
	if err != nil {
		return err
	}
	res, err := a.ats.Score(ctx, cv, args[0])
	if err != nil {
		return err
	}
	a.printf("ATS score: %.0f\n", res.Score())
	for _, k := range res.MissingKeywords {
		a.printf("  missing: %s\n", k)
	}
	for _, r := range res.Recommendations {
		a.printf("  - %s\n", r)
	}
	return nil
}

// Cached lists kits generated on this machine.
func (a *App) Cached(ctx context.Context, _ []string) error {
	list, err := a.repos.Kits.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println(a.T("kits_none"))
		return nil
	}
	for _, k := range list {
		a.printf("  %-36s  %-10s  %2d cr  %s\n",
			k.ID, a.kits.Label(k.Kind), k.CreditsCharged, time.Unix(k.CreatedAt, 0).Format(time.DateOnly))
	}
	return nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("export <kit id>")
	}
	k, err := a.repos.Kits.Get(ctx, args[0])
	if errors.Is(err, common.ErrNotFound) {
		return common.Invalid("Only kits generated on this machine can be exported (see 'cached').")
	}
	if err != nil {
		return err
	}
	loc, err := a.exporter.Export(ctx, k.ID, export.Render(k.Result))
	if err != nil {
		return err
	}
	a.printf("Exported to %s\n", loc)
	return nil
}

func (a *App) Forget(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("forget <kit id>")
	}
	return a.repos.Kits.Delete(ctx, args[0])
}
