package cli

import (
	"context"
	"strings"
)

func (a *App) Jobs(ctx context.Context, args []string) error {
	if err := a.jobs.Load(ctx, strings.Join(args, " ")); err != nil {
		a.println(a.jobs.Err)
		return nil
	}
	for _, j := range a.jobs.List {
		mark := " "
		if a.jobs.Ingested(j.Slug) {
			mark = "*"
		}
		a.printf("%s %-40s %s, %s %s\n", mark, j.Slug, j.Title, j.Company, j.Salary)
	}
	return nil
}

func (a *App) Ingest(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("ingest <slug>")
	}
	if a.jobs.Ingest(ctx, args[0]) {
		a.printf("Imported %s. It is now available for new kits.\n", args[0])
	}
	return nil
}

func (a *App) Countries(ctx context.Context, _ []string) error {
	if err := a.jobs.LoadCountries(ctx); err != nil {
		return err
	}
	for _, c := range a.jobs.Countries {
		visa := ""
		if c.DigitalNomadVisa {
			visa = "nomad visa"
		}
		a.printf("%s %s %-20s COL %5.1f  tax %4.1f%%  %s\n", c.Code, c.Flag, c.Name, c.CostOfLivingIndex, c.IncomeTaxTopPct, visa)
	}
	return nil
}

func (a *App) Country(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("country <code>")
	}
	c, err := a.jobs.Country(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s %s (%s)\n", c.Flag, c.Name, c.Region)
	a.printf("Currency %s, languages %s, %s\n", c.Currency, strings.Join(c.OfficialLanguages, ", "), c.Timezone)
	a.printf("Tech salaries (USD): junior %s, mid %s, senior %s\n",
		c.AvgTechSalaryUSD.Junior, c.AvgTechSalaryUSD.Mid, c.AvgTechSalaryUSD.Senior)
	a.printf("Top income tax %.1f%%, social security employer %.1f%% / employee %.1f%%\n",
		c.IncomeTaxTopPct, c.SocialSecurityEmployerPct, c.SocialSecurityEmployeePct)
	a.printf("Work permit: %s\n", c.NonEUWorkPermit)
	a.printf("Remote culture: %s\n", c.RemoteWorkCulture)
	for _, f := range c.KeyFacts {
		a.printf("  - %s\n", f)
	}
	return nil
}
