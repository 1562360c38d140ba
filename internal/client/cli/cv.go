package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
)

// AnalyzeCV uploads a PDF, or reads pasted text when no file is given.
func (a *App) AnalyzeCV(ctx context.Context, args []string) error {
	var (
		res *models.CVAnalyzeResult
		err error
	)
	if len(args) > 0 {
		f, ferr := os.Open(args[0])
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		res, err = a.cv.AnalyzeFile(ctx, filepath.Base(args[0]), f)
	} else {
		text, terr := GetMultiline(a.reader, "Paste your CV", a.out)
		if terr != nil {
			return terr
		}
		res, err = a.cv.AnalyzeText(ctx, text)
	}
	if err != nil {
		return err
	}

	a.printf("Analysis %s (%d credits)\n", res.AnalysisID, res.CreditsCharged)
	a.printAnalysis(res.Analysis)
	return nil
}

func (a *App) printAnalysis(an *models.CVAnalysis) {
	a.printf("%s: ATS %.0f, %d words\n", an.CandidateName, an.ATSScore, an.WordCount)
	a.println(an.Summary)
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		a.println(title + ":")
		for _, it := range items {
			a.printf("  - %s\n", it)
		}
	}
	section("Strengths", an.Strengths)
	section("Weaknesses", an.Weaknesses)
	section("Improvements", an.Improvements)
	if len(an.DetectedSkills) > 0 {
		a.printf("Skills: %s\n", strings.Join(an.DetectedSkills, ", "))
	}
	if len(an.SectionsFound) > 0 {
		a.printf("Sections: %s\n", strings.Join(an.SectionsFound, ", "))
	}
}

func (a *App) CVHistory(ctx context.Context, _ []string) error {
	if a.cv.History == nil {
		if err := a.cv.LoadHistory(ctx); err != nil {
			return err
		}
	}
	if len(a.cv.History) == 0 {
		a.println("No analyses yet.")
		return nil
	}
	for _, h := range a.cv.History {
		a.printf("  %-36s  %-24s  ATS %3.0f  %s\n",
			h.ID, h.Filename, h.ATSScore, time.Unix(h.CreatedAt, 0).Format(time.DateOnly))
	}
	return nil
}

func (a *App) CVShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("cv-show <analysis id>")
	}
	d, err := a.cv.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.printAnalysis(&d.CVAnalysis)
	return nil
}

func (a *App) CVVisibility(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return usage("cv-visibility <on|off>")
	}
	visible := args[0] == "on"

	var roles, locations, keywords string
	if visible {
		var err error
		if roles, err = a.prompt("Desired roles (comma separated): "); err != nil {
			return err
		}
		if locations, err = a.prompt("Desired locations (comma separated): "); err != nil {
			return err
		}
		if keywords, err = a.prompt("Keywords (comma separated): "); err != nil {
			return err
		}
	}
	if err := a.cv.SetVisibility(ctx, visible, roles, locations, keywords); err != nil {
		return err
	}
	if visible {
		a.println("Your CV is now visible to recruiters.")
	} else {
		a.println("Your CV is hidden from recruiters.")
	}
	return nil
}
