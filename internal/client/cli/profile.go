package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (a *App) ShowProfile(ctx context.Context, _ []string) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}
	p := a.profile.Profile
	a.printf("%s\n%s\n", p.Identity.FullName, p.Headline)
	if p.Identity.Email != "" || p.Identity.Location != "" {
		a.printf("%s  %s\n", p.Identity.Email, p.Identity.Location)
	}
	a.printf("Skills: %s\n", a.profile.HardSkills)
	for i, e := range p.Experience {
		a.printf("[%d] %s, %s (%s - %s)\n", i, e.Role, e.Company, e.Start, e.End)
		for _, b := range e.Bullets {
			a.printf("    - %s\n", b)
		}
	}
	return nil
}

// keep prompts with the current value; an empty answer keeps it.
func (a *App) keep(label, cur string) (string, error) {
	s, err := a.prompt(fmt.Sprintf("%s [%s]: ", label, cur))
	if err != nil || s == "" {
		return cur, err
	}
	return s, nil
}

func (a *App) EditProfile(ctx context.Context, _ []string) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}
	p := a.profile.Profile

	var err error
	if p.Identity.FullName, err = a.keep("Full name", p.Identity.FullName); err != nil {
		return err
	}
	if p.Headline, err = a.keep("Headline", p.Headline); err != nil {
		return err
	}
	if p.Identity.Location, err = a.keep("Location", p.Identity.Location); err != nil {
		return err
	}
	if a.profile.HardSkills, err = a.keep("Hard skills (comma separated)", a.profile.HardSkills); err != nil {
		return err
	}

	for i := len(p.Experience) - 1; i >= 0; i-- {
		ans, err := a.prompt(fmt.Sprintf("Keep %s at %s? [Y/n]: ", p.Experience[i].Role, p.Experience[i].Company))
		if err != nil {
			return err
		}
		if strings.EqualFold(ans, "n") {
			if err := a.profile.RemoveExperience(i); err != nil {
				return err
			}
		}
	}

	for {
		ans, err := a.prompt("Add an experience entry? [y/N]: ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(ans, "y") {
			break
		}
		i := a.profile.AddExperience()
		e := &p.Experience[i]
		if e.Company, err = a.prompt("Company: "); err != nil {
			return err
		}
		if e.Role, err = a.prompt("Role: "); err != nil {
			return err
		}
		if e.Start, err = a.prompt("Start (YYYY-MM): "); err != nil {
			return err
		}
		if e.End, err = a.prompt("End (empty if current): "); err != nil {
			return err
		}
		bullets, err := GetMultiline(a.reader, "Achievements, one per line", a.out)
		if err != nil {
			return err
		}
		if err := a.profile.SetBullets(i, bullets); err != nil {
			return err
		}
	}

	if err := a.profile.Save(ctx); err != nil {
		return err
	}
	a.println("Profile saved.")
	return nil
}

func (a *App) ImportCV(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("import-cv <file.pdf>")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	text, err := a.profile.ImportCV(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	a.println(text)
	return nil
}
