package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
)

type ProfileAPI interface {
	Profile(ctx context.Context) (*models.Profile, error)
	UpsertProfile(ctx context.Context, p *models.Profile) error
	ParseCV(ctx context.Context, filename string, pdf io.Reader) (*models.ParsedCV, error)
}

// ProfileEditor edits a local copy of the profile and saves it wholesale.
type ProfileEditor struct {
	api ProfileAPI

	Profile *models.Profile
	// HardSkills is the comma separated text form of Profile.Skills.Hard.
	HardSkills string
	Err        string
}

func NewProfileEditor(api ProfileAPI) *ProfileEditor {
	return &ProfileEditor{api: api, Profile: models.NewProfile()}
}

// Load fetches the stored profile; a missing profile leaves an empty one.
func (e *ProfileEditor) Load(ctx context.Context) error {
	p, err := e.api.Profile(ctx)
	if err != nil {
		e.Err = errText(err)
		return err
	}
	if p != nil {
		e.Profile = p
		e.HardSkills = strings.Join(p.Skills.Hard, ", ")
	}
	e.Err = ""
	return nil
}

func (e *ProfileEditor) AddExperience() int {
	e.Profile.Experience = append(e.Profile.Experience, models.Experience{Bullets: []string{}})
	return len(e.Profile.Experience) - 1
}

func (e *ProfileEditor) RemoveExperience(i int) error {
	if i < 0 || i >= len(e.Profile.Experience) {
		return fmt.Errorf("no experience entry %d", i)
	}
	e.Profile.Experience = append(e.Profile.Experience[:i], e.Profile.Experience[i+1:]...)
	return nil
}

// SetBullets replaces the bullets of entry i with the non-blank lines of text.
func (e *ProfileEditor) SetBullets(i int, text string) error {
	if i < 0 || i >= len(e.Profile.Experience) {
		return fmt.Errorf("no experience entry %d", i)
	}
	e.Profile.Experience[i].Bullets = common.SplitTrim(text, "\n")
	return nil
}

// Save sends the profile with HardSkills split on commas.
func (e *ProfileEditor) Save(ctx context.Context) error {
	e.Profile.Skills.Hard = common.SplitTrim(e.HardSkills, ",")
	if e.Profile.ProfileVersion == 0 {
		e.Profile.ProfileVersion = models.ProfileVersion
	}
	if err := e.api.UpsertProfile(ctx, e.Profile); err != nil {
		e.Err = errText(err)
		return err
	}
	e.Err = ""
	return nil
}

// ImportCV extracts the text of a PDF CV.
func (e *ProfileEditor) ImportCV(ctx context.Context, filename string, pdf io.Reader) (string, error) {
	res, err := e.api.ParseCV(ctx, filename, pdf)
	if err != nil {
		e.Err = errText(err)
		return "", err
	}
	return res.Text, nil
}
