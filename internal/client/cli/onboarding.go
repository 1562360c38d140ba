package cli

import (
	"context"
	"os"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/wizard"
)

// Onboarding runs the next step of the onboarding wizard. A submitted KYC
// verification keeps polling in the background; run the command again to
// see its progress.
func (a *App) Onboarding(ctx context.Context, _ []string) error {
	o := a.onboarding
	st := o.State()

	if st.Polling {
		a.printf("Verification %d: %s\n", st.VerificationID, st.KYCStatus)
		return nil
	}
	if st.Step == wizard.StepKYC && st.Err == "" {
		if err := o.Init(ctx); err != nil {
			return err
		}
		st = o.State()
	}
	if st.Err != "" {
		a.println(st.Err)
	}

	switch st.Step {
	case wizard.StepKYC:
		return a.onboardingKYC(ctx)
	case wizard.StepProfile:
		return a.onboardingProfile(ctx)
	default:
		a.println("You're all set!")
		a.printf("%d credits credited to your account.\n", st.Balance)
		return nil
	}
}

func (a *App) onboardingKYC(ctx context.Context) error {
	o := a.onboarding

	types := []string{string(models.DocPassport), string(models.DocNationalID), string(models.DocDriversLicense)}
	dt, err := GetChoice(a.reader, "Document type", types, types[0], a.out)
	if err != nil {
		return err
	}
	form := wizard.KYCForm{DocumentType: models.DocumentType(dt)}
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Full name: ", &form.FullName},
		{"Document number: ", &form.DocumentNumber},
		{"Date of birth (YYYY-MM-DD): ", &form.DateOfBirth},
		{"Nationality: ", &form.Nationality},
	} {
		if *f.dst, err = a.prompt(f.label); err != nil {
			return err
		}
	}

	if err := a.attachFile("Front of document: ", false, func(f *os.File, mt string) error {
		return o.AttachFront(f, mt)
	}); err != nil {
		return err
	}
	if err := a.attachFile("Back of document (optional): ", true, func(f *os.File, mt string) error {
		return o.AttachBack(f, mt)
	}); err != nil {
		return err
	}

	if err := o.SubmitKYC(ctx, form); err != nil {
		return err
	}
	a.println("Verifying your documents. This usually takes under 30 seconds; run 'onboarding' to check.")
	return nil
}

func (a *App) onboardingProfile(ctx context.Context) error {
	var form wizard.ProfileForm
	var err error
	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Full name: ", &form.FullName},
		{"Headline: ", &form.Headline},
		{"Skills (comma separated): ", &form.Skills},
		{"Current company: ", &form.Company},
		{"Role: ", &form.Role},
		{"Start (YYYY-MM): ", &form.Start},
	} {
		if *f.dst, err = a.prompt(f.label); err != nil {
			return err
		}
	}
	if form.Bullets, err = GetMultiline(a.reader, "Achievements, one per line (optional)", a.out); err != nil {
		return err
	}

	if err := a.onboarding.SaveProfile(ctx, form); err != nil {
		return err
	}
	a.println("You're all set!")
	a.printf("%d credits credited to your account.\n", a.onboarding.State().Balance)
	return nil
}
