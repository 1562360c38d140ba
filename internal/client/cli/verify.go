package cli

import (
	"context"
	"os"
	"strings"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/wizard"
)

// Verify walks through identity verification.
func (a *App) Verify(ctx context.Context, _ []string) error {
	v := a.verify

	if v.Step() == wizard.StepResult {
		if err := v.Retry(); err != nil {
			a.printVerifyResult(v.Session())
			return nil
		}
	}

	if v.Step() == wizard.StepIntro {
		a.println("Verify your identity with a photo of your ID and an optional short selfie video.")
		if err := v.Start(ctx); err != nil {
			return err
		}
		if v.Step() == wizard.StepResult {
			a.printVerifyResult(v.Session())
			return nil
		}
	}

	if err := a.attachFile("Front of ID (JPG/PNG, max 10 MB): ", false, func(f *os.File, mt string) error {
		return v.AttachFront(f, mt)
	}); err != nil {
		return err
	}
	if err := a.attachFile("Back of ID (optional): ", true, func(f *os.File, mt string) error {
		return v.AttachBack(f, mt)
	}); err != nil {
		return err
	}
	if err := a.attachFile("Selfie video (MP4/WebM, max 30 MB, optional): ", true, func(f *os.File, mt string) error {
		d, err := a.prompt("Video length in seconds: ")
		if err != nil {
			return err
		}
		return v.AttachVideo(f, mt, parseSeconds(d))
	}); err != nil {
		return err
	}

	a.println("Uploading...")
	if err := v.Submit(ctx); err != nil {
		return err
	}
	a.printVerifyResult(v.Session())
	return nil
}

func (a *App) printVerifyResult(s *models.VerifySession) {
	switch s.Status {
	case models.VerifyApproved:
		a.println("Identity verified.")
	case models.VerifyManagerReview:
		a.println("Your documents are being reviewed by our team.")
	case models.VerifyRejected:
		a.println("Verification rejected. Run 'verify' again to retry.")
	default:
		a.printf("Status: %s\n", s.Status)
	}
	if s.Message != "" {
		a.println(s.Message)
	}
	if len(s.Flags) > 0 {
		a.printf("Flags: %s\n", strings.Join(s.Flags, ", "))
	}
}
