package wizard

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
)

type VerifyStep string

const (
	StepIntro      VerifyStep = "intro"
	StepUpload     VerifyStep = "upload"
	StepProcessing VerifyStep = "processing"
	StepResult     VerifyStep = "result"
)

type VerifyAPI interface {
	VerifyStart(ctx context.Context) (*models.VerifySession, error)
	VerifyUpload(ctx context.Context, req models.VerifyUploadRequest) (*models.VerifySession, error)
	VerifyStatus(ctx context.Context) (*models.VerifyStatusResponse, error)
}

// Verification is the identity verification wizard:
//
//	intro -> upload -> processing -> result
//
// and back from result to intro only after a rejection.
type Verification struct {
	api VerifyAPI
	log logging.Logger

	step    VerifyStep
	session *models.VerifySession

	docFront, docBack, video string
	videoDuration            float64

	Err string
}

func NewVerification(api VerifyAPI, log logging.Logger) *Verification {
	return &Verification{api: api, log: log, step: StepIntro}
}

func (v *Verification) Step() VerifyStep { return v.step }

// Session returns the current session, or nil before Start.
func (v *Verification) Session() *models.VerifySession { return v.session }

// Status reports the backend status of the latest session. It does not move
// the wizard.
func (v *Verification) Status(ctx context.Context) (*models.VerifyStatusResponse, error) {
	return v.api.VerifyStatus(ctx)
}

// Start opens a session. An already approved account goes straight to the
// result step.
func (v *Verification) Start(ctx context.Context) error {
	v.Err = ""
	s, err := v.api.VerifyStart(ctx)
	if err != nil {
		v.Err = api.Message(err)
		return err
	}
	v.session = s
	if s.Status == models.VerifyApproved {
		v.step = StepResult
	} else {
		v.step = StepUpload
	}
	return nil
}

func (v *Verification) AttachFront(r io.Reader, mime string) error {
	return v.attach(&v.docFront, r, mime, MaxDocumentBytes)
}

func (v *Verification) AttachBack(r io.Reader, mime string) error {
	return v.attach(&v.docBack, r, mime, MaxDocumentBytes)
}

// AttachVideo sets the selfie video and its length in seconds.
func (v *Verification) AttachVideo(r io.Reader, mime string, durationS float64) error {
	if err := v.attach(&v.video, r, mime, MaxVideoBytes); err != nil {
		return err
	}
	v.videoDuration = durationS
	return nil
}

func (v *Verification) attach(dst *string, r io.Reader, mime string, limit int64) error {
	if v.step != StepUpload {
		return fmt.Errorf("attach in step %s", v.step)
	}
	s, err := readDataURL(r, mime, limit)
	if err != nil {
		v.Err = err.Error()
		return err
	}
	*dst, v.Err = s, ""
	return nil
}

// Submit uploads the attached media. Without a front image nothing is sent
// and the wizard stays in upload.
func (v *Verification) Submit(ctx context.Context) error {
	if v.step != StepUpload || v.session == nil {
		return fmt.Errorf("submit in step %s", v.step)
	}
	if v.docFront == "" {
		err := common.Invalid("Please upload the front of your ID document.")
		v.Err = err.Error()
		return err
	}

	v.Err = ""
	v.step = StepProcessing
	res, err := v.api.VerifyUpload(ctx, models.VerifyUploadRequest{
		SessionID:      v.session.SessionID,
		DocFront:       v.docFront,
		DocBack:        v.docBack,
		Video:          v.video,
		VideoDurationS: int(math.Round(v.videoDuration)),
	})
	if err != nil {
		v.Err = api.Message(err)
		v.step = StepUpload
		return err
	}
	v.session.Merge(res)
	v.step = StepResult
	v.log.Info(ctx, "verification submitted", "session_id", v.session.SessionID, "status", v.session.Status)
	return nil
}

// Retry returns to intro after a rejection, dropping the session and media.
func (v *Verification) Retry() error {
	if v.step != StepResult || v.session == nil || v.session.Status != models.VerifyRejected {
		return fmt.Errorf("retry in step %s", v.step)
	}
	v.step = StepIntro
	v.session = nil
	v.docFront, v.docBack, v.video, v.videoDuration = "", "", "", 0
	v.Err = ""
	return nil
}
