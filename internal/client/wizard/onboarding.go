package wizard

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/logging"
	"github.com/thronos/careerforge/internal/netx"
)

type OnboardingStep string

const (
	StepKYC     OnboardingStep = "kyc"
	StepProfile OnboardingStep = "profile"
	StepDone    OnboardingStep = "done"
)

// DefaultPollInterval is how often a submitted KYC verification is polled.
const DefaultPollInterval = 4 * time.Second

type OnboardingAPI interface {
	KYCStatus(ctx context.Context) (*models.KYCStatus, error)
	KYCSubmit(ctx context.Context, req models.KYCSubmission) (*models.KYCSubmitResult, error)
	KYCPoll(ctx context.Context, verificationID int64) (*models.KYCPoll, error)
	UpsertProfile(ctx context.Context, p *models.Profile) error
}

// KYCForm holds the identity document fields of the first step.
type KYCForm struct {
	DocumentType   models.DocumentType
	FullName       string
	DocumentNumber string
	DateOfBirth    string
	Nationality    string
}

// ProfileForm is the short career profile of the second step. Skills is
// comma separated, Bullets one per line.
type ProfileForm struct {
	FullName string
	Headline string
	Skills   string
	Company  string
	Role     string
	Start    string
	Bullets  string
}

// OnboardingState is a snapshot of the wizard.
type OnboardingState struct {
	Step           OnboardingStep
	Balance        int
	VerificationID int64
	KYCStatus      string
	Polling        bool
	Err            string
}

// Onboarding walks a new user through kyc -> profile -> done. A submitted KYC
// verification is polled in the background until it is decided; Close must be
// called to stop the poll when the wizard is abandoned.
type Onboarding struct {
	api      OnboardingAPI
	log      logging.Logger
	interval time.Duration

	mu     sync.Mutex
	state  OnboardingState
	front  string
	back   string
	poller *Poller
}

type OnboardingOption func(*Onboarding)

func WithPollInterval(d time.Duration) OnboardingOption {
	return func(o *Onboarding) {
		if d > 0 {
			o.interval = d
		}
	}
}

func NewOnboarding(api OnboardingAPI, log logging.Logger, opts ...OnboardingOption) *Onboarding {
	o := &Onboarding{
		api:      api,
		log:      log,
		interval: DefaultPollInterval,
		state:    OnboardingState{Step: StepKYC},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Onboarding) State() OnboardingState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Init picks the starting step from the account's KYC status. Errors leave
// the wizard at the kyc step.
func (o *Onboarding) Init(ctx context.Context) error {
	st, err := o.api.KYCStatus(ctx)
	if err != nil {
		o.log.Debug(ctx, "kyc status failed", "err", err)
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Balance = st.Balance
	switch {
	case st.BonusReceived:
		o.state.Step = StepDone
	case st.Verified:
		o.state.Step = StepProfile
	}
	return nil
}

// AttachFront stores the front image of the document as bare base64.
func (o *Onboarding) AttachFront(r io.Reader, mime string) error {
	return o.attach(&o.front, r, mime)
}

func (o *Onboarding) AttachBack(r io.Reader, mime string) error {
	return o.attach(&o.back, r, mime)
}

func (o *Onboarding) attach(dst *string, r io.Reader, mime string) error {
	s, err := readDataURL(r, mime, MaxDocumentBytes)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.state.Err = err.Error()
		return err
	}
	*dst, o.state.Err = netx.StripDataURL(s), ""
	return nil
}

// SubmitKYC sends the document and starts polling the verification.
func (o *Onboarding) SubmitKYC(ctx context.Context, f KYCForm) error {
	o.mu.Lock()
	front, back := o.front, o.back
	busy := o.state.Polling
	o.mu.Unlock()

	if busy {
		return fmt.Errorf("verification %d still pending", o.State().VerificationID)
	}
	if f.DocumentType == "" {
		f.DocumentType = models.DocPassport
	}
	if !f.DocumentType.Valid() || common.Blank(f.FullName, f.DocumentNumber, f.DateOfBirth, f.Nationality, front) {
		return o.fail(common.Invalid("Please fill all required fields and upload the front of your document."))
	}

	res, err := o.api.KYCSubmit(ctx, models.KYCSubmission{
		DocumentType:   f.DocumentType,
		FullName:       f.FullName,
		DocumentNumber: f.DocumentNumber,
		DateOfBirth:    f.DateOfBirth,
		Nationality:    f.Nationality,
		FrontImage:     front,
		BackImage:      back,
	})
	if err != nil {
		return o.fail(err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.VerificationID = res.VerificationID
	o.state.KYCStatus = "pending"
	o.state.Polling = true
	o.state.Err = ""
	id := res.VerificationID
	// The poll outlives the submit call, so it must not inherit its deadline.
	o.poller = StartPoller(context.WithoutCancel(ctx), o.interval, func(ctx context.Context) bool {
		return o.poll(ctx, id)
	})
	return nil
}

func (o *Onboarding) poll(ctx context.Context, id int64) bool {
	p, err := o.api.KYCPoll(ctx, id)
	if err != nil {
		o.log.Debug(ctx, "kyc poll failed", "verification_id", id, "err", err)
		return false
	}

	o.mu.Lock()
	o.state.KYCStatus = p.Status
	o.mu.Unlock()

	switch p.Status {
	case models.KYCApproved, models.KYCCompleted:
		o.mu.Lock()
		o.state.Polling = false
		o.state.Step = StepProfile
		o.front, o.back = "", ""
		o.mu.Unlock()
		o.refreshBalance(ctx)
		return true
	case models.KYCRejected:
		o.mu.Lock()
		o.state.Polling = false
		o.state.VerificationID = 0
		o.state.Err = "Document rejected. Please try again with a clearer photo."
		o.front, o.back = "", ""
		o.mu.Unlock()
		return true
	}
	return false
}

// SaveProfile stores the career profile and finishes onboarding.
func (o *Onboarding) SaveProfile(ctx context.Context, f ProfileForm) error {
	if common.Blank(f.FullName, f.Headline, f.Skills, f.Company, f.Role, f.Start) {
		return o.fail(common.Invalid("Please fill all required fields."))
	}

	p := &models.Profile{
		ProfileVersion: models.ProfileVersion,
		Identity:       models.Identity{FullName: f.FullName},
		Headline:       f.Headline,
		Skills:         models.Skills{Hard: common.SplitTrim(f.Skills, ",")},
		Experience: []models.Experience{{
			Company: f.Company,
			Role:    f.Role,
			Start:   f.Start,
			Bullets: common.SplitTrim(f.Bullets, "\n"),
		}},
	}
	if err := o.api.UpsertProfile(ctx, p); err != nil {
		return o.fail(err)
	}

	o.mu.Lock()
	o.state.Step, o.state.Err = StepDone, ""
	o.mu.Unlock()
	o.refreshBalance(ctx)
	return nil
}

// refreshBalance picks up credits granted after verification. Failures are
// ignored.
func (o *Onboarding) refreshBalance(ctx context.Context) {
	st, err := o.api.KYCStatus(ctx)
	if err != nil {
		o.log.Debug(ctx, "balance refresh failed", "err", err)
		return
	}
	o.mu.Lock()
	o.state.Balance = st.Balance
	o.mu.Unlock()
}

func (o *Onboarding) fail(err error) error {
	o.mu.Lock()
	o.state.Err = api.Message(err)
	o.mu.Unlock()
	return err
}

// Close stops a running poll and waits for it to exit.
func (o *Onboarding) Close() {
	o.mu.Lock()
	p := o.poller
	o.poller = nil
	o.state.Polling = false
	o.mu.Unlock()

	if p != nil {
		p.Stop()
		<-p.Done()
	}
}
