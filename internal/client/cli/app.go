package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/client/config"
	"github.com/thronos/careerforge/internal/client/export"
	"github.com/thronos/careerforge/internal/client/i18n"
	"github.com/thronos/careerforge/internal/client/services"
	"github.com/thronos/careerforge/internal/client/session"
	"github.com/thronos/careerforge/internal/client/store"
	"github.com/thronos/careerforge/internal/client/wizard"
	"github.com/thronos/careerforge/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	repos    *store.Repositories
	sessions *session.Store
	lang     *i18n.Store
	api      *api.Client
	exporter export.Exporter

	auth      *services.AuthService
	profile   *services.ProfileEditor
	kits      *services.KitsView
	newKit    *services.KitGenerator
	ats       *services.ATS
	cv        *services.CVAnalyzer
	interview *services.Interview
	jobs      *services.Jobs
	guarantee *services.Guarantee
	psych     *services.PsychTest
	manager   *services.Manager

	verify     *wizard.Verification
	onboarding *wizard.Onboarding

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local state database and wires the API client and
// view-models for interactive use on stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := store.Open(ctx, c.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", c.StatePath, err)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		repos.Close()
		return nil, err
	}

	exp, err := newExporter(ctx, c)
	if err != nil {
		repos.Close()
		return nil, err
	}

	return newApp(ctx, c, log, repos, bundle, exp, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newExporter(ctx context.Context, c *config.Config) (export.Exporter, error) {
	if c.S3.Bucket == "" {
		return export.NewDirExporter(c.ExportDir), nil
	}
	return export.NewS3Exporter(ctx, export.S3Config{
		Bucket:    c.S3.Bucket,
		Prefix:    c.S3.Prefix,
		Region:    c.S3.Region,
		Endpoint:  c.S3.Endpoint,
		AccessKey: c.S3.AccessKey,
		SecretKey: c.S3.SecretKey,
	})
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, repos *store.Repositories,
	bundle *i18n.Bundle, exp export.Exporter, reader *bufio.Reader, out io.Writer) *App {

	sessions := session.NewStore(repos.DB)
	lang := i18n.NewStore(repos.Metadata, bundle)
	if err := lang.Init(ctx); err != nil {
		log.Warn(ctx, "load language preference", "err", err)
	}
	client := api.New(c.APIBaseURL, sessions, api.WithLogger(log))

	a := &App{
		config:   c,
		log:      log,
		repos:    repos,
		sessions: sessions,
		lang:     lang,
		api:      client,
		exporter: exp,
		auth:     services.NewAuthService(client, sessions, log),
		reader:   reader,
		out:      out,
	}
	a.resetViews()
	return a
}

// resetViews drops all per-user screen state, e.g. after logout.
func (a *App) resetViews() {
	if a.onboarding != nil {
		a.onboarding.Close()
	}
	a.profile = services.NewProfileEditor(a.api)
	a.kits = services.NewKitsView(a.api, a.lang)
	a.newKit = services.NewKitGenerator(a.api, a.repos.Kits, a.log)
	a.ats = services.NewATS(a.api)
	a.cv = services.NewCVAnalyzer(a.api)
	a.interview = services.NewInterview(a.api)
	a.jobs = services.NewJobs(a.api, a.log)
	a.guarantee = services.NewGuarantee(a.api)
	a.psych = services.NewPsychTest(a.api)
	a.manager = services.NewManager(a.api)
	a.verify = wizard.NewVerification(a.api, a.log)
	a.onboarding = wizard.NewOnboarding(a.api, a.log, wizard.WithPollInterval(a.config.PollInterval))
}

// Run starts the REPL and releases local resources when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	a.onboarding.Close()
	if err := a.repos.Close(); err != nil {
		a.log.Warn(context.Background(), "close state database", "err", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.LoggedIn(ctx)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
