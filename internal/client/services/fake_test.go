package services

import (
	"context"
	"io"
	"sync"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/session"
)

// fakeAPI implements every view-model API. Unset funcs panic, so each test
// wires exactly the calls it expects.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	login          func(email, password string) (*models.AuthResponse, error)
	register       func(email, password, fullName string) (*models.AuthResponse, error)
	me             func() (*models.Me, error)
	balance        func() (int, error)
	checkout       func(models.Pack) (string, error)
	listKits       func() ([]models.Kit, error)
	profile        func() (*models.Profile, error)
	upsertProfile  func(*models.Profile) error
	parseCV        func(filename string) (*models.ParsedCV, error)
	parseJob       func(raw, source string) (*models.ParsedJob, error)
	generateKit    func(models.GenerateKitRequest) (*models.KitResult, error)
	atsScore       func(cv, jobID string) (*models.ATSScore, error)
	analyzeFile    func(filename string) (*models.CVAnalyzeResult, error)
	analyzeText    func(text string) (*models.CVAnalyzeResult, error)
	listAnalyses   func() ([]models.CVAnalysisMeta, error)
	cvAnalysis     func(id string) (*models.CVAnalysisDetail, error)
	setVisibility  func(models.VisibilityRequest) error
	prepInterview  func(jobID, company string) (*models.InterviewResult, error)
	remoteOk       func(tag string) (*models.RemoteOkList, error)
	ingest         func(slug string) (*models.ParsedJob, error)
	countries      func() ([]models.CountrySummary, error)
	countryContext func(code string) (*models.CountryContext, error)
	guarStatus     func() (*models.GuaranteeStatus, error)
	refund         func(reason string) (*models.GuaranteeRequestResult, error)
	questions      func() (*models.QuestionSet, error)
	submitTest     func(models.TestSubmission) (*models.TestResult, error)
	testStatus     func() (*models.TestStatus, error)
	pending        func() (*models.PendingSessions, error)
	detail         func(id string) (*models.ReviewSession, error)
	review         func(id string, d models.Decision, note string) (*models.ReviewResult, error)
	document       func(id string, d models.DocType) (*models.Document, error)
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.record("login")
	return f.login(email, password)
}

func (f *fakeAPI) Register(_ context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	f.record("register")
	return f.register(email, password, fullName)
}

func (f *fakeAPI) Me(context.Context) (*models.Me, error) {
	f.record("me")
	return f.me()
}

func (f *fakeAPI) Balance(context.Context) (int, error) {
	f.record("balance")
	return f.balance()
}

func (f *fakeAPI) Checkout(_ context.Context, p models.Pack) (string, error) {
	f.record("checkout")
	return f.checkout(p)
}

func (f *fakeAPI) ListKits(context.Context) ([]models.Kit, error) {
	f.record("listKits")
	return f.listKits()
}

func (f *fakeAPI) Profile(context.Context) (*models.Profile, error) {
	f.record("profile")
	return f.profile()
}

func (f *fakeAPI) UpsertProfile(_ context.Context, p *models.Profile) error {
	f.record("upsertProfile")
	return f.upsertProfile(p)
}

func (f *fakeAPI) ParseCV(_ context.Context, filename string, _ io.Reader) (*models.ParsedCV, error) {
	f.record("parseCV")
	return f.parseCV(filename)
}

func (f *fakeAPI) ParseJob(_ context.Context, raw, source string) (*models.ParsedJob, error) {
	f.record("parseJob")
	return f.parseJob(raw, source)
}

func (f *fakeAPI) GenerateKit(_ context.Context, req models.GenerateKitRequest) (*models.KitResult, error) {
	f.record("generateKit")
	return f.generateKit(req)
}

func (f *fakeAPI) ATSScore(_ context.Context, cv, jobID string) (*models.ATSScore, error) {
	f.record("atsScore")
	return f.atsScore(cv, jobID)
}

func (f *fakeAPI) AnalyzeCVFile(_ context.Context, filename string, _ io.Reader) (*models.CVAnalyzeResult, error) {
	f.record("analyzeFile")
	return f.analyzeFile(filename)
}

func (f *fakeAPI) AnalyzeCVText(_ context.Context, text string) (*models.CVAnalyzeResult, error) {
	f.record("analyzeText")
	return f.analyzeText(text)
}

func (f *fakeAPI) ListCVAnalyses(context.Context) ([]models.CVAnalysisMeta, error) {
	f.record("listAnalyses")
	return f.listAnalyses()
}

func (f *fakeAPI) CVAnalysis(_ context.Context, id string) (*models.CVAnalysisDetail, error) {
	f.record("cvAnalysis")
	return f.cvAnalysis(id)
}

func (f *fakeAPI) SetCVVisibility(_ context.Context, req models.VisibilityRequest) error {
	f.record("setVisibility")
	return f.setVisibility(req)
}

func (f *fakeAPI) PrepareInterview(_ context.Context, jobID, company string) (*models.InterviewResult, error) {
	f.record("prepareInterview")
	return f.prepInterview(jobID, company)
}

func (f *fakeAPI) RemoteOkJobs(_ context.Context, tag string) (*models.RemoteOkList, error) {
	f.record("remoteOk")
	return f.remoteOk(tag)
}

func (f *fakeAPI) IngestRemoteOk(_ context.Context, slug string) (*models.ParsedJob, error) {
	f.record("ingest")
	return f.ingest(slug)
}

func (f *fakeAPI) Countries(context.Context) ([]models.CountrySummary, error) {
	f.record("countries")
	return f.countries()
}

func (f *fakeAPI) CountryContext(_ context.Context, code string) (*models.CountryContext, error) {
	f.record("countryContext")
	return f.countryContext(code)
}

func (f *fakeAPI) GuaranteeStatus(context.Context) (*models.GuaranteeStatus, error) {
	f.record("guaranteeStatus")
	return f.guarStatus()
}

func (f *fakeAPI) RequestRefund(_ context.Context, reason string) (*models.GuaranteeRequestResult, error) {
	f.record("requestRefund")
	return f.refund(reason)
}

func (f *fakeAPI) TestQuestions(context.Context) (*models.QuestionSet, error) {
	f.record("testQuestions")
	return f.questions()
}

func (f *fakeAPI) SubmitTest(_ context.Context, req models.TestSubmission) (*models.TestResult, error) {
	f.record("submitTest")
	return f.submitTest(req)
}

func (f *fakeAPI) TestStatus(context.Context) (*models.TestStatus, error) {
	f.record("testStatus")
	return f.testStatus()
}

func (f *fakeAPI) PendingSessions(context.Context) (*models.PendingSessions, error) {
	f.record("pending")
	return f.pending()
}

func (f *fakeAPI) SessionDetail(_ context.Context, id string) (*models.ReviewSession, error) {
	f.record("detail")
	return f.detail(id)
}

func (f *fakeAPI) ReviewSession(_ context.Context, id string, d models.Decision, note string) (*models.ReviewResult, error) {
	f.record("review")
	return f.review(id, d, note)
}

func (f *fakeAPI) SessionDocument(_ context.Context, id string, d models.DocType) (*models.Document, error) {
	f.record("document")
	return f.document(id, d)
}

type fakeSessions struct {
	saved    *models.AuthResponse
	saveErr  error
	cleared  bool
	loggedIn bool
	identity session.Identity
}

func (s *fakeSessions) SaveLogin(_ context.Context, a *models.AuthResponse) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = a
	s.loggedIn = true
	return nil
}

func (s *fakeSessions) Clear(context.Context) error {
	s.cleared, s.loggedIn = true, false
	return nil
}

func (s *fakeSessions) IsLoggedIn(context.Context) bool { return s.loggedIn }

func (s *fakeSessions) Identity(context.Context) (session.Identity, error) {
	return s.identity, nil
}

type keyTranslator struct{}

func (keyTranslator) T(key string) string { return "<" + key + ">" }
