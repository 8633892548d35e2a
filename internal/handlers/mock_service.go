package handlers

import (
	"context"
	"net/http"
	"time"

	"lawncare"
	"lawncare/internal/intake"
	"lawncare/internal/knowledge"
	"lawncare/internal/repository"
	"lawncare/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTiming struct {
	window   lawncare.TimingWindow
	optimal  bool
	forecast lawncare.WindowForecast
	acts     []lawncare.Activity
	schedule map[int][]string
	err      error

	lastRegion   lawncare.Region
	lastActivity lawncare.Activity
	lastMonth    int
	lastTemp     int
	lastFrom     time.Time
}

func (m *mockTiming) Window(region lawncare.Region, activity lawncare.Activity) (lawncare.TimingWindow, error) {
	m.lastRegion, m.lastActivity = region, activity
	return m.window, m.err
}
func (m *mockTiming) IsOptimal(region lawncare.Region, activity lawncare.Activity, month, temp int) (bool, error) {
	m.lastRegion, m.lastActivity, m.lastMonth, m.lastTemp = region, activity, month, temp
	return m.optimal, m.err
}
func (m *mockTiming) NextWindow(region lawncare.Region, activity lawncare.Activity, from time.Time) (lawncare.WindowForecast, error) {
	m.lastRegion, m.lastActivity, m.lastFrom = region, activity, from
	return m.forecast, m.err
}
func (m *mockTiming) ActivitiesForMonth(region lawncare.Region, month int) ([]lawncare.Activity, error) {
	m.lastRegion, m.lastMonth = region, month
	return m.acts, m.err
}
func (m *mockTiming) Schedule(region lawncare.Region) (map[int][]string, error) {
	m.lastRegion = region
	return m.schedule, m.err
}

type mockTimers struct {
	status lawncare.TimerStatus
	err    error

	lastDuration float64
	lastID       string
	calls        map[string]int
}

func (m *mockTimers) record(op, id string) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[op]++
	m.lastID = id
}
func (m *mockTimers) Create(ctx context.Context, durationMinutes float64) (lawncare.TimerStatus, error) {
	m.record("create", "")
	m.lastDuration = durationMinutes
	return m.status, m.err
}
func (m *mockTimers) Start(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	m.record("start", id)
	return m.status, m.err
}
func (m *mockTimers) Pause(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	m.record("pause", id)
	return m.status, m.err
}
func (m *mockTimers) Resume(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	m.record("resume", id)
	return m.status, m.err
}
func (m *mockTimers) Reset(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	m.record("reset", id)
	return m.status, m.err
}
func (m *mockTimers) Status(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	m.record("status", id)
	return m.status, m.err
}

type mockKnowledge struct {
	guide      map[string][]knowledge.IdentificationFeature
	identified knowledge.IdentificationResult
	recs       []knowledge.Recommendation
	lifecycle  map[knowledge.Stage]knowledge.StageInfo
	prevention []knowledge.PreventionStrategy
	calendar   []knowledge.CalendarEntry
	diagnosis  knowledge.Diagnosis
	err        error

	lastRegion   lawncare.Region
	lastObserved []string
	lastMonth    int
	lastStage    knowledge.Stage
}

func (m *mockKnowledge) Guide(region lawncare.Region) (map[string][]knowledge.IdentificationFeature, error) {
	m.lastRegion = region
	return m.guide, m.err
}
func (m *mockKnowledge) Identify(region lawncare.Region, observed []string) (knowledge.IdentificationResult, error) {
	m.lastRegion, m.lastObserved = region, observed
	return m.identified, m.err
}
func (m *mockKnowledge) Treatments(region lawncare.Region, month int, stage knowledge.Stage) ([]knowledge.Recommendation, error) {
	m.lastRegion, m.lastMonth, m.lastStage = region, month, stage
	return m.recs, m.err
}
func (m *mockKnowledge) Lifecycle(region lawncare.Region, stage knowledge.Stage) (map[knowledge.Stage]knowledge.StageInfo, error) {
	m.lastRegion, m.lastStage = region, stage
	return m.lifecycle, m.err
}
func (m *mockKnowledge) Prevention(region lawncare.Region) ([]knowledge.PreventionStrategy, error) {
	m.lastRegion = region
	return m.prevention, m.err
}
func (m *mockKnowledge) Calendar(region lawncare.Region) ([]knowledge.CalendarEntry, error) {
	m.lastRegion = region
	return m.calendar, m.err
}
func (m *mockKnowledge) Diagnose(region lawncare.Region, treatment string, month int, level string) (knowledge.Diagnosis, error) {
	m.lastRegion, m.lastMonth = region, month
	return m.diagnosis, m.err
}

type mockIntake struct {
	receipt   intake.Receipt
	submitErr error
	history   []lawncare.SupportRequest
	listErr   error

	lastSubmission intake.Submission
	lastFilter     repository.RequestFilter
}

func (m *mockIntake) Submit(ctx context.Context, sub intake.Submission) (intake.Receipt, error) {
	m.lastSubmission = sub
	return m.receipt, m.submitErr
}
func (m *mockIntake) History(ctx context.Context, f repository.RequestFilter) ([]lawncare.SupportRequest, error) {
	m.lastFilter = f
	return m.history, m.listErr
}

type mockEventLog struct {
	resp     []lawncare.TimerEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]lawncare.TimerEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
