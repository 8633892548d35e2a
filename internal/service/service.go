package service

import (
	"context"
	"time"

	"lawncare"
	"lawncare/internal/intake"
	"lawncare/internal/knowledge"
	"lawncare/internal/logger"
	"lawncare/internal/mailer"
	"lawncare/internal/repository"
	"lawncare/internal/timing"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Timing answers seasonal window questions for a region.
type Timing interface {
	Window(region lawncare.Region, activity lawncare.Activity) (lawncare.TimingWindow, error)
	IsOptimal(region lawncare.Region, activity lawncare.Activity, month, temp int) (bool, error)
	NextWindow(region lawncare.Region, activity lawncare.Activity, from time.Time) (lawncare.WindowForecast, error)
	ActivitiesForMonth(region lawncare.Region, month int) ([]lawncare.Activity, error)
	Schedule(region lawncare.Region) (map[int][]string, error)
}

// Timers manages watering countdown timers; lifecycle changes are appended to
// the event log.
type Timers interface {
	Create(ctx context.Context, durationMinutes float64) (lawncare.TimerStatus, error)
	Start(ctx context.Context, id string) (lawncare.TimerStatus, error)
	Pause(ctx context.Context, id string) (lawncare.TimerStatus, error)
	Resume(ctx context.Context, id string) (lawncare.TimerStatus, error)
	Reset(ctx context.Context, id string) (lawncare.TimerStatus, error)
	Status(ctx context.Context, id string) (lawncare.TimerStatus, error)
}

// Knowledge exposes the crab grass knowledge base per region.
type Knowledge interface {
	Guide(region lawncare.Region) (map[string][]knowledge.IdentificationFeature, error)
	Identify(region lawncare.Region, observed []string) (knowledge.IdentificationResult, error)
	Treatments(region lawncare.Region, month int, stage knowledge.Stage) ([]knowledge.Recommendation, error)
	Lifecycle(region lawncare.Region, stage knowledge.Stage) (map[knowledge.Stage]knowledge.StageInfo, error)
	Prevention(region lawncare.Region) ([]knowledge.PreventionStrategy, error)
	Calendar(region lawncare.Region) ([]knowledge.CalendarEntry, error)
	Diagnose(region lawncare.Region, treatment string, month int, level string) (knowledge.Diagnosis, error)
}

// Intake receives support requests and sends notifications.
type Intake interface {
	Submit(ctx context.Context, sub intake.Submission) (intake.Receipt, error)
	History(ctx context.Context, f repository.RequestFilter) ([]lawncare.SupportRequest, error)
}

// EventLog exposes append-only timer event history with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]lawncare.TimerEvent, error)
}

// Config carries service-level settings loaded from the config file.
type Config struct {
	SigningKey       string
	TokenTTL         time.Duration
	CoordinatorEmail string
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Timing
	Timers
	Knowledge
	Intake
	EventLog
	Authorization
}

// NewService wires the repository layer and outbound mail into concrete
// services.
func NewService(repos *repository.Repository, sender mailer.Sender, cfg Config, log *logger.Logger) *Service {
	return &Service{
		Timing:        NewTimingService(timing.DefaultTable()),
		Timers:        NewTimerService(repos.Events, log),
		Knowledge:     NewKnowledgeService(),
		Intake:        intake.NewService(repos.Requests, sender, cfg.CoordinatorEmail, log),
		EventLog:      NewEventLogService(repos.Events),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
	}
}
