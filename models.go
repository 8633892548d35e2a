package lawncare

import "time"

// Region is one of three coarse climate zones used to select timing windows.
type Region string

const (
	RegionNorthern Region = "northern"
	RegionCentral  Region = "central"
	RegionSouthern Region = "southern"
)

// AllRegions lists regions in declaration order.
var AllRegions = []Region{RegionNorthern, RegionCentral, RegionSouthern}

// ParseRegion maps an identifier to a known Region.
func ParseRegion(s string) (Region, bool) {
	r := Region(s)
	for _, known := range AllRegions {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Activity is a lawn care activity with a seasonal timing window.
type Activity string

const (
	ActivitySeeding     Activity = "seeding"
	ActivityFertilizing Activity = "fertilizing"
	ActivityDethatching Activity = "dethatching"
	ActivityAeration    Activity = "aeration"
	ActivityOverseeding Activity = "overseeding"
	ActivityWeedControl Activity = "weed_control"
	ActivityGrubControl Activity = "grub_control"
	ActivityWinterizing Activity = "winterizing"
)

// AllActivities lists activities in declaration order; schedule output
// preserves this ordering.
var AllActivities = []Activity{
	ActivitySeeding,
	ActivityFertilizing,
	ActivityDethatching,
	ActivityAeration,
	ActivityOverseeding,
	ActivityWeedControl,
	ActivityGrubControl,
	ActivityWinterizing,
}

// ParseActivity maps an identifier to a known Activity.
func ParseActivity(s string) (Activity, bool) {
	a := Activity(s)
	for _, known := range AllActivities {
		if a == known {
			return a, true
		}
	}
	return "", false
}

// TimingWindow is the month range and temperature band in which an activity
// is considered optimal. StartMonth may be greater than EndMonth, denoting a
// window that wraps across the year boundary (e.g. Nov-Feb).
type TimingWindow struct {
	StartMonth  int    `json:"start_month"`      // 1..12
	EndMonth    int    `json:"end_month"`        // 1..12
	TempMin     int    `json:"optimal_temp_min"` // °F
	TempMax     int    `json:"optimal_temp_max"` // °F
	Description string `json:"description"`
}

// Wraps reports whether the window spans the year boundary.
func (w TimingWindow) Wraps() bool { return w.StartMonth > w.EndMonth }

// ContainsMonth applies the month-membership rule, inclusive on both ends.
func (w TimingWindow) ContainsMonth(month int) bool {
	if w.Wraps() {
		return month >= w.StartMonth || month <= w.EndMonth
	}
	return w.StartMonth <= month && month <= w.EndMonth
}

// WindowForecast is the nearest future (or in-progress) occurrence of an
// activity's window as concrete calendar dates.
type WindowForecast struct {
	Activity         Activity `json:"activity"`
	StartDate        string   `json:"start_date"` // YYYY-MM-DD
	EndDate          string   `json:"end_date"`   // YYYY-MM-DD
	DaysUntilStart   int      `json:"days_until_start"`
	WindowLengthDays int      `json:"window_length_days"`
	TempRange        string   `json:"optimal_temp_range"`
	Description      string   `json:"description"`
}

// Watering timer statuses.
const (
	TimerStopped   = "stopped"
	TimerRunning   = "running"
	TimerPaused    = "paused"
	TimerCompleted = "completed"
)

// TimerStatus is a point-in-time snapshot of a watering timer. Remaining time
// is always recomputed from wall-clock elapsed time at read, never from the
// background worker's counter.
type TimerStatus struct {
	ID                 string  `json:"id,omitempty"`
	Status             string  `json:"status"`
	RemainingMinutes   float64 `json:"remaining_minutes"`
	OriginalDuration   float64 `json:"original_duration"` // minutes
	ProgressPercentage float64 `json:"progress_percentage"`
}

// TimerEvent is a single append-only log entry for a timer lifecycle change.
type TimerEvent struct {
	EventID     string    `json:"event_id"`
	TimerID     string    `json:"timer_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"` // CREATED | STARTED | PAUSED | RESUMED | RESET | COMPLETED
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}

// SupportRequest is a support ticket submitted through the intake system.
type SupportRequest struct {
	RequestID   string    `json:"request_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Priority    string    `json:"priority"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"timestamp"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
