package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lawncare"
	"lawncare/internal/logger"
	"lawncare/internal/repository"
	"lawncare/internal/timer"

	"github.com/google/uuid"
)

var (
	ErrTimerNotFound   = errors.New("timer not found")
	ErrInvalidDuration = errors.New("duration_minutes must be greater than zero")
)

// timerEntry pairs a timer with its completion-log flag so COMPLETED is
// appended exactly once even though completion is observed lazily.
type timerEntry struct {
	t              *timer.WateringTimer
	completedAdded bool
}

// TimerService is an in-memory registry of watering timers. Timers are not
// persisted; only their lifecycle events are. mu guards the registry and
// serializes transition checks so each state change is logged at most once.
type TimerService struct {
	mu      sync.Mutex
	entries map[string]*timerEntry

	events repository.EventRepo
	log    *logger.Logger
}

func NewTimerService(events repository.EventRepo, log *logger.Logger) *TimerService {
	return &TimerService{
		entries: make(map[string]*timerEntry),
		events:  events,
		log:     log,
	}
}

func (s *TimerService) Create(ctx context.Context, durationMinutes float64) (lawncare.TimerStatus, error) {
	if durationMinutes <= 0 {
		return lawncare.TimerStatus{}, ErrInvalidDuration
	}

	id := uuid.NewString()
	entry := &timerEntry{t: timer.New(durationMinutes)}

	s.mu.Lock()
	s.entries[id] = entry
	s.mu.Unlock()

	s.appendEvent(ctx, id, "CREATED", "Watering timer created", map[string]any{
		"duration_minutes": durationMinutes,
	})
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) Start(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	entry, err := s.entry(id)
	if err != nil {
		return lawncare.TimerStatus{}, err
	}

	// Start on a paused timer resumes it; log the transition that happened.
	// The check and the transition stay under mu so concurrent calls cannot
	// both observe the same before-state and double-log it.
	s.mu.Lock()
	before := entry.t.Status().Status
	entry.t.Start()
	if before != lawncare.TimerPaused && before != lawncare.TimerRunning {
		entry.completedAdded = false
	}
	s.mu.Unlock()

	switch before {
	case lawncare.TimerPaused:
		s.appendEvent(ctx, id, "RESUMED", "Watering timer resumed", nil)
	case lawncare.TimerRunning:
		// already running, nothing changed
	default:
		s.appendEvent(ctx, id, "STARTED", "Watering timer started", nil)
	}
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) Pause(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	entry, err := s.entry(id)
	if err != nil {
		return lawncare.TimerStatus{}, err
	}
	s.mu.Lock()
	paused := entry.t.Status().Status == lawncare.TimerRunning
	if paused {
		entry.t.Pause()
	}
	s.mu.Unlock()

	if paused {
		s.appendEvent(ctx, id, "PAUSED", "Watering timer paused", nil)
	}
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) Resume(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	entry, err := s.entry(id)
	if err != nil {
		return lawncare.TimerStatus{}, err
	}
	s.mu.Lock()
	resumed := entry.t.Status().Status == lawncare.TimerPaused
	if resumed {
		entry.t.Resume()
	}
	s.mu.Unlock()

	if resumed {
		s.appendEvent(ctx, id, "RESUMED", "Watering timer resumed", nil)
	}
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) Reset(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	entry, err := s.entry(id)
	if err != nil {
		return lawncare.TimerStatus{}, err
	}
	entry.t.Reset()

	s.mu.Lock()
	entry.completedAdded = false
	s.mu.Unlock()

	s.appendEvent(ctx, id, "RESET", "Watering timer reset", nil)
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) Status(ctx context.Context, id string) (lawncare.TimerStatus, error) {
	entry, err := s.entry(id)
	if err != nil {
		return lawncare.TimerStatus{}, err
	}
	return s.snapshot(ctx, id, entry), nil
}

func (s *TimerService) entry(id string) (*timerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrTimerNotFound
	}
	return entry, nil
}

// snapshot reads current status and logs COMPLETED the first time completion
// is observed.
func (s *TimerService) snapshot(ctx context.Context, id string, entry *timerEntry) lawncare.TimerStatus {
	st := entry.t.Status()
	st.ID = id

	if st.Status == lawncare.TimerCompleted {
		s.mu.Lock()
		first := !entry.completedAdded
		entry.completedAdded = true
		s.mu.Unlock()
		if first {
			s.appendEvent(ctx, id, "COMPLETED", "Watering timer completed", nil)
		}
	}
	return st
}

// appendEvent logs lifecycle events. The event log is advisory; a failed
// append never fails the timer operation itself.
func (s *TimerService) appendEvent(ctx context.Context, timerID, typ, desc string, meta map[string]any) {
	err := s.events.Append(ctx, lawncare.TimerEvent{
		EventID:     uuid.NewString(),
		TimerID:     timerID,
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    metaOrNil(meta),
	})
	if err != nil {
		s.log.Warnw("append timer event failed", "timer_id", timerID, "type", typ, "error", err)
	}
}

func metaOrNil(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	return m
}
