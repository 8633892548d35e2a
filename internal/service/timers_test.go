package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lawncare"
	"lawncare/internal/logger"
)

// recordingEventRepo captures Append calls for assertions.
type recordingEventRepo struct {
	mu        sync.Mutex
	appended  []lawncare.TimerEvent
	appendErr error
}

func (r *recordingEventRepo) Append(ctx context.Context, e lawncare.TimerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.appended = append(r.appended, e)
	return nil
}

func (r *recordingEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]lawncare.TimerEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]lawncare.TimerEvent(nil), r.appended...), nil
}

func (r *recordingEventRepo) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.appended))
	for _, e := range r.appended {
		out = append(out, e.Type)
	}
	return out
}

func newTimerSvc(repo *recordingEventRepo) *TimerService {
	return NewTimerService(repo, logger.Get(logger.ErrorLevel))
}

func eq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTimerService_CreateAndStatus(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, err := svc.Create(ctx, 5)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.ID == "" {
		t.Fatalf("expected generated id")
	}
	if st.Status != lawncare.TimerStopped || st.RemainingMinutes != 5 || st.OriginalDuration != 5 {
		t.Fatalf("unexpected snapshot: %+v", st)
	}

	got, err := svc.Status(ctx, st.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if got.ID != st.ID || got.Status != lawncare.TimerStopped {
		t.Fatalf("unexpected status: %+v", got)
	}

	if !eq(repo.types(), []string{"CREATED"}) {
		t.Fatalf("unexpected events: %v", repo.types())
	}
	if repo.appended[0].TimerID != st.ID {
		t.Fatalf("event timer id mismatch: %+v", repo.appended[0])
	}
	meta, ok := repo.appended[0].Metadata.(map[string]any)
	if !ok || meta["duration_minutes"] != 5.0 {
		t.Fatalf("expected duration metadata, got %#v", repo.appended[0].Metadata)
	}
}

func TestTimerService_CreateRejectsNonPositiveDuration(t *testing.T) {
	svc := newTimerSvc(&recordingEventRepo{})

	for _, d := range []float64{0, -1} {
		if _, err := svc.Create(context.Background(), d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("Create(%v): want ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestTimerService_UnknownID(t *testing.T) {
	svc := newTimerSvc(&recordingEventRepo{})
	ctx := context.Background()

	ops := map[string]func() error{
		"Status": func() error { _, err := svc.Status(ctx, "nope"); return err },
		"Start":  func() error { _, err := svc.Start(ctx, "nope"); return err },
		"Pause":  func() error { _, err := svc.Pause(ctx, "nope"); return err },
		"Resume": func() error { _, err := svc.Resume(ctx, "nope"); return err },
		"Reset":  func() error { _, err := svc.Reset(ctx, "nope"); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrTimerNotFound) {
			t.Fatalf("%s: want ErrTimerNotFound, got %v", name, err)
		}
	}
}

func TestTimerService_LifecycleEvents(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, _ := svc.Create(ctx, 10)
	id := st.ID

	if st, _ = svc.Start(ctx, id); st.Status != lawncare.TimerRunning {
		t.Fatalf("after Start: %+v", st)
	}
	if st, _ = svc.Pause(ctx, id); st.Status != lawncare.TimerPaused {
		t.Fatalf("after Pause: %+v", st)
	}
	if st, _ = svc.Resume(ctx, id); st.Status != lawncare.TimerRunning {
		t.Fatalf("after Resume: %+v", st)
	}
	if st, _ = svc.Reset(ctx, id); st.Status != lawncare.TimerStopped {
		t.Fatalf("after Reset: %+v", st)
	}

	want := []string{"CREATED", "STARTED", "PAUSED", "RESUMED", "RESET"}
	if !eq(repo.types(), want) {
		t.Fatalf("events = %v; want %v", repo.types(), want)
	}
}

func TestTimerService_StartWhilePausedLogsResume(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, _ := svc.Create(ctx, 10)
	_, _ = svc.Start(ctx, st.ID)
	_, _ = svc.Pause(ctx, st.ID)
	got, err := svc.Start(ctx, st.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got.Status != lawncare.TimerRunning {
		t.Fatalf("expected running, got %+v", got)
	}

	want := []string{"CREATED", "STARTED", "PAUSED", "RESUMED"}
	if !eq(repo.types(), want) {
		t.Fatalf("events = %v; want %v", repo.types(), want)
	}
}

func TestTimerService_NoOpTransitionsLogNothing(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, _ := svc.Create(ctx, 10)

	// Pause and Resume on a stopped timer change nothing.
	if got, _ := svc.Pause(ctx, st.ID); got.Status != lawncare.TimerStopped {
		t.Fatalf("Pause on stopped: %+v", got)
	}
	if got, _ := svc.Resume(ctx, st.ID); got.Status != lawncare.TimerStopped {
		t.Fatalf("Resume on stopped: %+v", got)
	}
	// Start twice logs a single STARTED.
	_, _ = svc.Start(ctx, st.ID)
	_, _ = svc.Start(ctx, st.ID)

	want := []string{"CREATED", "STARTED"}
	if !eq(repo.types(), want) {
		t.Fatalf("events = %v; want %v", repo.types(), want)
	}
}

func TestTimerService_CompletedLoggedOnce(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	// ~6ms of runtime so the test stays fast.
	st, err := svc.Create(ctx, 0.0001)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, _ = svc.Start(ctx, st.ID)

	deadline := time.Now().Add(2 * time.Second)
	for {
		got, err := svc.Status(ctx, st.ID)
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		if got.Status == lawncare.TimerCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("timer never completed: %+v", got)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Further reads must not append more COMPLETED events.
	_, _ = svc.Status(ctx, st.ID)
	_, _ = svc.Status(ctx, st.ID)

	var completed int
	for _, typ := range repo.types() {
		if typ == "COMPLETED" {
			completed++
		}
	}
	if completed != 1 {
		t.Fatalf("COMPLETED logged %d times; events = %v", completed, repo.types())
	}
}

func TestTimerService_AppendFailureDoesNotFailOperation(t *testing.T) {
	repo := &recordingEventRepo{appendErr: errors.New("db down")}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, err := svc.Create(ctx, 5)
	if err != nil {
		t.Fatalf("Create should succeed despite log failure: %v", err)
	}
	if _, err := svc.Start(ctx, st.ID); err != nil {
		t.Fatalf("Start should succeed despite log failure: %v", err)
	}
}

func TestTimerService_ConcurrentPauseLogsOnce(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := newTimerSvc(repo)
	ctx := context.Background()

	st, err := svc.Create(ctx, 5)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Start(ctx, st.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Pause(ctx, st.ID); err != nil {
				t.Errorf("Pause: %v", err)
			}
		}()
	}
	wg.Wait()

	paused := 0
	for _, typ := range repo.types() {
		if typ == "PAUSED" {
			paused++
		}
	}
	if paused != 1 {
		t.Fatalf("want exactly one PAUSED event, got %d (%v)", paused, repo.types())
	}
}
