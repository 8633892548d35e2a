// Package timer implements a countdown timer for watering sessions with
// start/pause/resume/reset semantics. Remaining time is always recomputed
// from wall-clock timestamps on read, so observers never race the worker.
package timer

import (
	"math"
	"sync"
	"time"

	"lawncare"
)

const workerTick = time.Second

// WateringTimer is a stateful countdown timer. A single background worker
// runs per RUNNING period; its only externally visible effect is flipping
// the status to completed once the countdown reaches zero. All operations
// are safe for concurrent use.
type WateringTimer struct {
	mu sync.Mutex

	originalMinutes  float64
	remainingMinutes float64
	status           string
	startTime        time.Time
	pauseTime        time.Time

	stop chan struct{} // closes to cancel the current worker run

	now  func() time.Time
	tick time.Duration
}

// New returns a stopped timer for the given duration in minutes.
func New(durationMinutes float64) *WateringTimer {
	return &WateringTimer{
		originalMinutes:  durationMinutes,
		remainingMinutes: durationMinutes,
		status:           lawncare.TimerStopped,
		now:              time.Now,
		tick:             workerTick,
	}
}

// Start begins the countdown from a stopped timer. Starting a paused timer
// resumes it instead.
func (t *WateringTimer) Start() {
	t.mu.Lock()
	if t.status == lawncare.TimerPaused {
		t.mu.Unlock()
		t.Resume()
		return
	}
	if t.status == lawncare.TimerRunning {
		t.mu.Unlock()
		return
	}
	t.remainingMinutes = t.originalMinutes
	t.status = lawncare.TimerRunning
	t.startTime = t.now()
	t.pauseTime = time.Time{}
	t.launchWorkerLocked()
	t.mu.Unlock()
}

// Pause freezes a running countdown. A no-op in any other state.
func (t *WateringTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != lawncare.TimerRunning {
		return
	}
	t.status = lawncare.TimerPaused
	t.pauseTime = t.now()
	t.cancelWorkerLocked()
}

// Resume continues a paused countdown, deducting the time that elapsed
// before the pause. A no-op in any other state.
func (t *WateringTimer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != lawncare.TimerPaused {
		return
	}
	elapsedBeforePause := t.pauseTime.Sub(t.startTime).Minutes()
	t.remainingMinutes = math.Max(0, t.remainingMinutes-elapsedBeforePause)
	t.startTime = t.now()
	t.pauseTime = time.Time{}
	t.status = lawncare.TimerRunning
	t.launchWorkerLocked()
}

// Reset stops any countdown and restores the full duration. Valid from
// every state; a reset timer behaves like a freshly constructed one.
func (t *WateringTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelWorkerLocked()
	t.status = lawncare.TimerStopped
	t.remainingMinutes = t.originalMinutes
	t.startTime = time.Time{}
	t.pauseTime = time.Time{}
}

// Status returns the current snapshot. While running, remaining time is
// recomputed from the wall clock; a read that observes an expired countdown
// flips the timer to completed itself rather than waiting for the worker.
func (t *WateringTimer) Status() lawncare.TimerStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	var remaining float64
	switch t.status {
	case lawncare.TimerRunning:
		elapsed := t.now().Sub(t.startTime).Minutes()
		remaining = math.Max(0, t.remainingMinutes-elapsed)
		if remaining <= 0 {
			t.status = lawncare.TimerCompleted
			t.remainingMinutes = 0
			t.cancelWorkerLocked()
		}
	case lawncare.TimerPaused:
		elapsed := t.pauseTime.Sub(t.startTime).Minutes()
		remaining = math.Max(0, t.remainingMinutes-elapsed)
	case lawncare.TimerCompleted:
		remaining = 0
	default: // stopped
		remaining = t.remainingMinutes
	}

	progress := 0.0
	if t.originalMinutes > 0 {
		progress = (t.originalMinutes - remaining) / t.originalMinutes * 100
	}

	return lawncare.TimerStatus{
		Status:             t.status,
		RemainingMinutes:   round1(remaining),
		OriginalDuration:   t.originalMinutes,
		ProgressPercentage: round1(progress),
	}
}

// Completed reports whether the countdown has finished, applying the same
// lazy transition as Status.
func (t *WateringTimer) Completed() bool {
	return t.Status().Status == lawncare.TimerCompleted
}

// launchWorkerLocked starts the background countdown for the current
// running period. Caller must hold t.mu.
func (t *WateringTimer) launchWorkerLocked() {
	stop := make(chan struct{})
	t.stop = stop
	go t.countdown(stop, t.remainingMinutes)
}

// cancelWorkerLocked signals the current worker, if any, to exit. The
// worker observes the signal within one tick. Caller must hold t.mu.
func (t *WateringTimer) cancelWorkerLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// countdown polls once per tick, decrementing a local counter. The counter
// is advisory: authoritative remaining time comes from timestamps in Status.
func (t *WateringTimer) countdown(stop <-chan struct{}, minutes float64) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	secondsLeft := minutes * 60
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			secondsLeft -= t.tick.Seconds()
			if secondsLeft > 0 {
				continue
			}
			t.mu.Lock()
			// Ignore the expiry if this run was cancelled meanwhile.
			if t.stop == stop && t.status == lawncare.TimerRunning {
				t.status = lawncare.TimerCompleted
				t.remainingMinutes = 0
				t.stop = nil
			}
			t.mu.Unlock()
			return
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
