package service

import (
	"errors"
	"testing"
	"time"

	"lawncare"
	"lawncare/internal/timing"
)

func newTimingSvc() *TimingService {
	return NewTimingService(timing.DefaultTable())
}

func TestNewTimingService_PanicsOnIncompleteTable(t *testing.T) {
	t.Parallel()
	table := timing.DefaultTable()
	delete(table[lawncare.ActivitySeeding], lawncare.RegionCentral)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a table missing (seeding, central)")
		}
	}()
	NewTimingService(table)
}

func TestTimingService_UnknownRegion(t *testing.T) {
	t.Parallel()
	svc := newTimingSvc()

	if _, err := svc.Window("coastal", lawncare.ActivitySeeding); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("Window: want ErrUnknownRegion, got %v", err)
	}
	if _, err := svc.Schedule("coastal"); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("Schedule: want ErrUnknownRegion, got %v", err)
	}
	if _, err := svc.ActivitiesForMonth("coastal", 4); !errors.Is(err, ErrUnknownRegion) {
		t.Fatalf("ActivitiesForMonth: want ErrUnknownRegion, got %v", err)
	}
}

func TestTimingService_UnknownActivity(t *testing.T) {
	t.Parallel()
	svc := newTimingSvc()

	if _, err := svc.Window(lawncare.RegionCentral, "mowing"); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("Window: want ErrUnknownActivity, got %v", err)
	}
	if _, err := svc.IsOptimal(lawncare.RegionCentral, "mowing", 5, 60); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("IsOptimal: want ErrUnknownActivity, got %v", err)
	}
	if _, err := svc.NextWindow(lawncare.RegionCentral, "mowing", time.Now()); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("NextWindow: want ErrUnknownActivity, got %v", err)
	}
}

func TestTimingService_Delegation(t *testing.T) {
	t.Parallel()
	svc := newTimingSvc()

	w, err := svc.Window(lawncare.RegionCentral, lawncare.ActivitySeeding)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.StartMonth != 4 || w.EndMonth != 6 {
		t.Fatalf("central seeding window: %+v", w)
	}

	ok, err := svc.IsOptimal(lawncare.RegionCentral, lawncare.ActivitySeeding, 5, 60)
	if err != nil || !ok {
		t.Fatalf("IsOptimal(5, 60) = %v, %v; want true", ok, err)
	}

	fc, err := svc.NextWindow(lawncare.RegionCentral, lawncare.ActivityOverseeding,
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NextWindow: %v", err)
	}
	if fc.StartDate != "2024-08-01" {
		t.Fatalf("forecast start: %+v", fc)
	}

	sched, err := svc.Schedule(lawncare.RegionNorthern)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(sched) != 12 {
		t.Fatalf("schedule months: %d", len(sched))
	}

	acts, err := svc.ActivitiesForMonth(lawncare.RegionSouthern, 1)
	if err != nil {
		t.Fatalf("ActivitiesForMonth: %v", err)
	}
	found := false
	for _, a := range acts {
		if a == lawncare.ActivityWinterizing {
			found = true
		}
	}
	if !found {
		t.Fatalf("southern January should include winterizing: %v", acts)
	}
}

func TestTimingService_NextWindowZeroFromUsesNow(t *testing.T) {
	t.Parallel()
	svc := newTimingSvc()

	fc, err := svc.NextWindow(lawncare.RegionCentral, lawncare.ActivitySeeding, time.Time{})
	if err != nil {
		t.Fatalf("NextWindow: %v", err)
	}
	if fc.StartDate == "" || fc.DaysUntilStart < 0 {
		t.Fatalf("forecast not populated: %+v", fc)
	}
}
