package timing

import (
	"testing"
	"time"

	"lawncare"
)

func newCentral(t *testing.T) *Calculator {
	t.Helper()
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	return NewCalculator(table, lawncare.RegionCentral)
}

func TestTable_CoversEveryActivityRegionPair(t *testing.T) {
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for _, activity := range lawncare.AllActivities {
		for _, region := range lawncare.AllRegions {
			w := table.Window(activity, region)
			if w.TempMax <= w.TempMin {
				t.Fatalf("(%s, %s): TempMax %d must exceed TempMin %d", activity, region, w.TempMax, w.TempMin)
			}
		}
	}
}

func TestTable_Validate_RejectsMissingPair(t *testing.T) {
	table := DefaultTable()
	delete(table[lawncare.ActivitySeeding], lawncare.RegionCentral)
	if err := table.Validate(); err == nil {
		t.Fatalf("expected error for missing (seeding, central) entry")
	}
}

func TestTable_Window_PanicsOnMissingPair(t *testing.T) {
	table := DefaultTable()
	delete(table[lawncare.ActivitySeeding], lawncare.RegionCentral)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on missing pair lookup")
		}
	}()
	table.Window(lawncare.ActivitySeeding, lawncare.RegionCentral)
}

func TestIsOptimalTime_InclusiveBoundaries(t *testing.T) {
	calc := newCentral(t)

	// Central seeding window: months 4-6, 55-80°F.
	cases := []struct {
		name  string
		month int
		temp  int
		want  bool
	}{
		{"start month, min temp", 4, 55, true},
		{"end month, max temp", 6, 80, true},
		{"month before window", 3, 70, false},
		{"temp below minimum", 5, 54, false},
		{"temp above maximum", 5, 81, false},
		{"month after window", 7, 70, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.IsOptimalTime(lawncare.ActivitySeeding, tc.month, tc.temp)
			if got != tc.want {
				t.Fatalf("IsOptimalTime(seeding, %d, %d) = %v, want %v", tc.month, tc.temp, got, tc.want)
			}
		})
	}
}

func TestContainsMonth_WraparoundWindow(t *testing.T) {
	w := lawncare.TimingWindow{StartMonth: 11, EndMonth: 2, TempMin: 35, TempMax: 55}
	for _, month := range []int{11, 12, 1, 2} {
		if !w.ContainsMonth(month) {
			t.Fatalf("month %d should be inside Nov-Feb window", month)
		}
	}
	for _, month := range []int{3, 6, 10} {
		if w.ContainsMonth(month) {
			t.Fatalf("month %d should be outside Nov-Feb window", month)
		}
	}
}

func TestIsOptimalTime_SouthernWinterizingWraps(t *testing.T) {
	calc := NewCalculator(DefaultTable(), lawncare.RegionSouthern)
	// Southern winterizing: Dec-Jan, 45-65°F.
	if !calc.IsOptimalTime(lawncare.ActivityWinterizing, 12, 50) {
		t.Fatalf("December should be optimal for southern winterizing")
	}
	if !calc.IsOptimalTime(lawncare.ActivityWinterizing, 1, 50) {
		t.Fatalf("January should be optimal for southern winterizing")
	}
	if calc.IsOptimalTime(lawncare.ActivityWinterizing, 6, 50) {
		t.Fatalf("June should not be optimal for southern winterizing")
	}
}

func TestNextOptimalWindow_FutureWindowThisYear(t *testing.T) {
	calc := newCentral(t)
	from := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	fc := calc.NextOptimalWindow(lawncare.ActivityOverseeding, from)
	if fc.StartDate != "2024-08-01" {
		t.Fatalf("StartDate = %s, want 2024-08-01", fc.StartDate)
	}
	if fc.EndDate != "2024-10-28" {
		t.Fatalf("EndDate = %s, want 2024-10-28", fc.EndDate)
	}
	if fc.DaysUntilStart != 47 {
		t.Fatalf("DaysUntilStart = %d, want 47", fc.DaysUntilStart)
	}
	if fc.WindowLengthDays < 30 {
		t.Fatalf("WindowLengthDays = %d, want >= 30", fc.WindowLengthDays)
	}
	if fc.TempRange != "55°F - 80°F" {
		t.Fatalf("TempRange = %q", fc.TempRange)
	}
}

func TestNextOptimalWindow_InsideWindowClampsToZero(t *testing.T) {
	calc := newCentral(t)
	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	fc := calc.NextOptimalWindow(lawncare.ActivitySeeding, from)
	if fc.DaysUntilStart != 0 {
		t.Fatalf("DaysUntilStart = %d, want 0 when inside window", fc.DaysUntilStart)
	}
	if fc.StartDate != "2024-04-01" || fc.EndDate != "2024-06-28" {
		t.Fatalf("window = %s..%s, want 2024-04-01..2024-06-28", fc.StartDate, fc.EndDate)
	}
}

func TestNextOptimalWindow_PastWindowRollsToNextYear(t *testing.T) {
	calc := newCentral(t)
	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	fc := calc.NextOptimalWindow(lawncare.ActivitySeeding, from)
	if fc.StartDate != "2025-04-01" {
		t.Fatalf("StartDate = %s, want 2025-04-01", fc.StartDate)
	}
	if fc.EndDate != "2025-06-28" {
		t.Fatalf("EndDate = %s, want 2025-06-28", fc.EndDate)
	}
	if fc.DaysUntilStart != 243 {
		t.Fatalf("DaysUntilStart = %d, want 243", fc.DaysUntilStart)
	}
}

func TestNextOptimalWindow_WrappingInProgress(t *testing.T) {
	calc := NewCalculator(DefaultTable(), lawncare.RegionSouthern)
	// Southern winterizing wraps Dec-Jan; mid-January is inside the window
	// that started the previous December.
	from := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	fc := calc.NextOptimalWindow(lawncare.ActivityWinterizing, from)
	if fc.EndDate != "2025-01-28" {
		t.Fatalf("EndDate = %s, want 2025-01-28", fc.EndDate)
	}
	if fc.StartDate != "2025-12-01" {
		t.Fatalf("StartDate = %s, want retroactive 2025-12-01", fc.StartDate)
	}
	if fc.DaysUntilStart != 0 {
		t.Fatalf("DaysUntilStart = %d, want clamped 0", fc.DaysUntilStart)
	}
	// Dec 1 through Jan 28 of the occurrence that is actually in progress.
	if fc.WindowLengthDays != 58 {
		t.Fatalf("WindowLengthDays = %d, want 58", fc.WindowLengthDays)
	}
}

func TestNextOptimalWindow_WrappingLaterThisYear(t *testing.T) {
	calc := NewCalculator(DefaultTable(), lawncare.RegionSouthern)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	fc := calc.NextOptimalWindow(lawncare.ActivityWinterizing, from)
	if fc.StartDate != "2025-12-01" {
		t.Fatalf("StartDate = %s, want 2025-12-01", fc.StartDate)
	}
	if fc.EndDate != "2026-01-28" {
		t.Fatalf("EndDate = %s, want 2026-01-28", fc.EndDate)
	}
	if fc.DaysUntilStart <= 0 {
		t.Fatalf("DaysUntilStart = %d, want > 0", fc.DaysUntilStart)
	}
}

func TestActivitiesForMonth_AprilCentral(t *testing.T) {
	calc := newCentral(t)
	got := calc.ActivitiesForMonth(4)

	want := map[lawncare.Activity]bool{
		lawncare.ActivitySeeding:     true,
		lawncare.ActivityFertilizing: true,
		lawncare.ActivityDethatching: true,
		lawncare.ActivityAeration:    true,
	}
	found := map[lawncare.Activity]bool{}
	for _, a := range got {
		found[a] = true
	}
	for a := range want {
		if !found[a] {
			t.Fatalf("April schedule missing %s; got %v", a, got)
		}
	}
}

func TestActivitiesForMonth_PreservesDeclarationOrder(t *testing.T) {
	calc := newCentral(t)
	got := calc.ActivitiesForMonth(4)

	rank := map[lawncare.Activity]int{}
	for i, a := range lawncare.AllActivities {
		rank[a] = i
	}
	for i := 1; i < len(got); i++ {
		if rank[got[i-1]] > rank[got[i]] {
			t.Fatalf("activities out of declaration order: %v", got)
		}
	}
}

func TestMonthlySchedule_TwelveMonths(t *testing.T) {
	calc := newCentral(t)
	schedule := calc.MonthlySchedule()

	if len(schedule) != 12 {
		t.Fatalf("schedule has %d months, want 12", len(schedule))
	}
	if !containsName(schedule[7], "grub_control") {
		t.Fatalf("July should include grub_control, got %v", schedule[7])
	}
	if !containsName(schedule[9], "overseeding") {
		t.Fatalf("September should include overseeding, got %v", schedule[9])
	}
}

func TestRegionalSeedingDifferences(t *testing.T) {
	cases := []struct {
		region     lawncare.Region
		start, end int
	}{
		{lawncare.RegionNorthern, 4, 5},
		{lawncare.RegionCentral, 4, 6},
		{lawncare.RegionSouthern, 3, 5},
	}
	table := DefaultTable()
	for _, tc := range cases {
		t.Run(string(tc.region), func(t *testing.T) {
			w := NewCalculator(table, tc.region).Window(lawncare.ActivitySeeding)
			if w.StartMonth != tc.start || w.EndMonth != tc.end {
				t.Fatalf("seeding window = %d-%d, want %d-%d", w.StartMonth, w.EndMonth, tc.start, tc.end)
			}
		})
	}
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
