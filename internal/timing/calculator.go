package timing

import (
	"fmt"
	"time"

	"lawncare"
)

const dateLayout = "2006-01-02"

// windowEndDay is the day-of-month used for every window end date. The end
// of a window is always the 28th regardless of actual month length, which
// keeps the date math clear of month-length edge cases.
const windowEndDay = 28

// Calculator answers timing questions for a single region against an
// immutable table. It is pure and safe for concurrent use.
type Calculator struct {
	table  Table
	region lawncare.Region
}

func NewCalculator(table Table, region lawncare.Region) *Calculator {
	return &Calculator{table: table, region: region}
}

func (c *Calculator) Region() lawncare.Region { return c.region }

// Window returns the timing window for an activity in the calculator's region.
func (c *Calculator) Window(activity lawncare.Activity) lawncare.TimingWindow {
	return c.table.Window(activity, c.region)
}

// IsOptimalTime reports whether the given month and temperature fall inside
// the activity's window. Both the month range and the temperature band are
// inclusive on both ends.
func (c *Calculator) IsOptimalTime(activity lawncare.Activity, month, temp int) bool {
	w := c.Window(activity)
	return w.ContainsMonth(month) && w.TempMin <= temp && temp <= w.TempMax
}

// NextOptimalWindow computes the nearest future occurrence of the activity's
// window as concrete calendar dates. If from falls inside the window, the
// start date is retroactive and DaysUntilStart is 0. For a window already in
// progress across the year boundary, the start remains this calendar year's
// start month even though the window began the previous year.
func (c *Calculator) NextOptimalWindow(activity lawncare.Activity, from time.Time) lawncare.WindowForecast {
	w := c.Window(activity)
	year := from.Year()

	startDate := monthStart(year, w.StartMonth)
	var endDate time.Time
	inWindow := w.ContainsMonth(int(from.Month()))

	switch {
	case inWindow:
		// Current occurrence. A wrap window observed on its January side
		// ends this year; the start keeps this calendar year's start month
		// even though the occurrence began the previous year.
		if w.Wraps() && int(from.Month()) > w.EndMonth {
			endDate = monthEnd(year+1, w.EndMonth)
		} else {
			endDate = monthEnd(year, w.EndMonth)
		}
	case from.After(startDate):
		// This year's occurrence is over; roll to the next one.
		startDate = monthStart(year+1, w.StartMonth)
		endDate = monthEnd(year+1, w.EndMonth)
	default:
		if w.Wraps() {
			endDate = monthEnd(year+1, w.EndMonth)
		} else {
			endDate = monthEnd(year, w.EndMonth)
		}
	}

	daysUntil := 0
	if !inWindow {
		daysUntil = int(startDate.Sub(from).Hours() / 24)
		if daysUntil < 0 {
			daysUntil = 0
		}
	}

	// On the January side of a wrap the reported start month is ahead of the
	// reported end; measure the length from the occurrence's true start.
	lengthStart := startDate
	if endDate.Before(startDate) {
		lengthStart = monthStart(startDate.Year()-1, w.StartMonth)
	}

	return lawncare.WindowForecast{
		Activity:         activity,
		StartDate:        startDate.Format(dateLayout),
		EndDate:          endDate.Format(dateLayout),
		DaysUntilStart:   daysUntil,
		WindowLengthDays: int(endDate.Sub(lengthStart).Hours() / 24),
		TempRange:        fmt.Sprintf("%d°F - %d°F", w.TempMin, w.TempMax),
		Description:      w.Description,
	}
}

// ActivitiesForMonth returns every activity whose window includes the month,
// ignoring temperature, in declaration order.
func (c *Calculator) ActivitiesForMonth(month int) []lawncare.Activity {
	var optimal []lawncare.Activity
	for _, activity := range lawncare.AllActivities {
		if c.Window(activity).ContainsMonth(month) {
			optimal = append(optimal, activity)
		}
	}
	return optimal
}

// MonthlySchedule maps each month 1..12 to its optimal activity identifiers.
func (c *Calculator) MonthlySchedule() map[int][]string {
	schedule := make(map[int][]string, 12)
	for month := 1; month <= 12; month++ {
		names := make([]string, 0, len(lawncare.AllActivities))
		for _, activity := range c.ActivitiesForMonth(month) {
			names = append(names, string(activity))
		}
		schedule[month] = names
	}
	return schedule
}

func monthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func monthEnd(year, month int) time.Time {
	return time.Date(year, time.Month(month), windowEndDay, 0, 0, 0, 0, time.UTC)
}
