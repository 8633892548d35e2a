package service

import (
	"errors"
	"time"

	"lawncare"
	"lawncare/internal/timing"
)

var (
	ErrUnknownRegion   = errors.New("unknown region: must be northern, central, or southern")
	ErrUnknownActivity = errors.New("unknown activity")
)

// TimingService holds one calculator per region over the shared table.
type TimingService struct {
	calcs map[lawncare.Region]*timing.Calculator
}

// NewTimingService panics if the table does not cover every activity and
// region pair, so an incomplete table fails fast at wiring instead of on the
// first unlucky lookup.
func NewTimingService(table timing.Table) *TimingService {
	if err := table.Validate(); err != nil {
		panic(err)
	}
	calcs := make(map[lawncare.Region]*timing.Calculator, len(lawncare.AllRegions))
	for _, r := range lawncare.AllRegions {
		calcs[r] = timing.NewCalculator(table, r)
	}
	return &TimingService{calcs: calcs}
}

func (s *TimingService) calc(region lawncare.Region, activity lawncare.Activity) (*timing.Calculator, error) {
	c, ok := s.calcs[region]
	if !ok {
		return nil, ErrUnknownRegion
	}
	if activity != "" {
		if _, ok := lawncare.ParseActivity(string(activity)); !ok {
			return nil, ErrUnknownActivity
		}
	}
	return c, nil
}

func (s *TimingService) Window(region lawncare.Region, activity lawncare.Activity) (lawncare.TimingWindow, error) {
	c, err := s.calc(region, activity)
	if err != nil {
		return lawncare.TimingWindow{}, err
	}
	return c.Window(activity), nil
}

func (s *TimingService) IsOptimal(region lawncare.Region, activity lawncare.Activity, month, temp int) (bool, error) {
	c, err := s.calc(region, activity)
	if err != nil {
		return false, err
	}
	return c.IsOptimalTime(activity, month, temp), nil
}

func (s *TimingService) NextWindow(region lawncare.Region, activity lawncare.Activity, from time.Time) (lawncare.WindowForecast, error) {
	c, err := s.calc(region, activity)
	if err != nil {
		return lawncare.WindowForecast{}, err
	}
	if from.IsZero() {
		from = time.Now()
	}
	return c.NextOptimalWindow(activity, from), nil
}

func (s *TimingService) ActivitiesForMonth(region lawncare.Region, month int) ([]lawncare.Activity, error) {
	c, err := s.calc(region, "")
	if err != nil {
		return nil, err
	}
	return c.ActivitiesForMonth(month), nil
}

func (s *TimingService) Schedule(region lawncare.Region) (map[int][]string, error) {
	c, err := s.calc(region, "")
	if err != nil {
		return nil, err
	}
	return c.MonthlySchedule(), nil
}
