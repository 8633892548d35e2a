package timing

import (
	"fmt"

	"lawncare"
)

// Table maps (Activity, Region) to a TimingWindow. It is built once at
// startup and read-only afterward; every (activity, region) pair must have
// an entry. A missing pair is a deployment defect, not a runtime condition.
type Table map[lawncare.Activity]map[lawncare.Region]lawncare.TimingWindow

// DefaultTable returns the static timing data for all activities and regions.
func DefaultTable() Table {
	return Table{
		lawncare.ActivitySeeding: {
			lawncare.RegionNorthern: {StartMonth: 4, EndMonth: 5, TempMin: 50, TempMax: 75, Description: "Cool season grass seeding in spring"},
			lawncare.RegionCentral:  {StartMonth: 4, EndMonth: 6, TempMin: 55, TempMax: 80, Description: "Spring seeding window"},
			lawncare.RegionSouthern: {StartMonth: 3, EndMonth: 5, TempMin: 60, TempMax: 85, Description: "Early spring seeding for warm season"},
		},
		lawncare.ActivityFertilizing: {
			lawncare.RegionNorthern: {StartMonth: 4, EndMonth: 10, TempMin: 45, TempMax: 85, Description: "Growing season fertilization"},
			lawncare.RegionCentral:  {StartMonth: 3, EndMonth: 11, TempMin: 50, TempMax: 90, Description: "Extended growing season"},
			lawncare.RegionSouthern: {StartMonth: 2, EndMonth: 11, TempMin: 55, TempMax: 95, Description: "Year-round growing potential"},
		},
		lawncare.ActivityDethatching: {
			lawncare.RegionNorthern: {StartMonth: 4, EndMonth: 5, TempMin: 50, TempMax: 70, Description: "Spring dethatching when soil workable"},
			lawncare.RegionCentral:  {StartMonth: 3, EndMonth: 5, TempMin: 45, TempMax: 75, Description: "Early spring dethatching"},
			lawncare.RegionSouthern: {StartMonth: 2, EndMonth: 4, TempMin: 50, TempMax: 80, Description: "Late winter to early spring"},
		},
		lawncare.ActivityAeration: {
			lawncare.RegionNorthern: {StartMonth: 4, EndMonth: 5, TempMin: 45, TempMax: 75, Description: "Spring aeration for cool season"},
			lawncare.RegionCentral:  {StartMonth: 4, EndMonth: 6, TempMin: 50, TempMax: 80, Description: "Spring to early summer"},
			lawncare.RegionSouthern: {StartMonth: 5, EndMonth: 7, TempMin: 60, TempMax: 90, Description: "Late spring to early summer"},
		},
		lawncare.ActivityOverseeding: {
			lawncare.RegionNorthern: {StartMonth: 8, EndMonth: 9, TempMin: 60, TempMax: 75, Description: "Fall overseeding optimal"},
			lawncare.RegionCentral:  {StartMonth: 8, EndMonth: 10, TempMin: 55, TempMax: 80, Description: "Extended fall window"},
			lawncare.RegionSouthern: {StartMonth: 9, EndMonth: 11, TempMin: 60, TempMax: 85, Description: "Fall into early winter"},
		},
		lawncare.ActivityWeedControl: {
			lawncare.RegionNorthern: {StartMonth: 4, EndMonth: 9, TempMin: 50, TempMax: 85, Description: "Pre and post-emergent timing"},
			lawncare.RegionCentral:  {StartMonth: 3, EndMonth: 10, TempMin: 45, TempMax: 90, Description: "Extended weed control season"},
			lawncare.RegionSouthern: {StartMonth: 2, EndMonth: 11, TempMin: 50, TempMax: 95, Description: "Nearly year-round control needed"},
		},
		lawncare.ActivityGrubControl: {
			lawncare.RegionNorthern: {StartMonth: 7, EndMonth: 8, TempMin: 70, TempMax: 85, Description: "Summer grub control"},
			lawncare.RegionCentral:  {StartMonth: 6, EndMonth: 9, TempMin: 65, TempMax: 90, Description: "Extended grub season"},
			lawncare.RegionSouthern: {StartMonth: 5, EndMonth: 10, TempMin: 70, TempMax: 95, Description: "Long grub control period"},
		},
		lawncare.ActivityWinterizing: {
			lawncare.RegionNorthern: {StartMonth: 10, EndMonth: 11, TempMin: 35, TempMax: 55, Description: "Prepare for harsh winter"},
			lawncare.RegionCentral:  {StartMonth: 11, EndMonth: 12, TempMin: 40, TempMax: 60, Description: "Mid to late fall preparation"},
			lawncare.RegionSouthern: {StartMonth: 12, EndMonth: 1, TempMin: 45, TempMax: 65, Description: "Minimal winterization needed"},
		},
	}
}

// Validate checks total coverage and window sanity. Run once at startup;
// a failure here means the static data is broken.
func (t Table) Validate() error {
	for _, activity := range lawncare.AllActivities {
		byRegion, ok := t[activity]
		if !ok {
			return fmt.Errorf("timing table: no entries for activity %q", activity)
		}
		for _, region := range lawncare.AllRegions {
			w, ok := byRegion[region]
			if !ok {
				return fmt.Errorf("timing table: missing window for (%s, %s)", activity, region)
			}
			if w.StartMonth < 1 || w.StartMonth > 12 || w.EndMonth < 1 || w.EndMonth > 12 {
				return fmt.Errorf("timing table: (%s, %s) has month out of range: %d-%d", activity, region, w.StartMonth, w.EndMonth)
			}
			if w.TempMax <= w.TempMin {
				return fmt.Errorf("timing table: (%s, %s) temp range inverted: %d..%d", activity, region, w.TempMin, w.TempMax)
			}
		}
	}
	return nil
}

// Window returns the window for (activity, region). It panics on a missing
// pair: the table is validated at startup, so a miss is a programming bug.
func (t Table) Window(activity lawncare.Activity, region lawncare.Region) lawncare.TimingWindow {
	w, ok := t[activity][region]
	if !ok {
		panic(fmt.Sprintf("timing table: no window for (%s, %s)", activity, region))
	}
	return w
}
