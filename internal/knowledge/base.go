// Package knowledge holds the crab grass identification and treatment
// knowledge base: static reference data plus the scoring and ranking rules
// applied to it. All data is built once at construction and never mutated.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"lawncare"
)

// Base answers crab grass questions for a single region.
type Base struct {
	region     lawncare.Region
	features   map[CrabGrassType][]IdentificationFeature
	treatments map[lawncare.Region][]Treatment
	lifecycle  map[Stage]StageInfo
	prevention []PreventionStrategy
}

func NewBase(region lawncare.Region) *Base {
	return &Base{
		region:     region,
		features:   identificationFeatures(),
		treatments: treatmentsByRegion(),
		lifecycle:  lifecycleInfo(),
		prevention: preventionStrategies(),
	}
}

func (b *Base) Region() lawncare.Region { return b.region }

// IdentificationGuide returns the full feature catalogue per type.
func (b *Base) IdentificationGuide() map[string][]IdentificationFeature {
	guide := make(map[string][]IdentificationFeature, len(b.features))
	for grassType, features := range b.features {
		guide[string(grassType)] = features
	}
	return guide
}

// Identify scores observed free-text features against both crab grass types.
// Matching is case-insensitive substring search over descriptions.
func (b *Base) Identify(observed []string) IdentificationResult {
	scores := map[CrabGrassType]int{}
	matches := map[CrabGrassType][]string{}

	for _, grassType := range allTypes {
		for _, feature := range b.features[grassType] {
			for _, obs := range observed {
				needle := strings.ToLower(obs)
				if strings.Contains(strings.ToLower(feature.Description), needle) ||
					strings.Contains(strings.ToLower(feature.Distinguishing), needle) {
					scores[grassType]++
					matches[grassType] = append(matches[grassType], feature.Feature)
				}
			}
		}
	}

	var likely, confidence string
	switch {
	case scores[TypeLarge] == 0 && scores[TypeSmooth] == 0:
		likely = "unknown"
		confidence = "Unable to identify"
	case scores[TypeLarge] > scores[TypeSmooth]:
		likely = string(TypeLarge)
		confidence = confidenceFor(scores[TypeLarge])
	case scores[TypeSmooth] > scores[TypeLarge]:
		likely = string(TypeSmooth)
		confidence = confidenceFor(scores[TypeSmooth])
	default:
		likely = "uncertain - could be either type"
		confidence = "Low"
	}

	result := IdentificationResult{
		LikelyType:       likely,
		Confidence:       confidence,
		MatchingFeatures: map[string][]string{},
		Scores:           map[string]int{},
	}
	for grassType, score := range scores {
		result.Scores[string(grassType)] = score
	}
	for grassType, featureNames := range matches {
		if len(featureNames) > 0 {
			result.MatchingFeatures[string(grassType)] = featureNames
		}
	}
	return result
}

func confidenceFor(score int) string {
	if score >= 3 {
		return "High"
	}
	return "Medium"
}

// StageForMonth infers the likely lifecycle stage from the month.
func StageForMonth(month int) Stage {
	switch {
	case month == 12 || month <= 2:
		return StageSeed
	case month <= 4:
		return StageGermination
	case month <= 6:
		return StageSeedling
	case month <= 8:
		return StageMature
	default:
		return StageSeedProduction
	}
}

// Recommendations ranks the region's treatments for a month and stage.
// Pass an empty stage to infer it from the month. A treatment qualifies if
// its timing window includes the month or its type suits the stage; results
// sort by timing match, then stage fit, then effectiveness, descending.
func (b *Base) Recommendations(month int, stage Stage) []Recommendation {
	if stage == "" {
		stage = StageForMonth(month)
	}

	var recs []Recommendation
	for _, treatment := range b.treatments[b.region] {
		timingMatch := treatment.Timing.ContainsMonth(month)
		stageOK := stageAppropriate(stage, treatment.Type)
		if !timingMatch && !stageOK {
			continue
		}
		recs = append(recs, Recommendation{
			Name:             treatment.Name,
			Type:             treatment.Type,
			Effectiveness:    treatment.Effectiveness,
			Timing:           fmt.Sprintf("Months %d-%d", treatment.Timing.StartMonth, treatment.Timing.EndMonth),
			TemperatureRange: fmt.Sprintf("%d°F-%d°F", treatment.Timing.TempMin, treatment.Timing.TempMax),
			ApplicationNotes: treatment.ApplicationNotes,
			CostRange:        treatment.CostRange,
			TimingMatch:      timingMatch,
			StageAppropriate: stageOK,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].TimingMatch != recs[j].TimingMatch {
			return recs[i].TimingMatch
		}
		if recs[i].StageAppropriate != recs[j].StageAppropriate {
			return recs[i].StageAppropriate
		}
		return recs[i].Effectiveness > recs[j].Effectiveness
	})
	return recs
}

func stageAppropriate(stage Stage, tt TreatmentType) bool {
	switch stage {
	case StageSeed, StageGermination:
		return tt == TreatmentPreEmergent || tt == TreatmentCultural
	case StageSeedling:
		return tt == TreatmentPostEmergent || tt == TreatmentMechanical || tt == TreatmentOrganic
	case StageMature, StageSeedProduction:
		return tt == TreatmentMechanical || tt == TreatmentCultural
	default:
		return false
	}
}

// LifecycleInfo returns info for one stage, or all stages when stage is empty.
func (b *Base) LifecycleInfo(stage Stage) map[Stage]StageInfo {
	if stage != "" {
		if info, ok := b.lifecycle[stage]; ok {
			return map[Stage]StageInfo{stage: info}
		}
		return map[Stage]StageInfo{}
	}
	out := make(map[Stage]StageInfo, len(b.lifecycle))
	for _, s := range allStages {
		out[s] = b.lifecycle[s]
	}
	return out
}

// PreventionStrategies returns a copy of the standing prevention practices.
func (b *Base) PreventionStrategies() []PreventionStrategy {
	out := make([]PreventionStrategy, len(b.prevention))
	copy(out, b.prevention)
	return out
}

// SeasonalCalendar returns the year's management tasks by period.
func (b *Base) SeasonalCalendar() []CalendarEntry {
	return seasonalCalendar()
}

// DiagnoseControlFailure analyzes why a treatment underperformed.
func (b *Base) DiagnoseControlFailure(treatmentApplied string, applicationMonth int, level string) Diagnosis {
	var causes, recs []string
	applied := strings.ToLower(treatmentApplied)
	highLevel := strings.EqualFold(level, "high")

	if strings.Contains(applied, "pre-emergent") {
		if applicationMonth > 4 {
			causes = append(causes, "Pre-emergent applied too late in season")
			recs = append(recs, "Apply pre-emergent earlier next year (when forsythia blooms)")
		}
		if highLevel {
			causes = append(causes, "Pre-emergent may have broken down or washed away")
			recs = append(recs, "Consider split application or longer-lasting product")
		}
	}
	if strings.Contains(applied, "post-emergent") && highLevel {
		causes = append(causes, "Post-emergent applied too late (mature plants resistant)")
		recs = append(recs, "Target younger, smaller plants for better control")
	}

	causes = append(causes,
		"Inadequate application rate or coverage",
		"Weather conditions (too much rain, drought, extreme temperatures)",
		"Dense crabgrass population overwhelming treatment",
		"Poor lawn health allowing crabgrass establishment",
		"Seed bank from previous years still germinating",
	)
	recs = append(recs,
		"Improve overall lawn density through fertilization and overseeding",
		"Ensure proper application timing and rates",
		"Consider professional soil test and lawn analysis",
		"Plan integrated approach combining multiple treatment methods",
	)

	return Diagnosis{
		TreatmentApplied:  treatmentApplied,
		ApplicationTiming: fmt.Sprintf("Month %d", applicationMonth),
		CurrentLevel:      level,
		PossibleCauses:    causes,
		Recommendations:   recs,
		NextSteps:         "Focus on fall lawn thickening and plan comprehensive approach for next year",
	}
}
