package knowledge

import "lawncare"

// CrabGrassType distinguishes the two common crab grass species.
type CrabGrassType string

const (
	TypeLarge  CrabGrassType = "large_crabgrass"
	TypeSmooth CrabGrassType = "smooth_crabgrass"
)

var allTypes = []CrabGrassType{TypeLarge, TypeSmooth}

// Stage is a crab grass lifecycle stage.
type Stage string

const (
	StageSeed           Stage = "seed"
	StageGermination    Stage = "germination"
	StageSeedling       Stage = "seedling"
	StageMature         Stage = "mature"
	StageSeedProduction Stage = "seed_production"
)

var allStages = []Stage{StageSeed, StageGermination, StageSeedling, StageMature, StageSeedProduction}

// TreatmentType categorizes control approaches.
type TreatmentType string

const (
	TreatmentPreEmergent  TreatmentType = "pre_emergent"
	TreatmentPostEmergent TreatmentType = "post_emergent"
	TreatmentMechanical   TreatmentType = "mechanical"
	TreatmentCultural     TreatmentType = "cultural"
	TreatmentOrganic      TreatmentType = "organic"
)

// IdentificationFeature describes one observable trait of a crab grass type.
type IdentificationFeature struct {
	Feature        string `json:"feature"`
	Description    string `json:"description"`
	Distinguishing string `json:"distinguishing_characteristics"`
}

// Treatment is a single control option, valid within a timing window.
type Treatment struct {
	Name             string                `json:"name"`
	Type             TreatmentType         `json:"type"`
	Effectiveness    int                   `json:"effectiveness"` // 1-10
	Timing           lawncare.TimingWindow `json:"timing"`
	ApplicationNotes string                `json:"application_notes"`
	CostRange        string                `json:"cost_range"`
}

// StageInfo captures lifecycle details for one stage.
type StageInfo struct {
	Description     string `json:"description"`
	Timing          string `json:"timing"`
	Vulnerability   string `json:"vulnerability"`
	Identification  string `json:"identification"`
	TreatmentWindow string `json:"treatment_window"`
}

// PreventionStrategy is a standing practice that suppresses crab grass.
type PreventionStrategy struct {
	Strategy       string `json:"strategy"`
	Description    string `json:"description"`
	Implementation string `json:"implementation"`
	Effectiveness  string `json:"effectiveness"`
}

// IdentificationResult scores observed features against both types.
type IdentificationResult struct {
	LikelyType       string              `json:"likely_type"`
	Confidence       string              `json:"confidence"`
	MatchingFeatures map[string][]string `json:"matching_features"`
	Scores           map[string]int      `json:"scores"`
}

// Recommendation is a treatment ranked for the caller's month and stage.
type Recommendation struct {
	Name             string        `json:"name"`
	Type             TreatmentType `json:"type"`
	Effectiveness    int           `json:"effectiveness"`
	Timing           string        `json:"timing"`
	TemperatureRange string        `json:"temperature_range"`
	ApplicationNotes string        `json:"application_notes"`
	CostRange        string        `json:"cost_range"`
	TimingMatch      bool          `json:"timing_match"`
	StageAppropriate bool          `json:"stage_appropriate"`
}

// Diagnosis explains a failed control attempt.
type Diagnosis struct {
	TreatmentApplied  string   `json:"treatment_applied"`
	ApplicationTiming string   `json:"application_timing"`
	CurrentLevel      string   `json:"current_level"`
	PossibleCauses    []string `json:"possible_causes"`
	Recommendations   []string `json:"recommendations"`
	NextSteps         string   `json:"next_steps"`
}

// CalendarEntry groups management tasks for a part of the season.
type CalendarEntry struct {
	Period string   `json:"period"`
	Tasks  []string `json:"tasks"`
}
