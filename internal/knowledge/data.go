package knowledge

import "lawncare"

func identificationFeatures() map[CrabGrassType][]IdentificationFeature {
	return map[CrabGrassType][]IdentificationFeature{
		TypeLarge: {
			{"Leaf blade", "Wide, flat leaves 4-8mm wide", "Broader than smooth crabgrass, with visible veins"},
			{"Growth pattern", "Low-growing, spreading in star pattern", "Forms mats that can spread 2+ feet in diameter"},
			{"Stem", "Thick, jointed stems that root at nodes", "Often reddish at base, can root wherever nodes touch soil"},
			{"Seed head", "4-10 finger-like spikes radiating from stem tip", "Purple-tinged when mature, arranged like fingers on a hand"},
			{"Height", "Can grow 6-24 inches tall", "Taller than smooth crabgrass when upright"},
		},
		TypeSmooth: {
			{"Leaf blade", "Narrow leaves 2-5mm wide", "Narrower and more pointed than large crabgrass"},
			{"Growth pattern", "Low, prostrate growth forming dense mats", "Stays closer to ground, forms tight carpets"},
			{"Stem", "Thinner, smooth stems", "Less robust than large crabgrass, lighter colored"},
			{"Seed head", "3-6 narrow spikes, more delicate appearance", "Smaller and more refined than large crabgrass"},
			{"Texture", "Smooth leaves without hair", "Distinguishes from hairy crabgrass varieties"},
		},
	}
}

func treatmentsByRegion() map[lawncare.Region][]Treatment {
	return map[lawncare.Region][]Treatment{
		lawncare.RegionNorthern: {
			{"Pre-emergent herbicide (Prodiamine)", TreatmentPreEmergent, 9,
				lawncare.TimingWindow{StartMonth: 3, EndMonth: 4, TempMin: 50, TempMax: 65, Description: "Apply when soil temperature reaches 55°F"},
				"Apply before forsythia blooms. Water in within 7 days.", "$30-60 per application"},
			{"Pre-emergent herbicide (Dithiopyr)", TreatmentPreEmergent, 8,
				lawncare.TimingWindow{StartMonth: 3, EndMonth: 4, TempMin: 50, TempMax: 65, Description: "Early spring application"},
				"Can provide some post-emergent control on young seedlings.", "$40-70 per application"},
			{"Post-emergent herbicide (Quinclorac)", TreatmentPostEmergent, 7,
				lawncare.TimingWindow{StartMonth: 5, EndMonth: 8, TempMin: 60, TempMax: 85, Description: "Apply to young plants before seed production"},
				"Most effective on plants less than 4 inches. May require multiple applications.", "$25-50 per application"},
			{"Hand pulling", TreatmentMechanical, 6,
				lawncare.TimingWindow{StartMonth: 5, EndMonth: 9, TempMin: 60, TempMax: 85, Description: "Remove before seed production"},
				"Most effective after rain when soil is moist. Remove entire root system.", "Free (labor only)"},
			{"Corn gluten meal", TreatmentOrganic, 5,
				lawncare.TimingWindow{StartMonth: 3, EndMonth: 4, TempMin: 50, TempMax: 65, Description: "Apply 4-6 weeks before germination"},
				"Acts as pre-emergent. Apply at 20 lbs per 1000 sq ft.", "$40-80 per application"},
		},
		lawncare.RegionCentral: {
			{"Pre-emergent herbicide (Prodiamine)", TreatmentPreEmergent, 9,
				lawncare.TimingWindow{StartMonth: 2, EndMonth: 4, TempMin: 45, TempMax: 65, Description: "Apply when soil temperature reaches 50°F"},
				"Critical timing - apply before soil reaches 55°F consistently.", "$30-60 per application"},
			{"Split pre-emergent application", TreatmentPreEmergent, 8,
				lawncare.TimingWindow{StartMonth: 2, EndMonth: 3, TempMin: 45, TempMax: 60, Description: "Early spring, follow-up in late spring"},
				"Apply 60% in early spring, 40% 6-8 weeks later.", "$50-90 per season"},
			{"Post-emergent selective (Fenoxaprop)", TreatmentPostEmergent, 7,
				lawncare.TimingWindow{StartMonth: 4, EndMonth: 9, TempMin: 60, TempMax: 90, Description: "Apply to actively growing young plants"},
				"Safe for most cool-season grasses. Apply with surfactant.", "$35-60 per application"},
			{"Dense lawn maintenance", TreatmentCultural, 8,
				lawncare.TimingWindow{StartMonth: 3, EndMonth: 11, TempMin: 50, TempMax: 90, Description: "Year-round thick lawn strategy"},
				"Maintain thick, healthy turf. Overseed thin areas in fall.", "$100-200 per season"},
			{"Mechanical removal + overseeding", TreatmentMechanical, 6,
				lawncare.TimingWindow{StartMonth: 8, EndMonth: 9, TempMin: 60, TempMax: 80, Description: "Remove in summer, overseed in fall"},
				"Pull crabgrass, immediately overseed bare spots with desired grass.", "$50-150 depending on area"},
		},
		lawncare.RegionSouthern: {
			{"Pre-emergent herbicide (Atrazine)", TreatmentPreEmergent, 8,
				lawncare.TimingWindow{StartMonth: 1, EndMonth: 3, TempMin: 40, TempMax: 65, Description: "Apply before soil temperatures reach 50°F"},
				"Effective for warm-season grasses. May require earlier application.", "$25-50 per application"},
			{"Pre-emergent herbicide (Prodiamine)", TreatmentPreEmergent, 9,
				lawncare.TimingWindow{StartMonth: 1, EndMonth: 3, TempMin: 40, TempMax: 65, Description: "Very early spring application"},
				"Apply in late winter. Critical in southern climates.", "$30-60 per application"},
			{"Post-emergent (MSMA) - where legal", TreatmentPostEmergent, 8,
				lawncare.TimingWindow{StartMonth: 3, EndMonth: 10, TempMin: 65, TempMax: 95, Description: "Apply to young, actively growing plants"},
				"Check local regulations. Not allowed in all areas. Highly effective.", "$30-55 per application"},
			{"Cultural practices (irrigation management)", TreatmentCultural, 7,
				lawncare.TimingWindow{StartMonth: 1, EndMonth: 12, TempMin: 40, TempMax: 100, Description: "Year-round water management"},
				"Deep, infrequent watering favors desired grass over crabgrass.", "$0 (management change)"},
			{"Organic approach (vinegar + salt)", TreatmentOrganic, 4,
				lawncare.TimingWindow{StartMonth: 4, EndMonth: 10, TempMin: 70, TempMax: 95, Description: "Apply to young plants on sunny days"},
				"20% vinegar solution. Multiple applications needed. May harm desired grass.", "$15-30 per application"},
		},
	}
}

func lifecycleInfo() map[Stage]StageInfo {
	return map[Stage]StageInfo{
		StageSeed: {
			Description:     "Seeds remain dormant in soil over winter",
			Timing:          "Fall through early spring",
			Vulnerability:   "Pre-emergent herbicides most effective",
			Identification:  "Seeds are small (1-2mm), brownish, not visible in lawn",
			TreatmentWindow: "Pre-emergent applications before germination",
		},
		StageGermination: {
			Description:     "Seeds begin sprouting when soil temperature reaches 55-60°F",
			Timing:          "Late winter to early spring, varies by region",
			Vulnerability:   "Last chance for pre-emergent control",
			Identification:  "Tiny grass sprouts, difficult to distinguish from desired grass",
			TreatmentWindow: "Pre-emergent herbicides still effective for 2-3 weeks",
		},
		StageSeedling: {
			Description:     "Young plants establish, 1-4 inches tall",
			Timing:          "Spring into early summer",
			Vulnerability:   "Most susceptible to post-emergent herbicides",
			Identification:  "Distinctive wide leaves, low spreading growth pattern",
			TreatmentWindow: "Optimal time for post-emergent treatment and hand removal",
		},
		StageMature: {
			Description:     "Fully developed plants, vigorous growth",
			Timing:          "Mid to late summer",
			Vulnerability:   "Difficult to control, resistant to many herbicides",
			Identification:  "Large mats, distinctive seed heads, choking out desired grass",
			TreatmentWindow: "Mechanical removal, prepare for next year's prevention",
		},
		StageSeedProduction: {
			Description:     "Plants produce thousands of seeds per plant",
			Timing:          "Late summer through fall",
			Vulnerability:   "Focus on preventing seed spread",
			Identification:  "Prominent finger-like seed heads, plants turning brown",
			TreatmentWindow: "Remove seed heads, plan next year's pre-emergent program",
		},
	}
}

func preventionStrategies() []PreventionStrategy {
	return []PreventionStrategy{
		{
			Strategy:       "Maintain dense, healthy turf",
			Description:    "Thick grass prevents crabgrass establishment",
			Implementation: "Regular fertilization, proper watering, overseeding thin areas",
			Effectiveness:  "High - prevents 70-90% of crabgrass problems",
		},
		{
			Strategy:       "Proper mowing height",
			Description:    "Taller grass shades soil, preventing crabgrass germination",
			Implementation: "Mow cool-season grass 2.5-3.5 inches, warm-season 1-2.5 inches",
			Effectiveness:  "Medium - reduces germination by 40-60%",
		},
		{
			Strategy:       "Pre-emergent herbicide program",
			Description:    "Prevent seeds from germinating in spring",
			Implementation: "Apply when forsythia blooms or soil reaches 55°F",
			Effectiveness:  "Very High - 85-95% control when properly timed",
		},
		{
			Strategy:       "Irrigation management",
			Description:    "Deep, infrequent watering favors desired grass",
			Implementation: "Water 1-1.5 inches per week in 2-3 sessions",
			Effectiveness:  "Medium - supports overall turf health",
		},
		{
			Strategy:       "Fall overseeding",
			Description:    "Thicken lawn before next growing season",
			Implementation: "Overseed thin areas in late summer/early fall",
			Effectiveness:  "High - establishes competition for next year",
		},
		{
			Strategy:       "Soil health improvement",
			Description:    "Healthy soil supports strong turf grass",
			Implementation: "Annual soil testing, pH adjustment, organic matter addition",
			Effectiveness:  "Medium-High - long-term turf improvement",
		},
	}
}

func seasonalCalendar() []CalendarEntry {
	return []CalendarEntry{
		{"Late Winter (Jan-Feb)", []string{
			"Plan pre-emergent herbicide application",
			"Order pre-emergent products",
			"Assess lawn for thin areas needing attention",
			"Soil test if not done in fall",
		}},
		{"Early Spring (Mar-Apr)", []string{
			"Apply pre-emergent herbicide when forsythia blooms",
			"Fertilize existing grass to promote thick growth",
			"Begin regular mowing at proper height",
			"Water lawn deeply but infrequently",
		}},
		{"Late Spring (May-Jun)", []string{
			"Monitor for crabgrass seedlings",
			"Apply post-emergent herbicide if needed",
			"Hand-pull small patches of young crabgrass",
			"Continue proper watering and mowing practices",
		}},
		{"Summer (Jul-Aug)", []string{
			"Hand-pull mature crabgrass before seed production",
			"Focus on lawn care practices that favor desired grass",
			"Plan fall overseeding for thin areas",
			"Monitor and remove seed heads if present",
		}},
		{"Fall (Sep-Nov)", []string{
			"Overseed thin areas to prevent next year's crabgrass",
			"Apply fall fertilizer to strengthen grass",
			"Remove any remaining crabgrass plants",
			"Plan next year's pre-emergent program",
		}},
	}
}
