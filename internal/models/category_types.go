package models

// Category groups products for navigation. The set is closed; the catalog
// rejects products whose category is not listed here.
type Category string

const (
	CategoryWeightManagement     Category = "weight-management"
	CategoryOralPeptides         Category = "oral-peptides"
	CategoryFitnessPerformance   Category = "fitness-performance"
	CategoryHealthAntiAging      Category = "health-anti-aging"
	CategoryTissueRepairRecovery Category = "tissue-repair-recovery"
	CategoryOrganSystemSupport   Category = "organ-system-support"
	CategoryPeptides             Category = "peptides"
	CategoryAesthetics           Category = "aesthetics"
)

var categoryNames = map[Category]string{
	CategoryWeightManagement:     "Weight Management",
	CategoryOralPeptides:         "Oral Peptides",
	CategoryFitnessPerformance:   "Fitness & Performance",
	CategoryHealthAntiAging:      "Health & Anti-Aging",
	CategoryTissueRepairRecovery: "Tissue Repair & Recovery",
	CategoryOrganSystemSupport:   "Organ/System Support",
	CategoryPeptides:             "Peptides & Wellness",
	CategoryAesthetics:           "Aesthetics & Skincare",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human label, or the slug itself when unmapped.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Subcategory is a finer grouping inside a category. Empty means none.
type Subcategory string

const (
	SubcategoryFatLoss                    Subcategory = "fat-loss"
	SubcategoryMuscleGainPerformance      Subcategory = "muscle-gain-performance"
	SubcategoryRecoveryInjuryRepair       Subcategory = "recovery-injury-repair"
	SubcategoryCognitionFocus             Subcategory = "cognition-focus"
	SubcategoryLibidoHormonalSupport      Subcategory = "libido-hormonal-support"
	SubcategoryLongevitySleepOptimization Subcategory = "longevity-sleep-optimization"
	SubcategoryAntiAging                  Subcategory = "anti-aging"
	SubcategoryGutHealthInflammation      Subcategory = "gut-health-inflammation"
	SubcategoryFightsInfection            Subcategory = "fights-infection"
	SubcategoryCalmingConnectionTrust     Subcategory = "calming-safety-connection-trust"
	SubcategoryAntiAnxietyResilience      Subcategory = "anti-anxiety-emotional-resilience"
	SubcategorySkinHairAesthetics         Subcategory = "skin-hair-aesthetics"
)

var subcategoryNames = map[Subcategory]string{
	SubcategoryFatLoss:                    "Fat Loss",
	SubcategoryMuscleGainPerformance:      "Muscle Gain & Performance",
	SubcategoryRecoveryInjuryRepair:       "Recovery & Injury Repair",
	SubcategoryCognitionFocus:             "Cognition & Focus",
	SubcategoryLibidoHormonalSupport:      "Libido & Hormonal Support",
	SubcategoryLongevitySleepOptimization: "Longevity & Sleep Optimization",
	SubcategoryAntiAging:                  "Anti-Aging",
	SubcategoryGutHealthInflammation:      "Gut Health & Inflammation",
	SubcategoryFightsInfection:            "Fights Infection",
	SubcategoryCalmingConnectionTrust:     "Calming, Safety, Connection & Trust",
	SubcategoryAntiAnxietyResilience:      "Anti-Anxiety & Emotional Resilience",
	SubcategorySkinHairAesthetics:         "Skin, Hair & Aesthetics",
}

// Valid reports whether s is empty or one of the known subcategories.
func (s Subcategory) Valid() bool {
	if s == "" {
		return true
	}
	_, ok := subcategoryNames[s]
	return ok
}

// DisplayName returns the human label, or the slug itself when unmapped.
func (s Subcategory) DisplayName() string {
	if name, ok := subcategoryNames[s]; ok {
		return name
	}
	return string(s)
}
