package domain

// Enumerated select lists used by the editing surface and by composer gates.
// These tables are the single source of truth for every category string; the
// composers compare against these values rather than ad hoc literals.

// Mobility levels.
const (
	MobilityNoLimitations = "No limitations"
	MobilityMild          = "Mild limitation"
	MobilityLimited       = "Limited mobility"
	MobilityWalkingAid    = "Uses walking aid"
	MobilityWheelchair    = "Wheelchair user"
	MobilityHousebound    = "Housebound"
)

// MobilityLevels in form order.
var MobilityLevels = []string{
	MobilityNoLimitations, MobilityMild, MobilityLimited,
	MobilityWalkingAid, MobilityWheelchair, MobilityHousebound,
}

// Activity barriers (single choice).
const (
	BarrierNone           = "None"
	BarrierPain           = "Pain"
	BarrierBreathlessness = "Breathlessness"
	BarrierFatigue        = "Fatigue"
	BarrierTime           = "Time"
	BarrierMotivation     = "Motivation"
	BarrierOther          = "Other"
)

// ActivityBarriers in form order.
var ActivityBarriers = []string{
	BarrierNone, BarrierPain, BarrierBreathlessness, BarrierFatigue,
	BarrierTime, BarrierMotivation, BarrierOther,
}

// Diet patterns.
const (
	DietNoSpecial   = "No special diet"
	DietVegetarian  = "Vegetarian"
	DietVegan       = "Vegan"
	DietPescatarian = "Pescatarian"
	DietHalal       = "Halal"
	DietKosher      = "Kosher"
	DietOther       = "Other"
)

// DietPatterns in form order.
var DietPatterns = []string{
	DietNoSpecial, DietVegetarian, DietVegan, DietPescatarian,
	DietHalal, DietKosher, DietOther,
}

// DiabetesTypes in form order.
var DiabetesTypes = []string{
	"No diabetes", "Type 1", "Type 2", "Pre-diabetes", "Gestational", "Not sure",
}

// PregnancyStatuses in form order.
var PregnancyStatuses = []string{
	"Not applicable", "Pregnant", "Postpartum (under 12 months)",
}

// CaffeineTimes for the last-caffeine field.
var CaffeineTimes = []string{
	"No caffeine", "Before 12:00", "12:00 to 14:00", "14:00 to 16:00", "After 16:00",
}

// AlcoholUnitBands for weekly units.
var AlcoholUnitBands = []string{
	"0", "1 to 7", "8 to 14", "15 to 21", "22 or more",
}

// UpperLimbFunctionLevels in form order.
var UpperLimbFunctionLevels = []string{
	"No limitation", "Mild limitation", "Moderate limitation", "Severe limitation",
}

// CVEventHistories in form order.
var CVEventHistories = []string{
	"No known event", "Previous heart attack", "Previous stroke or TIA",
	"Angina", "Other, GP managed", "Not sure",
}

// FoodAccessOptions in form order.
var FoodAccessOptions = []string{
	"No concerns", "Limited budget", "Limited cooking facilities",
	"Low appetite or poor intake", "Not sure or prefer not to say",
}

// StressorOptions for the wellbeing multi-select.
var StressorOptions = []string{
	"Work / workload",
	"Family / relationships",
	"Health concerns",
	"Finances",
	"Caring responsibilities",
	"Other",
}

// WorkPatterns for the wellbeing deep dive.
var WorkPatterns = []string{
	"Day shifts", "Night shifts", "Rotating shifts", "Not working / retired",
}

// RecoveryTimes for post-exertional recovery.
var RecoveryTimes = []string{
	"Not applicable", "Under 24 hours", "1-2 days", "3-7 days", "Over 7 days",
}

// FatigueDurations for how long fatigue has been present.
var FatigueDurations = []string{
	"Under 4 weeks", "1-3 months", "3-6 months", "6-12 months", "Over 12 months",
}

// FatigueTrends in form order.
var FatigueTrends = []string{"Worse", "Better", "Stable", "Variable"}

// Dipstick result values. "Negative" is the normal finding for all graded
// analytes; nitrites are a plain positive/negative; urobilinogen is banded.
const (
	DipstickNegative = "Negative"
	DipstickPositive = "Positive"
)

// DipstickGraded is the common graded scale for leukocytes, blood and ketones.
var DipstickGraded = []string{
	DipstickNegative, "Trace", "+1 (Small)", "+2 (Moderate)", "+3 (Large)",
}

// UrobilinogenBands for the urobilinogen analyte.
var UrobilinogenBands = []string{"Normal (0.2-1.0)", "Raised (>1.0)"}
