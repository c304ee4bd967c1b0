package domain

// Category labels produced by the classification engine. An empty string
// always means "insufficient data", never an error.

// BMI categories.
const (
	BMIUnderweight = "Underweight"
	BMIHealthy     = "Healthy weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// Blood pressure categories, screening language rather than diagnostic.
const (
	BPLow       = "Low reading"
	BPVeryHigh  = "Very high reading - urgent GP review"
	BPHigh      = "High reading - GP review advised"
	BPRaised    = "Raised reading - GP confirmation needed"
	BPHigherEnd = "Higher end of normal"
	BPNormal    = "Normal reading"
	BPOptimal   = "Optimal reading"
)

// Pulse categories.
const (
	PulseNormal = "Normal range"
	PulseBelow  = "Below typical range"
	PulseAbove  = "Above typical range"
)

// Fatigue levels from the Chalder total.
const (
	FatigueMinimal     = "Minimal fatigue"
	FatigueMild        = "Mild fatigue"
	FatigueModerate    = "Moderate fatigue"
	FatigueSignificant = "Significant fatigue"
)

// Wellbeing categories from the ten-domain average.
const (
	WellbeingStrong       = "Strong"
	WellbeingGood         = "Good"
	WellbeingNeedsSupport = "Needs support"
	WellbeingLow          = "Low"
)

// Lipid overall tiers.
const (
	LipidsRaised     = "Raised, GP review recommended"
	LipidsBorderline = "Borderline, lifestyle focus"
	LipidsHealthy    = "Within healthy range"
)

// TC/HDL ratio risk tiers.
const (
	RatioLowRisk      = "Low risk"
	RatioModerateRisk = "Moderate risk"
	RatioHighRisk     = "High risk"
)

// CholesterolAssessment holds the per-analyte statuses and the derived
// ratios for a lipid panel. Absent analytes leave their status empty.
type CholesterolAssessment struct {
	TotalStatus         string `json:"total_status,omitempty"`
	HDLStatus           string `json:"hdl_status,omitempty"`
	LDLStatus           string `json:"ldl_status,omitempty"`
	TriglyceridesStatus string `json:"triglycerides_status,omitempty"`
	Ratio               string `json:"ratio,omitempty"`   // TC/HDL
	NonHDL              string `json:"non_hdl,omitempty"` // TC-HDL
	LDLHDLRatio         string `json:"ldl_hdl_ratio,omitempty"`
	RiskLevel           string `json:"risk_level,omitempty"` // from TC/HDL ratio
	Overall             string `json:"overall,omitempty"`
}

// DerivedValues is the full set of computed classifications for a record.
// It is a pure function of (record, today) and is recomputed in full on
// every change; nothing here is persisted by the core.
type DerivedValues struct {
	Age               string                `json:"age"`
	BMI               string                `json:"bmi"`
	BMIClass          string                `json:"bmi_class"`
	BPClass           string                `json:"bp_class"`
	PulseClass        string                `json:"pulse_class"`
	Cholesterol       CholesterolAssessment `json:"cholesterol"`
	FatigueScore      string                `json:"fatigue_score"`
	FatigueLevel      string                `json:"fatigue_level"`
	WellbeingAverage  string                `json:"wellbeing_average"`
	WellbeingCategory string                `json:"wellbeing_category"`
}
