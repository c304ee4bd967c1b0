// Package domain defines the assessment record, its derived values and the
// segment model shared by the classification engine and advice composers.
package domain

// AssessmentRecord is a snapshot of a client health-assessment form.
// Fields are strings with the empty string meaning "not answered"; the
// editing surface owns the canonical record and passes a copy to the core
// for each computation. The core never mutates or retains a record.
type AssessmentRecord struct {
	// Client info
	ClientID       string `json:"client_id"`
	AssessmentDate string `json:"assessment_date"`
	ClientName     string `json:"client_name"`
	DateOfBirth    string `json:"date_of_birth"`
	ContactNumber  string `json:"contact_number"`
	Email          string `json:"email"`
	GPPractice     string `json:"gp_practice"`

	// Vitals
	BPSystolic  string `json:"bp_systolic"`
	BPDiastolic string `json:"bp_diastolic"`
	PulseRate   string `json:"pulse_rate"`
	Height      string `json:"height"` // cm
	Weight      string `json:"weight"` // kg

	// Lifestyle
	Smoker            string `json:"smoker"`
	FamilyHistory     string `json:"family_history"`
	Diabetes          string `json:"diabetes"`
	BPMedication      string `json:"bp_medication"`
	Exercise          string `json:"exercise"`
	ExerciseFrequency string `json:"exercise_frequency"`
	Alcohol           string `json:"alcohol"`
	AlcoholUnits      string `json:"alcohol_units"`

	// Clinical context
	MobilityLevel        string `json:"mobility_level"`
	ActivityBarriers     string `json:"activity_barriers"`
	DietPattern          string `json:"diet_pattern"`
	DiabetesType         string `json:"diabetes_type"`
	KnownHypertension    string `json:"known_hypertension"`
	KnownHighCholesterol string `json:"known_high_cholesterol"`
	SleepApnoea          string `json:"sleep_apnoea"`
	PregnancyStatus      string `json:"pregnancy_status"`
	ShiftWork            string `json:"shift_work"`
	NightsPerMonth       string `json:"nights_per_month"`
	Snoring              string `json:"snoring"`
	WitnessedApnoea      string `json:"witnessed_apnoea"`
	DaytimeSleepiness    string `json:"daytime_sleepiness"` // 0-10
	RestlessLegs         string `json:"restless_legs"`
	LastCaffeineTime     string `json:"last_caffeine_time"`
	HomeBPMonitor        string `json:"home_bp_monitor"`
	CVEventHistory       string `json:"cv_event_history"`
	KidneyDisease        string `json:"kidney_disease"`
	FamilyHistoryEarly   string `json:"family_history_early"`
	AlcoholUnitsWeek     string `json:"alcohol_units_week"`
	FoodAccess           string `json:"food_access"`
	Falls12m             string `json:"falls_12m"`
	PainLimitingMovement string `json:"pain_limiting_movement"` // 0-10
	UpperLimbFunction    string `json:"upper_limb_function"`
	OtherContext         string `json:"other_context"` // free text

	// Wellbeing domain scores, each 0-10
	WBEnergy           string `json:"wb_energy"`
	WBSleep            string `json:"wb_sleep"`
	WBMood             string `json:"wb_mood"`
	WBActivity         string `json:"wb_activity"`
	WBNutrition        string `json:"wb_nutrition"`
	WBSocial           string `json:"wb_social"`
	WBStress           string `json:"wb_stress"`
	WBWorkLife         string `json:"wb_work_life"`
	WBPurpose          string `json:"wb_purpose"`
	WBLifeSatisfaction string `json:"wb_life_satisfaction"`

	// Wellbeing deep dive
	WellbeingPriorities    string   `json:"wellbeing_priorities"` // free text
	WellbeingMood          string   `json:"wellbeing_mood"`
	WellbeingMoodFrequency string   `json:"wellbeing_mood_frequency"`
	WellbeingStressors     []string `json:"wellbeing_stressors"`
	WellbeingRelaxation    string   `json:"wellbeing_relaxation"`
	WellbeingSocialSupport string   `json:"wellbeing_social_support"`
	WellbeingMindfulness   string   `json:"wellbeing_mindfulness"`
	WellbeingBreathing     string   `json:"wellbeing_breathing"`
	WorkPattern            string   `json:"work_pattern"`

	// Lipid panel
	TotalCholesterol string `json:"total_cholesterol"`
	LDLCholesterol   string `json:"ldl_cholesterol"`
	HDLCholesterol   string `json:"hdl_cholesterol"`
	Triglycerides    string `json:"triglycerides"`
	Glucose          string `json:"glucose"`
	LipidsFasting    bool   `json:"lipids_fasting"`
	LipidsOnStatin   bool   `json:"lipids_on_statin"`

	// Chalder fatigue scale: keys "1".."11", values "0".."10"
	Chalder map[string]string `json:"chalder"`

	// Fatigue screening
	FRSleepHours         string `json:"fr_sleep_hours"`
	FRSleepQuality       string `json:"fr_sleep_quality"`
	FRDiffFallingAsleep  string `json:"fr_diff_falling_asleep"`
	FRWakeNight          string `json:"fr_wake_night"`
	FRRefreshedWaking    string `json:"fr_refreshed_waking"`
	FRCaffeineIntake     string `json:"fr_caffeine_intake"`
	FRWaterIntake        string `json:"fr_water_intake"`
	FRStressLevel        string `json:"fr_stress_level"`
	FRPrioritiesActions  string `json:"fr_priorities_actions"` // free text
	FRAfternoonCrash     string `json:"fr_afternoon_crash"`
	FRUrgeNap            string `json:"fr_urge_nap"`
	FRBrainFog           string `json:"fr_brain_fog"`
	FRNeedCaffeine       string `json:"fr_need_caffeine"`
	FRConcentrationDay   string `json:"fr_concentration_day"`
	FRMotivationTasks    string `json:"fr_motivation_tasks"`
	FRMuscleAches        string `json:"fr_muscle_aches"`
	FRJointPain          string `json:"fr_joint_pain"`
	FRWorseAfterActivity string `json:"fr_symptoms_worse_after_activity"`
	FRRecoveryTime       string `json:"fr_recovery_time"`
	FRActivityCrashes    string `json:"fr_activity_crashes"`
	FRDurationFatigue    string `json:"fr_duration_fatigue"`
	FRTrendFatigue       string `json:"fr_trend_fatigue"`
	FRWorseFatigue       string `json:"fr_worse_fatigue"`  // free text
	FRBetterFatigue      string `json:"fr_better_fatigue"` // free text

	// Sleep & lifestyle (fatigue tab)
	SleepHours    string `json:"sleep_hours"`
	SleepQuality  string `json:"sleep_quality"`
	AlcoholIntake string `json:"alcohol_intake"`
	WaterIntake   string `json:"water_intake"`
	DietQuality   string `json:"diet_quality"`
	OverallHealth string `json:"overall_health"`

	// Urinalysis dipstick
	URLeukocytes      string `json:"ur_leukocytes"`
	URNitrites        string `json:"ur_nitrites"`
	URProtein         string `json:"ur_protein"`
	URBlood           string `json:"ur_blood"`
	URGlucose         string `json:"ur_glucose"`
	URKetones         string `json:"ur_ketones"`
	URBilirubin       string `json:"ur_bilirubin"`
	URUrobilinogen    string `json:"ur_urobilinogen"`
	URpH              string `json:"ur_ph"`
	URSpecificGravity string `json:"ur_specific_gravity"`
	URNotes           string `json:"ur_notes"` // free text

	// Consent: both fields are set together when consent is given and
	// cleared together when it is revoked.
	ConsentGiven     bool   `json:"consent_given"`
	ConsentTimestamp string `json:"consent_timestamp"`
}

// HasURDipstick reports whether any urinalysis dipstick parameter was recorded.
func (r *AssessmentRecord) HasURDipstick() bool {
	return r.URLeukocytes != "" || r.URNitrites != "" || r.URProtein != "" ||
		r.URBlood != "" || r.URGlucose != "" || r.URKetones != "" ||
		r.URBilirubin != "" || r.URUrobilinogen != "" || r.URpH != "" ||
		r.URSpecificGravity != ""
}

// WellbeingDomainIDs lists the ten self-rated wellbeing domains in report order.
var WellbeingDomainIDs = []string{
	"wbEnergy", "wbSleep", "wbMood", "wbActivity", "wbNutrition",
	"wbSocial", "wbStress", "wbWorkLife", "wbPurpose", "wbLifeSatisfaction",
}

// WellbeingScores returns the domain scores keyed by domain id.
func (r *AssessmentRecord) WellbeingScores() map[string]string {
	return map[string]string{
		"wbEnergy":           r.WBEnergy,
		"wbSleep":            r.WBSleep,
		"wbMood":             r.WBMood,
		"wbActivity":         r.WBActivity,
		"wbNutrition":        r.WBNutrition,
		"wbSocial":           r.WBSocial,
		"wbStress":           r.WBStress,
		"wbWorkLife":         r.WBWorkLife,
		"wbPurpose":          r.WBPurpose,
		"wbLifeSatisfaction": r.WBLifeSatisfaction,
	}
}
