package advice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corezen-health/screening-server/internal/domain"
)

func plainTexts(segs []domain.Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Plain()
	}
	return out
}

func containsSegment(t *testing.T, segs []domain.Segment, substr string) bool {
	t.Helper()
	for _, s := range segs {
		if strings.Contains(s.Plain(), substr) {
			return true
		}
	}
	return false
}

func TestBloodPressureVeryHigh(t *testing.T) {
	r := &domain.AssessmentRecord{BPSystolic: "182", BPDiastolic: "125"}
	segs := BloodPressure(r, domain.BPVeryHigh)

	require.NotEmpty(t, segs)
	assert.True(t, containsSegment(t, segs, "(182/125 mmHg) is very high"))
	assert.True(t, containsSegment(t, segs, "call 999 or attend A&E"))
	assert.False(t, containsSegment(t, segs, "Smoking:"), "no smoking advice without a smoker answer")
	assert.False(t, containsSegment(t, segs, "Alcohol:"), "no alcohol advice without a drinker answer")
}

func TestBloodPressureReadingIsUserText(t *testing.T) {
	r := &domain.AssessmentRecord{BPSystolic: "145", BPDiastolic: "92"}
	segs := BloodPressure(r, domain.BPRaised)

	found := false
	for _, s := range segs {
		for _, run := range s.Runs {
			if run.UserText && run.Text == "145" {
				found = true
			}
		}
	}
	assert.True(t, found, "systolic reading should be marked as user text")
}

func TestBloodPressureDietAndMobilityIndependent(t *testing.T) {
	// Diet branches affect food lines and mobility branches affect movement
	// lines; they must not interfere with each other.
	base := domain.AssessmentRecord{BPSystolic: "125", BPDiastolic: "82"}

	veganWheelchair := base
	veganWheelchair.DietPattern = domain.DietVegan
	veganWheelchair.MobilityLevel = domain.MobilityWheelchair
	segs := BloodPressure(&veganWheelchair, domain.BPNormal)
	assert.True(t, containsSegment(t, segs, "Vegan protein:"))
	assert.True(t, containsSegment(t, segs, "Movement for wheelchair users:"))

	veganOnly := base
	veganOnly.DietPattern = domain.DietVegan
	segs = BloodPressure(&veganOnly, domain.BPNormal)
	assert.True(t, containsSegment(t, segs, "Vegan protein:"))
	assert.False(t, containsSegment(t, segs, "Movement for wheelchair users:"))

	wheelchairOnly := base
	wheelchairOnly.MobilityLevel = domain.MobilityWheelchair
	segs = BloodPressure(&wheelchairOnly, domain.BPNormal)
	assert.False(t, containsSegment(t, segs, "Vegan protein:"))
	assert.True(t, containsSegment(t, segs, "Movement for wheelchair users:"))
}

func TestBloodPressureLowOmitsLifestyleBlock(t *testing.T) {
	r := &domain.AssessmentRecord{BPSystolic: "85", BPDiastolic: "55", Smoker: "Yes"}
	segs := BloodPressure(r, domain.BPLow)
	assert.True(t, containsSegment(t, segs, "lower than typical"))
	assert.False(t, containsSegment(t, segs, "Food choices:"))
	assert.True(t, containsSegment(t, segs, "low blood pressure"))
}

func TestBMIObeseTarget(t *testing.T) {
	r := &domain.AssessmentRecord{Height: "170", Weight: "100", DietPattern: domain.DietVegetarian}
	segs := BMI(r, domain.BMIObese)
	assert.True(t, containsSegment(t, segs, "about 5 to 10 kg"))
	assert.True(t, containsSegment(t, segs, "Vegetarian protein:"))
}

func TestBMIOverweightTargetOmittedWithoutWeight(t *testing.T) {
	r := &domain.AssessmentRecord{}
	segs := BMI(r, domain.BMIOverweight)
	assert.False(t, containsSegment(t, segs, "Realistic target:"))
}

func TestPulsePersonalFactors(t *testing.T) {
	r := &domain.AssessmentRecord{
		PulseRate:      "104",
		Smoker:         "Yes",
		FRSleepQuality: "3",
		FRStressLevel:  "8",
	}
	segs := Pulse(r, domain.PulseAbove)
	joined := strings.Join(plainTexts(segs), "\n")
	assert.Contains(t, joined, "Based on your responses:")
	assert.Contains(t, joined, "You noted that you smoke.")
	assert.Contains(t, joined, "poor sleep quality")
	assert.Contains(t, joined, "high stress levels")
	assert.Contains(t, joined, "(104 bpm) is above the typical range")
}

func TestPulseNormalNoPersonalSection(t *testing.T) {
	r := &domain.AssessmentRecord{PulseRate: "72"}
	segs := Pulse(r, domain.PulseNormal)
	assert.False(t, containsSegment(t, segs, "Based on your responses:"))
}

func TestFatiguePostExertionalPacing(t *testing.T) {
	r := &domain.AssessmentRecord{
		FRWorseAfterActivity: "Yes",
		FRRecoveryTime:       "3-7 days",
	}
	segs := Fatigue(r, domain.FatigueModerate)
	assert.True(t, containsSegment(t, segs, "take several days to recover"))
	assert.True(t, containsSegment(t, segs, "pacing is essential"))
	assert.True(t, containsSegment(t, segs, "GP review:"))
}

func TestFatigueMinimalSkipsGPReview(t *testing.T) {
	segs := Fatigue(&domain.AssessmentRecord{}, domain.FatigueMinimal)
	assert.True(t, containsSegment(t, segs, "within a healthier range"))
	assert.False(t, containsSegment(t, segs, "GP review:"))
}

func TestWellbeingStressors(t *testing.T) {
	r := &domain.AssessmentRecord{
		WellbeingStressors: []string{"Work / workload", "Finances"},
	}
	segs := Wellbeing(r, "5.0")
	assert.True(t, containsSegment(t, segs, "Work stress:"))
	assert.True(t, containsSegment(t, segs, "Financial stress:"))
	assert.False(t, containsSegment(t, segs, "Caring responsibilities:"))
	assert.True(t, containsSegment(t, segs, "a few areas that could be improved"))
}

func TestWellbeingLowScore(t *testing.T) {
	segs := Wellbeing(&domain.AssessmentRecord{}, "3.0")
	assert.True(t, containsSegment(t, segs, "struggling at the moment"))
	assert.True(t, containsSegment(t, segs, "One anchor habit:"))
}

func TestUrinalysisEmptyRecord(t *testing.T) {
	assert.Empty(t, Urinalysis(&domain.AssessmentRecord{}))
}

func TestUrinalysisAllNormal(t *testing.T) {
	r := &domain.AssessmentRecord{
		URLeukocytes: domain.DipstickNegative,
		URNitrites:   domain.DipstickNegative,
		URpH:         "6.0",
	}
	segs := Urinalysis(r)
	assert.True(t, containsSegment(t, segs, "within normal limits"))
	assert.True(t, containsSegment(t, segs, "Your urine pH was 6.0"))
	assert.False(t, containsSegment(t, segs, "Findings noted:"))
}

func TestUrinalysisUTIPattern(t *testing.T) {
	r := &domain.AssessmentRecord{
		URLeukocytes: "+2 (Moderate)",
		URNitrites:   domain.DipstickPositive,
	}
	segs := Urinalysis(r)
	assert.True(t, containsSegment(t, segs, "Findings noted: Leukocytes: +2 (Moderate). Nitrites: Positive."))
	assert.True(t, containsSegment(t, segs, "urinary tract infection"))
}

func TestContextEmptyRecord(t *testing.T) {
	assert.Empty(t, Context(&domain.AssessmentRecord{}))
}

func TestContextWheelchairAndDiabetes(t *testing.T) {
	r := &domain.AssessmentRecord{
		MobilityLevel: domain.MobilityWheelchair,
		DiabetesType:  "Type 2",
	}
	segs := Context(r)
	assert.True(t, containsSegment(t, segs, "Wheelchair user:"))
	assert.True(t, containsSegment(t, segs, "activityalliance.org.uk"))
	assert.True(t, containsSegment(t, segs, "diabetes.org.uk"))
	assert.False(t, containsSegment(t, segs, "Movement with limited mobility:"))
}

func TestPriorityWeekBuckets(t *testing.T) {
	r := &domain.AssessmentRecord{BPSystolic: "165", BPDiastolic: "98", Weight: "90", Height: "170"}
	d := domain.DerivedValues{BPClass: domain.BPHigh, BMI: "31.1", BMIClass: domain.BMIObese}

	segs := Priority(r, d)
	joined := strings.Join(plainTexts(segs), "\n")
	assert.Contains(t, joined, "Week 1 (Days 1 to 7):")
	assert.Contains(t, joined, "Start home blood pressure checks")
	assert.Contains(t, joined, "Week 2 (Days 8 to 14):")
	assert.Contains(t, joined, "Week 3 (Days 15 to 21):")
	assert.Contains(t, joined, "Week 4 (Days 22 to 28):")
	assert.Contains(t, joined, "Weight focus:")
}

func TestPriorityOmitsWeekOneWhenNothingApplies(t *testing.T) {
	segs := Priority(&domain.AssessmentRecord{}, domain.DerivedValues{})
	joined := strings.Join(plainTexts(segs), "\n")
	assert.NotContains(t, joined, "Week 1")
	assert.Contains(t, joined, "Week 2 (Days 8 to 14):")
	assert.Contains(t, joined, "Week 3 (Days 15 to 21):")
	assert.Contains(t, joined, "Week 4 (Days 22 to 28):")
}

func TestPriorityVeryHighLeadsWithUrgentAction(t *testing.T) {
	r := &domain.AssessmentRecord{BPSystolic: "182", BPDiastolic: "125"}
	d := domain.DerivedValues{BPClass: domain.BPVeryHigh}
	segs := Priority(r, d)

	require.GreaterOrEqual(t, len(segs), 2)
	week1 := segs[1].Plain()
	assert.Contains(t, week1, "Week 1 (Days 1 to 7):")
	assert.Contains(t, week1, "(182/125 mmHg) is very high")
	assert.Contains(t, week1, "call 999 or attend A&E")
}
