package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corezen-health/screening-server/internal/domain"
)

func TestClassifyBloodPressure(t *testing.T) {
	tests := []struct {
		name      string
		systolic  string
		diastolic string
		want      string
	}{
		{"low when both below thresholds", "89", "59", domain.BPLow},
		{"not low when only systolic is below", "89", "65", domain.BPOptimal},
		{"very high on systolic", "180", "119", domain.BPVeryHigh},
		{"very high on diastolic", "150", "120", domain.BPVeryHigh},
		{"high just under very high", "179", "100", domain.BPHigh},
		{"high on systolic", "160", "95", domain.BPHigh},
		{"raised on systolic", "140", "84", domain.BPRaised},
		{"raised on diastolic", "125", "90", domain.BPRaised},
		{"higher end on systolic", "130", "79", domain.BPHigherEnd},
		{"higher end on diastolic", "118", "85", domain.BPHigherEnd},
		{"normal on systolic", "120", "75", domain.BPNormal},
		{"normal on diastolic", "110", "80", domain.BPNormal},
		{"optimal", "115", "70", domain.BPOptimal},
		{"empty systolic", "", "70", ""},
		{"non numeric", "abc", "70", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBloodPressure(tt.systolic, tt.diastolic))
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name   string
		height string
		weight string
		want   string
	}{
		{"overweight boundary value", "170", "75", "26.0"},
		{"healthy value", "170", "65", "22.5"},
		{"zero height", "0", "65", ""},
		{"missing weight", "170", "", ""},
		{"non numeric height", "tall", "65", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBMI(tt.height, tt.weight))
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  string
		want string
	}{
		{"18.4", domain.BMIUnderweight},
		{"18.5", domain.BMIHealthy},
		{"24.9", domain.BMIHealthy},
		{"25.0", domain.BMIOverweight},
		{"26.0", domain.BMIOverweight},
		{"29.9", domain.BMIOverweight},
		{"30.0", domain.BMIObese},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBMI(tt.bmi), "bmi %s", tt.bmi)
	}
}

func TestClassifyPulse(t *testing.T) {
	tests := []struct {
		pulse string
		want  string
	}{
		{"59", domain.PulseBelow},
		{"60", domain.PulseNormal},
		{"100", domain.PulseNormal},
		{"101", domain.PulseAbove},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPulse(tt.pulse), "pulse %s", tt.pulse)
	}
}

func TestCalculateAge(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want string
	}{
		{"birthday passed this year", "01/03/1980", "45"},
		{"birthday not yet reached", "20/11/1980", "44"},
		{"birthday today", "15/06/1980", "45"},
		{"dot separators", "01.03.1980", "45"},
		{"empty", "", ""},
		{"two parts", "03/1980", ""},
		{"month out of range", "01/13/1980", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAge(tt.dob, today))
		})
	}
}

func TestAssessCholesterol(t *testing.T) {
	t.Run("healthy panel", func(t *testing.T) {
		got := AssessCholesterol("4.2", "2.1", "1.5", "1.1")
		assert.Equal(t, "Desirable", got.TotalStatus)
		assert.Equal(t, "Good protective level", got.HDLStatus)
		assert.Equal(t, "Optimal", got.LDLStatus)
		assert.Equal(t, "Desirable", got.TriglyceridesStatus)
		assert.Equal(t, "2.8", got.Ratio)
		assert.Equal(t, "2.7", got.NonHDL)
		assert.Equal(t, "1.4", got.LDLHDLRatio)
		assert.Equal(t, domain.RatioLowRisk, got.RiskLevel)
		assert.Equal(t, domain.LipidsHealthy, got.Overall)
	})

	t.Run("raised by total cholesterol", func(t *testing.T) {
		got := AssessCholesterol("6.5", "3.5", "1.1", "1.5")
		assert.Equal(t, "High", got.TotalStatus)
		assert.Equal(t, domain.LipidsRaised, got.Overall)
	})

	t.Run("raised by LDL alone", func(t *testing.T) {
		got := AssessCholesterol("4.8", "4.1", "1.3", "1.5")
		assert.Equal(t, "High", got.LDLStatus)
		assert.Equal(t, domain.LipidsRaised, got.Overall)
	})

	t.Run("raised by high ratio", func(t *testing.T) {
		got := AssessCholesterol("6.0", "3.0", "1.1", "1.5")
		assert.Equal(t, domain.RatioHighRisk, got.RiskLevel)
		assert.Equal(t, domain.LipidsRaised, got.Overall)
	})

	t.Run("borderline by total", func(t *testing.T) {
		got := AssessCholesterol("5.2", "2.8", "1.6", "1.5")
		assert.Equal(t, "Borderline high", got.TotalStatus)
		assert.Equal(t, domain.LipidsBorderline, got.Overall)
	})

	t.Run("missing HDL leaves ratio fields empty", func(t *testing.T) {
		got := AssessCholesterol("5.2", "2.8", "", "1.5")
		assert.Empty(t, got.Ratio)
		assert.Empty(t, got.HDLStatus)
		assert.Empty(t, got.RiskLevel)
		assert.Equal(t, domain.LipidsBorderline, got.Overall)
	})

	t.Run("all missing", func(t *testing.T) {
		got := AssessCholesterol("", "", "", "")
		assert.Equal(t, domain.CholesterolAssessment{}, got)
	})
}

func TestChalderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items map[string]string
		want  string
	}{
		{"no answers", map[string]string{}, ""},
		{"nil map", nil, ""},
		{"partial answers", map[string]string{"1": "5", "2": "5"}, "10"},
		{"all elevens answered at five", map[string]string{
			"1": "5", "2": "5", "3": "5", "4": "5", "5": "5", "6": "5",
			"7": "5", "8": "5", "9": "5", "10": "5", "11": "5",
		}, "55"},
		{"non numeric answers skipped", map[string]string{"1": "x", "2": "3"}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChalderTotal(tt.items))
		})
	}
}

func TestClassifyFatigue(t *testing.T) {
	tests := []struct {
		score string
		want  string
	}{
		{"19", domain.FatigueMinimal},
		{"20", domain.FatigueMild},
		{"39", domain.FatigueMild},
		{"40", domain.FatigueModerate},
		{"55", domain.FatigueModerate},
		{"69", domain.FatigueModerate},
		{"70", domain.FatigueSignificant},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFatigue(tt.score), "score %s", tt.score)
	}
}

func TestWellbeingAverage(t *testing.T) {
	t.Run("all answered", func(t *testing.T) {
		scores := map[string]string{}
		for _, id := range domain.WellbeingDomainIDs {
			scores[id] = "8"
		}
		assert.Equal(t, "8.0", WellbeingAverage(scores))
	})

	t.Run("partial answers average the answered subset", func(t *testing.T) {
		scores := map[string]string{
			"wbEnergy": "2",
			"wbSleep":  "3",
			"wbMood":   "4",
		}
		assert.Equal(t, "3.0", WellbeingAverage(scores))
	})

	t.Run("none answered", func(t *testing.T) {
		assert.Empty(t, WellbeingAverage(map[string]string{}))
	})
}

func TestClassifyWellbeing(t *testing.T) {
	tests := []struct {
		avg  string
		want string
	}{
		{"8.0", domain.WellbeingStrong},
		{"7.9", domain.WellbeingGood},
		{"6.0", domain.WellbeingGood},
		{"5.9", domain.WellbeingNeedsSupport},
		{"4.0", domain.WellbeingNeedsSupport},
		{"3.0", domain.WellbeingLow},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyWellbeing(tt.avg), "avg %s", tt.avg)
	}
}

func TestDerive(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	rec := &domain.AssessmentRecord{
		DateOfBirth:      "01/03/1980",
		Height:           "170",
		Weight:           "75",
		BPSystolic:       "145",
		BPDiastolic:      "92",
		PulseRate:        "72",
		TotalCholesterol: "5.4",
		LDLCholesterol:   "3.2",
		HDLCholesterol:   "1.3",
		Triglycerides:    "1.8",
		Chalder: map[string]string{
			"1": "4", "2": "4", "3": "4", "4": "4", "5": "4", "6": "4",
			"7": "4", "8": "4", "9": "4", "10": "4", "11": "4",
		},
		WBEnergy: "6", WBSleep: "6", WBMood: "7", WBActivity: "6",
		WBNutrition: "7", WBSocial: "6", WBStress: "5", WBWorkLife: "6",
		WBPurpose: "7", WBLifeSatisfaction: "6",
	}

	got := Derive(rec, today)

	assert.Equal(t, "45", got.Age)
	assert.Equal(t, "26.0", got.BMI)
	assert.Equal(t, domain.BMIOverweight, got.BMIClass)
	assert.Equal(t, domain.BPRaised, got.BPClass)
	assert.Equal(t, domain.PulseNormal, got.PulseClass)
	assert.Equal(t, domain.LipidsBorderline, got.Cholesterol.Overall)
	assert.Equal(t, "44", got.FatigueScore)
	assert.Equal(t, domain.FatigueModerate, got.FatigueLevel)
	assert.Equal(t, "6.2", got.WellbeingAverage)
	assert.Equal(t, domain.WellbeingGood, got.WellbeingCategory)
}

func TestDeriveEmptyRecord(t *testing.T) {
	got := Derive(&domain.AssessmentRecord{}, time.Now())
	assert.Equal(t, domain.DerivedValues{}, got)
}
