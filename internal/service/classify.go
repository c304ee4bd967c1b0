// Package service implements the classification engine and the report
// service that drives the advice composers.
package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/corezen-health/screening-server/internal/domain"
)

// The classification engine: pure threshold functions mapping raw fields to
// category labels. A field that does not parse as a number yields the empty
// category, which callers treat as "insufficient data" rather than an error.

// formatOneDecimal rounds to one decimal place and formats with a fixed
// single decimal, e.g. 25.9951 -> "26.0".
func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// CalculateAge computes whole years elapsed between a day/month/year date of
// birth and the supplied date. Both "/" and "." separators are accepted.
// The reference date is injected so the engine stays deterministic.
func CalculateAge(dob string, today time.Time) string {
	if dob == "" {
		return ""
	}
	parts := strings.Split(strings.ReplaceAll(dob, ".", "/"), "/")
	if len(parts) != 3 {
		return ""
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	age := today.Year() - year
	if int(today.Month()) < month || (int(today.Month()) == month && today.Day() < day) {
		age--
	}
	return strconv.Itoa(age)
}

// CalculateBMI returns weight divided by height squared, one decimal place.
func CalculateBMI(heightCm, weightKg string) string {
	h, err1 := strconv.ParseFloat(heightCm, 64)
	w, err2 := strconv.ParseFloat(weightKg, 64)
	if err1 != nil || err2 != nil || h == 0 || w == 0 {
		return ""
	}
	hm := h / 100
	return formatOneDecimal(w / (hm * hm))
}

// ClassifyBMI maps a BMI value onto the NHS aligned categories.
func ClassifyBMI(bmi string) string {
	v, err := strconv.ParseFloat(bmi, 64)
	if err != nil {
		return ""
	}
	switch {
	case v < 18.5:
		return domain.BMIUnderweight
	case v < 25:
		return domain.BMIHealthy
	case v < 30:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// ClassifyBloodPressure evaluates the (systolic, diastolic) pair. The
// branches are ordered first-match-wins because the thresholds overlap on a
// single axis.
func ClassifyBloodPressure(systolic, diastolic string) string {
	sys, err1 := strconv.ParseFloat(systolic, 64)
	dia, err2 := strconv.ParseFloat(diastolic, 64)
	if err1 != nil || err2 != nil {
		return ""
	}
	switch {
	case sys < 90 && dia < 60:
		return domain.BPLow
	case sys >= 180 || dia >= 120:
		return domain.BPVeryHigh
	case sys >= 160 || dia >= 100:
		return domain.BPHigh
	case sys >= 140 || dia >= 90:
		return domain.BPRaised
	case sys >= 130 || dia >= 85:
		return domain.BPHigherEnd
	case sys >= 120 || dia >= 80:
		return domain.BPNormal
	default:
		return domain.BPOptimal
	}
}

// ClassifyPulse maps a resting pulse onto the typical adult range.
func ClassifyPulse(pulse string) string {
	v, err := strconv.ParseFloat(pulse, 64)
	if err != nil {
		return ""
	}
	switch {
	case v >= 60 && v <= 100:
		return domain.PulseNormal
	case v < 60:
		return domain.PulseBelow
	default:
		return domain.PulseAbove
	}
}

// AssessCholesterol derives per-analyte statuses, the TC/HDL and LDL/HDL
// ratios, non-HDL cholesterol, the ratio risk tier and the overall tier.
// Analytes that fail to parse simply leave their status empty.
func AssessCholesterol(totalChol, ldl, hdl, triglycerides string) domain.CholesterolAssessment {
	var out domain.CholesterolAssessment
	tc, tcErr := strconv.ParseFloat(totalChol, 64)
	h, hErr := strconv.ParseFloat(hdl, 64)
	l, lErr := strconv.ParseFloat(ldl, 64)
	tg, tgErr := strconv.ParseFloat(triglycerides, 64)

	if tcErr == nil {
		switch {
		case tc < 5:
			out.TotalStatus = "Desirable"
		case tc < 6.5:
			out.TotalStatus = "Borderline high"
		default:
			out.TotalStatus = "High"
		}
	}

	if hErr == nil {
		switch {
		case h > 1.2:
			out.HDLStatus = "Good protective level"
		case h > 1.0:
			out.HDLStatus = "Moderate level"
		default:
			out.HDLStatus = "Low, needs improvement"
		}
	}

	if lErr == nil {
		switch {
		case l < 3:
			out.LDLStatus = "Optimal"
		case l < 4.1:
			out.LDLStatus = "Borderline high"
		default:
			out.LDLStatus = "High"
		}
	}

	if tgErr == nil {
		switch {
		case tg < 2.3:
			out.TriglyceridesStatus = "Desirable"
		case tg < 4.5:
			out.TriglyceridesStatus = "Borderline high"
		default:
			out.TriglyceridesStatus = "High"
		}
	}

	if tcErr == nil && hErr == nil && h > 0 {
		ratio := tc / h
		out.Ratio = formatOneDecimal(ratio)
		out.NonHDL = formatOneDecimal(tc - h)
		switch {
		case ratio < 4:
			out.RiskLevel = domain.RatioLowRisk
		case ratio < 5:
			out.RiskLevel = domain.RatioModerateRisk
		default:
			out.RiskLevel = domain.RatioHighRisk
		}
	}

	if lErr == nil && hErr == nil && h > 0 {
		out.LDLHDLRatio = formatOneDecimal(l / h)
	}

	switch {
	case (tcErr == nil && (tc >= 6.5 || out.RiskLevel == domain.RatioHighRisk)) || (lErr == nil && l >= 4.1):
		out.Overall = domain.LipidsRaised
	case tcErr == nil && (tc >= 5 || out.RiskLevel == domain.RatioModerateRisk):
		out.Overall = domain.LipidsBorderline
	case tcErr == nil:
		out.Overall = domain.LipidsHealthy
	}

	return out
}

// ChalderTotal sums whichever of the eleven items were answered. A partially
// completed scale sums only the answered items against the nominal 110
// ceiling; it is not rescaled. Empty if no item was answered.
func ChalderTotal(chalder map[string]string) string {
	total, count := 0, 0
	for i := 1; i <= 11; i++ {
		val, ok := chalder[strconv.Itoa(i)]
		if !ok || val == "" {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		total += n
		count++
	}
	if count == 0 {
		return ""
	}
	return strconv.Itoa(total)
}

// ClassifyFatigue maps a Chalder total onto severity levels.
func ClassifyFatigue(score string) string {
	v, err := strconv.Atoi(score)
	if err != nil {
		return ""
	}
	switch {
	case v < 20:
		return domain.FatigueMinimal
	case v < 40:
		return domain.FatigueMild
	case v < 70:
		return domain.FatigueModerate
	default:
		return domain.FatigueSignificant
	}
}

// WellbeingAverage is the mean of whichever of the ten domain scores are
// numeric, one decimal place. Empty if none were answered.
func WellbeingAverage(scores map[string]string) string {
	var sum float64
	count := 0
	for _, id := range domain.WellbeingDomainIDs {
		v, err := strconv.ParseFloat(scores[id], 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return ""
	}
	return strconv.FormatFloat(sum/float64(count), 'f', 1, 64)
}

// ClassifyWellbeing maps the ten-domain average onto categories.
func ClassifyWellbeing(avg string) string {
	v, err := strconv.ParseFloat(avg, 64)
	if err != nil {
		return ""
	}
	switch {
	case v >= 8:
		return domain.WellbeingStrong
	case v >= 6:
		return domain.WellbeingGood
	case v >= 4:
		return domain.WellbeingNeedsSupport
	default:
		return domain.WellbeingLow
	}
}

// Derive recomputes the full set of derived values for a record. It is pure:
// the reference date is a parameter and the record is never retained.
func Derive(r *domain.AssessmentRecord, today time.Time) domain.DerivedValues {
	bmi := CalculateBMI(r.Height, r.Weight)
	fatigueScore := ChalderTotal(r.Chalder)
	wbAvg := WellbeingAverage(r.WellbeingScores())
	return domain.DerivedValues{
		Age:               CalculateAge(r.DateOfBirth, today),
		BMI:               bmi,
		BMIClass:          ClassifyBMI(bmi),
		BPClass:           ClassifyBloodPressure(r.BPSystolic, r.BPDiastolic),
		PulseClass:        ClassifyPulse(r.PulseRate),
		Cholesterol:       AssessCholesterol(r.TotalCholesterol, r.LDLCholesterol, r.HDLCholesterol, r.Triglycerides),
		FatigueScore:      fatigueScore,
		FatigueLevel:      ClassifyFatigue(fatigueScore),
		WellbeingAverage:  wbAvg,
		WellbeingCategory: ClassifyWellbeing(wbAvg),
	}
}
