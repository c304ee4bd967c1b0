package advice

import (
	"strconv"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Urinalysis composes the dipstick section. It returns nothing when no
// dipstick parameter was recorded; abnormal findings each add an explanatory
// paragraph.
func Urinalysis(r *domain.AssessmentRecord) []domain.Segment {
	if !r.HasURDipstick() {
		return nil
	}

	lines := []domain.Segment{
		labeled("What this means:", "A urine dipstick test checks for substances in your urine that may indicate underlying health conditions. This is a screening test and not a diagnosis. Abnormal results may need further investigation by your GP."),
	}

	leukAbnormal := r.URLeukocytes != "" && r.URLeukocytes != domain.DipstickNegative
	nitritesPositive := r.URNitrites == domain.DipstickPositive
	proteinAbnormal := r.URProtein != "" && r.URProtein != domain.DipstickNegative
	bloodAbnormal := r.URBlood != "" && r.URBlood != domain.DipstickNegative
	glucoseAbnormal := r.URGlucose != "" && r.URGlucose != domain.DipstickNegative
	ketonesAbnormal := r.URKetones != "" && r.URKetones != domain.DipstickNegative
	bilirubinAbnormal := r.URBilirubin != "" && r.URBilirubin != domain.DipstickNegative
	urobilinogenRaised := strings.Contains(r.URUrobilinogen, "Raised")

	var findings []string
	if leukAbnormal {
		findings = append(findings, "Leukocytes: "+r.URLeukocytes)
	}
	if nitritesPositive {
		findings = append(findings, "Nitrites: Positive")
	}
	if proteinAbnormal {
		findings = append(findings, "Protein: "+r.URProtein)
	}
	if bloodAbnormal {
		findings = append(findings, "Blood: "+r.URBlood)
	}
	if glucoseAbnormal {
		findings = append(findings, "Glucose: "+r.URGlucose)
	}
	if ketonesAbnormal {
		findings = append(findings, "Ketones: "+r.URKetones)
	}
	if bilirubinAbnormal {
		findings = append(findings, "Bilirubin: "+r.URBilirubin)
	}
	if urobilinogenRaised {
		findings = append(findings, "Urobilinogen: Raised")
	}

	if len(findings) == 0 {
		lines = append(lines, labeled("Your results:", "All parameters tested are within normal limits. No further action is needed based on these results."))
		if r.URpH != "" {
			lines = append(lines, seg(bold("pH:"), text(" Your urine pH was "), user(r.URpH), text(". Normal urine pH ranges from 4.5 to 8.0. This is influenced by diet, hydration and metabolic factors.")))
		}
		if r.URSpecificGravity != "" {
			lines = append(lines, seg(bold("Specific gravity:"), text(" Your specific gravity was "), user(r.URSpecificGravity), text(". Normal range is 1.005 to 1.030. This reflects hydration status. A higher value may suggest dehydration.")))
		}
		lines = append(lines, labeled("Hydration:", "Aim for pale straw coloured urine throughout the day as a simple guide to adequate hydration."))
		return lines
	}

	lines = append(lines, labeled("Findings noted:", strings.Join(findings, ". ")+"."))

	switch {
	case leukAbnormal && nitritesPositive:
		lines = append(lines, labeled("Leukocytes and nitrites:", "The combination of leukocytes and nitrites in urine can suggest a urinary tract infection (UTI). Common symptoms include burning or stinging when passing urine, needing to pass urine more often, cloudy or strong smelling urine and lower abdominal discomfort. Please see your GP for further assessment and possible urine culture. Drink plenty of water in the meantime."))
	case leukAbnormal:
		lines = append(lines, labeled("Leukocytes:", "Leukocytes (white blood cells) in urine can indicate infection, inflammation or contamination. If you have urinary symptoms (burning, frequency, urgency), please see your GP. If you have no symptoms, this may be a normal variant but can be rechecked if needed."))
	case nitritesPositive:
		lines = append(lines, labeled("Nitrites:", "Nitrites in urine can suggest the presence of bacteria. If you have urinary symptoms, please see your GP for further assessment. Not all bacteria produce nitrites so a negative result does not rule out infection."))
	}

	if proteinAbnormal {
		lines = append(lines, labeled("Protein:", "Protein in urine (proteinuria) can be caused by vigorous exercise, fever, dehydration or urinary infection. Persistent proteinuria may indicate kidney disease. If this is a new finding or you have risk factors such as diabetes or high blood pressure, please see your GP for a repeat test and further assessment including kidney function blood tests."))
	}

	if bloodAbnormal {
		lines = append(lines, labeled("Blood:", "Blood in urine (haematuria) can be caused by infection, kidney stones, vigorous exercise or menstruation. Persistent or unexplained blood in urine requires GP assessment. Please arrange a GP appointment for further investigation including urine culture and possible referral."))
	}

	if glucoseAbnormal {
		lines = append(lines, labeled("Glucose:", "Glucose in urine (glycosuria) may suggest raised blood glucose levels. This can occur in diabetes or pre-diabetes. If you have not been tested for diabetes, please arrange a fasting blood glucose or HbA1c test with your GP. If you have known diabetes, this finding may indicate that your blood glucose levels need reviewing with your diabetes team."))
	}

	if ketonesAbnormal {
		lines = append(lines, labeled("Ketones:", "Ketones in urine can be caused by fasting, very low carbohydrate diets, prolonged vomiting or uncontrolled diabetes. If you have diabetes and ketones are present, contact your GP or diabetes team promptly as this may indicate diabetic ketoacidosis which needs urgent assessment. If you do not have diabetes, ketones may reflect dietary pattern or dehydration."))
	}

	if bilirubinAbnormal {
		lines = append(lines, labeled("Bilirubin:", "Bilirubin in urine can indicate liver or gallbladder conditions. If you have symptoms such as yellowing of the skin or eyes, dark urine, pale stools or abdominal pain, please see your GP promptly. If this is an isolated finding without symptoms, GP review is still recommended for further liver function assessment."))
	}

	if urobilinogenRaised {
		lines = append(lines, labeled("Urobilinogen:", "Raised urobilinogen can be associated with liver conditions or increased red blood cell breakdown. Please see your GP for further blood tests to assess liver function."))
	}

	if r.URpH != "" {
		lines = append(lines, seg(bold("pH:"), text(" Your urine pH was "), user(r.URpH), text(". Normal range is 4.5 to 8.0. Very alkaline urine (above 8.0) may be seen with urinary infections. Very acidic urine (below 5.0) may be seen with dehydration or high protein diets.")))
	}
	if r.URSpecificGravity != "" {
		sg, err := strconv.ParseFloat(r.URSpecificGravity, 64)
		switch {
		case err == nil && sg <= 1.005:
			lines = append(lines, seg(bold("Specific gravity:"), text(" Your specific gravity ("), user(r.URSpecificGravity), text(") is at the lower end, which may suggest dilute urine or high fluid intake. This is usually not a concern.")))
		case err == nil && sg >= 1.025:
			lines = append(lines, seg(bold("Specific gravity:"), text(" Your specific gravity ("), user(r.URSpecificGravity), text(") is at the higher end, which may suggest concentrated urine or dehydration. Try to increase your fluid intake.")))
		default:
			lines = append(lines, seg(bold("Specific gravity:"), text(" Your specific gravity ("), user(r.URSpecificGravity), text(") is within the normal range (1.005 to 1.030).")))
		}
	}

	if r.URNotes != "" {
		lines = append(lines, seg(bold("Additional notes:"), text(" "), user(r.URNotes)))
	}

	lines = append(lines,
		labeled("Hydration:", "Aim for pale straw coloured urine throughout the day as a simple guide to adequate hydration."),
		signpostUrinalysis,
	)
	return lines
}
