package advice

import (
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Cholesterol composes the lipid profile section for the given overall tier.
func Cholesterol(r *domain.AssessmentRecord, overall string) []domain.Segment {
	movementLine := buildCholesterolMovementAdvice(r.MobilityLevel)

	common := []domain.Segment{
		labeled("Lifestyle factors:", "Cholesterol responds to diet pattern, weight, physical activity, smoking, alcohol and genetics. Improvements are often seen over weeks to months with consistent effort."),
		movementLine,
		labeled("Fibre focus:", "Soluble fibre helps lower LDL cholesterol. Good sources include oats, beans, lentils, chickpeas, fruit and vegetables."),
		labeled("Fat quality:", "Replacing saturated fats with unsaturated fats supports cholesterol improvement. Choose olive oil, nuts, seeds, avocado and oily fish (or plant based omega 3 sources if vegan)."),
	}
	if r.Smoker == "Yes" {
		s := labeled("Smoking:", "Stopping smoking supports cardiovascular risk reduction and improves HDL cholesterol levels.")
		common = append(common, appendSignpost(s, signpostSmoking))
	}
	common = append(common, signpostCholesterol)

	ov := lower(overall)
	switch {
	case strings.Contains(ov, "within"):
		return append([]domain.Segment{
			labeled("What this means:", "Cholesterol is a fatty substance in your blood. Your body needs it but too much can build up in your artery walls and increase the risk of heart disease and stroke. Total cholesterol, LDL (often called bad cholesterol), HDL (often called good cholesterol) and triglycerides are all measured to understand your cardiovascular risk."),
			labeled("Your result:", "Your lipid results are within a healthy range. This supports lower cardiovascular risk."),
			labeled("Maintaining this:", "Continue with healthy habits including regular physical activity and a diet pattern rich in fibre and unsaturated fats."),
		}, common...)

	case strings.Contains(ov, "borderline"):
		return append([]domain.Segment{
			labeled("What this means:", "Cholesterol is a fatty substance in your blood. LDL carries cholesterol to your arteries (higher levels are less desirable) while HDL carries it away (higher levels are protective). Your results are in a borderline range which means lifestyle changes can make a meaningful difference."),
			labeled("Your result:", "Your lipid levels are in a borderline range. This is an opportunity to focus on targeted lifestyle improvements."),
			labeled("Action needed:", "Focus on fibre intake, reducing saturated fat, regular physical activity and weight management. Reducing ultra processed foods and sugary drinks supports triglyceride reduction and overall heart health."),
		}, common...)
	}

	return append([]domain.Segment{
		labeled("What this means:", "Cholesterol is a fatty substance in your blood. Your results are in a raised range which means your cardiovascular risk may be increased."),
		labeled("Your result:", "Your lipid levels are above the desirable range."),
		labeled("Action needed:", "A GP appointment is recommended to discuss your overall cardiovascular risk, family history and whether medication may be appropriate."),
		labeled("Lifestyle still matters:", "Lifestyle changes can improve results alongside any treatment your GP recommends. Focus on fibre intake, weight management, regular physical activity and reducing saturated fats."),
		labeled("Wider picture:", "Blood pressure, diabetes status, smoking and family history all influence overall cardiovascular risk. Reviewing the full picture with your GP supports the best management plan."),
	}, common...)
}
