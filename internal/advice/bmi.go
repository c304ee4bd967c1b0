package advice

import (
	"fmt"
	"math"
	"strconv"

	"github.com/corezen-health/screening-server/internal/domain"
)

// BMI composes the body mass index section for the given category.
func BMI(r *domain.AssessmentRecord, category string) []domain.Segment {
	diet := lower(r.DietPattern)
	weight, weightErr := strconv.ParseFloat(r.Weight, 64)

	common := []domain.Segment{
		labeled("What this means:", "BMI (Body Mass Index) is a screening tool that compares your weight to your height. It does not directly measure body fat or muscle composition so it is interpreted alongside your wider health context. Athletes and people with higher muscle mass may have a higher BMI without increased health risk."),
		labeled("Waist measurement:", "Waist circumference can add useful context. A higher waist size is linked to higher cardiometabolic risk even when BMI appears normal."),
	}

	nutrition := buildNutritionAdvice(diet)
	movement := buildMovementAdvice(r.MobilityLevel, r.ActivityBarriers)

	switch category {
	case domain.BMIUnderweight:
		out := append([]domain.Segment{}, common...)
		out = append(out,
			labeled("Your result:", "Your BMI is below the usual healthy range. If this is new, unintentional or accompanied by symptoms such as appetite change, bowel changes or fatigue, GP review is recommended."),
			labeled("Food approach:", "Prioritise nutrient dense calories. Add olive oil, nut butters, avocado and full fat yoghurt (if you consume dairy) and include extra snacks between meals. Include protein with every meal to support muscle maintenance."),
			labeled("Action needed:", "Consider arranging a GP review to discuss possible underlying causes and receive tailored support."),
		)
		out = append(out, movement...)
		return append(out, signpostWeight)

	case domain.BMIObese:
		out := append([]domain.Segment{}, common...)
		out = append(out, labeled("Your result:", "Your BMI is in a range associated with increased risk of type 2 diabetes, high blood pressure, sleep apnoea and cardiovascular disease. The most effective approach is steady and sustainable change."))
		if weightErr == nil && weight > 0 {
			min := math.Max(1, math.Round(weight*0.05))
			max := math.Max(2, math.Round(weight*0.10))
			out = append(out, labeled("Realistic target:", fmt.Sprintf("A first target of 5 to 10 percent weight loss (about %.0f to %.0f kg) over the next 3 to 6 months. Even this modest change can improve blood pressure, cholesterol and energy levels.", min, max)))
		}
		out = append(out, nutrition...)
		out = append(out, movement...)
		out = append(out,
			labeled("Action needed:", "If your BMI is significantly elevated or you have related conditions, your GP can discuss structured weight management options and additional support. Rebook with Corezen Health in 4 to 8 weeks to track your progress."),
			signpostWeight,
		)
		return out

	case domain.BMIOverweight:
		out := append([]domain.Segment{}, common...)
		out = append(out, labeled("Your result:", "Your BMI is above the healthy range. Even modest weight loss of 5 to 10 percent can improve blood pressure, cholesterol and energy levels."))
		if weightErr == nil && weight > 0 {
			target := math.Max(1, math.Round(weight*0.05))
			out = append(out, labeled("Realistic target:", fmt.Sprintf("A practical first target is around %.0f kg over 10 to 12 weeks using small and repeatable steps.", target)))
		}
		out = append(out, nutrition...)
		out = append(out, movement...)
		out = append(out,
			labeled("Corezen follow up:", "Rebook with Corezen Health in 4 to 8 weeks to review your progress."),
			signpostWeight,
		)
		return out
	}

	out := append([]domain.Segment{}, common...)
	out = append(out,
		labeled("Your result:", "Your BMI is within the healthy range which is associated with the lowest risk of weight related conditions."),
		labeled("Maintaining this:", "Continue with balanced meals, regular movement and a good sleep routine. If you have specific body composition goals, strength training twice weekly can support muscle maintenance."),
	)
	out = append(out, nutrition...)
	out = append(out, movement...)
	return append(out, signpostWeight)
}
