package advice

import (
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// BloodPressure composes the blood pressure section for the given category.
func BloodPressure(r *domain.AssessmentRecord, category string) []domain.Segment {
	diet := lower(r.DietPattern)
	mobility := r.MobilityLevel
	barrier := r.ActivityBarriers

	common := []domain.Segment{
		labeled("What this means:", "Blood pressure measures the force of blood against your artery walls. The first number (systolic) is the pressure when your heart pumps blood out. The second number (diastolic) is the pressure when your heart rests between beats. Both numbers matter for understanding your cardiovascular health."),
		labeled("Important note:", "Blood pressure can vary throughout the day depending on activity, stress, hydration, posture and time of day. A single reading provides a snapshot and may not reflect your usual level. This is a screening result and not a diagnosis."),
	}

	foodLines := buildFoodAdvice(diet)
	movementLines := buildMovementAdvice(mobility, barrier)

	var smokeLine []domain.Segment
	if r.Smoker == "Yes" {
		s := labeled("Smoking:", "Smoking raises blood pressure and damages your arteries. NHS stop smoking support through your pharmacy or GP significantly improves quit success rates.")
		smokeLine = []domain.Segment{appendSignpost(s, signpostSmoking)}
	}

	alcoholLines := buildAlcoholAdvice(r.Alcohol, r.AlcoholUnits)

	reading := func(rest string) domain.Segment {
		return seg(
			bold("Your result:"),
			text(" Your reading today ("),
			user(r.BPSystolic),
			text("/"),
			user(r.BPDiastolic),
			text(" mmHg) "+rest),
		)
	}

	lifestyle := func(out []domain.Segment) []domain.Segment {
		out = append(out, foodLines...)
		out = append(out, movementLines...)
		out = append(out, smokeLine...)
		out = append(out, alcoholLines...)
		return append(out, signpostBP)
	}

	switch {
	case strings.Contains(category, "Very high") || strings.Contains(category, "urgent"):
		out := append([]domain.Segment{}, common...)
		out = append(out,
			reading("is very high and requires prompt clinical assessment."),
			labeled("Action needed:", "Contact your GP surgery today for further assessment. If you experience chest pain, severe headache, breathlessness, visual changes, weakness, confusion or feel acutely unwell, call 999 or attend A&E immediately."),
			labeled("Follow up:", "Once you have seen your GP, you are welcome to rebook with Corezen Health for monitoring and ongoing support."),
		)
		return lifestyle(out)

	case strings.Contains(category, "High reading"):
		out := append([]domain.Segment{}, common...)
		out = append(out,
			reading("is in the high range. This is a screening finding and not a diagnosis. Further readings are needed to confirm whether this reflects your usual blood pressure."),
			labeled("Action needed:", "Book a GP appointment within 1 to 2 weeks. Your GP may arrange home or ambulatory monitoring and discuss your overall cardiovascular risk including cholesterol, diabetes and kidney health."),
			labeled("Home monitoring:", "If you have a home blood pressure monitor, take readings twice daily (morning and evening) for 4 to 7 days. Sit quietly for 5 minutes beforehand with your feet flat on the floor and cuff at heart level. Avoid talking during the reading. Record all readings and bring them to your GP."),
			labeled("Corezen follow up:", "Rebook with Corezen Health in 1 to 2 weeks if you would like support interpreting your home readings or would like a repeat clinic check."),
		)
		return lifestyle(out)

	case strings.Contains(category, "Raised reading"):
		out := append([]domain.Segment{}, common...)
		out = append(out,
			reading("is above the recommended range. This is a screening finding and not a diagnosis. Many people can improve readings with consistent lifestyle changes but GP confirmation is still important."),
			labeled("Action needed:", "Arrange a routine GP appointment to discuss your blood pressure and whether home monitoring or further assessment is needed."),
			labeled("Home monitoring:", "If requested by your GP, take readings twice daily (morning and evening) for 4 to 7 days using proper technique as described above."),
			labeled("Corezen follow up:", "Rebook with Corezen Health in 2 to 4 weeks to review your progress and repeat your screening."),
		)
		return lifestyle(out)

	case strings.Contains(category, "Higher end"):
		out := append([]domain.Segment{}, common...)
		out = append(out,
			reading("is at the higher end of the normal range. This is an ideal time to focus on preventive lifestyle measures."),
			labeled("Action needed:", "No urgent GP review is needed. Focus on lifestyle steps such as reducing salt intake, maintaining a healthy weight, regular physical activity and limiting alcohol."),
			labeled("Corezen follow up:", "Rebook with Corezen Health in 6 to 12 months for a routine recheck or sooner if you would like to monitor your progress."),
		)
		return lifestyle(out)

	case strings.Contains(category, "Low"):
		out := append([]domain.Segment{}, common...)
		return append(out,
			reading("is lower than typical. This is often normal, especially if you feel well and have no symptoms."),
			labeled("Action needed:", "If you experience dizziness, fainting, light-headedness or new symptoms, speak to your GP. Stay well hydrated and change position slowly when standing from sitting or lying."),
			labeled("Hydration:", "Aim for pale straw coloured urine throughout the day. If you take blood pressure medications and have symptoms, discuss this with your GP."),
			signpostLowBP,
		)
	}

	out := append([]domain.Segment{}, common...)
	out = append(out,
		reading("is within the healthy range. This supports long term heart and brain health."),
		labeled("Maintaining this:", "Continue with your current healthy habits. Regular physical activity, a balanced diet, maintaining a healthy weight and limiting alcohol all support cardiovascular health."),
		labeled("Corezen follow up:", "Routine screening every 1 to 2 years is recommended. Rebook with Corezen Health for your next check."),
	)
	return lifestyle(out)
}
