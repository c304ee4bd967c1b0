package advice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Priority composes the four week action plan. Each week bucket is one
// segment whose items depend on the derived results; weeks with no items are
// omitted entirely.
func Priority(r *domain.AssessmentRecord, d domain.DerivedValues) []domain.Segment {
	bp := d.BPClass
	bmiVal, bmiErr := strconv.ParseFloat(d.BMI, 64)
	weight, weightErr := strconv.ParseFloat(r.Weight, 64)
	fatigueLevel := lower(d.FatigueLevel)
	wbAvg, wbErr := strconv.ParseFloat(d.WellbeingAverage, 64)
	diet := lower(r.DietPattern)
	wheelchair := IsWheelchairUser(r.MobilityLevel)
	mobilityLimited := HasMobilityLimitation(r.MobilityLevel)
	postExertional := r.FRWorseAfterActivity == "Yes"

	out := []domain.Segment{
		labeled("Your 4 week action plan:", "This plan is tailored to your results today. It focuses on practical and realistic steps you can repeat consistently."),
	}

	var w1 []domain.Segment
	switch {
	case strings.Contains(bp, "Very high") || strings.Contains(bp, "urgent"):
		w1 = append(w1, seg(
			bold("Blood pressure:"),
			text(" Your reading today ("),
			user(r.BPSystolic),
			text("/"),
			user(r.BPDiastolic),
			text(" mmHg) is very high. Contact your GP surgery today for further assessment. If you experience chest pain, severe headache, breathlessness, confusion or visual changes, call 999 or attend A&E."),
		))
	case strings.Contains(bp, "High reading"):
		w1 = append(w1,
			labeled("Blood pressure:", "Start home blood pressure checks for 4 to 7 days if you have a monitor. Sit quietly for 5 minutes with feet flat on the floor and cuff at heart level. Take 2 readings (1 minute apart) morning and evening. Book a GP appointment within 1 to 2 weeks and bring your readings."),
			labeled("Corezen follow up:", "Rebook with Corezen Health in 1 to 2 weeks for a repeat screening if you would like support interpreting your home readings."),
		)
	case strings.Contains(bp, "Raised reading"):
		w1 = append(w1,
			labeled("Blood pressure:", "Your reading is above the recommended range. Book a routine GP appointment to discuss whether home monitoring is needed. Consider lifestyle changes including reducing salt and increasing physical activity."),
			labeled("Corezen follow up:", "Rebook with Corezen Health in 2 to 4 weeks for a repeat screening to track your progress."),
		)
	case strings.Contains(bp, "Higher end"):
		w1 = append(w1, labeled("Blood pressure:", "Your blood pressure is at the higher end of normal. This is a good time to start one preventive habit such as reducing salt in meals or adding daily movement."))
	case r.BPSystolic != "" && r.BPDiastolic != "":
		w1 = append(w1, labeled("Blood pressure:", "Your blood pressure is in a healthy range. Continue your current routine and use the plan below to maintain long term heart health."))
	}

	if bmiErr == nil && bmiVal >= 25 && weightErr == nil {
		target := math.Round(weight * 0.05)
		w1 = append(w1, labeled("Weight focus:", fmt.Sprintf("Aim for an initial %.0f kg reduction over the next 10 to 12 weeks using steady and sustainable changes. This can improve blood pressure, cholesterol and energy.", target)))
		if strings.Contains(diet, "vegan") {
			w1 = append(w1, labeled("Food choice this week:", "Add one fibre rich swap daily such as oats, beans, lentils or chickpeas. Reduce one ultra processed snack or sugary drink. Focus on whole plant foods for sustained energy."))
		} else {
			w1 = append(w1, labeled("Food choice this week:", "Add one fibre rich swap daily (such as oats, wholegrain bread, beans or lentils) and reduce one ultra processed snack or sugary drink."))
		}
	} else if bmiErr == nil && bmiVal < 18.5 {
		w1 = append(w1, labeled("Weight focus:", "Your BMI is below the typical range. Arrange a GP review and focus on regular meals with protein and healthy fats to support energy and nutrition."))
	}

	if strings.Contains(lower(d.Cholesterol.Overall), "raised") {
		if strings.Contains(diet, "vegan") {
			w1 = append(w1, labeled("Cholesterol focus:", "Prioritise soluble fibre daily (oats, beans, lentils, chickpeas, fruit and vegetables). Include plant based omega 3 sources such as chia seeds, flaxseed and walnuts. Choose whole plant fats like avocado, nuts and olive oil."))
		} else {
			w1 = append(w1, labeled("Cholesterol focus:", "Prioritise soluble fibre daily (oats, beans, lentils, chickpeas, fruit and vegetables) and swap saturated fats for unsaturated fats (olive oil, nuts, seeds, avocado and oily fish)."))
		}
	}

	switch {
	case strings.Contains(fatigueLevel, "moderate") || strings.Contains(fatigueLevel, "significant") || strings.Contains(fatigueLevel, "severe"):
		w1 = append(w1,
			labeled("Energy focus:", "Your fatigue score suggests "+fatigueLevel+". Book a GP appointment to discuss fatigue and consider routine blood tests to rule out common causes such as anaemia and thyroid function."),
			labeled("Sleep focus:", "Set a consistent sleep and wake time and reduce caffeine after 2pm."),
		)
	case strings.Contains(fatigueLevel, "mild"):
		switch {
		case wheelchair:
			w1 = append(w1, labeled("Energy focus:", "Start a simple routine with a consistent bedtime, morning daylight exposure and adapted upper body movement to support sleep and energy."))
		case mobilityLimited:
			w1 = append(w1, labeled("Energy focus:", "Start a simple routine with a consistent bedtime, morning daylight exposure and gentle chair based activity to support sleep and energy."))
		default:
			w1 = append(w1, labeled("Energy focus:", "Start a simple routine with a consistent bedtime, morning daylight exposure and a short daily walk to support sleep and energy."))
		}
	}

	if len(w1) > 0 {
		out = append(out, joined("Week 1 (Days 1 to 7):", w1))
	}

	var w2 []domain.Segment
	if strings.Contains(bp, "High reading") || strings.Contains(bp, "Raised reading") {
		w2 = append(w2, labeled("Blood pressure:", "Continue home blood pressure checks if using a monitor. If your average remains raised, keep your GP appointment and take your readings with you."))
	}
	switch {
	case wheelchair:
		w2 = append(w2, labeled("Movement:", "Build your adapted activity sessions this week. Aim for 3 sessions of 15 to 20 minutes of upper body exercises, resistance band work or seated stretching. A physiotherapist can help create a safe and effective plan for you."))
	case mobilityLimited:
		w2 = append(w2, labeled("Movement:", "Build your chair based or supported activity sessions this week. Aim for 3 sessions of 15 to 20 minutes of chair exercises, resistance band work or seated stretching."))
	case postExertional:
		w2 = append(w2, labeled("Movement:", "Given your post-exertional symptoms, focus on very gentle paced activity. Aim for 3 sessions of 5 to 10 minutes maximum with full recovery between sessions. Only increase if you are recovering well the next day."))
	case bmiErr == nil && bmiVal >= 25:
		w2 = append(w2, labeled("Movement:", "Build towards 150 minutes per week of moderate activity over time. This week aim for 3 sessions of 20 minutes brisk walking or equivalent."))
	default:
		w2 = append(w2, labeled("Movement:", "Aim for 10 to 20 minutes of walking or gentle activity on most days to support heart health and mood."))
	}
	out = append(out, joined("Week 2 (Days 8 to 14):", w2))

	w3 := []domain.Segment{
		labeled("Consolidate:", "Refine your routine. Choose the one change that felt easiest and repeat it daily."),
	}
	if fatigueLevel != "" {
		w3 = append(w3, labeled("Energy:", "Add one recovery habit such as 10 minutes of wind down time before bed with no screens or a short daytime break for breathing and relaxation."))
	}
	if wbErr == nil && wbAvg < 6 {
		w3 = append(w3, labeled("Wellbeing:", "Review the areas you scored lowest and pick one small and measurable step to improve it this week."))
	}
	out = append(out, joined("Week 3 (Days 15 to 21):", w3))

	w4 := []domain.Segment{
		labeled("Review:", "Look back at your week to week progress and note what helped most (food, movement, sleep or stress management)."),
	}
	if strings.Contains(bp, "High") || strings.Contains(bp, "Raised") {
		w4 = append(w4, labeled("Blood pressure:", "Bring your home blood pressure averages to your GP if requested and discuss whether ongoing monitoring or treatment is needed."))
	}
	w4 = append(w4, labeled("Corezen follow up:", "Rebook with Corezen Health for a follow up screening to recheck blood pressure, weight and BMI and (if applicable) cholesterol, fatigue scores and wellbeing. We will adjust your plan based on your progress."))
	out = append(out, joined("Week 4 (Days 22 to 28):", w4))

	resources := seg(bold("Helpful resources:"))
	if r.Smoker == "Yes" {
		resources = resources.Append(text(" Stop smoking support is available via NHS Smokefree at nhs.uk/better-health/quit-smoking or by calling 0300 123 1044. Your local pharmacy can also provide free support."))
	}
	if r.Alcohol == "Yes" {
		resources = resources.Append(text(" Alcohol guidance and support is available at drinkaware.co.uk. Drinkline is available on 0300 123 1110."))
	}
	resources = resources.Append(
		text(" British Heart Foundation at bhf.org.uk provides heart health information and support."),
		text(" Every Mind Matters at nhs.uk/every-mind-matters provides free self care resources for stress, sleep, mood and anxiety."),
		text(" If symptoms worsen or you feel unwell, contact your GP or call NHS 111."),
	)
	return append(out, resources)
}
