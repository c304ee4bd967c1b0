package advice

import (
	"strconv"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// firstNumeric parses the first value that is a valid integer, returning ok
// false when none is.
func firstNumeric(values ...string) (int, bool) {
	for _, v := range values {
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Pulse composes the heart rate section for the given category.
func Pulse(r *domain.AssessmentRecord, category string) []domain.Segment {
	caffeineTime := lower(r.LastCaffeineTime)
	sleep, sleepOK := firstNumeric(r.FRSleepQuality, r.SleepQuality)
	stress, stressOK := firstNumeric(r.FRStressLevel)

	var personal []string
	if r.Smoker == "Yes" {
		personal = append(personal, "You noted that you smoke. Nicotine increases resting heart rate. Stopping smoking supports a healthier resting pulse and overall cardiovascular health.")
	}
	if strings.Contains(caffeineTime, "after") || strings.Contains(caffeineTime, "16:00") || r.FRCaffeineIntake == "4+" {
		personal = append(personal, "You noted higher caffeine intake. Caffeine can temporarily raise your heart rate. Consider reducing caffeine after lunchtime to support a calmer resting pulse.")
	}
	if sleepOK && sleep <= 4 {
		personal = append(personal, "You noted poor sleep quality. Poor sleep can elevate resting heart rate. Improving sleep hygiene supports a healthier resting pulse.")
	}
	if stressOK && stress >= 7 {
		personal = append(personal, "You noted high stress levels. Chronic stress activates your nervous system and can elevate resting pulse. Regular breathing exercises, physical activity and rest periods support a calmer heart rate.")
	}
	if r.Alcohol == "Yes" {
		if u, err := strconv.Atoi(strings.TrimSpace(r.AlcoholUnits)); err == nil && u > 14 {
			personal = append(personal, "Your alcohol intake is above recommended levels. Reducing alcohol can help lower resting heart rate and improve cardiovascular health.")
		}
	}

	var personalSection []domain.Segment
	if len(personal) > 0 {
		personalSection = []domain.Segment{labeled("Based on your responses:", strings.Join(personal, " "))}
	}

	movement := buildPulseMovementAdvice(r.MobilityLevel)

	switch {
	case strings.Contains(category, "Normal"):
		out := []domain.Segment{
			labeled("What this means:", "Your resting pulse is the number of times your heart beats per minute while you are at rest. A normal resting pulse for most adults is between 60 and 100 beats per minute."),
			seg(bold("Your result:"), text(" Your resting pulse ("), user(r.PulseRate), text(" bpm) is within the normal range. This generally indicates healthy cardiovascular function.")),
		}
		out = append(out, personalSection...)
		out = append(out, movement)
		return append(out, labeled("Healthy habits:", "Regular hydration, steady sleep routines and breathing practices all support a stable resting pulse over time."))

	case strings.Contains(category, "Below"):
		out := []domain.Segment{
			labeled("What this means:", "Your resting pulse is below the usual adult range of 60 to 100 beats per minute. This can be normal in very fit individuals or during deep relaxation."),
			seg(bold("Your result:"), text(" Your resting pulse today ("), user(r.PulseRate), text(" bpm) is below the typical range.")),
			labeled("When to seek advice:", "If you experience symptoms such as dizziness, faintness, breathlessness or chest discomfort, please speak to your GP. Certain medications (such as beta blockers), thyroid conditions and electrolyte imbalances can lower pulse rate."),
		}
		out = append(out, personalSection...)
		return append(out, labeled("Healthy habits:", "Staying well hydrated, maintaining steady sleep patterns and regular breathing practices all support cardiovascular health."))
	}

	out := []domain.Segment{
		labeled("What this means:", "Your resting pulse is above the usual adult range of 60 to 100 beats per minute. This can occur with stress, dehydration, pain, fever, caffeine, nicotine and poor sleep."),
		seg(bold("Your result:"), text(" Your resting pulse today ("), user(r.PulseRate), text(" bpm) is above the typical range.")),
	}
	out = append(out, personalSection...)
	out = append(out,
		labeled("Immediate steps:", "Ensure you are well hydrated, reduce caffeine and nicotine intake if applicable and allow time for rest and recovery."),
		labeled("When to seek advice:", "If you experience palpitations, chest pain, breathlessness, faintness or your pulse remains consistently elevated at rest, please speak to your GP."),
		movement,
	)
	return out
}
