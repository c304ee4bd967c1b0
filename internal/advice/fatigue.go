package advice

import (
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Fatigue composes the fatigue and energy section for the given severity
// level. Personalised paragraphs are added only where the matching answer was
// recorded.
func Fatigue(r *domain.AssessmentRecord, level string) []domain.Segment {
	lv := lower(level)
	diet := lower(r.DietPattern)
	sleep, sleepOK := firstNumeric(r.FRSleepQuality, r.SleepQuality)
	stress, stressOK := firstNumeric(r.FRStressLevel)
	needsSleepSupport := sleepOK && sleep <= 4
	highStress := stressOK && stress >= 7

	afternoonCrash := lower(r.FRAfternoonCrash)
	brainFog := r.FRBrainFog == "Yes"
	postExertional := r.FRWorseAfterActivity == "Yes"
	waterIntake := lower(firstNonEmpty(r.FRWaterIntake, r.WaterIntake))

	movementAdvice := buildFatigueMovementAdvice(r.MobilityLevel, r.ActivityBarriers, postExertional)
	foodAdvice := buildFatigueFoodAdvice(diet)

	base := []domain.Segment{
		labeled("What this suggests:", "Fatigue is often caused by multiple factors including sleep quality, stress load, physical activity levels, hydration, nutrition, pain, workload and recovery time. Your fatigue score is calculated using the validated Chalder Fatigue Scale which is widely used in clinical practice."),
	}

	if postExertional {
		if strings.Contains(r.FRRecoveryTime, "Over 7 days") || strings.Contains(r.FRRecoveryTime, "3-7 days") {
			base = append(base, labeled("Post-exertional symptoms:", "You reported that your symptoms worsen after activity and take several days to recover. This pattern is important to note. Please discuss this with your GP as it may require specific pacing strategies. Avoid pushing through fatigue as this can prolong recovery. Start with very gentle activity (5 minutes or less) and only increase when you consistently recover well the next day."))
		} else {
			base = append(base, labeled("Post-exertional symptoms:", "You reported that your symptoms worsen after activity. Pacing is important. Break activities into smaller chunks with planned rest periods. Listen to your body and stop before you feel exhausted rather than after."))
		}
	}

	if brainFog {
		base = append(base, labeled("Brain fog:", "You reported experiencing brain fog or mental fatigue. This is common with fatigue and often improves with better sleep, hydration and pacing. Keep a simple routine, use lists and reminders and avoid multitasking. If brain fog is significantly affecting your work or daily activities, discuss this with your GP."))
	}

	if strings.Contains(afternoonCrash, "severe") || strings.Contains(afternoonCrash, "moderate") {
		base = append(base, labeled("Afternoon energy dip:", "You reported a significant afternoon energy crash. This is often related to blood sugar patterns, sleep debt or dehydration. Try eating a balanced lunch with protein and fibre, staying hydrated throughout the day and if possible, a brief rest or short walk after lunch. Avoid sugary snacks which can worsen the crash."))
	}

	if r.FRCaffeineIntake == "4+" {
		base = append(base, labeled("Caffeine intake:", "You noted high caffeine consumption (4 or more drinks per day). While caffeine provides short term alertness, high intake can disrupt sleep quality and create a cycle of fatigue. Consider gradually reducing intake, especially after lunchtime and replacing with water or herbal teas."))
	}

	if strings.Contains(waterIntake, "under 1") || strings.Contains(waterIntake, "less than 1") {
		base = append(base, labeled("Hydration:", "You noted low water intake (under 1 litre per day). Dehydration is a common cause of fatigue. Aim for 1.5 to 2 litres of water or other non-caffeinated fluids daily. Keep a water bottle visible as a reminder."))
	}

	if strings.Contains(r.FRDurationFatigue, "Over 12 months") || strings.Contains(r.FRDurationFatigue, "6-12 months") {
		base = append(base, labeled("Duration of fatigue:", "You reported fatigue lasting 6 months or longer. Persistent fatigue of this duration warrants GP review to exclude underlying causes and discuss appropriate support. Please arrange an appointment if you have not already."))
	}
	if r.FRTrendFatigue == "Worse" {
		base = append(base, labeled("Fatigue trend:", "You noted your fatigue is getting worse. This is an important signal to seek GP review sooner rather than later. Worsening fatigue can indicate an underlying issue that needs investigation."))
	}

	if dq, ok := firstNumeric(r.DietQuality); ok && dq <= 4 {
		base = append(base, labeled("Diet quality:", "You rated your diet quality as low. Nutrition is closely linked to energy levels. Focus on including protein and fibre at each meal, eating at regular intervals and reducing ultra processed foods and sugary drinks. Small consistent changes can make a noticeable difference to energy."))
	}

	if r.OverallHealth == "Poor" || r.OverallHealth == "Very poor" {
		base = append(base, labeled("Overall health:", "You rated your overall health as "+lower(r.OverallHealth)+". This is worth discussing with your GP to ensure any underlying health concerns are being addressed. A comprehensive health review can help identify areas for improvement."))
	}

	if r.AlcoholIntake == "3 to 4 drinks" || r.AlcoholIntake == "5 or more drinks" {
		s := labeled("Alcohol and fatigue:", "Higher alcohol intake can significantly disrupt sleep quality and worsen fatigue. Alcohol reduces time spent in deep restorative sleep even when total sleep time appears adequate. Consider reducing intake and having alcohol free days.")
		base = append(base, appendSignpost(s, signpostAlcohol))
	}

	base = append(base,
		movementAdvice,
		foodAdvice,
		labeled("Fibre rich options:", "Include oats, wholegrain bread, brown rice, quinoa, beans, lentils, chickpeas, berries, apples, pears, vegetables and seeds such as chia or flax most days."),
		labeled("Caffeine guidance:", "Most adults can tolerate up to around 400 mg of caffeine per day (roughly 4 cups of brewed filter coffee or 5 cups of instant coffee or 8 cups of tea). If sleep is affected, reduce intake after lunchtime and switch to decaffeinated or herbal options."),
		labeled("Breathing reset:", "Try a 4, 4, 6 pattern. Breathe in through your nose for 4 seconds, hold for 4 seconds and breathe out slowly for 6 seconds. Repeat for 3 to 5 minutes once or twice daily and before bed if your mind feels busy."),
		labeled("Pacing technique:", "Choose one task you usually push through. Break it into small chunks with a planned pause before you feel exhausted. Work for up to 20 minutes then pause for 2 minutes to stretch, drink water or practise breathing. Increase duration gradually only when you are recovering well the next day."),
		labeled("Follow up:", "Consider booking a Corezen Health follow up in 2 to 4 weeks to review progress and adjust your plan. Seek GP input sooner if you have red flag symptoms such as chest pain, fainting, severe breathlessness, unexplained weight loss, persistent fever or new neurological symptoms."),
		signpostFatigue,
	)

	switch {
	case strings.Contains(lv, "minimal"):
		return append([]domain.Segment{
			labeled("Your result:", "Your fatigue score is within a healthier range today. This suggests your current routines are supporting energy and recovery."),
			labeled("Maintaining this:", "Continue with what is working by staying consistent with sleep timing, hydration and regular movement."),
		}, base...)

	case strings.Contains(lv, "mild"):
		out := []domain.Segment{
			labeled("Your result:", "Your score suggests mild fatigue. Many people experience this when sleep and recovery slip, stress rises or activity and hydration reduce."),
		}
		if needsSleepSupport {
			out = append(out, labeled("Sleep focus:", "Build a steady routine. Keep a consistent wake time, reduce screens for 60 minutes before bed and keep your bedroom cool and dark. If you wake often, try a short breathing reset rather than checking the time."))
		}
		if highStress {
			out = append(out, labeled("Stress management:", "Choose one daily decompression habit such as a short walk, stretching or breathing practice for 5 minutes. Small and consistent actions matter more than occasional large efforts."))
		}
		return append(out, base...)
	}

	out := []domain.Segment{
		labeled("Your result:", "Your score suggests more significant fatigue. This is a prompt to prioritise recovery and address the biggest drivers first which are typically sleep, stress and sustainable activity."),
		labeled("GP review:", "If fatigue is persistent, worsening or affecting your daily activities significantly, please arrange a GP appointment to discuss possible underlying causes and consider routine blood tests."),
	}
	if needsSleepSupport {
		out = append(out, labeled("Sleep priority:", "Your sleep rating suggests recovery may be limited. Focus on routine, wind down time and reducing caffeine after lunchtime. If you experience loud snoring, pauses in breathing or significant daytime sleepiness, discuss this with your GP as it may indicate sleep apnoea."))
	}
	wake := lower(r.FRWakeNight)
	if strings.Contains(wake, "3") || strings.Contains(wake, "4") || strings.Contains(wake, "5") {
		out = append(out, labeled("Night waking:", "If you wake several times during the night, keep the room dark, avoid checking your phone and use breathing exercises for a few minutes. If pain, reflux or bladder symptoms are driving waking, note patterns so we can tailor your plan at follow up."))
	}
	return append(out, base...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
