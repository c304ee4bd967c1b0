package advice

import (
	"strconv"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Wellbeing composes the overall wellbeing section from the ten-domain
// average. Mood, stressor, shift work and openness answers add personalised
// paragraphs between the result line and the shared guidance.
func Wellbeing(r *domain.AssessmentRecord, avg string) []domain.Segment {
	score, scoreErr := strconv.ParseFloat(avg, 64)
	if scoreErr != nil {
		score = 0
	}
	diet := lower(r.DietPattern)
	stress, stressOK := firstNumeric(r.FRStressLevel)
	sleep, sleepOK := firstNumeric(r.FRSleepQuality, r.SleepQuality)

	mood := lower(r.WellbeingMood)
	relax := lower(r.WellbeingRelaxation)
	support := lower(r.WellbeingSocialSupport)
	openMind := lower(r.WellbeingMindfulness)
	openBreath := lower(r.WellbeingBreathing)

	base := []domain.Segment{
		labeled("What this reflects:", "Your wellbeing rating gives a snapshot of how you feel across key areas today. Improving wellbeing usually works best when you target one to two small habits at a time rather than trying to change everything at once."),
		buildWellbeingFoodAdvice(diet),
		labeled("Fibre rich foods:", "Include oats, wholegrain bread, beans, lentils, chickpeas, vegetables, berries, apples, pears and seeds such as chia or flax most days. If you increase fibre, increase your fluid intake too."),
		buildWellbeingMovementAdvice(r.MobilityLevel, r.ActivityBarriers),
		labeled("Breathing exercise:", "Try box breathing. Breathe in for 4 seconds, hold for 4 seconds, breathe out for 4 seconds and hold for 4 seconds. Repeat for 2 to 4 minutes. If you feel light-headed, stop and return to normal breathing."),
		labeled("Follow up:", "Consider a Corezen Health check in within 4 weeks to review changes and adjust your plan. If mood is persistently low, anxiety is severe or you have thoughts of self harm, seek urgent help via NHS 111, your GP or emergency services."),
		signpostMind,
	}

	var moodLines []domain.Segment
	if mood != "" {
		s := seg(bold("Mood noted:"), text(" You indicated your mood is "), user(r.WellbeingMood))
		if r.WellbeingMoodFrequency != "" {
			s = s.Append(text(" ("), user(lower(r.WellbeingMoodFrequency)), text(")"))
		}
		moodLines = append(moodLines, withSuffix(s, ". This helps tailor your plan."))
		if strings.Contains(mood, "low") || strings.Contains(mood, "anx") {
			moodLines = append(moodLines, labeled("Support available:", "If low mood or anxiety is affecting day to day life most days, consider booking a GP appointment to discuss support options including talking therapies and self help resources. If you ever feel unsafe, seek urgent help via NHS 111 or 999."))
		}
	}

	if len(r.WellbeingStressors) > 0 {
		stressorList := lower(strings.Join(r.WellbeingStressors, ", "))
		if strings.Contains(stressorList, "work") || strings.Contains(stressorList, "workload") {
			moodLines = append(moodLines, labeled("Work stress:", "You identified work or workload as a stress driver. Consider setting one clear boundary this week such as a defined finish time, a lunch break away from your desk or limiting email checking outside work hours."))
		}
		if strings.Contains(stressorList, "caring") {
			moodLines = append(moodLines, labeled("Caring responsibilities:", "You identified caring responsibilities as a stress driver. Carers often neglect their own needs. Try to build in one small thing for yourself each day, even just 10 minutes. Carers UK (carersuk.org) provides support and information for carers."))
		}
		if strings.Contains(stressorList, "finances") {
			moodLines = append(moodLines, labeled("Financial stress:", "You identified finances as a stress driver. Practical support is available through Citizens Advice (citizensadvice.org.uk) and the Money Helper service (moneyhelper.org.uk). Addressing financial worries can reduce overall stress levels."))
		}
		if strings.Contains(stressorList, "health") {
			moodLines = append(moodLines, labeled("Health concerns:", "You identified health concerns as a stress driver. Addressing health worries with your GP can help reduce anxiety. This screening is a positive step towards understanding your health better."))
		}
		if strings.Contains(stressorList, "family") || strings.Contains(stressorList, "relationship") {
			moodLines = append(moodLines, labeled("Family and relationships:", "You identified family or relationships as a stress driver. Relate (relate.org.uk) offers counselling and support for relationship and family difficulties."))
		}
	}

	if strings.Contains(r.WorkPattern, "Night") || strings.Contains(r.WorkPattern, "Rotating") {
		moodLines = append(moodLines, labeled("Shift work:", "You work nights or rotating shifts. This can affect sleep, mood and energy. Try to keep meal times as consistent as possible, use blackout curtains for daytime sleep, avoid heavy meals before bed shifts and limit caffeine in the second half of your shift."))
	}

	if strings.Contains(relax, "none") {
		moodLines = append(moodLines, labeled("Switch off time:", "You reported little switch off time at the moment. A realistic starting point is a protected 10 minutes once daily. Choose one low effort activity that settles your nervous system such as a slow walk, gentle stretching, a warm drink without screens or a brief breathing practice."))
	}

	if strings.Contains(support, "limited") {
		moodLines = append(moodLines, labeled("Social connection:", "You reported limited support or feeling isolated. Building connection can be part of your health plan. Try one check in message to a trusted person each week, consider joining a local group (such as a walking group or hobby group) or use telephone support lines if you prefer anonymous support."))
	}

	if strings.Contains(openMind, "yes") || strings.Contains(openMind, "already") {
		moodLines = append(moodLines, labeled("Mindfulness practice:", "How to try mindfulness (2 to 3 minutes): Sit comfortably and focus on your breathing. When thoughts pull you away, gently return to the feeling of breathing. If that feels hard, try a senses scan. Notice 5 things you can see, 4 you can feel, 3 you can hear, 2 you can smell and 1 you can taste."))
	}

	if strings.Contains(openBreath, "yes") || strings.Contains(openBreath, "already") {
		moodLines = append(moodLines, labeled("Breathing technique:", "Breathe in through your nose for 4 seconds, pause for 1 second and breathe out slowly for 6 seconds. Repeat for 2 to 3 minutes. Keep your shoulders relaxed and breathe low into the belly rather than the upper chest."))
	}

	if score >= 7 {
		out := []domain.Segment{
			labeled("Your result:", "Your overall wellbeing score suggests you are doing fairly well at the moment."),
			labeled("Maintaining this:", "Keep what is working and choose one small upgrade that supports long term health such as a short daily walk, adding more vegetables or maintaining a consistent bedtime."),
		}
		out = append(out, moodLines...)
		return append(out, base...)
	}

	if score >= 4 {
		out := []domain.Segment{
			labeled("Your result:", "Your overall wellbeing score suggests there are a few areas that could be improved with targeted and realistic changes."),
		}
		if stressOK && stress >= 7 {
			out = append(out, labeled("Stress focus:", "Your stress rating is high. Try a daily breathing reset and one boundary such as a fixed stop time for work messages or a 10 minute walk after lunch."))
		}
		if sleepOK && sleep <= 4 {
			out = append(out, labeled("Sleep focus:", "Your sleep rating is low. Keep a consistent wake time, reduce screens for 60 minutes before bed and keep caffeine earlier in the day."))
		}
		out = append(out, moodLines...)
		return append(out, base...)
	}

	out := []domain.Segment{
		labeled("Your result:", "Your overall wellbeing score suggests you are struggling at the moment. This is a signal to prioritise support and simplify your plan into very small and achievable steps."),
		labeled("One anchor habit:", "If you feel overwhelmed, choose one daily anchor. A short walk, a regular meal and a consistent wake time are good starting points."),
	}
	out = append(out, moodLines...)
	return append(out, base...)
}
