package advice

import (
	"strconv"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

// IsWheelchairUser reports whether the recorded mobility level indicates a
// wheelchair user, which is handled distinctly from other limitations.
func IsWheelchairUser(mobility string) bool {
	return strings.Contains(lower(mobility), "wheelchair")
}

// HasMobilityLimitation reports whether any mobility limitation was recorded.
func HasMobilityLimitation(mobility string) bool {
	m := lower(mobility)
	return strings.Contains(m, "limited") || strings.Contains(m, "wheelchair") ||
		strings.Contains(m, "housebound") || strings.Contains(m, "walking aid") ||
		strings.Contains(m, "significant")
}

// buildFoodAdvice is the blood pressure food guidance, branched on diet.
func buildFoodAdvice(diet string) []domain.Segment {
	lines := []domain.Segment{
		labeled("Food choices:", "Aim for a pattern that is high in vegetables, fruit, wholegrains and fibre with mostly unsaturated fats (olive or rapeseed oil, nuts and seeds) and minimal ultra processed foods."),
		labeled("Salt:", "Aim for no more than 6g salt a day (about 1 teaspoon). Choose reduced salt versions, limit takeaway and processed meats and flavour with herbs, garlic, lemon, pepper and spices."),
		labeled("Potassium rich foods:", "These support healthy blood pressure (unless your GP has advised restriction). Include bananas, oranges, tomatoes, spinach, broccoli, beans, lentils and potatoes with skin."),
	}

	switch {
	case strings.Contains(diet, "vegan"):
		lines = append(lines, labeled("Vegan protein:", "Prioritise beans, lentils, chickpeas, tofu, tempeh, edamame and soya yoghurt for protein. Choose fortified plant milks. Add omega 3 sources such as chia, flaxseed, walnuts and consider algae based supplements."))
	case strings.Contains(diet, "vegetarian"):
		lines = append(lines, labeled("Vegetarian protein:", "Include beans, lentils, eggs and dairy (if used). Choose lower salt cheeses. Add omega 3 sources such as chia, flaxseed and walnuts."))
	case strings.Contains(diet, "pesc"):
		lines = append(lines, labeled("Pescatarian protein:", "Include oily fish (such as salmon, sardines and mackerel) 1 to 2 times weekly for omega 3s alongside beans, lentils and plenty of vegetables."))
	case strings.Contains(diet, "halal") || strings.Contains(diet, "kosher"):
		lines = append(lines, labeled("Protein choices:", "Choose lean proteins within your dietary requirements. Include plenty of vegetables, wholegrains and healthy fats from olive oil, nuts and seeds."))
	default:
		lines = append(lines, labeled("Protein choices:", "Choose lean proteins (fish, poultry and pulses) and limit processed meats which are often high in salt and saturated fat."))
	}
	return lines
}

// buildNutritionAdvice is the BMI food guidance, branched on diet.
func buildNutritionAdvice(diet string) []domain.Segment {
	lines := []domain.Segment{
		labeled("Food choices:", "Build meals around vegetables, fruit and fibre (wholegrains, oats, beans and lentils). Choose mostly unsaturated fats (olive or rapeseed oil, nuts and seeds) and keep sugary drinks and takeaways as occasional."),
		labeled("Portion guidance:", "Aim for half a plate of vegetables or salad, a quarter lean protein and a quarter wholegrain carbohydrate. If snacking, plan protein plus fibre (such as hummus with vegetables, nuts with fruit or yoghurt with berries)."),
	}
	switch {
	case strings.Contains(diet, "vegan"):
		lines = append(lines, labeled("Vegan protein:", "Use beans, lentils, chickpeas, tofu, tempeh and edamame for protein. Choose fortified plant milks. Include omega 3 sources (chia, flaxseed, walnuts and consider algae supplements)."))
	case strings.Contains(diet, "vegetarian"):
		lines = append(lines, labeled("Vegetarian protein:", "Include beans and lentils plus eggs and dairy (if used). Watch salt in cheeses and choose lower fat options where helpful."))
	case strings.Contains(diet, "pesc"):
		lines = append(lines, labeled("Pescatarian protein:", "Include oily fish 1 to 2 times weekly plus beans, lentils and vegetables for fibre."))
	}
	return lines
}

// buildMovementAdvice branches on mobility first, then activity barrier.
func buildMovementAdvice(mobility, activityBarrier string) []domain.Segment {
	if IsWheelchairUser(mobility) {
		return []domain.Segment{labeled("Movement for wheelchair users:", "Regular movement remains beneficial. Focus on upper body exercises such as arm raises, shoulder rolls, resistance band work and arm cycling if available. Breathing exercises and gentle stretching also support circulation and wellbeing. A physiotherapist can help create a personalised plan. Start with 5 to 10 minutes and build gradually.")}
	}
	if HasMobilityLimitation(mobility) {
		return []domain.Segment{labeled("Movement with limited mobility:", "Short movement sessions still help. Consider chair based exercises such as seated marching, leg lifts, arm exercises, resistance band work or gentle stretching. Start with 5 to 10 minutes and build gradually. A GP or physiotherapist can help create a safe plan if you have concerns about pain, breathlessness or balance.")}
	}
	switch activityBarrier {
	case domain.BarrierPain:
		return []domain.Segment{labeled("Movement:", "Given pain is a barrier, focus on gentle paced activity. Start with 5 to 10 minutes of low impact movement such as walking or swimming. Pacing is key. A physiotherapist can help create a plan that works with your pain. Aim to build gradually towards 150 minutes per week over time.")}
	case domain.BarrierBreathlessness:
		return []domain.Segment{labeled("Movement:", "Given breathlessness is a barrier, start with short sessions with planned rest breaks. Interval style activity (move for 1 to 2 minutes, rest, repeat) can help build tolerance. If breathlessness is new or worsening, see your GP first. Aim to build gradually towards regular activity.")}
	}
	return []domain.Segment{labeled("Movement:", "Aim for around 150 minutes per week of moderate activity (such as 25 to 30 minutes on 5 days or about 20 to 25 minutes per day of brisk walking where you can talk but not sing) plus 2 days per week of strength work. Even 10 minute walks after meals can help blood pressure.")}
}

func buildPulseMovementAdvice(mobility string) domain.Segment {
	if IsWheelchairUser(mobility) {
		return labeled("Adapted activity:", "Upper body exercises, resistance band work and breathing exercises support cardiovascular health and can help maintain a healthy resting pulse over time.")
	}
	if HasMobilityLimitation(mobility) {
		return labeled("Adapted activity:", "Chair based exercises, gentle stretching and breathing exercises support cardiovascular health and can help maintain a healthy resting pulse over time.")
	}
	return labeled("Regular activity:", "Regular physical activity and cardiovascular fitness support a healthy resting pulse. Even moderate walking helps improve heart efficiency.")
}

func buildCholesterolMovementAdvice(mobility string) domain.Segment {
	if IsWheelchairUser(mobility) {
		return labeled("Physical activity:", "Adapted activity such as upper body exercises, resistance band work and arm cycling (if available) supports triglyceride reduction and HDL improvement.")
	}
	if HasMobilityLimitation(mobility) {
		return labeled("Physical activity:", "Adapted activity such as chair based exercises, resistance band work and gentle stretching supports triglyceride reduction and HDL improvement.")
	}
	return labeled("Physical activity:", "Regular physical activity supports triglyceride reduction and HDL improvement. Aim for a mix of cardiovascular activity and strength work.")
}

func buildFatigueMovementAdvice(mobility, activityBarrier string, postExertional bool) domain.Segment {
	if IsWheelchairUser(mobility) {
		return labeled("Movement:", "Adapted physical activity supports energy levels. Focus on upper body exercises, resistance band work, arm cycling if available and breathing exercises. Start with 5 to 10 minutes and build gradually as tolerated.")
	}
	if HasMobilityLimitation(mobility) {
		return labeled("Movement:", "Aim for regular adapted activity such as chair based exercises, gentle stretching, resistance band work or supported standing. Start with 5 to 10 minutes and build gradually as tolerated.")
	}
	if postExertional {
		return labeled("Movement:", "Given your post-exertional symptoms, pacing is essential. Start with very short gentle sessions (5 minutes or less). Only increase when you are consistently recovering well the next day. Pushing through can worsen fatigue. Prioritise rest and recovery.")
	}
	if activityBarrier == domain.BarrierFatigue {
		return labeled("Movement:", "Start with very gentle activity (5 to 10 minutes). Pacing is key. Build gradually only when you are recovering well the next day. Pushing through fatigue often makes it worse.")
	}
	return labeled("Movement:", "Aim for around 150 minutes per week of moderate activity. This can be 20 to 25 minutes most days or 30 minutes on 5 days. If energy is low, start with 5 to 10 minutes daily and build gradually.")
}

func buildFatigueFoodAdvice(diet string) domain.Segment {
	switch {
	case strings.Contains(diet, "vegan"):
		return labeled("Food choices:", "Aim for steadier energy by including protein and fibre at meals. Good vegan options include tofu, tempeh, beans, lentils, chickpeas, edamame, nuts and seeds plus vegetables, fruit and wholegrains. Include fortified foods or supplements for B12 and consider omega 3 from chia, flaxseed or algae supplements.")
	case strings.Contains(diet, "vegetarian"):
		return labeled("Food choices:", "Aim for steadier energy by including protein and fibre at meals. Good options include eggs, yoghurt, beans, lentils, chickpeas, tofu and nuts plus vegetables, fruit and wholegrains.")
	case strings.Contains(diet, "pesc"):
		return labeled("Food choices:", "Aim for steadier energy by including protein and fibre at meals. Good options include fish, eggs, yoghurt, beans, lentils, chickpeas, tofu and nuts plus vegetables, fruit and wholegrains.")
	}
	return labeled("Food choices:", "Aim for steadier energy by including protein and fibre at meals. Good options include eggs, yoghurt, fish, chicken, tofu, beans, lentils, chickpeas and nuts plus vegetables, fruit and wholegrains.")
}

func buildWellbeingFoodAdvice(diet string) domain.Segment {
	switch {
	case strings.Contains(diet, "vegan"):
		return labeled("Food choices:", "Aim for regular meals that include plant protein (beans, lentils, chickpeas, tofu, tempeh), fibre and colourful vegetables. This supports energy, gut health and steadier blood sugar. Include fortified foods or B12 supplements.")
	case strings.Contains(diet, "vegetarian"):
		return labeled("Food choices:", "Aim for regular meals that include protein (beans, lentils, eggs, dairy if used), fibre and colourful vegetables. This supports energy, gut health and steadier blood sugar.")
	case strings.Contains(diet, "pesc"):
		return labeled("Food choices:", "Aim for regular meals that include protein (fish, beans, lentils, eggs), fibre and colourful vegetables. This supports energy, gut health and steadier blood sugar.")
	}
	return labeled("Food choices:", "Aim for regular meals that include protein, fibre and colourful vegetables. This supports energy, gut health and steadier blood sugar.")
}

func buildWellbeingMovementAdvice(mobility, activityBarrier string) domain.Segment {
	if IsWheelchairUser(mobility) {
		return labeled("Movement:", "Adapted physical activity supports wellbeing. Focus on upper body exercises, resistance band work, breathing exercises and activities you enjoy. Even 10 to 15 minutes of movement can support mood and energy.")
	}
	if HasMobilityLimitation(mobility) {
		return labeled("Movement:", "Adapted physical activity supports wellbeing. Chair based exercises, gentle stretching, resistance band work or supported standing all count. Start small with 5 to 10 minutes and build gradually.")
	}
	if activityBarrier == domain.BarrierMotivation {
		return labeled("Movement:", "Finding motivation can be challenging. Try linking activity to something you already do, finding an accountability partner or choosing activities you enjoy. Even 5 minutes counts. Aim to build towards 150 minutes per week of moderate activity over time.")
	}
	return labeled("Movement:", "Aim for around 150 minutes per week of moderate activity. This can be 20 to 25 minutes most days or 30 minutes on 5 days. If you are starting from low activity, begin with 5 to 10 minutes daily and build gradually.")
}

// buildAlcoholAdvice returns nothing unless the client reported drinking.
func buildAlcoholAdvice(alcohol, units string) []domain.Segment {
	if alcohol != "Yes" {
		return nil
	}
	if u, err := strconv.Atoi(strings.TrimSpace(units)); err == nil && u > 14 {
		s := seg(
			bold("Alcohol:"),
			text(" Your recorded intake ("),
			user(strconv.Itoa(u)),
			text(" units per week) is above UK guidance (14 units per week). Reducing often improves blood pressure and sleep. Consider alcohol free days and smaller measures."),
		)
		return []domain.Segment{appendSignpost(s, signpostAlcohol)}
	}
	return []domain.Segment{labeled("Alcohol:", "UK guidance is not to regularly exceed 14 units per week, spread over 3 or more days with alcohol free days each week.")}
}
