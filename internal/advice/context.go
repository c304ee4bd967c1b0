package advice

import (
	"github.com/corezen-health/screening-server/internal/domain"
)

// Context composes the personal health context section. Each recorded factor
// adds its own paragraph; a record with no context answers yields nothing.
func Context(r *domain.AssessmentRecord) []domain.Segment {
	var lines []domain.Segment
	mobility := r.MobilityLevel
	barrier := r.ActivityBarriers

	switch {
	case IsWheelchairUser(mobility):
		lines = append(lines,
			labeled("Wheelchair user:", "Movement remains beneficial and can be adapted to your situation. Upper body exercises, resistance band work, arm cycling (if available), seated stretching and breathing exercises all support circulation, cardiovascular health and mood. A physiotherapist can help create a safe and personalised exercise plan."),
			signpostWheelchair,
		)
	case HasMobilityLimitation(mobility):
		lines = append(lines,
			labeled("Movement with limited mobility:", "Physical activity remains beneficial and can be adapted to your needs. Chair based exercises, seated marching, resistance band work, supported standing (if safe) and gentle stretching all support circulation, blood pressure and mood. A GP or physiotherapist can help create a safe plan if you have concerns about pain, breathlessness or balance."),
			labeled("Helpful resources:", "The Chartered Society of Physiotherapy at csp.org.uk provides guidance on exercises for people with limited mobility. Your GP can also refer you to a physiotherapist for a personalised plan."),
		)
	}

	switch barrier {
	case domain.BarrierPain:
		lines = append(lines, labeled("Pain as a barrier:", "Pain limiting movement has been noted. Gentle, paced activity often helps manage pain better than complete rest. Start with very short sessions (5 minutes) and build gradually. A physiotherapist can help create a plan that works with your pain rather than against it."))
	case domain.BarrierBreathlessness:
		lines = append(lines, labeled("Breathlessness as a barrier:", "Breathlessness limiting activity has been noted. Paced activity with planned rest breaks can help build tolerance. If breathlessness is new, worsening or occurring at rest, please see your GP. Pulmonary rehabilitation may be available if you have a lung condition."))
	case domain.BarrierFatigue:
		lines = append(lines, labeled("Fatigue as a barrier:", "Fatigue limiting activity has been noted. Pacing is key. Start with very short gentle sessions and only increase when you are recovering well. Pushing through fatigue often makes it worse. See the fatigue advice section for more detail."))
	case domain.BarrierMotivation:
		lines = append(lines, labeled("Motivation as a barrier:", "Motivation can be challenging. Try linking activity to something you already do (such as a walk after lunch) or finding an accountability partner. Choose activities you enjoy rather than what you think you should do. Even 5 minutes counts and often leads to more."))
	case domain.BarrierTime:
		lines = append(lines, labeled("Time as a barrier:", "Lack of time is a common barrier. Look for opportunities to build movement into your day such as walking meetings, taking stairs, parking further away or short walks after meals. Even 10 minute bouts add up and provide health benefits."))
	}

	switch r.DietPattern {
	case domain.DietVegan:
		lines = append(lines,
			labeled("Vegan diet:", "Your diet pattern has been included. Protein sources for you include beans, lentils, chickpeas, tofu, tempeh, edamame, seitan and soya products. Omega 3 sources include chia seeds, flaxseed, walnuts and algae based supplements. Consider discussing B12 supplementation with your GP if not already taking one."),
			labeled("Helpful resources:", "The Vegan Society at vegansociety.com provides evidence based guidance on vegan nutrition including B12, iron and omega 3. The British Dietetic Association at bda.uk.com also provides dietary guidance."),
		)
	case domain.DietVegetarian:
		lines = append(lines,
			labeled("Vegetarian diet:", "Your diet pattern has been included. Protein sources include beans, lentils, chickpeas, tofu, eggs and dairy where used. Omega 3 sources include chia seeds, flaxseed and walnuts."),
			labeled("Helpful resources:", "The British Dietetic Association at bda.uk.com provides evidence based dietary guidance for vegetarian diets."),
		)
	case domain.DietPescatarian:
		lines = append(lines, labeled("Pescatarian diet:", "Your diet pattern has been included. Oily fish (such as salmon, sardines and mackerel) 1 to 2 times weekly provides omega 3s alongside plant proteins from beans, lentils and chickpeas."))
	case domain.DietHalal, domain.DietKosher:
		lines = append(lines, labeled(r.DietPattern+" diet:", "Your dietary requirements have been noted. The healthy eating principles in this report can be adapted to "+lower(r.DietPattern)+" food choices. Focus on lean proteins, plenty of vegetables, wholegrains and healthy fats within your dietary framework."))
	}

	if r.DiabetesType != "" && r.DiabetesType != "No diabetes" && r.DiabetesType != "Not sure" {
		lines = append(lines,
			labeled("Diabetes:", "Your diabetes has been included. Balanced meals with higher fibre carbohydrates, lean protein and healthy fats support steadier blood glucose. Regular meal timing and portion awareness support glucose control. Medication plans remain GP led and should be followed as prescribed."),
			signpostDiabetes,
		)
	}

	if r.SleepApnoea != "" && r.SleepApnoea != "No" {
		lines = append(lines, labeled("Sleep apnoea:", "Sleep apnoea has been included. Daytime fatigue and raised blood pressure risk can be associated with untreated or undertreated sleep apnoea. CPAP use, mask comfort and adherence support better sleep quality. GP review supports ongoing management and referral to sleep services where needed."))
	}

	if r.KnownHypertension != "" && r.KnownHypertension != "No" {
		lines = append(lines, labeled("Known high blood pressure:", "Known hypertension has been included. Medication adherence, home monitoring and regular GP review support long term control."))
	}

	if r.KnownHighCholesterol != "" && r.KnownHighCholesterol != "No" {
		lines = append(lines, labeled("Known high cholesterol:", "Known high cholesterol has been included. Treatment plans remain GP led. Lifestyle steps support risk reduction alongside medication where prescribed."))
	}

	if r.PregnancyStatus != "" && r.PregnancyStatus != "Not applicable" {
		lines = append(lines, labeled("Pregnancy or postpartum:", "Pregnancy or postpartum status has been included. Blood pressure and symptoms such as headaches, visual changes, swelling or upper abdominal pain need prompt medical review during pregnancy and the postpartum period."))
	}

	if r.ShiftWork != "" && r.ShiftWork != "No" {
		lines = append(lines, labeled("Shift work:", "Shift work has been included. Light exposure, meal timing and a consistent wind down routine support sleep quality around night shifts."))
	}

	sleepiness, sleepinessOK := firstNumeric(r.DaytimeSleepiness)
	if r.Snoring == "Yes" || r.WitnessedApnoea == "Yes" || (sleepinessOK && sleepiness >= 6) {
		lines = append(lines, labeled("Sleep breathing symptoms:", "Sleep breathing symptoms have been included. Loud snoring, witnessed pauses and significant daytime sleepiness can be associated with sleep apnoea. GP review supports assessment and referral to a sleep service when needed."))
	}

	if r.RestlessLegs == "Yes" {
		lines = append(lines, labeled("Restless legs:", "Restless legs symptoms have been included. Iron deficiency can contribute. GP review supports assessment, blood tests and management. Gentle stretching and a consistent evening routine can support symptoms."))
	}

	if r.LastCaffeineTime == "After 16:00" || r.LastCaffeineTime == "14:00 to 16:00" {
		lines = append(lines, labeled("Caffeine timing:", "Your caffeine timing has been included. An earlier caffeine cut off supports sleep onset and sleep depth. Water and non-caffeinated drinks later in the day support hydration without affecting sleep."))
	}

	if r.Falls12m != "" && r.Falls12m != "No" {
		lines = append(lines, labeled("Falls history:", "Falls history has been included. Strength, balance and safe home set up support confidence and reduce risk. GP review supports falls assessment when needed and physiotherapy can support safe exercise planning."))
	}

	if pain, ok := firstNumeric(r.PainLimitingMovement); ok && pain >= 6 {
		lines = append(lines, labeled("Pain limiting movement:", "Pain limiting movement has been included. Pacing, gentle strengthening and gradual progression support movement without flare ups. GP review supports pain management and referral to physiotherapy when appropriate."))
	}

	if r.FoodAccess != "" && r.FoodAccess != "No concerns" {
		lines = append(lines, labeled("Food access:", "Food access and cooking concerns have been included. Low cost options such as tinned beans, lentils, frozen vegetables, oats, eggs and tinned fish support nutrition. Batch cooking and simple meals support consistency. The British Dietetic Association at bda.uk.com provides budget friendly eating guidance."))
	}

	if r.AlcoholUnitsWeek == "15 to 21" || r.AlcoholUnitsWeek == "22 or more" {
		s := labeled("Alcohol intake:", "Your alcohol intake has been included. Reducing alcohol supports blood pressure, sleep quality, weight and mood.")
		lines = append(lines, appendSignpost(s, signpostAlcohol))
	}

	if r.HomeBPMonitor == "Yes" {
		lines = append(lines, labeled("Home blood pressure monitoring:", "Home blood pressure monitoring has been included. A seven day home blood pressure log supports accurate GP review. Readings taken at the same times each day and recorded consistently support trend monitoring."))
	}

	if r.CVEventHistory != "" && r.CVEventHistory != "No known event" && r.CVEventHistory != "Not sure" {
		lines = append(lines, labeled("Cardiovascular history:", "Cardiovascular history has been included. GP review supports risk management, medication review and ongoing monitoring. Lifestyle changes remain valuable alongside prescribed treatment."))
	}

	if r.KidneyDisease == "Yes" {
		lines = append(lines, labeled("Kidney disease:", "Kidney disease has been included. Blood pressure targets and medication plans remain GP led. GP review supports monitoring of kidney function and cardiovascular risk."))
	}

	if r.FamilyHistoryEarly == "Yes" {
		lines = append(lines, labeled("Family history:", "Family history of early heart disease has been included. Cardiovascular risk assessment through the GP supports longer term prevention and monitoring."))
	}

	if r.UpperLimbFunction == "Moderate limitation" || r.UpperLimbFunction == "Severe limitation" {
		lines = append(lines, labeled("Upper limb limitations:", "Upper limb limitations have been included. Activity can be adapted using lower limb movements, breathing based activity, supported standing where safe and physiotherapy guidance."))
	}

	if r.OtherContext != "" {
		lines = append(lines, seg(bold("Additional context:"), text(" "), user(r.OtherContext), text(". This has been considered when tailoring the advice in this report.")))
	}

	return lines
}
