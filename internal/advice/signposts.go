package advice

import "github.com/corezen-health/screening-server/internal/domain"

// Signposting segments pointing clients at national support services. These
// are appended to the relevant sections; the texts are fixed.
var (
	signpostBP = labeled("Helpful resources:",
		"For further information on blood pressure visit bhf.org.uk/informationsupport/risk-factors/high-blood-pressure. The British Heart Foundation provides clear guidance on understanding and managing blood pressure.")

	signpostLowBP = labeled("Helpful resources:",
		"For further information on low blood pressure visit nhs.uk and search for low blood pressure.")

	signpostCholesterol = labeled("Helpful resources:",
		"For further information on cholesterol visit bhf.org.uk/informationsupport/risk-factors/high-cholesterol. HEART UK (heartuk.org.uk) also provides specialist cholesterol guidance and support.")

	signpostWeight = labeled("Helpful resources:",
		"For further information on healthy weight visit nhs.uk/better-health/lose-weight. The British Dietetic Association (bda.uk.com) also provides evidence based dietary guidance.")

	signpostMind = labeled("Helpful resources:",
		"Support for stress, anxiety and low mood is available via Every Mind Matters at nhs.uk/every-mind-matters and via Mind at mind.org.uk. If you are in crisis, contact Samaritans on 116 123 (free and available 24 hours a day, 7 days a week).")

	signpostSmoking = labeled("Helpful resources:",
		"Stop smoking support is available via NHS Smokefree at nhs.uk/better-health/quit-smoking or call the free helpline on 0300 123 1044. Your local pharmacy can also provide free stop smoking support.")

	signpostAlcohol = labeled("Helpful resources:",
		"Alcohol support and safer drinking guidance is available at drinkaware.co.uk. Drinkline is available on 0300 123 1110.")

	signpostFatigue = labeled("Helpful resources:",
		"For further information on fatigue and energy management visit the ME Association at meassociation.org.uk or Action for ME at actionforme.org.uk. If fatigue is persistent or worsening, speak to your GP.")

	signpostWheelchair = labeled("Helpful resources:",
		"For wheelchair accessible exercise guidance visit the Activity Alliance at activityalliance.org.uk which provides inclusive activity resources. Wheelchair Sport England (wheelchairsport.co.uk) and the English Federation of Disability Sport also offer adapted activity programmes.")

	signpostDiabetes = labeled("Helpful resources:",
		"Diabetes support and guidance is available at diabetes.org.uk (Diabetes UK). They provide free information on managing blood glucose, diet and living well with diabetes.")

	signpostUrinalysis = labeled("Helpful resources:",
		"For further information about urine test results visit nhs.uk and search for urine tests. Your GP practice can arrange follow up testing if needed.")
)

// appendSignpost glues a signpost's runs onto the end of a segment, used
// where advisory text trails directly into a resources pointer.
func appendSignpost(s domain.Segment, sp domain.Segment) domain.Segment {
	s = s.Append(text(" "))
	return s.Append(sp.Runs...)
}
