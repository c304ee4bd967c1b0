package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Update is one strongly-typed mutation of an assessment record. The editing
// surface applies updates to its own copy of the record; there is no untyped
// set-field-by-name channel.
type Update interface {
	Apply(r *AssessmentRecord) error
}

// SetVitals replaces the vitals group. Nil pointers leave a field untouched.
type SetVitals struct {
	BPSystolic  *string `json:"bp_systolic"`
	BPDiastolic *string `json:"bp_diastolic"`
	PulseRate   *string `json:"pulse_rate"`
	Height      *string `json:"height"`
	Weight      *string `json:"weight"`
}

func (u SetVitals) Apply(r *AssessmentRecord) error {
	assign(&r.BPSystolic, u.BPSystolic)
	assign(&r.BPDiastolic, u.BPDiastolic)
	assign(&r.PulseRate, u.PulseRate)
	assign(&r.Height, u.Height)
	assign(&r.Weight, u.Weight)
	return nil
}

// SetLipids replaces the lipid panel group.
type SetLipids struct {
	TotalCholesterol *string `json:"total_cholesterol"`
	LDLCholesterol   *string `json:"ldl_cholesterol"`
	HDLCholesterol   *string `json:"hdl_cholesterol"`
	Triglycerides    *string `json:"triglycerides"`
	Glucose          *string `json:"glucose"`
	Fasting          *bool   `json:"fasting"`
	OnStatin         *bool   `json:"on_statin"`
}

func (u SetLipids) Apply(r *AssessmentRecord) error {
	assign(&r.TotalCholesterol, u.TotalCholesterol)
	assign(&r.LDLCholesterol, u.LDLCholesterol)
	assign(&r.HDLCholesterol, u.HDLCholesterol)
	assign(&r.Triglycerides, u.Triglycerides)
	assign(&r.Glucose, u.Glucose)
	if u.Fasting != nil {
		r.LipidsFasting = *u.Fasting
	}
	if u.OnStatin != nil {
		r.LipidsOnStatin = *u.OnStatin
	}
	return nil
}

// SetChalderItem records one Chalder item answer. The id must be "1".."11"
// and the value an integer string 0..10, or empty to clear the answer.
type SetChalderItem struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (u SetChalderItem) Apply(r *AssessmentRecord) error {
	n, err := strconv.Atoi(u.ID)
	if err != nil || n < 1 || n > 11 {
		return fmt.Errorf("invalid chalder item id %q", u.ID)
	}
	if u.Value != "" {
		v, err := strconv.Atoi(u.Value)
		if err != nil || v < 0 || v > 10 {
			return fmt.Errorf("invalid chalder item value %q", u.Value)
		}
	}
	if r.Chalder == nil {
		r.Chalder = make(map[string]string, 11)
	}
	if u.Value == "" {
		delete(r.Chalder, u.ID)
		return nil
	}
	r.Chalder[u.ID] = u.Value
	return nil
}

// SetWellbeingDomain records one of the ten 0-10 domain scores by domain id.
type SetWellbeingDomain struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func (u SetWellbeingDomain) Apply(r *AssessmentRecord) error {
	if u.Value != "" {
		v, err := strconv.Atoi(u.Value)
		if err != nil || v < 0 || v > 10 {
			return fmt.Errorf("invalid wellbeing score %q", u.Value)
		}
	}
	switch u.ID {
	case "wbEnergy":
		r.WBEnergy = u.Value
	case "wbSleep":
		r.WBSleep = u.Value
	case "wbMood":
		r.WBMood = u.Value
	case "wbActivity":
		r.WBActivity = u.Value
	case "wbNutrition":
		r.WBNutrition = u.Value
	case "wbSocial":
		r.WBSocial = u.Value
	case "wbStress":
		r.WBStress = u.Value
	case "wbWorkLife":
		r.WBWorkLife = u.Value
	case "wbPurpose":
		r.WBPurpose = u.Value
	case "wbLifeSatisfaction":
		r.WBLifeSatisfaction = u.Value
	default:
		return fmt.Errorf("unknown wellbeing domain %q", u.ID)
	}
	return nil
}

// SetUrinalysis replaces dipstick results and notes.
type SetUrinalysis struct {
	Leukocytes      *string `json:"leukocytes"`
	Nitrites        *string `json:"nitrites"`
	Protein         *string `json:"protein"`
	Blood           *string `json:"blood"`
	Glucose         *string `json:"glucose"`
	Ketones         *string `json:"ketones"`
	Bilirubin       *string `json:"bilirubin"`
	Urobilinogen    *string `json:"urobilinogen"`
	PH              *string `json:"ph"`
	SpecificGravity *string `json:"specific_gravity"`
	Notes           *string `json:"notes"`
}

func (u SetUrinalysis) Apply(r *AssessmentRecord) error {
	assign(&r.URLeukocytes, u.Leukocytes)
	assign(&r.URNitrites, u.Nitrites)
	assign(&r.URProtein, u.Protein)
	assign(&r.URBlood, u.Blood)
	assign(&r.URGlucose, u.Glucose)
	assign(&r.URKetones, u.Ketones)
	assign(&r.URBilirubin, u.Bilirubin)
	assign(&r.URUrobilinogen, u.Urobilinogen)
	assign(&r.URpH, u.PH)
	assign(&r.URSpecificGravity, u.SpecificGravity)
	assign(&r.URNotes, u.Notes)
	return nil
}

// GiveConsent sets the consent flag and timestamp together.
type GiveConsent struct {
	At time.Time
}

func (u GiveConsent) Apply(r *AssessmentRecord) error {
	r.ConsentGiven = true
	r.ConsentTimestamp = u.At.Format(time.RFC3339)
	return nil
}

// RevokeConsent clears the consent flag and timestamp together.
type RevokeConsent struct{}

func (RevokeConsent) Apply(r *AssessmentRecord) error {
	r.ConsentGiven = false
	r.ConsentTimestamp = ""
	return nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
