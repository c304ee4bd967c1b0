package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/corezen-health/screening-server/internal/advice"
	"github.com/corezen-health/screening-server/internal/domain"
)

// ErrConsentRequired is returned when a report is requested for a record
// without recorded consent.
var ErrConsentRequired = errors.New("client consent is required before composing a report")

// Section titles in report order.
const (
	sectionBloodPressure = "YOUR BLOOD PRESSURE RESULTS"
	sectionBMI           = "YOUR BODY MASS INDEX AND WEIGHT"
	sectionPulse         = "YOUR HEART RATE AND CARDIOVASCULAR FITNESS"
	sectionCholesterol   = "YOUR CHOLESTEROL AND LIPID PROFILE"
	sectionFatigue       = "YOUR FATIGUE AND ENERGY LEVELS"
	sectionWellbeing     = "YOUR OVERALL WELLBEING"
	sectionUrinalysis    = "YOUR URINALYSIS RESULTS"
	sectionContext       = "YOUR PERSONAL HEALTH CONTEXT"
	sectionPriority      = "YOUR PRIORITY ACTIONS, NEXT 4 WEEKS"
)

// ReportService composes narrative reports from assessment records. Composed
// reports are cached by record content and reference date, so repeated
// requests for an unchanged record are served without recomposing.
type ReportService struct {
	cache  *lru.Cache[string, *domain.Report]
	logger *logrus.Logger
}

// NewReportService creates a report service with an LRU cache of the given
// size.
func NewReportService(cacheSize int, logger *logrus.Logger) (*ReportService, error) {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	cache, err := lru.New[string, *domain.Report](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating report cache: %w", err)
	}
	return &ReportService{cache: cache, logger: logger}, nil
}

// Compose derives values from the record and builds the narrative report.
// Identical record content on the same reference date always yields the same
// report. Consent must be recorded first.
func (s *ReportService) Compose(r *domain.AssessmentRecord, today time.Time) (*domain.Report, error) {
	if !r.ConsentGiven {
		return nil, ErrConsentRequired
	}

	key, err := cacheKey(r, today)
	if err != nil {
		return nil, err
	}
	if cached, ok := s.cache.Get(key); ok {
		s.logger.WithFields(logrus.Fields{
			"client_id": r.ClientID,
			"cache":     "hit",
		}).Debug("Report served from cache")
		return cached, nil
	}

	derived := Derive(r, today)
	report := s.compose(r, derived, today)
	s.cache.Add(key, report)

	s.logger.WithFields(logrus.Fields{
		"client_id": r.ClientID,
		"sections":  len(report.Sections),
	}).Info("Report composed")
	return report, nil
}

func (s *ReportService) compose(r *domain.AssessmentRecord, d domain.DerivedValues, today time.Time) *domain.Report {
	report := &domain.Report{
		GeneratedAt: today.Format("2006-01-02"),
		ClientID:    r.ClientID,
		Derived:     &d,
		Sections:    []domain.Section{},
	}

	add := func(key, title, tag string, segs []domain.Segment) {
		if len(segs) == 0 {
			return
		}
		normalized := make([]domain.Segment, 0, len(segs))
		for _, seg := range segs {
			n := advice.NormalizeSegment(seg)
			if !n.IsEmpty() {
				normalized = append(normalized, n)
			}
		}
		if len(normalized) == 0 {
			return
		}
		report.Sections = append(report.Sections, domain.Section{
			Key:      key,
			Title:    title,
			Tag:      tag,
			Segments: normalized,
		})
	}

	hasBP := r.BPSystolic != "" && r.BPDiastolic != ""
	hasBMI := d.BMI != ""
	hasPulse := r.PulseRate != ""
	hasChol := r.TotalCholesterol != ""
	hasFatigue := d.FatigueScore != ""
	hasWellbeing := d.WellbeingAverage != ""

	if hasBP {
		add("blood_pressure", sectionBloodPressure, d.BPClass, advice.BloodPressure(r, d.BPClass))
	}
	if hasBMI {
		add("bmi", sectionBMI, d.BMIClass, advice.BMI(r, d.BMIClass))
	}
	if hasPulse {
		add("pulse", sectionPulse, d.PulseClass, advice.Pulse(r, d.PulseClass))
	}
	if hasChol {
		add("cholesterol", sectionCholesterol, "Lipid screening", advice.Cholesterol(r, d.Cholesterol.Overall))
	}
	if hasFatigue {
		add("fatigue", sectionFatigue, d.FatigueLevel, advice.Fatigue(r, d.FatigueLevel))
	}
	if hasWellbeing {
		add("wellbeing", sectionWellbeing, d.WellbeingCategory, advice.Wellbeing(r, d.WellbeingAverage))
	}

	urinalysis := advice.Urinalysis(r)
	add("urinalysis", sectionUrinalysis, "Urine screening", urinalysis)

	contextLines := advice.Context(r)
	add("context", sectionContext, "", contextLines)

	hasAnyResults := hasBP || hasBMI || hasPulse || hasChol || hasFatigue ||
		hasWellbeing || len(urinalysis) > 0 || len(contextLines) > 0
	if hasAnyResults {
		add("priority", sectionPriority, "Action plan", advice.Priority(r, d))
	}

	return report
}

// cacheKey hashes the full record content plus the reference date.
func cacheKey(r *domain.AssessmentRecord, today time.Time) (string, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("hashing record: %w", err)
	}
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte(today.Format("2006-01-02")))
	return hex.EncodeToString(h.Sum(nil)), nil
}
