package service

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corezen-health/screening-server/internal/domain"
)

func newTestReportService(t *testing.T) *ReportService {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc, err := NewReportService(16, logger)
	require.NoError(t, err)
	return svc
}

func testDate() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestComposeRequiresConsent(t *testing.T) {
	svc := newTestReportService(t)
	_, err := svc.Compose(&domain.AssessmentRecord{BPSystolic: "120", BPDiastolic: "80"}, testDate())
	assert.ErrorIs(t, err, ErrConsentRequired)
}

func TestComposeVeryHighBPOnly(t *testing.T) {
	svc := newTestReportService(t)
	rec := &domain.AssessmentRecord{
		ClientID:     "CZ-0001",
		BPSystolic:   "182",
		BPDiastolic:  "125",
		ConsentGiven: true,
	}

	report, err := svc.Compose(rec, testDate())
	require.NoError(t, err)

	require.Len(t, report.Sections, 2)
	bpSection := report.Sections[0]
	assert.Equal(t, "YOUR BLOOD PRESSURE RESULTS", bpSection.Title)
	assert.Equal(t, domain.BPVeryHigh, bpSection.Tag)

	var joined strings.Builder
	for _, seg := range bpSection.Segments {
		joined.WriteString(seg.Plain())
		joined.WriteString("\n")
	}
	assert.Contains(t, joined.String(), "(182/125 mmHg) is very high")
	assert.Contains(t, joined.String(), "call 999 or attend A&E")

	plan := report.Sections[1]
	assert.Equal(t, "YOUR PRIORITY ACTIONS, NEXT 4 WEEKS", plan.Title)
	assert.Contains(t, plan.Segments[1].Plain(), "Contact your GP surgery today")
}

func TestComposeSectionGating(t *testing.T) {
	svc := newTestReportService(t)
	rec := &domain.AssessmentRecord{
		ConsentGiven:     true,
		Height:           "170",
		Weight:           "65",
		TotalCholesterol: "4.2",
		HDLCholesterol:   "1.5",
	}

	report, err := svc.Compose(rec, testDate())
	require.NoError(t, err)

	titles := make([]string, len(report.Sections))
	for i, s := range report.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"YOUR BODY MASS INDEX AND WEIGHT",
		"YOUR CHOLESTEROL AND LIPID PROFILE",
		"YOUR PRIORITY ACTIONS, NEXT 4 WEEKS",
	}, titles)
}

func TestComposeEmptyRecordHasNoSections(t *testing.T) {
	svc := newTestReportService(t)
	report, err := svc.Compose(&domain.AssessmentRecord{ConsentGiven: true}, testDate())
	require.NoError(t, err)
	assert.Empty(t, report.Sections)
}

func TestComposeDeterministicAndCached(t *testing.T) {
	svc := newTestReportService(t)
	rec := &domain.AssessmentRecord{
		ConsentGiven: true,
		BPSystolic:   "145",
		BPDiastolic:  "92",
		Height:       "170",
		Weight:       "80",
	}

	first, err := svc.Compose(rec, testDate())
	require.NoError(t, err)
	second, err := svc.Compose(rec, testDate())
	require.NoError(t, err)
	assert.Same(t, first, second, "identical input should be served from cache")

	changed := *rec
	changed.Weight = "81"
	third, err := svc.Compose(&changed, testDate())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestComposeSectionOrderIsFixed(t *testing.T) {
	svc := newTestReportService(t)
	rec := &domain.AssessmentRecord{
		ConsentGiven:     true,
		BPSystolic:       "120",
		BPDiastolic:      "75",
		PulseRate:        "72",
		Height:           "170",
		Weight:           "70",
		TotalCholesterol: "4.5",
		HDLCholesterol:   "1.4",
		Chalder:          map[string]string{"1": "3", "2": "2"},
		WBEnergy:         "7",
		URLeukocytes:     domain.DipstickNegative,
		MobilityLevel:    domain.MobilityWheelchair,
	}

	report, err := svc.Compose(rec, testDate())
	require.NoError(t, err)

	var titles []string
	for _, s := range report.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"YOUR BLOOD PRESSURE RESULTS",
		"YOUR BODY MASS INDEX AND WEIGHT",
		"YOUR HEART RATE AND CARDIOVASCULAR FITNESS",
		"YOUR CHOLESTEROL AND LIPID PROFILE",
		"YOUR FATIGUE AND ENERGY LEVELS",
		"YOUR OVERALL WELLBEING",
		"YOUR URINALYSIS RESULTS",
		"YOUR PERSONAL HEALTH CONTEXT",
		"YOUR PRIORITY ACTIONS, NEXT 4 WEEKS",
	}, titles)
}
