package advice

import (
	"regexp"
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

var (
	leadingDashRe = regexp.MustCompile(`(?m)^\s*[-–—]\s*`)
	commaAndRe    = regexp.MustCompile(`(?i),\s+and\b`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// Normalize tidies advisory text: leading dashes are stripped from each line,
// a comma directly before "and" is dropped, runs of whitespace collapse to a
// single space and the result is trimmed. Normalizing already normalized text
// changes nothing.
func Normalize(s string) string {
	s = leadingDashRe.ReplaceAllString(s, "")
	s = commaAndRe.ReplaceAllString(s, " and")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeSegment applies Normalize rules run by run. Interior runs keep
// their leading space (it separates them from the preceding run); only the
// segment edges are trimmed. User text runs pass through untouched so that
// recorded free text is reproduced verbatim.
func NormalizeSegment(s domain.Segment) domain.Segment {
	out := make([]domain.Run, 0, len(s.Runs))
	for i, r := range s.Runs {
		if r.UserText {
			out = append(out, r)
			continue
		}
		t := commaAndRe.ReplaceAllString(r.Text, " and")
		t = multiSpaceRe.ReplaceAllString(t, " ")
		if i == 0 {
			t = leadingDashRe.ReplaceAllString(t, "")
			t = strings.TrimLeft(t, " \t")
		}
		if i == len(s.Runs)-1 {
			t = strings.TrimRight(t, " \t")
		}
		out = append(out, domain.Run{Text: t, Bold: r.Bold})
	}
	return domain.Segment{Runs: out}
}
