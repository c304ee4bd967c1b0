// Package advice composes the narrative report segments. Each composer takes
// the assessment record plus the relevant category label and returns ordered
// segments; anything it has nothing to say about is simply omitted.
package advice

import (
	"strings"

	"github.com/corezen-health/screening-server/internal/domain"
)

func bold(t string) domain.Run { return domain.Run{Text: t, Bold: true} }

func text(t string) domain.Run { return domain.Run{Text: t} }

// user wraps verbatim user-supplied text. The rendering layer escapes these
// runs and never interprets them as markup.
func user(t string) domain.Run { return domain.Run{Text: t, UserText: true} }

func seg(runs ...domain.Run) domain.Segment { return domain.Segment{Runs: runs} }

// labeled builds the standard segment shape: a bold lead-in label followed by
// body text.
func labeled(label, body string) domain.Segment {
	return seg(bold(label), text(" "+body))
}

// joined collapses several item segments into one labelled segment, items
// separated by single spaces. Used for the week buckets of the action plan.
func joined(label string, items []domain.Segment) domain.Segment {
	runs := []domain.Run{bold(label)}
	for _, it := range items {
		runs = append(runs, text(" "))
		runs = append(runs, it.Runs...)
	}
	return domain.Segment{Runs: runs}
}

// withSuffix appends plain text to the end of a segment.
func withSuffix(s domain.Segment, suffix string) domain.Segment {
	return s.Append(text(suffix))
}

func lower(s string) string { return strings.ToLower(s) }
