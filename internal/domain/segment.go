package domain

import "strings"

// Run is a span of text within a segment. Bold marks the small allow-list of
// inline emphasis; UserText marks verbatim user-supplied free text that the
// rendering layer must escape and must never interpret as markup.
type Run struct {
	Text     string `json:"text"`
	Bold     bool   `json:"bold,omitempty"`
	UserText bool   `json:"user_text,omitempty"`
}

// Segment is one advisory paragraph of a report section, an ordered list of
// emphasis runs. Composers emit segments; they never emit empty placeholders.
type Segment struct {
	Runs []Run `json:"runs"`
}

// Plain returns the segment text with emphasis flattened away.
func (s Segment) Plain() string {
	var b strings.Builder
	for _, r := range s.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// IsEmpty reports whether the segment carries no visible text.
func (s Segment) IsEmpty() bool {
	for _, r := range s.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return false
		}
	}
	return true
}

// Append returns the segment with extra runs added.
func (s Segment) Append(runs ...Run) Segment {
	s.Runs = append(s.Runs, runs...)
	return s
}

// Section is an ordered group of segments for one clinical domain.
type Section struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Tag      string    `json:"tag,omitempty"`
	Segments []Segment `json:"segments"`
}

// Report is the composed narrative output handed to the rendering layer.
type Report struct {
	GeneratedAt string         `json:"generated_at"`
	ClientID    string         `json:"client_id,omitempty"`
	Derived     *DerivedValues `json:"derived,omitempty"`
	Sections    []Section      `json:"sections"`
}
