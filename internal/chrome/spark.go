package chrome

import "time"

// Spark is one particle of the hover shower: start position inside the
// label, travel distance and animation delay.
type Spark struct {
	SX    string
	SY    string
	DX    string
	DY    string
	Delay time.Duration
}

// DefaultSparks are the three particles every nav link gets.
var DefaultSparks = []Spark{
	{SX: "12%", SY: "38%", DX: "34px", DY: "-18px", Delay: 0},
	{SX: "84%", SY: "48%", DX: "-30px", DY: "-24px", Delay: 160 * time.Millisecond},
	{SX: "56%", SY: "22%", DX: "18px", DY: "22px", Delay: 320 * time.Millisecond},
}

// DefaultSparkLabels are the nav labels that receive the effect.
var DefaultSparkLabels = []string{"Portfolio", "Concepts", "About", "Contact"}

// NavLink is a link in the top-right navigation.
type NavLink struct {
	ID    string
	Label string
	Href  string
}

// SparkLink is a nav link decorated with sparks.
type SparkLink struct {
	NavLink
	Sparks []Spark
}

// Sparkifier decorates nav links exactly once. It owns the set of links it
// has already processed instead of marking the rendered elements.
type Sparkifier struct {
	labels    map[string]struct{}
	sparks    []Spark
	processed map[string]struct{}
}

// NewSparkifier builds a Sparkifier for the given labels. Empty labels use
// DefaultSparkLabels.
func NewSparkifier(labels []string) *Sparkifier {
	if len(labels) == 0 {
		labels = DefaultSparkLabels
	}
	s := &Sparkifier{
		labels:    make(map[string]struct{}, len(labels)),
		sparks:    DefaultSparks,
		processed: make(map[string]struct{}),
	}
	for _, l := range labels {
		s.labels[l] = struct{}{}
	}
	return s
}

// Eligible reports whether a label gets the effect.
func (s *Sparkifier) Eligible(label string) bool {
	_, ok := s.labels[label]
	return ok
}

// Sparkify returns decorated versions of the eligible links that were not
// processed before. Links with an empty ID are keyed by Href.
func (s *Sparkifier) Sparkify(links []NavLink) []SparkLink {
	var out []SparkLink
	for _, l := range links {
		if !s.Eligible(l.Label) {
			continue
		}
		key := l.ID
		if key == "" {
			key = l.Href
		}
		if _, done := s.processed[key]; done {
			continue
		}
		s.processed[key] = struct{}{}
		out = append(out, SparkLink{NavLink: l, Sparks: s.sparks})
	}
	return out
}

// Processed reports whether a link ID has been decorated.
func (s *Sparkifier) Processed(id string) bool {
	_, ok := s.processed[id]
	return ok
}

// Reset forgets processed links, e.g. when the nav is re-rendered.
func (s *Sparkifier) Reset() {
	s.processed = make(map[string]struct{})
}
