package curriculum

// SectionID identifies one top-level section of the curriculum.
type SectionID string

const (
	SectionIntro     SectionID = "intro"
	SectionTheory    SectionID = "theory"
	SectionDesign    SectionID = "design"
	SectionMobile    SectionID = "mobile"
	SectionTesting   SectionID = "testing"
	SectionVideo     SectionID = "video"
	SectionTools     SectionID = "tools"
	SectionCases     SectionID = "cases"
	SectionRoadmap   SectionID = "roadmap"
	SectionChecklist SectionID = "checklist"
)

// AllSectionIDs returns the closed set of section ids in curriculum order.
func AllSectionIDs() []SectionID {
	return []SectionID{
		SectionIntro,
		SectionTheory,
		SectionDesign,
		SectionMobile,
		SectionTesting,
		SectionVideo,
		SectionTools,
		SectionCases,
		SectionRoadmap,
		SectionChecklist,
	}
}

// Section is one immutable unit of the curriculum.
type Section struct {
	ID     SectionID
	Title  string
	Icon   string
	Body   string // markdown
	Charts []Chart
}

// Chart is a small bar chart attached to a section.
type Chart struct {
	Title  string   `yaml:"title" json:"title"`
	Unit   string   `yaml:"unit" json:"unit,omitempty"`
	Note   string   `yaml:"note" json:"note,omitempty"`
	Series []Series `yaml:"series" json:"series"`
}

// Series is one named set of bars. Every series in a chart shares the same labels.
type Series struct {
	Name   string  `yaml:"name" json:"name"`
	Points []Point `yaml:"points" json:"points"`
}

// Point is a single labelled bar value.
type Point struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// Max returns the largest value across all series, or 0 for an empty chart.
func (c Chart) Max() float64 {
	var m float64
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Value > m {
				m = p.Value
			}
		}
	}
	return m
}
