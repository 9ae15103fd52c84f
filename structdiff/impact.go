package structdiff

// ImpactLevel is a coarse severity classification of a change set.
type ImpactLevel string

// Impact levels from least to most severe.
const (
	ImpactNone     ImpactLevel = "none"
	ImpactLow      ImpactLevel = "low"
	ImpactMedium   ImpactLevel = "medium"
	ImpactHigh     ImpactLevel = "high"
	ImpactCritical ImpactLevel = "critical"
)

// impactRank orders levels for threshold comparisons such as --fail-on.
var impactRank = map[ImpactLevel]int{
	ImpactNone:     0,
	ImpactLow:      1,
	ImpactMedium:   2,
	ImpactHigh:     3,
	ImpactCritical: 4,
}

// AtLeast reports whether l is as severe as min.
func (l ImpactLevel) AtLeast(min ImpactLevel) bool {
	return impactRank[l] >= impactRank[min]
}

// ParseImpactLevel maps a user-supplied name to an ImpactLevel. Unknown
// names report false rather than silently ranking as none.
func ParseImpactLevel(s string) (ImpactLevel, bool) {
	level := ImpactLevel(s)
	_, ok := impactRank[level]
	return level, ok
}

// Impact is the derived classification with its downstream label. Label is
// empty for ImpactNone.
type Impact struct {
	Level ImpactLevel `json:"level"`
	Label string      `json:"label,omitempty"`
}

// Policy holds the impact thresholds. The defaults are policy constants
// consumed by downstream labeling and PR automation; they are compared with
// strict "greater than", so e.g. exactly 10 color+typography changes is
// still below critical.
type Policy struct {
	CriticalColorTypography int
	HighTotal               int
	HighColorChanges        int
	HighTypographyChanges   int
	MediumTotal             int
}

// DefaultPolicy matches the labels existing automation expects. Do not
// re-derive these values.
var DefaultPolicy = Policy{
	CriticalColorTypography: 10,
	HighTotal:               25,
	HighColorChanges:        5,
	HighTypographyChanges:   3,
	MediumTotal:             10,
}

// Classify derives the impact of a change set from its bucket sizes.
func (p Policy) Classify(entries []Entry) Impact {
	buckets := Categorize(entries)
	colorCt := len(buckets[CategoryColors])
	typeCt := len(buckets[CategoryTypography])
	totalCt := len(entries)

	switch {
	case colorCt+typeCt > p.CriticalColorTypography:
		return Impact{Level: ImpactCritical, Label: "design-breaking"}
	case totalCt > p.HighTotal || colorCt > p.HighColorChanges || typeCt > p.HighTypographyChanges:
		return Impact{Level: ImpactHigh, Label: "design-significant"}
	case totalCt > p.MediumTotal:
		return Impact{Level: ImpactMedium, Label: "design-update"}
	case totalCt > 0:
		return Impact{Level: ImpactLow, Label: "design-minor"}
	default:
		return Impact{Level: ImpactNone}
	}
}

// ClassifyImpact classifies with DefaultPolicy.
func ClassifyImpact(entries []Entry) Impact {
	return DefaultPolicy.Classify(entries)
}
