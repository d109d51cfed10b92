package budget

import "strings"

// DefaultRange is the designated entry used for unknown budget labels.
const DefaultRange = "Mid Range"

// rangeTotal maps a budget-range label to an absolute total in INR.
type rangeTotal struct {
	Label string
	Total int64
}

var rangeTotals = []rangeTotal{
	{Label: "Budget Friendly", Total: 500000},
	{Label: "Mid Range", Total: 1000000},
	{Label: "Premium", Total: 2500000},
	{Label: "Luxury", Total: 5000000},
}

// Default percentage allocation across the four tracked categories.
// Must always sum to 100.
const (
	DefaultVenuePct       = 35
	DefaultCateringPct    = 30
	DefaultPhotographyPct = 15
	DefaultDecorPct       = 20
)

// TotalFor resolves a budget-range label to its absolute total. Unknown or
// empty labels resolve to the default range rather than failing.
func TotalFor(label string) int64 {
	trimmed := strings.TrimSpace(label)
	for _, rt := range rangeTotals {
		if strings.EqualFold(rt.Label, trimmed) {
			return rt.Total
		}
	}
	return TotalFor(DefaultRange)
}

// RangeLabels lists the known budget-range labels in ascending order.
func RangeLabels() []string {
	labels := make([]string, len(rangeTotals))
	for i, rt := range rangeTotals {
		labels[i] = rt.Label
	}
	return labels
}

// Breakdown is a percentage split of a resolved total across the four
// tracked categories. Percentages always sum to 100.
type Breakdown struct {
	Range          string `json:"range"`
	Total          int64  `json:"total"`
	VenuePct       int    `json:"venue_pct"`
	CateringPct    int    `json:"catering_pct"`
	PhotographyPct int    `json:"photography_pct"`
	DecorPct       int    `json:"decor_pct"`
	Venue          int64  `json:"venue"`
	Catering       int64  `json:"catering"`
	Photography    int64  `json:"photography"`
	Decor          int64  `json:"decor"`
}

// NewBreakdown scales the given percentages against the resolved total for
// the label. Callers must pass percentages summing to 100.
func NewBreakdown(label string, venuePct, cateringPct, photographyPct, decorPct int) Breakdown {
	resolved := resolveLabel(label)
	total := TotalFor(resolved)
	return Breakdown{
		Range:          resolved,
		Total:          total,
		VenuePct:       venuePct,
		CateringPct:    cateringPct,
		PhotographyPct: photographyPct,
		DecorPct:       decorPct,
		Venue:          total * int64(venuePct) / 100,
		Catering:       total * int64(cateringPct) / 100,
		Photography:    total * int64(photographyPct) / 100,
		Decor:          total * int64(decorPct) / 100,
	}
}

// DefaultBreakdown returns the deterministic allocation for a label.
func DefaultBreakdown(label string) Breakdown {
	return NewBreakdown(label, DefaultVenuePct, DefaultCateringPct, DefaultPhotographyPct, DefaultDecorPct)
}

// PctSum reports the sum of the four percentage fields.
func (b Breakdown) PctSum() int {
	return b.VenuePct + b.CateringPct + b.PhotographyPct + b.DecorPct
}

func resolveLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	for _, rt := range rangeTotals {
		if strings.EqualFold(rt.Label, trimmed) {
			return rt.Label
		}
	}
	return DefaultRange
}
