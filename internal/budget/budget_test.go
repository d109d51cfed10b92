package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalFor(t *testing.T) {
	testCases := []struct {
		name  string
		label string
		want  int64
	}{
		{name: "budget friendly", label: "Budget Friendly", want: 500000},
		{name: "mid range", label: "Mid Range", want: 1000000},
		{name: "premium", label: "Premium", want: 2500000},
		{name: "luxury", label: "Luxury", want: 5000000},
		{name: "case insensitive", label: "luxury", want: 5000000},
		{name: "unknown falls back to default", label: "Extravagant", want: 1000000},
		{name: "empty falls back to default", label: "", want: 1000000},
		{name: "whitespace only", label: "   ", want: 1000000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalFor(tc.label))
		})
	}
}

func TestDefaultBreakdown(t *testing.T) {
	b := DefaultBreakdown("Mid Range")

	assert.Equal(t, 100, b.PctSum())
	assert.Equal(t, int64(1000000), b.Total)
	assert.Equal(t, int64(350000), b.Venue)
	assert.Equal(t, int64(300000), b.Catering)
	assert.Equal(t, int64(150000), b.Photography)
	assert.Equal(t, int64(200000), b.Decor)
	assert.Equal(t, b.Total, b.Venue+b.Catering+b.Photography+b.Decor)
}

func TestDefaultBreakdownUnknownLabel(t *testing.T) {
	b := DefaultBreakdown("Sky Is The Limit")
	assert.Equal(t, DefaultRange, b.Range)
	assert.Equal(t, int64(1000000), b.Total)
	assert.Equal(t, 100, b.PctSum())
}

func TestNewBreakdownAmounts(t *testing.T) {
	b := NewBreakdown("Luxury", 40, 30, 10, 20)
	assert.Equal(t, int64(5000000), b.Total)
	assert.Equal(t, int64(2000000), b.Venue)
	assert.Equal(t, int64(1500000), b.Catering)
	assert.Equal(t, int64(500000), b.Photography)
	assert.Equal(t, int64(1000000), b.Decor)
}
