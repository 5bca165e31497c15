package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStalls(t *testing.T) {
	tests := []struct {
		row      string
		seat     int
		expected string
	}{
		{"AA", 1, CategoryStallsFront},
		{"DD", 20, CategoryStallsFront},
		{"A", 1, CategoryStallsMiddle},
		{"M", 25, CategoryStallsMiddle},
		{"P", 1, CategoryStallsRear},
		{"V", 20, CategoryStallsRear},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%d", tt.row, tt.seat), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(SectionStalls, tt.row, tt.seat))
		})
	}
}

func TestClassifyCircleRowABoundaries(t *testing.T) {
	tests := []struct {
		seat     int
		expected string
	}{
		{1, CategoryPremiumFront},
		{6, CategoryPremiumFront},
		{7, CategoryStandard},
		{27, CategoryStandard},
		{28, CategoryPremiumRear},
		{49, CategoryPremiumRear},
		{50, CategoryStandard},
		{70, CategoryStandard},
		{71, CategoryPremiumFront},
		{76, CategoryPremiumFront},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("seat-%d", tt.seat), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(SectionCircle, "A", tt.seat))
		})
	}
}

func TestClassifyCircleUnmatchedFallsBackToStandard(t *testing.T) {
	// Rows D and E only carry premium-rear ranges; everything else in
	// those rows prices as standard.
	assert.Equal(t, CategoryStandard, Classify(SectionCircle, "D", 10))
	assert.Equal(t, CategoryPremiumRear, Classify(SectionCircle, "D", 40))
	assert.Equal(t, CategoryStandard, Classify(SectionCircle, "E", 55))
}

func TestClassifyUpperCircleRowABoundaries(t *testing.T) {
	tests := []struct {
		seat     int
		expected string
	}{
		{1, CategoryFront},
		{6, CategoryFront},
		{7, CategoryMiddle},
		{32, CategoryMiddle},
		{33, CategoryRear},
		{56, CategoryRear},
		{57, CategoryMiddle},
		{82, CategoryMiddle},
		{83, CategoryFront},
		{88, CategoryFront},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("seat-%d", tt.seat), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(SectionUpperCircle, "A", tt.seat))
		})
	}
}

func TestClassifyUpperCircleUnmatchedFallsBackToBase(t *testing.T) {
	// Row C has no rear range; the gap between middle and front prices
	// at the base rate.
	assert.Equal(t, CategoryBase, Classify(SectionUpperCircle, "C", 30))
	assert.Equal(t, CategoryBase, Classify(SectionUpperCircle, "Z", 1))
}

func TestClassifyUnknownStallsRowFallsBackToStandard(t *testing.T) {
	assert.Equal(t, CategoryStandard, Classify(SectionStalls, "Z", 1))
}

func TestClassifyIsTotalOverLayout(t *testing.T) {
	valid := map[string]map[string]bool{
		SectionStalls: {
			CategoryStallsFront:  true,
			CategoryStallsMiddle: true,
			CategoryStallsRear:   true,
		},
		SectionCircle: {
			CategoryPremiumFront: true,
			CategoryStandard:     true,
			CategoryPremiumRear:  true,
		},
		SectionUpperCircle: {
			CategoryFront:  true,
			CategoryMiddle: true,
			CategoryRear:   true,
			CategoryBase:   true,
		},
	}

	for _, row := range Layout() {
		for n := 1; n <= row.SeatCount; n++ {
			category := Classify(row.Section, row.Row, n)
			assert.Truef(t, valid[row.Section][category],
				"seat %s %s-%d classified as %q", row.Section, row.Row, n, category)
		}
	}
}
