package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplierMatrix(t *testing.T) {
	tests := []struct {
		section   string
		eventType string
		category  string
		expected  float64
	}{
		{SectionStalls, EventMatinee, CategoryStallsFront, 2.00},
		{SectionStalls, EventMatinee, CategoryStallsMiddle, 1.50},
		{SectionStalls, EventMatinee, CategoryStallsRear, 1.00},
		{SectionStalls, EventEvening, CategoryStallsFront, 2.50},
		{SectionStalls, EventEvening, CategoryStallsMiddle, 1.75},
		{SectionStalls, EventEvening, CategoryStallsRear, 1.50},
		{SectionCircle, EventMatinee, CategoryPremiumFront, 1.50},
		{SectionCircle, EventMatinee, CategoryStandard, 1.25},
		{SectionCircle, EventMatinee, CategoryPremiumRear, 2.10},
		{SectionCircle, EventEvening, CategoryPremiumFront, 1.75},
		{SectionCircle, EventEvening, CategoryStandard, 1.50},
		{SectionCircle, EventEvening, CategoryPremiumRear, 2.20},
		{SectionUpperCircle, EventMatinee, CategoryFront, 0.80},
		{SectionUpperCircle, EventMatinee, CategoryMiddle, 0.50},
		{SectionUpperCircle, EventMatinee, CategoryRear, 0.75},
		{SectionUpperCircle, EventMatinee, CategoryBase, 0.00},
		{SectionUpperCircle, EventEvening, CategoryFront, 1.00},
		{SectionUpperCircle, EventEvening, CategoryMiddle, 0.70},
		{SectionUpperCircle, EventEvening, CategoryRear, 1.00},
		{SectionUpperCircle, EventEvening, CategoryBase, 0.00},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, Multiplier(tt.section, tt.eventType, tt.category),
			"%s/%s/%s", tt.section, tt.eventType, tt.category)
	}
}

func TestMultiplierDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(SectionStalls, EventEvening, "bogus"))
	assert.Equal(t, 1.0, Multiplier("balcony", EventEvening, CategoryStandard))
}

func TestSeatPriceEveningStallsMiddle(t *testing.T) {
	// base 20, multiplier 1.75 -> 20 * 2.75 = 55.00
	price := SeatPrice(20, EventEvening, SectionStalls, "A", 5, ConcessionAdult, false)
	assert.InDelta(t, 55.00, price, 0.001)
}

func TestSeatPriceLoyaltyDiscount(t *testing.T) {
	price := SeatPrice(20, EventEvening, SectionStalls, "A", 5, ConcessionAdult, true)
	assert.InDelta(t, 49.50, price, 0.001)
}

func TestSeatPriceConcessions(t *testing.T) {
	tests := []struct {
		concession string
		expected   float64
	}{
		{ConcessionChild, 35.75},  // 55 * 0.65
		{ConcessionSenior, 38.50}, // 55 * 0.70
		{ConcessionGroup, 46.75},  // 55 * 0.85
		{"student", 55.00},        // unknown type gets no discount
	}

	for _, tt := range tests {
		price := SeatPrice(20, EventEvening, SectionStalls, "A", 5, tt.concession, false)
		assert.InDeltaf(t, tt.expected, price, 0.001, "concession %s", tt.concession)
	}
}

func TestSeatPriceRoundsToCents(t *testing.T) {
	// base 9.99, matinee stalls rear: 9.99 * 2 = 19.98; child: 19.98 * 0.65 = 12.987 -> 12.99
	price := SeatPrice(9.99, EventMatinee, SectionStalls, "P", 1, ConcessionChild, false)
	assert.InDelta(t, 12.99, price, 0.001)
}

func TestSeatPriceMonotonicAcrossStallsCategories(t *testing.T) {
	front := SeatPrice(20, EventEvening, SectionStalls, "AA", 1, ConcessionAdult, false)
	middle := SeatPrice(20, EventEvening, SectionStalls, "A", 1, ConcessionAdult, false)
	rear := SeatPrice(20, EventEvening, SectionStalls, "P", 1, ConcessionAdult, false)

	assert.Greater(t, front, middle)
	assert.Greater(t, middle, rear)
}

func TestTotalPrice(t *testing.T) {
	positions := []SeatPosition{
		{Section: SectionStalls, Row: "A", SeatNumber: 5},
		{Section: SectionStalls, Row: "A", SeatNumber: 6},
	}

	assert.InDelta(t, 110.00, TotalPrice(positions, 20, EventEvening, nil, false), 0.001)
	assert.InDelta(t, 99.00, TotalPrice(positions, 20, EventEvening, nil, true), 0.001)
	assert.InDelta(t, 71.50, TotalPrice(positions, 20, EventEvening, []string{ConcessionChild}, false), 0.001)
}

func TestBestConcession(t *testing.T) {
	assert.Equal(t, ConcessionAdult, BestConcession(nil))
	assert.Equal(t, ConcessionChild, BestConcession([]string{ConcessionSenior, ConcessionChild}))
	assert.Equal(t, ConcessionGroup, BestConcession([]string{"student", ConcessionGroup}))
	// unknown types carry no discount; the first entry wins when nothing beats it
	assert.Equal(t, "student", BestConcession([]string{"student"}))
}

func TestEligibleConcessions(t *testing.T) {
	assert.Equal(t, []string{ConcessionSenior}, EligibleConcessions([]string{ConcessionSenior}, 9))

	withGroup := EligibleConcessions([]string{ConcessionSenior}, GroupSize)
	assert.Equal(t, []string{ConcessionSenior, ConcessionGroup}, withGroup)

	// already requested, not duplicated
	assert.Equal(t, []string{ConcessionGroup}, EligibleConcessions([]string{ConcessionGroup}, 12))

	// a large booking with no requested concessions still gets the group rate
	auto := EligibleConcessions(nil, GroupSize)
	assert.Equal(t, ConcessionGroup, BestConcession(auto))
}

func TestLayoutSeatTotals(t *testing.T) {
	totals := map[string]int{}
	for _, row := range Layout() {
		totals[row.Section] += row.SeatCount
	}

	assert.Equal(t, 4*20+13*25+7*20, totals[SectionStalls])
	assert.Equal(t, 76+82+89+60+60, totals[SectionCircle])
	assert.Equal(t, 88+93+76, totals[SectionUpperCircle])
}
