package pricing

import "math"

// Event types mirrored from entity to keep this package dependency-free.
const (
	EventMatinee = "matinee"
	EventEvening = "evening"
)

// Concession types.
const (
	ConcessionAdult  = "adult"
	ConcessionChild  = "child"
	ConcessionSenior = "senior"
	ConcessionGroup  = "group"
)

// GroupSize is the seat count from which a booking qualifies for the
// group concession even when not requested.
const GroupSize = 10

// loyaltyFactor is the multiplier applied for loyalty members (10% off).
const loyaltyFactor = 0.90

// matrix holds the price multiplier per section, event type and category.
// A seat costs basePrice * (1 + multiplier). Missing entries fall back to 1.0.
var matrix = map[string]map[string]map[string]float64{
	SectionStalls: {
		EventMatinee: {
			CategoryStallsFront:  2.00,
			CategoryStallsMiddle: 1.50,
			CategoryStallsRear:   1.00,
		},
		EventEvening: {
			CategoryStallsFront:  2.50,
			CategoryStallsMiddle: 1.75,
			CategoryStallsRear:   1.50,
		},
	},
	SectionCircle: {
		EventMatinee: {
			CategoryPremiumFront: 1.50,
			CategoryStandard:     1.25,
			CategoryPremiumRear:  2.10,
		},
		EventEvening: {
			CategoryPremiumFront: 1.75,
			CategoryStandard:     1.50,
			CategoryPremiumRear:  2.20,
		},
	},
	SectionUpperCircle: {
		EventMatinee: {
			CategoryFront:  0.80,
			CategoryMiddle: 0.50,
			CategoryRear:   0.75,
			CategoryBase:   0.00,
		},
		EventEvening: {
			CategoryFront:  1.00,
			CategoryMiddle: 0.70,
			CategoryRear:   1.00,
			CategoryBase:   0.00,
		},
	},
}

// concessionDiscounts maps concession type to its fractional discount.
var concessionDiscounts = map[string]float64{
	ConcessionChild:  0.35,
	ConcessionSenior: 0.30,
	ConcessionGroup:  0.15,
}

// SeatPosition identifies a seat by its physical coordinates.
type SeatPosition struct {
	Section    string
	Row        string
	SeatNumber int
}

// Multiplier returns the price multiplier for a section/event type/category
// combination, defaulting to 1.0 when no entry exists.
func Multiplier(section, eventType, category string) float64 {
	if m, ok := matrix[section][eventType][category]; ok {
		return m
	}
	return 1.0
}

// SeatPrice computes the final price of a single seat: base price scaled by
// the category multiplier, then the concession discount (non-adult only),
// then the loyalty discount, rounded half-up to whole cents.
func SeatPrice(basePrice float64, eventType, section, row string, seatNumber int, concession string, isLoyaltyMember bool) float64 {
	category := Classify(section, row, seatNumber)
	price := basePrice * (1 + Multiplier(section, eventType, category))

	if concession != ConcessionAdult {
		if discount, ok := concessionDiscounts[concession]; ok {
			price *= 1 - discount
		}
	}

	if isLoyaltyMember {
		price *= loyaltyFactor
	}

	return roundToCents(price)
}

// TotalPrice sums SeatPrice over all positions. Concessions apply
// booking-wide: every seat gets the single best concession of the list.
func TotalPrice(positions []SeatPosition, basePrice float64, eventType string, concessions []string, isLoyaltyMember bool) float64 {
	concession := BestConcession(concessions)

	var total float64
	for _, p := range positions {
		total += SeatPrice(basePrice, eventType, p.Section, p.Row, p.SeatNumber, concession, isLoyaltyMember)
	}
	return roundToCents(total)
}

// BestConcession picks the requested concession with the largest discount,
// or "adult" when none are requested. Unknown types count as no discount.
// When two requested types carry an equal discount the first seen wins;
// discount values are distinct in practice so the tie-break never fires.
func BestConcession(concessions []string) string {
	if len(concessions) == 0 {
		return ConcessionAdult
	}

	best := concessions[0]
	bestValue := concessionDiscounts[best]
	for _, c := range concessions[1:] {
		if v := concessionDiscounts[c]; v > bestValue {
			best = c
			bestValue = v
		}
	}
	return best
}

// EligibleConcessions folds the group concession into the requested list
// when the booking is large enough to qualify.
func EligibleConcessions(concessions []string, seatCount int) []string {
	if seatCount < GroupSize {
		return concessions
	}
	for _, c := range concessions {
		if c == ConcessionGroup {
			return concessions
		}
	}
	out := make([]string, 0, len(concessions)+1)
	out = append(out, concessions...)
	return append(out, ConcessionGroup)
}

// ConcessionDiscount exposes the discount fraction for a concession type,
// zero for adult or unknown types.
func ConcessionDiscount(concession string) float64 {
	return concessionDiscounts[concession]
}

func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}
