package pricing

// Sections of the auditorium.
const (
	SectionStalls      = "stalls"
	SectionCircle      = "circle"
	SectionUpperCircle = "upperCircle"
)

// Price categories per section.
const (
	CategoryStallsFront  = "AA-DD"
	CategoryStallsMiddle = "A-M"
	CategoryStallsRear   = "P-V"

	CategoryPremiumFront = "premium-front"
	CategoryStandard     = "standard"
	CategoryPremiumRear  = "premium-rear"

	CategoryFront  = "front"
	CategoryMiddle = "middle"
	CategoryRear   = "rear"
	CategoryBase   = "base"
)

// numRange is an inclusive seat-number range.
type numRange struct {
	lo, hi int
}

func (r numRange) contains(n int) bool {
	return n >= r.lo && n <= r.hi
}

// The circle and upper circle boundary numbers below are hand-tuned
// auditorium geometry carried over verbatim; the front/rear boundaries
// shift per row to follow the curve of the balcony. Do not "fix" them
// into a formula.

var circlePremiumFront = map[string][]numRange{
	"A": {{1, 6}, {71, 76}},
	"B": {{1, 8}, {75, 82}},
	"C": {{1, 8}, {82, 89}},
}

var circleStandard = map[string][]numRange{
	"A": {{7, 27}, {50, 70}},
	"B": {{9, 31}, {52, 74}},
	"C": {{9, 34}, {56, 81}},
}

var circlePremiumRear = map[string][]numRange{
	"A": {{28, 49}},
	"B": {{32, 51}},
	"C": {{32, 51}},
	"D": {{32, 51}},
	"E": {{32, 51}},
}

var upperFront = map[string][]numRange{
	"A": {{1, 6}, {83, 88}},
	"B": {{1, 8}, {86, 93}},
	"C": {{1, 8}, {69, 76}},
}

var upperMiddle = map[string][]numRange{
	"A": {{7, 32}, {57, 82}},
	"B": {{9, 34}, {80, 85}},
	"C": {{9, 24}, {53, 68}},
}

var upperRear = map[string][]numRange{
	"A": {{33, 56}},
	"B": {{35, 59}},
}

var stallsFrontRows = rowSet("AA", "BB", "CC", "DD")
var stallsMiddleRows = rowSet("A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M")
var stallsRearRows = rowSet("P", "Q", "R", "S", "T", "U", "V")

func rowSet(rows ...string) map[string]bool {
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		set[r] = true
	}
	return set
}

func inRanges(ranges map[string][]numRange, row string, seatNum int) bool {
	for _, r := range ranges[row] {
		if r.contains(seatNum) {
			return true
		}
	}
	return false
}

// Classify maps a physical seat position to its price category. It is total:
// positions matching no rule fall back to "standard" (or "base" in the upper
// circle), which is policy, not an error. Ranges are checked front-classes
// first; the first match wins.
func Classify(section, row string, seatNumber int) string {
	switch section {
	case SectionStalls:
		switch {
		case stallsFrontRows[row]:
			return CategoryStallsFront
		case stallsMiddleRows[row]:
			return CategoryStallsMiddle
		case stallsRearRows[row]:
			return CategoryStallsRear
		}

	case SectionCircle:
		switch {
		case inRanges(circlePremiumFront, row, seatNumber):
			return CategoryPremiumFront
		case inRanges(circleStandard, row, seatNumber):
			return CategoryStandard
		case inRanges(circlePremiumRear, row, seatNumber):
			return CategoryPremiumRear
		}

	case SectionUpperCircle:
		switch {
		case inRanges(upperFront, row, seatNumber):
			return CategoryFront
		case inRanges(upperMiddle, row, seatNumber):
			return CategoryMiddle
		case inRanges(upperRear, row, seatNumber):
			return CategoryRear
		}
		// any upper circle seat beyond the tables, including rows past C
		return CategoryBase
	}

	return CategoryStandard
}
