package pricing

// RowSpec describes one physical row of the fixed theater layout.
type RowSpec struct {
	Section   string
	Row       string
	SeatCount int
}

// Layout returns the full Victoria Hall seating plan, in seating order.
// Seat numbers run 1..SeatCount within each row.
func Layout() []RowSpec {
	var rows []RowSpec

	stalls := []string{"AA", "BB", "CC", "DD", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "P", "Q", "R", "S", "T", "U", "V"}
	for _, row := range stalls {
		count := 20
		if stallsMiddleRows[row] {
			count = 25
		}
		rows = append(rows, RowSpec{Section: SectionStalls, Row: row, SeatCount: count})
	}

	circleCounts := map[string]int{"A": 76, "B": 82, "C": 89, "D": 60, "E": 60}
	for _, row := range []string{"A", "B", "C", "D", "E"} {
		rows = append(rows, RowSpec{Section: SectionCircle, Row: row, SeatCount: circleCounts[row]})
	}

	upperCounts := map[string]int{"A": 88, "B": 93, "C": 76}
	for _, row := range []string{"A", "B", "C"} {
		rows = append(rows, RowSpec{Section: SectionUpperCircle, Row: row, SeatCount: upperCounts[row]})
	}

	return rows
}
