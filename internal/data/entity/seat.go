package entity

// Seat is one physical slot in the fixed theater inventory. The same
// inventory is shared across all events; per-event occupancy lives in
// seat_claims, never on the seat row itself.
type Seat struct {
	BaseSimple
	SeatNumber string `db:"seat_number"` // "1", "2", ...
	SeatRow    string `db:"seat_row"`    // "A", "BB", ...
	Section    string `db:"section"`     // stalls, circle, upperCircle
	Category   string `db:"category"`    // price tier from the classifier
}
