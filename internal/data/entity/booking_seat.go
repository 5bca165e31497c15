package entity

import "github.com/google/uuid"

// BookingSeat is the priced (seat, concession) tuple attached to a booking.
// Rows are immutable and survive cancellation for history.
type BookingSeat struct {
	BaseSimple
	BookingID      uuid.UUID `db:"booking_id"`
	SeatID         uuid.UUID `db:"seat_id"`
	Price          float64   `db:"price"`
	ConcessionType string    `db:"concession_type"`
}
