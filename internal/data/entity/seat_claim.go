package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeatClaim marks one (event, seat) pair as taken by a non-cancelled
// booking. The (event_id, seat_id) primary key is what makes a seat claim
// atomic: a concurrent booking for the same pair fails the insert.
type SeatClaim struct {
	EventID   uuid.UUID `db:"event_id"`
	SeatID    uuid.UUID `db:"seat_id"`
	BookingID uuid.UUID `db:"booking_id"`
	CreatedAt time.Time `db:"created_at"`
}
