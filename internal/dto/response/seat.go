package response

import (
	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
)

type SeatResponse struct {
	ID         uuid.UUID `json:"id"`
	SeatNumber string    `json:"seat_number"`
	SeatRow    string    `json:"seat_row"`
	Section    string    `json:"section"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
}

func NewSeatResponse(seat *entity.Seat, price float64) SeatResponse {
	return SeatResponse{
		ID:         seat.ID,
		SeatNumber: seat.SeatNumber,
		SeatRow:    seat.SeatRow,
		Section:    seat.Section,
		Category:   seat.Category,
		Price:      price,
	}
}

// AvailabilityResponse is the derived occupancy snapshot for one event.
// Nothing here is stored: it is computed from the seat inventory and the
// claim ledger on every request (or served from a short lived cache).
type AvailabilityResponse struct {
	TotalSeats       int64   `json:"total_seats"`
	BookedSeats      int64   `json:"booked_seats"`
	AvailableSeats   int64   `json:"available_seats"`
	IsSoldOut        bool    `json:"is_sold_out"`
	PercentageBooked float64 `json:"percentage_booked"`
}

type EventSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	BasePrice float64   `json:"base_price"`
}

type AvailableSeatsResponse struct {
	Event        EventSummaryResponse `json:"event"`
	Seats        []SeatResponse       `json:"seats"`
	Availability AvailabilityResponse `json:"availability"`
}

type SeatPricingResponse struct {
	SeatID       uuid.UUID `json:"seat_id"`
	SeatRow      string    `json:"seat_row"`
	SeatNumber   string    `json:"seat_number"`
	Section      string    `json:"section"`
	Category     string    `json:"category"`
	BasePrice    float64   `json:"base_price"`
	Multiplier   float64   `json:"multiplier"`
	Price        float64   `json:"price"`
	LoyaltyPrice float64   `json:"loyalty_price"`
}
