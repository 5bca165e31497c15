package response

import (
	"time"

	"theater-booking/internal/data/entity"

	"github.com/google/uuid"
)

type BookingSeatResponse struct {
	SeatID         uuid.UUID `json:"seat_id"`
	SeatRow        string    `json:"seat_row"`
	SeatNumber     string    `json:"seat_number"`
	Section        string    `json:"section"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	ConcessionType string    `json:"concession_type"`
}

type BookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	BookingReference string                `json:"booking_reference"`
	EventID          uuid.UUID             `json:"event_id"`
	CustomerName     string                `json:"customer_name"`
	CustomerEmail    string                `json:"customer_email"`
	CustomerPhone    string                `json:"customer_phone"`
	TotalAmount      float64               `json:"total_amount"`
	LoyaltyDiscount  bool                  `json:"loyalty_discount"`
	Status           string                `json:"status"`
	Seats            []BookingSeatResponse `json:"seats,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

func NewBookingResponse(booking *entity.Booking, seats []BookingSeatResponse) BookingResponse {
	return BookingResponse{
		ID:               booking.ID,
		BookingReference: booking.BookingReference,
		EventID:          booking.EventID,
		CustomerName:     booking.CustomerName,
		CustomerEmail:    booking.CustomerEmail,
		CustomerPhone:    booking.CustomerPhone,
		TotalAmount:      booking.TotalAmount,
		LoyaltyDiscount:  booking.LoyaltyDiscount,
		Status:           string(booking.Status),
		Seats:            seats,
		CreatedAt:        booking.CreatedAt,
	}
}
