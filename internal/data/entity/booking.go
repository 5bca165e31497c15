package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	BookingReference string        `db:"booking_reference"`
	UserID           uuid.UUID     `db:"user_id"`
	EventID          uuid.UUID     `db:"event_id"`
	CustomerName     string        `db:"customer_name"`
	CustomerEmail    string        `db:"customer_email"`
	CustomerPhone    string        `db:"customer_phone"`
	TotalAmount      float64       `db:"total_amount"`
	LoyaltyDiscount  bool          `db:"loyalty_discount"`
	Status           BookingStatus `db:"status"`
}
