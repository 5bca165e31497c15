package repository

import (
	"theater-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Event       EventRepository
	Seat        SeatRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
	SeatClaim   SeatClaimRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Event:       NewEventRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
		SeatClaim:   NewSeatClaimRepository(db, log),
	}
}
