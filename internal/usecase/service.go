package usecase

import (
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/cache"
	"theater-booking/pkg/database"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Event   EventService
	Seat    SeatService
	Booking BookingService
}

func NewService(db database.PgxIface, repo *repository.Repository, cacheClient *cache.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, config.JWT, log),
		Event:   NewEventService(repo.Event, log),
		Seat:    NewSeatService(repo.Seat, repo.Event, repo.SeatClaim, log),
		Booking: NewBookingService(db, repo, cacheClient, log),
	}
}
