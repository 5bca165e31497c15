package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeat(
	r chi.Router,
	seatHandler *adaptor.SeatHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC SEAT ROUTES ====================
	r.Get("/api/seats/available", seatHandler.GetAvailable)
	r.Get("/api/seats/pricing/{eventId}/{seatId}", seatHandler.GetPricing)

	// ==================== ADMIN SEAT ROUTES ====================
	r.With(
		middleware.Auth(repo.User, config.JWT, log),
		middleware.Admin(log),
	).Post("/api/seats/initialize", seatHandler.Initialize)
}
