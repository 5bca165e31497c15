package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC EVENT ROUTES ====================
	r.Get("/api/events", eventHandler.List)
	r.Get("/api/events/{eventId}", eventHandler.GetByID)

	// ==================== ADMIN EVENT ROUTES ====================
	r.With(
		middleware.Auth(repo.User, config.JWT, log),
		middleware.Admin(log),
	).Post("/api/events", eventHandler.Create)
}
