package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC AUTH ROUTES ====================
		r.Post("/signup", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// ==================== PROTECTED AUTH ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(repo.User, config.JWT, log))

			r.Get("/me", authHandler.Me)
			r.Patch("/update-me", authHandler.UpdateMe)
			r.Patch("/update-password", authHandler.UpdatePassword)
		})
	})
}
