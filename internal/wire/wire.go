package wire

import (
	"net/http"

	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/cache"
	"theater-booking/pkg/database"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(db database.PgxIface, repo *repository.Repository, cacheClient *cache.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(db, repo, cacheClient, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireEvent(r, handler.Event, repo, config, logger)
	wireSeat(r, handler.Seat, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
