package wire

import (
	"theater-booking/internal/adaptor"
	"theater-booking/internal/data/repository"
	"theater-booking/pkg/middleware"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		// ==================== PUBLIC BOOKING ROUTES ====================
		r.Get("/event/{eventId}/availability", bookingHandler.EventAvailability)

		// ==================== PROTECTED BOOKING ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(repo.User, config.JWT, log))

			r.Post("/", bookingHandler.Create)
			r.Get("/my-bookings", bookingHandler.MyBookings)
			r.Get("/{reference}", bookingHandler.GetByReference)
			r.Get("/{reference}/qr", bookingHandler.QR)
			r.Put("/{reference}/cancel", bookingHandler.Cancel)
		})
	})
}
