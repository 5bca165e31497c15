package adaptor

import (
	"errors"
	"net/http"

	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Event   *EventHandler
	Seat    *SeatHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Event:   NewEventHandler(service.Event, log),
		Seat:    NewSeatHandler(service.Seat, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service errors onto HTTP statuses. Everything
// not recognized is a 500 with a generic message; the cause is logged,
// not leaked.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	var unavailable *usecase.SeatsUnavailableError
	switch {
	case errors.As(err, &unavailable):
		// lost claim race or stale seat map; caller picks new seats and retries
		utils.ResponseBadRequest(w, unavailable.Error(), map[string][]string{"seats": unavailable.SeatLabels})
	case errors.Is(err, usecase.ErrEmailTaken):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrAccountDeactivated):
		utils.ResponseUnauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrEarlyAccess),
		errors.Is(err, usecase.ErrNotBookingOwner):
		utils.ResponseForbidden(w, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrEventNotFound),
		errors.Is(err, usecase.ErrSeatNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrEventInactive),
		errors.Is(err, usecase.ErrSoldOut),
		errors.Is(err, usecase.ErrAlreadyCancelled),
		errors.Is(err, usecase.ErrCancellationWindow):
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		log.Error("Unhandled service error", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
