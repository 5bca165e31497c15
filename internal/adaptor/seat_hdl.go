package adaptor

import (
	"net/http"

	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// Initialize seeds the seat inventory. Admin only, idempotent.
func (h *SeatHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.InitializeTheaterLayout(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	if created == 0 {
		utils.ResponseSuccess(w, "Seat inventory already initialized", map[string]int{"created": 0})
		return
	}
	utils.ResponseCreated(w, "Seat inventory initialized", map[string]int{"created": created})
}

func (h *SeatHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	eventID, err := utils.ParseUUID(r.URL.Query().Get("eventId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid or missing eventId", nil)
		return
	}
	section := r.URL.Query().Get("section")

	resp, err := h.service.GetAvailableSeats(r.Context(), eventID, section)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Available seats retrieved", resp)
}

func (h *SeatHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	eventID, err := utils.ParseUUID(chi.URLParam(r, "eventId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event ID", nil)
		return
	}
	seatID, err := utils.ParseUUID(chi.URLParam(r, "seatId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid seat ID", nil)
		return
	}

	resp, err := h.service.GetSeatPricing(r.Context(), eventID, seatID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Seat pricing retrieved", resp)
}
