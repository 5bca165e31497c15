package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Event created", resp)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetUpcomingEvents(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Events retrieved", resp)
}

func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	eventID, err := utils.ParseUUID(chi.URLParam(r, "eventId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event ID", nil)
		return
	}

	resp, err := h.service.GetEventByID(r.Context(), eventID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Event retrieved", resp)
}
