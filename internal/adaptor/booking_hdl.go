package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", resp)
}

func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	resp, err := h.service.GetUserBookings(r.Context(), userID, &page)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	reference := chi.URLParam(r, "reference")
	resp, err := h.service.GetBookingByReference(r.Context(), userID, role, reference)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", resp)
}

// QR renders the booking reference as a PNG for door scanning. The
// booking is fetched first so access control matches GetByReference.
func (h *BookingHandler) QR(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	reference := chi.URLParam(r, "reference")
	booking, err := h.service.GetBookingByReference(r.Context(), userID, role, reference)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	png, err := qrcode.Encode(booking.BookingReference, qrcode.Medium, 256)
	if err != nil {
		h.log.Error("Failed to encode booking QR",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
		)
		utils.ResponseInternalError(w, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	reference := chi.URLParam(r, "reference")
	resp, err := h.service.CancelBooking(r.Context(), userID, reference)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", resp)
}

func (h *BookingHandler) EventAvailability(w http.ResponseWriter, r *http.Request) {
	eventID, err := utils.ParseUUID(chi.URLParam(r, "eventId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event ID", nil)
		return
	}

	resp, err := h.service.GetEventAvailability(r.Context(), eventID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Availability retrieved", resp)
}
