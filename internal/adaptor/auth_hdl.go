package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	resp, err := h.service.GetMe(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", resp)
}

func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.UpdateMe(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Profile updated", resp)
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	resp, err := h.service.UpdatePassword(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Password updated", resp)
}
