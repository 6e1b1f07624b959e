package handler

import (
	"encoding/json"
	"net/http"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/response"
	"caresync-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login authenticates by email or user id and returns the caller's role and
// profile id. Failures never say which part of the credential was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
