package handler

import (
	"net/http"

	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/response"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// Summary reports aggregate record counts for the admin dashboard.
func (h *UserHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.userUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
