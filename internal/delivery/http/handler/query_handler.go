package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/response"
	"caresync-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type QueryHandler struct {
	queryUsecase usecase.QueryUsecase
	validator    *validator.CustomValidator
}

func NewQueryHandler(queryUsecase usecase.QueryUsecase, validator *validator.CustomValidator) *QueryHandler {
	return &QueryHandler{
		queryUsecase: queryUsecase,
		validator:    validator,
	}
}

// SubmitAIQuery generates an assistant response and records the exchange.
// The AI collaborator never fails this request; only persistence can.
func (h *QueryHandler) SubmitAIQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.AIQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	result, err := h.queryUsecase.SubmitAIQuery(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.queryUsecase.CreateQuery(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to create query")
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid query ID", nil)
		return
	}

	query, err := h.queryUsecase.GetQuery(r.Context(), id)
	if err != nil {
		if err == usecase.ErrQueryNotFound {
			response.NotFound(w, "Query not found")
			return
		}
		response.InternalServerError(w, "Failed to get query")
		return
	}

	response.JSON(w, http.StatusOK, query)
}

// List returns every query, or a single patient's when the patientId query
// parameter is present.
func (h *QueryHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("patientId"); raw != "" {
		patientID, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		h.writePatientQueries(w, r, patientID)
		return
	}

	queries, err := h.queryUsecase.ListQueries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get queries")
		return
	}

	response.JSON(w, http.StatusOK, queries)
}

func (h *QueryHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	h.writePatientQueries(w, r, patientID)
}

func (h *QueryHandler) ListByClinician(w http.ResponseWriter, r *http.Request) {
	clinicianID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	queries, err := h.queryUsecase.ListQueriesByClinician(r.Context(), clinicianID)
	if err != nil {
		if err == usecase.ErrClinicianNotFound {
			response.NotFound(w, "Clinician not found")
			return
		}
		response.InternalServerError(w, "Failed to get queries")
		return
	}

	response.JSON(w, http.StatusOK, queries)
}

func (h *QueryHandler) writePatientQueries(w http.ResponseWriter, r *http.Request, patientID int) {
	queries, err := h.queryUsecase.ListQueriesByPatient(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get queries")
		return
	}

	response.JSON(w, http.StatusOK, queries)
}
