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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Signup accepts the form-encoded registration used by the signup page and
// funnels it into the canonical create operation.
func (h *PatientHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form data", nil)
		return
	}

	req := dto.CreatePatientRequest{
		FullName: r.FormValue("fullName"),
		DOB:      r.FormValue("dob"),
		Gender:   r.FormValue("gender"),
		Height:   atoiOrZero(r.FormValue("height")),
		Weight:   atoiOrZero(r.FormValue("weight")),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		h.writeRegisterError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.SignupPatientResponse{
		Success:   true,
		PatientID: result.PatientID,
	})
}

// Create accepts the JSON registration payload with the full medical field
// set.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		h.writeRegisterError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) writeRegisterError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrEmailAlreadyExists, usecase.ErrAadharAlreadyExists:
		// Constraint violations surface as persistence failures with the
		// conflict named in the message.
		response.Error(w, http.StatusInternalServerError, "Error during patient creation: "+err.Error(), nil)
	default:
		response.InternalServerError(w, "Error during patient creation")
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
