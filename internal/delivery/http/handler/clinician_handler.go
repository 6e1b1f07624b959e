package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/response"
	"caresync-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type ClinicianHandler struct {
	clinicianUsecase usecase.ClinicianUsecase
	validator        *validator.CustomValidator
}

func NewClinicianHandler(clinicianUsecase usecase.ClinicianUsecase, validator *validator.CustomValidator) *ClinicianHandler {
	return &ClinicianHandler{
		clinicianUsecase: clinicianUsecase,
		validator:        validator,
	}
}

// Signup accepts the camelCase payload sent by the clinician signup page and
// funnels it into the canonical create operation.
func (h *ClinicianHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupClinicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	createReq := dto.CreateClinicianRequest{
		FullName:            strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:               req.Email,
		Phone:               req.Phone,
		Password:            req.Password,
		MedicalRegNumber:    req.MedicalRegNumber,
		Specialization:      req.Specialization,
		YearsOfExperience:   int(req.YearsOfExperience),
		AffiliatedHospitals: req.AffiliatedHospitals,
		AadharNumber:        req.AadharNumber,
	}

	result, err := h.clinicianUsecase.Register(r.Context(), &createReq)
	if err != nil {
		h.writeRegisterError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.SignupClinicianResponse{
		Success:     true,
		Message:     "Clinician registered successfully",
		ClinicianID: result.ClinicianID,
	})
}

func (h *ClinicianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.clinicianUsecase.Register(r.Context(), &req)
	if err != nil {
		h.writeRegisterError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *ClinicianHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinician ID", nil)
		return
	}

	clinician, err := h.clinicianUsecase.GetClinician(r.Context(), id)
	if err != nil {
		if err == usecase.ErrClinicianNotFound {
			response.NotFound(w, "Clinician not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinician")
		return
	}

	response.JSON(w, http.StatusOK, clinician)
}

func (h *ClinicianHandler) List(w http.ResponseWriter, r *http.Request) {
	clinicians, err := h.clinicianUsecase.ListClinicians(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clinicians")
		return
	}

	response.JSON(w, http.StatusOK, clinicians)
}

func (h *ClinicianHandler) writeRegisterError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrClinicianEmailExists, usecase.ErrRegNumberAlreadyExists, usecase.ErrAadharAlreadyExists:
		response.Error(w, http.StatusInternalServerError, "Error during registration: "+err.Error(), nil)
	default:
		response.InternalServerError(w, "Error during registration")
	}
}
