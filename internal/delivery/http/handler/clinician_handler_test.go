package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/validator"
)

type stubClinicianUsecase struct {
	registerResult *dto.CreateClinicianResponse
	registerErr    error
	lastRegister   *dto.CreateClinicianRequest
}

func (s *stubClinicianUsecase) Register(_ context.Context, req *dto.CreateClinicianRequest) (*dto.CreateClinicianResponse, error) {
	s.lastRegister = req
	return s.registerResult, s.registerErr
}

func (s *stubClinicianUsecase) GetClinician(_ context.Context, _ int) (*dto.ClinicianResponse, error) {
	return nil, usecase.ErrClinicianNotFound
}

func (s *stubClinicianUsecase) ListClinicians(_ context.Context) ([]dto.ClinicianSummaryResponse, error) {
	return []dto.ClinicianSummaryResponse{}, nil
}

func TestClinicianSignupJoinsName(t *testing.T) {
	stub := &stubClinicianUsecase{
		registerResult: &dto.CreateClinicianResponse{Success: true, ClinicianID: 3, UserID: 8},
	}
	h := NewClinicianHandler(stub, validator.NewValidator())

	payload := `{
		"firstName": "Meera",
		"lastName": "Nair",
		"email": "meera@clinic.example.com",
		"password": "secret123",
		"medicalRegNumber": "MH-2015-4821",
		"yearsOfExperience": "9",
		"aadharNumber": "555566667777"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/clinician/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if stub.lastRegister == nil {
		t.Fatal("expected register to be called")
	}
	if stub.lastRegister.FullName != "Meera Nair" {
		t.Errorf("expected joined full name, got %q", stub.lastRegister.FullName)
	}
	if stub.lastRegister.YearsOfExperience != 9 {
		t.Errorf("expected string years converted to 9, got %d", stub.lastRegister.YearsOfExperience)
	}
	if !strings.Contains(rec.Body.String(), "Clinician registered successfully") {
		t.Errorf("expected registration message, got %s", rec.Body.String())
	}
}

func TestClinicianSignupDuplicateEmail(t *testing.T) {
	h := NewClinicianHandler(&stubClinicianUsecase{registerErr: usecase.ErrClinicianEmailExists}, validator.NewValidator())

	payload := `{"firstName":"Meera","lastName":"Nair","email":"meera@clinic.example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clinician/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error during registration") {
		t.Errorf("expected registration error message, got %s", rec.Body.String())
	}
}

func TestClinicianSignupMissingEmail(t *testing.T) {
	h := NewClinicianHandler(&stubClinicianUsecase{}, validator.NewValidator())

	payload := `{"firstName":"Meera","lastName":"Nair","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clinician/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
