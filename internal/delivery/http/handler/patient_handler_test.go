package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/usecase"
	"caresync-backend/pkg/validator"
)

type stubPatientUsecase struct {
	registerResult *dto.CreatePatientResponse
	registerErr    error
	lastRegister   *dto.CreatePatientRequest
}

func (s *stubPatientUsecase) Register(_ context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	s.lastRegister = req
	return s.registerResult, s.registerErr
}

func (s *stubPatientUsecase) GetPatient(_ context.Context, _ int) (*dto.PatientResponse, error) {
	return nil, usecase.ErrPatientNotFound
}

func (s *stubPatientUsecase) ListPatients(_ context.Context) (*dto.PatientListResponse, error) {
	return &dto.PatientListResponse{Patients: []dto.PatientSummaryResponse{}}, nil
}

func TestPatientSignupFormEncoded(t *testing.T) {
	stub := &stubPatientUsecase{
		registerResult: &dto.CreatePatientResponse{Success: true, PatientID: 11, UserID: 5},
	}
	h := NewPatientHandler(stub, validator.NewValidator())

	form := url.Values{}
	form.Set("fullName", "Asha Rao")
	form.Set("dob", "1990-04-12")
	form.Set("gender", "Female")
	form.Set("height", "162")
	form.Set("weight", "58")
	form.Set("phone", "9876543210")
	form.Set("email", "asha@example.com")
	form.Set("password", "secret123")

	req := httptest.NewRequest(http.MethodPost, "/api/patient/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body dto.SignupPatientResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.PatientID != 11 {
		t.Errorf("unexpected body: %+v", body)
	}

	if stub.lastRegister == nil {
		t.Fatal("expected register to be called")
	}
	if stub.lastRegister.Height != 162 || stub.lastRegister.Weight != 58 {
		t.Errorf("expected numeric form fields converted, got height=%d weight=%d",
			stub.lastRegister.Height, stub.lastRegister.Weight)
	}
}

func TestPatientSignupMissingRequiredFields(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{}, validator.NewValidator())

	form := url.Values{}
	form.Set("fullName", "Asha Rao")

	req := httptest.NewRequest(http.MethodPost, "/api/patient/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPatientCreateInvalidDate(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{registerErr: usecase.ErrInvalidDateFormat}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/patients",
		strings.NewReader(`{"full_name":"Asha Rao","dob":"12/04/1990","gender":"Female","password":"secret123"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPatientCreateDuplicateEmail(t *testing.T) {
	h := NewPatientHandler(&stubPatientUsecase{registerErr: usecase.ErrEmailAlreadyExists}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/patients",
		strings.NewReader(`{"full_name":"Asha Rao","dob":"1990-04-12","gender":"Female","password":"secret123"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email already exists") {
		t.Errorf("expected conflict named in message, got %s", rec.Body.String())
	}
}
