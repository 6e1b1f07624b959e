package usecase

import (
	"context"
	"testing"

	"caresync-backend/internal/delivery/dto"
)

func newClinicianUsecaseForTest(t *testing.T) (ClinicianUsecase, *testDeps) {
	t.Helper()

	deps := newTestDeps(t)
	return NewClinicianUsecase(deps.db, deps.log, deps.userRepo, deps.clinicianRepo), deps
}

func validClinicianRequest() *dto.CreateClinicianRequest {
	return &dto.CreateClinicianRequest{
		FullName:            "Meera Nair",
		Email:               "meera@clinic.example.com",
		Phone:               "9811122233",
		Password:            "secret123",
		MedicalRegNumber:    "MH-2015-4821",
		Specialization:      "Cardiology",
		YearsOfExperience:   9,
		AffiliatedHospitals: "City Heart Institute",
		AadharNumber:        "555566667777",
	}
}

func TestClinicianRegisterRoundTrip(t *testing.T) {
	uc, deps := newClinicianUsecaseForTest(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, validClinicianRequest())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.ClinicianID == 0 || result.UserID == 0 {
		t.Fatalf("expected assigned ids, got clinician=%d user=%d", result.ClinicianID, result.UserID)
	}

	user, err := deps.userRepo.FindByID(deps.db, result.UserID)
	if err != nil || user == nil {
		t.Fatalf("expected user row, got %v, %v", user, err)
	}
	if !user.IsClinician || user.IsPatient {
		t.Errorf("expected clinician role flags, got is_patient=%v is_clinician=%v", user.IsPatient, user.IsClinician)
	}

	clinician, err := uc.GetClinician(ctx, result.ClinicianID)
	if err != nil {
		t.Fatalf("GetClinician failed: %v", err)
	}
	if clinician.MedicalRegNumber != "MH-2015-4821" {
		t.Errorf("expected reg number MH-2015-4821, got %q", clinician.MedicalRegNumber)
	}
	if clinician.YearsOfExperience != 9 {
		t.Errorf("expected 9 years of experience, got %d", clinician.YearsOfExperience)
	}
}

func TestClinicianRegisterDuplicateEmailRollsBack(t *testing.T) {
	uc, deps := newClinicianUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, validClinicianRequest()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	req := validClinicianRequest()
	req.MedicalRegNumber = "MH-2018-0001"
	req.AadharNumber = "888899990000"
	if _, err := uc.Register(ctx, req); err != ErrClinicianEmailExists {
		t.Fatalf("expected ErrClinicianEmailExists, got %v", err)
	}

	users, err := deps.userRepo.Count(deps.db)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if users != 1 {
		t.Errorf("expected 1 user after rollback, got %d", users)
	}
}

func TestClinicianRegisterDuplicateRegNumber(t *testing.T) {
	uc, _ := newClinicianUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.Register(ctx, validClinicianRequest()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	req := validClinicianRequest()
	req.Email = "other@clinic.example.com"
	req.AadharNumber = "888899990000"
	if _, err := uc.Register(ctx, req); err != ErrRegNumberAlreadyExists {
		t.Fatalf("expected ErrRegNumberAlreadyExists, got %v", err)
	}
}

func TestGetClinicianNotFound(t *testing.T) {
	uc, _ := newClinicianUsecaseForTest(t)

	if _, err := uc.GetClinician(context.Background(), 42); err != ErrClinicianNotFound {
		t.Fatalf("expected ErrClinicianNotFound, got %v", err)
	}
}

func TestListClinicians(t *testing.T) {
	uc, _ := newClinicianUsecaseForTest(t)
	ctx := context.Background()

	first := validClinicianRequest()
	second := validClinicianRequest()
	second.Email = "dev@clinic.example.com"
	second.MedicalRegNumber = "KA-2019-7788"
	second.AadharNumber = "111122223333"

	for _, req := range []*dto.CreateClinicianRequest{first, second} {
		if _, err := uc.Register(ctx, req); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	clinicians, err := uc.ListClinicians(ctx)
	if err != nil {
		t.Fatalf("ListClinicians failed: %v", err)
	}
	if len(clinicians) != 2 {
		t.Fatalf("expected 2 clinicians, got %d", len(clinicians))
	}
}
