package usecase

import (
	"context"
	"testing"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
)

// seedAccounts registers one patient and one clinician through the real
// registration paths so login sees exactly what production writes.
func seedAccounts(t *testing.T, deps *testDeps) (patientUserID, clinicianUserID int) {
	t.Helper()
	ctx := context.Background()

	patientUC := NewPatientUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo)
	p, err := patientUC.Register(ctx, validPatientRequest())
	if err != nil {
		t.Fatalf("patient Register failed: %v", err)
	}

	clinicianUC := NewClinicianUsecase(deps.db, deps.log, deps.userRepo, deps.clinicianRepo)
	c, err := clinicianUC.Register(ctx, validClinicianRequest())
	if err != nil {
		t.Fatalf("clinician Register failed: %v", err)
	}

	return p.UserID, c.UserID
}

func TestLoginPatientByEmail(t *testing.T) {
	deps := newTestDeps(t)
	patientUserID, _ := seedAccounts(t, deps)
	uc := NewAuthUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo, deps.clinicianRepo)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !result.Success || !result.IsPatient || result.IsClinician {
		t.Errorf("expected patient login, got %+v", result)
	}
	if result.UserID != patientUserID {
		t.Errorf("expected user id %d, got %d", patientUserID, result.UserID)
	}
	if result.PatientID == 0 {
		t.Error("expected patient id in response")
	}
	if result.FullName != "Asha Rao" {
		t.Errorf("expected full name Asha Rao, got %q", result.FullName)
	}
}

func TestLoginClinicianByEmail(t *testing.T) {
	deps := newTestDeps(t)
	_, clinicianUserID := seedAccounts(t, deps)
	uc := NewAuthUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo, deps.clinicianRepo)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "meera@clinic.example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !result.IsClinician || result.IsPatient {
		t.Errorf("expected clinician login, got %+v", result)
	}
	if result.UserID != clinicianUserID {
		t.Errorf("expected user id %d, got %d", clinicianUserID, result.UserID)
	}
	if result.ClinicianID == 0 {
		t.Error("expected clinician id in response")
	}
}

func TestLoginByUserID(t *testing.T) {
	deps := newTestDeps(t)
	patientUserID, _ := seedAccounts(t, deps)
	uc := NewAuthUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo, deps.clinicianRepo)

	result, err := uc.Login(context.Background(), &dto.LoginRequest{
		UserID:   dto.FlexInt(patientUserID),
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !result.IsPatient {
		t.Errorf("expected patient login, got %+v", result)
	}
}

func TestLoginRejections(t *testing.T) {
	deps := newTestDeps(t)
	seedAccounts(t, deps)
	uc := NewAuthUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo, deps.clinicianRepo)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Email: "asha@example.com", Password: "nope"}},
		{"unknown email", dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"}},
		{"unknown user id", dto.LoginRequest{UserID: 999, Password: "secret123"}},
		{"no identifier", dto.LoginRequest{Password: "secret123"}},
		{"empty password", dto.LoginRequest{Email: "asha@example.com", Password: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, &tc.req); err != ErrInvalidCredentials {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginUserWithoutRoleIsRejected(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewAuthUsecase(deps.db, deps.log, deps.userRepo, deps.patientRepo, deps.clinicianRepo)

	user := &entity.User{IsPatient: false, IsClinician: false, PasswordHash: "secret123"}
	if err := deps.userRepo.Create(deps.db, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		UserID:   dto.FlexInt(user.ID),
		Password: "secret123",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for roleless user, got %v", err)
	}
}
