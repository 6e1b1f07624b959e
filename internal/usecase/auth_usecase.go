package usecase

import (
	"context"
	"errors"

	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
	"caresync-backend/internal/domain/repository"
	"caresync-backend/pkg/credential"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	patientRepo   repository.PatientRepository
	clinicianRepo repository.ClinicianRepository
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	clinicianRepo repository.ClinicianRepository,
) AuthUsecase {
	return &authUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		patientRepo:   patientRepo,
		clinicianRepo: clinicianRepo,
	}
}

// Login resolves identity by email first (patients, then clinicians), then
// by raw user id, and verifies the supplied password against the stored one.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.resolveUser(db, req)
	if err != nil {
		return nil, err
	}

	if user == nil || !credential.Verify(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	switch {
	case user.IsPatient:
		patient, err := u.patientRepo.FindByUserID(db, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrInvalidCredentials
		}
		return &dto.LoginResponse{
			Success:   true,
			IsPatient: true,
			PatientID: patient.ID,
			FullName:  patient.FullName,
			UserID:    user.ID,
		}, nil

	case user.IsClinician:
		clinician, err := u.clinicianRepo.FindByUserID(db, user.ID)
		if err != nil {
			u.log.Warnf("Failed to load clinician profile: %+v", err)
			return nil, err
		}
		if clinician == nil {
			return nil, ErrInvalidCredentials
		}
		return &dto.LoginResponse{
			Success:     true,
			IsClinician: true,
			ClinicianID: clinician.ID,
			FullName:    clinician.FullName,
			UserID:      user.ID,
		}, nil
	}

	// Neither role flag set: a matching password is still a failure.
	return nil, ErrInvalidCredentials
}

func (u *authUsecase) resolveUser(db *gorm.DB, req *dto.LoginRequest) (*entity.User, error) {
	if req.Email != "" {
		patient, err := u.patientRepo.FindByEmail(db, req.Email)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return nil, err
		}
		if patient != nil && patient.UserID != nil {
			return u.userRepo.FindByID(db, *patient.UserID)
		}

		clinician, err := u.clinicianRepo.FindByEmail(db, req.Email)
		if err != nil {
			u.log.Warnf("Failed to find clinician by email: %+v", err)
			return nil, err
		}
		if clinician != nil && clinician.UserID != nil {
			return u.userRepo.FindByID(db, *clinician.UserID)
		}
	}

	if req.UserID != 0 {
		return u.userRepo.FindByID(db, int(req.UserID))
	}

	return nil, nil
}
