package usecase

import (
	"context"
	"errors"

	"caresync-backend/internal/converter"
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
	"caresync-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrClinicianNotFound      = errors.New("clinician not found")
	ErrClinicianEmailExists   = errors.New("email already exists")
	ErrRegNumberAlreadyExists = errors.New("medical registration number already exists")
)

type ClinicianUsecase interface {
	Register(ctx context.Context, req *dto.CreateClinicianRequest) (*dto.CreateClinicianResponse, error)
	GetClinician(ctx context.Context, id int) (*dto.ClinicianResponse, error)
	ListClinicians(ctx context.Context) ([]dto.ClinicianSummaryResponse, error)
}

type clinicianUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	clinicianRepo repository.ClinicianRepository
}

func NewClinicianUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	clinicianRepo repository.ClinicianRepository,
) ClinicianUsecase {
	return &clinicianUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		clinicianRepo: clinicianRepo,
	}
}

// Register creates the account row and the clinician profile in one
// transaction; a failure on either insert rolls back both.
func (u *clinicianUsecase) Register(ctx context.Context, req *dto.CreateClinicianRequest) (*dto.CreateClinicianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		IsPatient:    false,
		IsClinician:  true,
		PasswordHash: req.Password,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	clinician := &entity.Clinician{
		UserID:              &user.ID,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		PasswordHash:        req.Password,
		MedicalRegNumber:    req.MedicalRegNumber,
		Specialization:      req.Specialization,
		YearsOfExperience:   req.YearsOfExperience,
		AffiliatedHospitals: req.AffiliatedHospitals,
		AadharNumber:        req.AadharNumber,
	}

	if err := u.clinicianRepo.Create(tx, clinician); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrClinicianEmailExists
		}
		if isDuplicateKeyError(err, "medical_reg_number") {
			return nil, ErrRegNumberAlreadyExists
		}
		if isDuplicateKeyError(err, "aadhar") {
			return nil, ErrAadharAlreadyExists
		}
		u.log.Warnf("Failed to create clinician: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreateClinicianResponse{
		Success:     true,
		Message:     "Clinician created successfully",
		ClinicianID: clinician.ID,
		UserID:      user.ID,
	}, nil
}

func (u *clinicianUsecase) GetClinician(ctx context.Context, id int) (*dto.ClinicianResponse, error) {
	clinician, err := u.clinicianRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find clinician: %+v", err)
		return nil, err
	}
	if clinician == nil {
		return nil, ErrClinicianNotFound
	}

	return converter.ClinicianToResponse(clinician), nil
}

func (u *clinicianUsecase) ListClinicians(ctx context.Context) ([]dto.ClinicianSummaryResponse, error) {
	clinicians, err := u.clinicianRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list clinicians: %+v", err)
		return nil, err
	}

	return converter.CliniciansToSummaryResponses(clinicians), nil
}
