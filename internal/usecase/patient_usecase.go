package usecase

import (
	"context"
	"errors"
	"time"

	"caresync-backend/internal/converter"
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
	"caresync-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrAadharAlreadyExists = errors.New("aadhar number already exists")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// Register creates the account row and the patient profile in one
// transaction; a failure on either insert rolls back both.
func (u *patientUsecase) Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		IsPatient:    true,
		IsClinician:  false,
		PasswordHash: req.Password,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		UserID:       &user.ID,
		FullName:     req.FullName,
		DOB:          dob,
		Gender:       req.Gender,
		Height:       req.Height,
		Weight:       req.Weight,
		Phone:        req.Phone,
		Email:        nilIfEmpty(req.Email),
		AadharNumber: nilIfEmpty(req.AadharNumber),

		Diabetes:           req.Diabetes,
		Hypertension:       req.Hypertension,
		HeartDisease:       req.HeartDisease,
		Asthma:             req.Asthma,
		Stroke:             req.Stroke,
		OtherConditions:    req.OtherConditions,
		CurrentMedications: req.CurrentMedications,

		NoAllergies:            req.NoAllergies,
		MedicationAllergies:    req.MedicationAllergies,
		FoodAllergies:          req.FoodAllergies,
		EnvironmentalAllergies: req.EnvironmentalAllergies,

		FamilyDiabetes:     req.FamilyDiabetes,
		FamilyHeartDisease: req.FamilyHeartDisease,
		FamilyStroke:       req.FamilyStroke,
		FamilyCancer:       req.FamilyCancer,
		FamilyMentalHealth: req.FamilyMentalHealth,

		SmokingStatus:     req.SmokingStatus,
		AlcoholUse:        req.AlcoholUse,
		ExerciseFrequency: req.ExerciseFrequency,
		Diet:              req.Diet,

		Anxiety:           req.Anxiety,
		Depression:        req.Depression,
		PTSD:              req.PTSD,
		ADHD:              req.ADHD,
		Bipolar:           req.Bipolar,
		OtherMentalHealth: req.OtherMentalHealth,

		AdditionalInfo: req.AdditionalInfo,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "aadhar") {
			return nil, ErrAadharAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.CreatePatientResponse{
		Success:   true,
		Message:   "Patient created successfully",
		PatientID: patient.ID,
		UserID:    user.ID,
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToSummaryResponses(patients),
	}, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
