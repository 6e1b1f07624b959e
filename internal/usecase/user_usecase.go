package usecase

import (
	"context"

	"caresync-backend/internal/converter"
	"caresync-backend/internal/delivery/dto"
	"caresync-backend/internal/domain/entity"
	"caresync-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetSummary(ctx context.Context) (*dto.SummaryResponse, error)
}

type userUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	patientRepo   repository.PatientRepository
	clinicianRepo repository.ClinicianRepository
	queryRepo     repository.QueryRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	clinicianRepo repository.ClinicianRepository,
	queryRepo repository.QueryRepository,
) UserUsecase {
	return &userUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		patientRepo:   patientRepo,
		clinicianRepo: clinicianRepo,
		queryRepo:     queryRepo,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	db := u.db.WithContext(ctx)
	summary := &dto.SummaryResponse{}

	counts := []struct {
		dest  *int64
		count func() (int64, error)
	}{
		{&summary.TotalUsers, func() (int64, error) { return u.userRepo.Count(db) }},
		{&summary.TotalPatients, func() (int64, error) { return u.patientRepo.Count(db) }},
		{&summary.TotalClinicians, func() (int64, error) { return u.clinicianRepo.Count(db) }},
		{&summary.TotalQueries, func() (int64, error) { return u.queryRepo.Count(db) }},
		{&summary.PendingQueries, func() (int64, error) {
			return u.queryRepo.CountByStatus(db, entity.QueryStatusPending)
		}},
		{&summary.CompletedQueries, func() (int64, error) {
			return u.queryRepo.CountByStatus(db, entity.QueryStatusCompleted)
		}},
	}

	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			u.log.Warnf("Failed to count for summary: %+v", err)
			return nil, err
		}
		*c.dest = n
	}

	return summary, nil
}
