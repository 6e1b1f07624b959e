package repository

import (
	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicianRepository interface {
	Create(db *gorm.DB, clinician *entity.Clinician) error
	FindByID(db *gorm.DB, id int) (*entity.Clinician, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Clinician, error)
	FindByUserID(db *gorm.DB, userID int) (*entity.Clinician, error)
	FindAll(db *gorm.DB) ([]entity.Clinician, error)
	Count(db *gorm.DB) (int64, error)
}
