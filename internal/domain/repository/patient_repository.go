package repository

import (
	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Patient, error)
	FindByUserID(db *gorm.DB, userID int) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	Count(db *gorm.DB) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
