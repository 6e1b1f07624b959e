package repository

import (
	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type QueryRepository interface {
	Create(db *gorm.DB, query *entity.Query) error
	FindByID(db *gorm.DB, id int) (*entity.Query, error)
	FindAll(db *gorm.DB) ([]entity.Query, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Query, error)
	FindByClinicianID(db *gorm.DB, clinicianID int) ([]entity.Query, error)
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}
