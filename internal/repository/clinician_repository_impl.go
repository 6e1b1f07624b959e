package repository

import (
	"errors"

	"caresync-backend/internal/domain/entity"
	domainRepo "caresync-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicianRepository struct{}

func NewClinicianRepository() domainRepo.ClinicianRepository {
	return &clinicianRepository{}
}

func (r *clinicianRepository) Create(db *gorm.DB, clinician *entity.Clinician) error {
	return db.Create(clinician).Error
}

func (r *clinicianRepository) FindByID(db *gorm.DB, id int) (*entity.Clinician, error) {
	var clinician entity.Clinician
	err := db.Where("id = ?", id).First(&clinician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinician, nil
}

func (r *clinicianRepository) FindByEmail(db *gorm.DB, email string) (*entity.Clinician, error) {
	var clinician entity.Clinician
	err := db.Where("email = ?", email).First(&clinician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinician, nil
}

func (r *clinicianRepository) FindByUserID(db *gorm.DB, userID int) (*entity.Clinician, error) {
	var clinician entity.Clinician
	err := db.Where("user_id = ?", userID).First(&clinician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinician, nil
}

func (r *clinicianRepository) FindAll(db *gorm.DB) ([]entity.Clinician, error) {
	var clinicians []entity.Clinician
	err := db.Find(&clinicians).Error
	if err != nil {
		return nil, err
	}
	return clinicians, nil
}

func (r *clinicianRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Clinician{}).Count(&count).Error
	return count, err
}
