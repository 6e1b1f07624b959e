package repository

import (
	"errors"

	"caresync-backend/internal/domain/entity"
	domainRepo "caresync-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type queryRepository struct{}

func NewQueryRepository() domainRepo.QueryRepository {
	return &queryRepository{}
}

func (r *queryRepository) Create(db *gorm.DB, query *entity.Query) error {
	return db.Create(query).Error
}

func (r *queryRepository) FindByID(db *gorm.DB, id int) (*entity.Query, error) {
	var query entity.Query
	err := db.Where("id = ?", id).First(&query).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &query, nil
}

func (r *queryRepository) FindAll(db *gorm.DB) ([]entity.Query, error) {
	var queries []entity.Query
	err := db.Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Query, error) {
	var queries []entity.Query
	err := db.Where("patient_id = ?", patientID).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepository) FindByClinicianID(db *gorm.DB, clinicianID int) ([]entity.Query, error) {
	var queries []entity.Query
	err := db.Where("clinician_id = ?", clinicianID).Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Query{}).Count(&count).Error
	return count, err
}

func (r *queryRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.Model(&entity.Query{}).Where("query_status = ?", status).Count(&count).Error
	return count, err
}
