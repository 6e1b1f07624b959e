package repository

import (
	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Repositories receive the *gorm.DB per call so usecases can pass either the
// shared handle or an open transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	Count(db *gorm.DB) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
