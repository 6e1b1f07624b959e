package repository

import (
	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(db *gorm.DB, chat *entity.Chat) error
	FindByID(db *gorm.DB, id int) (*entity.Chat, error)
	Count(db *gorm.DB) (int64, error)
}
