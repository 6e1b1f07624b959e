package repository

import (
	"errors"

	"caresync-backend/internal/domain/entity"
	domainRepo "caresync-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type chatRepository struct{}

func NewChatRepository() domainRepo.ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) Create(db *gorm.DB, chat *entity.Chat) error {
	return db.Create(chat).Error
}

func (r *chatRepository) FindByID(db *gorm.DB, id int) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.Where("id = ?", id).First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (r *chatRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Chat{}).Count(&count).Error
	return count, err
}
