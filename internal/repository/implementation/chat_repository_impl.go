package implementation

import (
	"context"
	"errors"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/mapper"
	"ai-chat-be/internal/model"
	"ai-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	return &ChatRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRepositoryImpl) CreateWithSeed(ctx context.Context, chat *entity.Chat, seed *entity.Message) error {
	chatModel := r.mapper.ChatToModel(chat)
	seedModel := r.mapper.MessageToModel(seed)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chatModel).Error; err != nil {
			return err
		}
		seedModel.ChatId = chatModel.Id
		return tx.Create(seedModel).Error
	})
	if err != nil {
		return err
	}

	*chat = *r.mapper.ChatToEntity(chatModel)
	*seed = *r.mapper.MessageToEntity(seedModel)
	return nil
}

func (r *ChatRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.Chat, error) {
	var m model.Chat
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatToEntity(&m), nil
}

func (r *ChatRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Chat, error) {
	var models []*model.Chat
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatsToEntities(models), nil
}

// Delete is a no-op for ids that do not exist; the FK cascade removes the
// chat's messages.
func (r *ChatRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Chat{}, id).Error
}
