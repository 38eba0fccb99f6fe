package implementation

import (
	"context"

	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/mapper"
	"ai-chat-be/internal/model"
	"ai-chat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *MessageRepositoryImpl) Append(ctx context.Context, msg *entity.Message) error {
	m := r.mapper.MessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*msg = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) AppendExchange(ctx context.Context, userMsg, botMsg *entity.Message) error {
	userModel := r.mapper.MessageToModel(userMsg)
	botModel := r.mapper.MessageToModel(botMsg)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		return tx.Create(botModel).Error
	})
	if err != nil {
		return err
	}

	*userMsg = *r.mapper.MessageToEntity(userModel)
	*botMsg = *r.mapper.MessageToEntity(botModel)
	return nil
}

func (r *MessageRepositoryImpl) FindAllByChatId(ctx context.Context, chatId uint) ([]*entity.Message, error) {
	var models []*model.Message
	if err := r.db.WithContext(ctx).Where("chat_id = ?", chatId).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}
