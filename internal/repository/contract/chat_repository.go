package contract

import (
	"context"

	"ai-chat-be/internal/entity"
)

type ChatRepository interface {
	// CreateWithSeed inserts the chat and its seed message in one transaction.
	CreateWithSeed(ctx context.Context, chat *entity.Chat, seed *entity.Message) error
	FindById(ctx context.Context, id uint) (*entity.Chat, error)
	FindAll(ctx context.Context) ([]*entity.Chat, error)
	Delete(ctx context.Context, id uint) error
}
