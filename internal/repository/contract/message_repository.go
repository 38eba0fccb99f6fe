package contract

import (
	"context"

	"ai-chat-be/internal/entity"
)

type MessageRepository interface {
	Append(ctx context.Context, msg *entity.Message) error
	// AppendExchange inserts the user message and the bot reply in one transaction.
	AppendExchange(ctx context.Context, userMsg, botMsg *entity.Message) error
	FindAllByChatId(ctx context.Context, chatId uint) ([]*entity.Message, error)
}
