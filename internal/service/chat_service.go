package service

import (
	"context"
	"fmt"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/entity"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/contract"
	"ai-chat-be/pkg/llm"
)

const (
	DefaultChatTitle = "New Chat"
	SeedGreeting     = "How can I help you?"

	// Presentation format for timestamps on the wire.
	timeLayout = "2006-01-02 15:04:05"
)

var ErrChatNotFound = fmt.Errorf("chat not found")

type IChatService interface {
	CreateChat(ctx context.Context) (*dto.CreateChatResponse, error)
	ListChats(ctx context.Context) ([]*dto.ChatSummaryResponse, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteChat(ctx context.Context, chatId uint) (*dto.DeleteChatResponse, error)
}

type chatService struct {
	chatRepo    contract.ChatRepository
	messageRepo contract.MessageRepository
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewChatService(
	chatRepo contract.ChatRepository,
	messageRepo contract.MessageRepository,
	llmProvider llm.LLMProvider,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (s *chatService) CreateChat(ctx context.Context) (*dto.CreateChatResponse, error) {
	chat := &entity.Chat{Title: DefaultChatTitle}
	seed := &entity.Message{
		Sender:  entity.SenderBot,
		Content: SeedGreeting,
	}

	if err := s.chatRepo.CreateWithSeed(ctx, chat, seed); err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	s.logger.Info("chat", "chat created", map[string]interface{}{"chat_id": chat.Id})

	return &dto.CreateChatResponse{
		Id:    chat.Id,
		Title: chat.Title,
		Messages: []dto.SeedMessageResponse{
			{Sender: string(seed.Sender), Content: seed.Content},
		},
	}, nil
}

func (s *chatService) ListChats(ctx context.Context) ([]*dto.ChatSummaryResponse, error) {
	chats, err := s.chatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	res := make([]*dto.ChatSummaryResponse, len(chats))
	for i, chat := range chats {
		res[i] = &dto.ChatSummaryResponse{
			Id:        chat.Id,
			Title:     chat.Title,
			CreatedAt: chat.CreatedAt.Format(timeLayout),
		}
	}
	return res, nil
}

// SendMessage verifies the chat, asks the model for a reply, then persists
// the user message and the reply in one transaction. The generation call
// runs before any write, so a provider failure mutates nothing.
func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	chat, err := s.chatRepo.FindById(ctx, req.ChatId)
	if err != nil {
		return nil, fmt.Errorf("find chat: %w", err)
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	reply, err := s.llmProvider.Generate(ctx, req.Message)
	if err != nil {
		s.logger.Error("chat", "generation failed", map[string]interface{}{
			"chat_id": req.ChatId,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	userMsg := &entity.Message{
		ChatId:  req.ChatId,
		Sender:  entity.Sender(req.Sender),
		Content: req.Message,
	}
	botMsg := &entity.Message{
		ChatId:  req.ChatId,
		Sender:  entity.SenderBot,
		Content: reply,
	}

	if err := s.messageRepo.AppendExchange(ctx, userMsg, botMsg); err != nil {
		return nil, fmt.Errorf("append exchange: %w", err)
	}

	history, err := s.messageRepo.FindAllByChatId(ctx, req.ChatId)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]dto.MessageResponse, len(history))
	for i, msg := range history {
		messages[i] = dto.MessageResponse{
			Id:        msg.Id,
			Sender:    string(msg.Sender),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.Format(timeLayout),
		}
	}

	return &dto.SendMessageResponse{
		ChatId:   req.ChatId,
		Messages: messages,
	}, nil
}

// DeleteChat reports success even for unknown ids; delete is idempotent.
func (s *chatService) DeleteChat(ctx context.Context, chatId uint) (*dto.DeleteChatResponse, error) {
	if err := s.chatRepo.Delete(ctx, chatId); err != nil {
		return nil, fmt.Errorf("delete chat: %w", err)
	}

	s.logger.Info("chat", "chat deleted", map[string]interface{}{"chat_id": chatId})

	return &dto.DeleteChatResponse{
		Success: true,
		ChatId:  chatId,
	}, nil
}
