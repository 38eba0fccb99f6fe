package bootstrap

import (
	"ai-chat-be/internal/config"
	"ai-chat-be/internal/controller"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/implementation"
	"ai-chat-be/internal/service"
	"ai-chat-be/pkg/llm/gemini"

	"gorm.io/gorm"
)

type Container struct {
	ChatController controller.IChatController
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	chatRepo := implementation.NewChatRepository(db)
	messageRepo := implementation.NewMessageRepository(db)

	llmProvider := gemini.NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.Model)

	chatService := service.NewChatService(chatRepo, messageRepo, llmProvider, sysLogger)

	return &Container{
		ChatController: controller.NewChatController(chatService),
		Logger:         sysLogger,
	}
}
