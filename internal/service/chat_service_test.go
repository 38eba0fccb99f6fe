package service_test

import (
	"context"
	"errors"
	"testing"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/model"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/implementation"
	"ai-chat-be/internal/service"
	"ai-chat-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubProvider struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestService(t *testing.T, provider *stubProvider) (service.IChatService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	svc := service.NewChatService(
		implementation.NewChatRepository(db),
		implementation.NewMessageRepository(db),
		provider,
		logger.NewNopLogger(),
	)
	return svc, db
}

func messageCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Message{}).Count(&count).Error)
	return count
}

func TestCreateChat_SeedsGreeting(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{})

	res, err := svc.CreateChat(context.Background())
	require.NoError(t, err)

	assert.NotZero(t, res.Id)
	assert.Equal(t, "New Chat", res.Title)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "bot", res.Messages[0].Sender)
	assert.Equal(t, "How can I help you?", res.Messages[0].Content)
}

func TestListChats_ReturnsAllWithUniqueIds(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{})
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.CreateChat(ctx)
		require.NoError(t, err)
	}

	chats, err := svc.ListChats(ctx)
	require.NoError(t, err)
	require.Len(t, chats, n)

	seen := make(map[uint]bool)
	for _, chat := range chats {
		assert.False(t, seen[chat.Id], "duplicate chat id %d", chat.Id)
		seen[chat.Id] = true
		assert.Equal(t, "New Chat", chat.Title)
		assert.NotEmpty(t, chat.CreatedAt)
	}
}

func TestSendMessage_AppendsUserThenBot(t *testing.T) {
	provider := &stubProvider{reply: "the answer"}
	svc, _ := newTestService(t, provider)
	ctx := context.Background()

	chat, err := svc.CreateChat(ctx)
	require.NoError(t, err)

	res, err := svc.SendMessage(ctx, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Sender:  "user",
		Message: "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, chat.Id, res.ChatId)
	require.Len(t, res.Messages, 3) // seed + user + bot

	assert.Equal(t, "bot", res.Messages[0].Sender)
	assert.Equal(t, "user", res.Messages[1].Sender)
	assert.Equal(t, "hello", res.Messages[1].Content)
	assert.Equal(t, "bot", res.Messages[2].Sender)
	assert.Equal(t, "the answer", res.Messages[2].Content)

	require.Len(t, provider.prompts, 1)
	assert.Equal(t, "hello", provider.prompts[0])
}

func TestSendMessage_HistoryGrowsByTwo(t *testing.T) {
	svc, db := newTestService(t, &stubProvider{reply: "ok"})
	ctx := context.Background()

	chat, err := svc.CreateChat(ctx)
	require.NoError(t, err)
	before := messageCount(t, db)

	_, err = svc.SendMessage(ctx, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Sender:  "user",
		Message: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, before+2, messageCount(t, db))
}

func TestSendMessage_UnknownChat(t *testing.T) {
	provider := &stubProvider{reply: "never used"}
	svc, db := newTestService(t, provider)

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		ChatId:  777,
		Sender:  "user",
		Message: "hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrChatNotFound)

	assert.Empty(t, provider.prompts, "provider must not be called for unknown chats")
	assert.Zero(t, messageCount(t, db))
}

func TestSendMessage_ProviderFailureWritesNothing(t *testing.T) {
	provider := &stubProvider{err: errors.New("quota exceeded")}
	svc, db := newTestService(t, provider)
	ctx := context.Background()

	chat, err := svc.CreateChat(ctx)
	require.NoError(t, err)
	before := messageCount(t, db)

	_, err = svc.SendMessage(ctx, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Sender:  "user",
		Message: "hello",
	})
	require.Error(t, err)

	assert.Equal(t, before, messageCount(t, db))
}

func TestDeleteChat_RemovesChatAndMessages(t *testing.T) {
	svc, db := newTestService(t, &stubProvider{reply: "ok"})
	ctx := context.Background()

	chat, err := svc.CreateChat(ctx)
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, &dto.SendMessageRequest{
		ChatId:  chat.Id,
		Sender:  "user",
		Message: "hello",
	})
	require.NoError(t, err)

	res, err := svc.DeleteChat(ctx, chat.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, chat.Id, res.ChatId)

	chats, err := svc.ListChats(ctx)
	require.NoError(t, err)
	assert.Empty(t, chats)
	assert.Zero(t, messageCount(t, db))
}

func TestDeleteChat_UnknownIdStillSucceeds(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{})

	res, err := svc.DeleteChat(context.Background(), 12345)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, uint(12345), res.ChatId)
}
