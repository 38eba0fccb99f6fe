package dto

type SeedMessageResponse struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type CreateChatResponse struct {
	Id       uint                  `json:"id"`
	Title    string                `json:"title"`
	Messages []SeedMessageResponse `json:"messages"`
}

type ChatSummaryResponse struct {
	Id        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

type SendMessageRequest struct {
	ChatId  uint   `json:"chat_id" validate:"required"`
	Sender  string `json:"sender" validate:"required,oneof=user bot"`
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	Id        uint   `json:"id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type SendMessageResponse struct {
	ChatId   uint              `json:"chat_id"`
	Messages []MessageResponse `json:"messages"`
}

type DeleteChatResponse struct {
	Success bool `json:"success"`
	ChatId  uint `json:"chat_id"`
}
