package controller

import (
	"errors"

	"ai-chat-be/internal/dto"
	"ai-chat-be/internal/pkg/serverutils"
	"ai-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateChat(ctx *fiber.Ctx) error
	ListChats(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat/new", c.CreateChat)
	r.Get("/chats", c.ListChats)
	r.Post("/chat", c.SendMessage)
	r.Delete("/chat/delete/:chat_id", c.DeleteChat)
}

func (c *chatController) CreateChat(ctx *fiber.Ctx) error {
	res, err := c.chatService.CreateChat(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	res, err := c.chatService.ListChats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fieldErr := range vErrs {
				if fieldErr.Tag() == "oneof" {
					return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sender"})
				}
			}
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	chatId, err := ctx.ParamsInt("chat_id")
	if err != nil || chatId < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid chat id"})
	}

	res, err := c.chatService.DeleteChat(ctx.Context(), uint(chatId))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
