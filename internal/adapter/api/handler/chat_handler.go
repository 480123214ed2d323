package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
	"picklrzone/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createConversationRequest struct {
	Type            string   `json:"type"`
	Name            string   `json:"name" validate:"max=100"`
	ParticipantUIDs []string `json:"participantUids"`
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"max=5000"`
}

func (h *ChatHandler) SearchUsers(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	users, err := h.chatUseCase.SearchUsers(c.Request().Context(), identity, c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *ChatHandler) ListConversations(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	conversations, err := h.chatUseCase.ListConversations(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

// CreateConversation answers 201 for a new conversation and 200 when an
// existing direct conversation is reused.
func (h *ChatHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	conversation, created, err := h.chatUseCase.CreateConversation(c.Request().Context(), identity, usecase.CreateConversationInput{
		Type:            req.Type,
		Name:            req.Name,
		ParticipantUIDs: req.ParticipantUIDs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Created(c, conversation)
	}
	return response.Success(c, conversation)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	if page, ok := utils.GetPaginationParams(c); ok {
		messages = utils.Paginate(messages, page)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), identity, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) MarkAsRead(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.chatUseCase.MarkAsRead(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Conversation marked as read")
}
