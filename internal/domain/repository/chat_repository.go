package repository

import (
	"context"
	"time"

	"picklrzone/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// Message methods
	AddMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error
}
