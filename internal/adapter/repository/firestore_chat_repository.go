package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) conversations() *firestore.CollectionRef {
	return r.client.Collection(conversationsCollection)
}

func (r *firestoreChatRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	_, err := r.conversations().Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.conversations().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}
	conversation.ID = doc.Ref.ID

	return &conversation, nil
}

func (r *firestoreChatRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	query := r.conversations().Where("participants", "array-contains", userID)
	conversations, err := collect(query.Documents(ctx), func(c *entity.Conversation, id string) { c.ID = id })
	if err != nil {
		return nil, errors.Internal("Failed to list conversations", err)
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].ActivityAt().After(conversations[j].ActivityAt())
	})
	return conversations, nil
}

// AddMessage appends the message and refreshes the conversation preview in
// a single commit. The caller is expected to have applied the message to
// conversation already.
func (r *firestoreChatRepository) AddMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	convRef := r.conversations().Doc(conversation.ID)
	msgRef := convRef.Collection(messagesCollection).Doc(message.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(msgRef, message); err != nil {
			return err
		}
		return tx.Update(convRef, []firestore.Update{
			{Path: "lastMessage", Value: conversation.LastMessage},
			{Path: "lastMessageBy", Value: conversation.LastMessageBy},
			{Path: "lastMessageAt", Value: conversation.LastMessageAt},
			{FieldPath: firestore.FieldPath{"lastReadAt", message.SenderID}, Value: message.CreatedAt},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to send message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	query := r.conversations().Doc(conversationID).Collection(messagesCollection).OrderBy("createdAt", firestore.Asc)
	messages, err := collect(query.Documents(ctx), func(m *entity.Message, id string) { m.ID = id })
	if err != nil {
		return nil, errors.Internal("Failed to list messages", err)
	}
	return messages, nil
}

func (r *firestoreChatRepository) MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error {
	_, err := r.conversations().Doc(conversationID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"lastReadAt", userID}, Value: at},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to mark conversation as read", err)
	}
	return nil
}
