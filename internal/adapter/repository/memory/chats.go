package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type chatRepository struct{ s *Store }

func NewChatRepository(s *Store) repository.ChatRepository {
	return &chatRepository{s: s}
}

func (r *chatRepository) Create(_ context.Context, conversation *entity.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	r.s.conversations[conversation.ID] = copyConversation(conversation)
	return nil
}

func (r *chatRepository) GetByID(_ context.Context, id string) (*entity.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	conversation, ok := r.s.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return copyConversation(conversation), nil
}

func (r *chatRepository) ListByUserID(_ context.Context, userID string) ([]*entity.Conversation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	conversations := []*entity.Conversation{}
	for _, c := range r.s.conversations {
		if c.HasParticipant(userID) {
			conversations = append(conversations, copyConversation(c))
		}
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].ActivityAt().After(conversations[j].ActivityAt())
	})
	return conversations, nil
}

func (r *chatRepository) AddMessage(_ context.Context, conversation *entity.Conversation, message *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.conversations[conversation.ID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	cp := *message
	r.s.messages[conversation.ID] = append(r.s.messages[conversation.ID], &cp)
	stored.ApplyMessage(&cp)
	return nil
}

func (r *chatRepository) ListMessages(_ context.Context, conversationID string) ([]*entity.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	messages := make([]*entity.Message, 0, len(r.s.messages[conversationID]))
	for _, m := range r.s.messages[conversationID] {
		cp := *m
		messages = append(messages, &cp)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *chatRepository) MarkRead(_ context.Context, conversationID, userID string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conversation, ok := r.s.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if conversation.LastReadAt == nil {
		conversation.LastReadAt = make(map[string]time.Time)
	}
	conversation.LastReadAt[userID] = at
	return nil
}
