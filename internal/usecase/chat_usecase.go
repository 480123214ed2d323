package usecase

import (
	"context"
	"strings"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

const (
	ActionSendMessage        = "send_message"
	ActionCreateConversation = "create_conversation"

	EventMessage      = "message"
	EventConversation = "conversation"

	minSearchLength     = 2
	maxSearchResults    = 20
	authSearchPageLimit = 100
)

type ChatUseCase struct {
	chatRepo     repository.ChatRepository
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	notifier     Notifier
	rateLimiter  RateLimiter
	now          func() time.Time
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	firebaseAuth FirebaseAuthClient,
	notifier Notifier,
	rateLimiter RateLimiter,
) *ChatUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &ChatUseCase{
		chatRepo:     chatRepo,
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		notifier:     notifier,
		rateLimiter:  rateLimiter,
		now:          time.Now,
	}
}

type CreateConversationInput struct {
	Type            string
	Name            string
	ParticipantUIDs []string
}

type UserSearchResult struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
	Role        string `json:"role"`
}

// SearchUsers matches saved profiles first, then accounts that never saved
// a profile. The caller is never included.
func (uc *ChatUseCase) SearchUsers(ctx context.Context, caller *Identity, query string) ([]*UserSearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []*UserSearchResult{}
	if len([]rune(q)) < minSearchLength {
		return results, nil
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{caller.UID: true}
	for _, u := range users {
		if seen[u.UID] || !matches(q, u.DisplayName, u.Email) {
			continue
		}
		seen[u.UID] = true
		results = append(results, &UserSearchResult{
			UID:         u.UID,
			DisplayName: firstNonEmpty(u.DisplayName, u.Email),
			Email:       u.Email,
			PhotoURL:    u.PhotoURL,
			Role:        firstNonEmpty(u.Role, entity.RoleUser),
		})
	}

	if uc.firebaseAuth != nil {
		accounts, err := uc.firebaseAuth.ListUsers(ctx, authSearchPageLimit)
		if err != nil {
			logger.Warn("Auth user listing failed during search: %v", err)
		}
		for _, a := range accounts {
			if seen[a.UID] || !matches(q, a.DisplayName, a.Email) {
				continue
			}
			seen[a.UID] = true
			results = append(results, &UserSearchResult{
				UID:         a.UID,
				DisplayName: firstNonEmpty(a.DisplayName, a.Email),
				Email:       a.Email,
				PhotoURL:    a.PhotoURL,
				Role:        entity.RoleUser,
			})
		}
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, caller *Identity) ([]*entity.Conversation, error) {
	return uc.chatRepo.ListByUserID(ctx, caller.UID)
}

// CreateConversation opens a DM or group. For a DM that already exists
// between the two users the existing conversation is returned and created
// is false.
func (uc *ChatUseCase) CreateConversation(ctx context.Context, caller *Identity, input CreateConversationInput) (conversation *entity.Conversation, created bool, err error) {
	if input.Type != entity.ConversationTypeDM && input.Type != entity.ConversationTypeGroup {
		return nil, false, errors.Validation("Type must be 'dm' or 'group'", nil)
	}
	if len(input.ParticipantUIDs) == 0 {
		return nil, false, errors.Validation("At least one participant is required", nil)
	}

	participants := []string{caller.UID}
	seen := map[string]bool{caller.UID: true}
	for _, uid := range input.ParticipantUIDs {
		uid = strings.TrimSpace(uid)
		if uid == "" || seen[uid] {
			continue
		}
		seen[uid] = true
		participants = append(participants, uid)
	}

	name := strings.TrimSpace(input.Name)
	switch input.Type {
	case entity.ConversationTypeDM:
		if len(participants) != 2 {
			return nil, false, errors.Validation("DM must have exactly 2 participants", nil)
		}
		existing, err := uc.findDM(ctx, caller.UID, participants[1])
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
		name = ""
	case entity.ConversationTypeGroup:
		if name == "" {
			return nil, false, errors.Validation("Group chat requires a name", nil)
		}
	}

	if err := uc.checkRate(caller.UID, ActionCreateConversation, "Rate limit exceeded. Please wait before creating another conversation"); err != nil {
		return nil, false, err
	}

	now := uc.now()
	conversation = &entity.Conversation{
		Type:              input.Type,
		Name:              name,
		Participants:      participants,
		ParticipantNames:  make(map[string]string, len(participants)),
		ParticipantPhotos: make(map[string]string, len(participants)),
		LastReadAt:        make(map[string]time.Time, len(participants)),
		CreatedBy:         caller.UID,
		CreatedAt:         now,
	}
	for _, uid := range participants {
		profile, err := lookupProfile(ctx, uc.userRepo, uid)
		if err != nil {
			return nil, false, err
		}
		conversation.ParticipantNames[uid] = firstNonEmpty(profile.DisplayName, profile.Email, "User")
		conversation.ParticipantPhotos[uid] = profile.PhotoURL
		conversation.LastReadAt[uid] = now
	}

	if err := uc.chatRepo.Create(ctx, conversation); err != nil {
		return nil, false, err
	}

	uc.notifier.Notify(others(participants, caller.UID), EventConversation, conversation)
	return conversation, true, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, caller *Identity, conversationID string) ([]*entity.Message, error) {
	if _, err := uc.participantConversation(ctx, caller, conversationID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListMessages(ctx, conversationID)
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, caller *Identity, conversationID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Validation("Message text is required", nil)
	}

	conversation, err := uc.participantConversation(ctx, caller, conversationID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkRate(caller.UID, ActionSendMessage, "Rate limit exceeded. Please wait before sending another message"); err != nil {
		return nil, err
	}

	profile, err := lookupProfile(ctx, uc.userRepo, caller.UID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       caller.UID,
		SenderName:     firstNonEmpty(profile.DisplayName, caller.Name, "User"),
		SenderPhotoURL: profile.PhotoURL,
		Text:           text,
		CreatedAt:      uc.now(),
	}
	conversation.ApplyMessage(message)

	if err := uc.chatRepo.AddMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	uc.notifier.Notify(others(conversation.Participants, caller.UID), EventMessage, message)
	return message, nil
}

func (uc *ChatUseCase) MarkAsRead(ctx context.Context, caller *Identity, conversationID string) error {
	if _, err := uc.participantConversation(ctx, caller, conversationID); err != nil {
		return err
	}
	return uc.chatRepo.MarkRead(ctx, conversationID, caller.UID, uc.now())
}

func (uc *ChatUseCase) participantConversation(ctx context.Context, caller *Identity, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.chatRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(caller.UID) {
		return nil, errors.Forbidden("You are not a participant", nil)
	}
	return conversation, nil
}

func (uc *ChatUseCase) findDM(ctx context.Context, userID, otherID string) (*entity.Conversation, error) {
	conversations, err := uc.chatRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range conversations {
		if c.Type == entity.ConversationTypeDM && c.HasParticipant(otherID) {
			return c, nil
		}
	}
	return nil, nil
}

func (uc *ChatUseCase) checkRate(userID, action, message string) error {
	if uc.rateLimiter == nil {
		return nil
	}
	allowed, wait := uc.rateLimiter.Allow(userID, action)
	if !allowed {
		logger.Warn("%s rate limited: user %s must wait %v", action, userID, wait)
		return errors.TooManyRequests(message, wait)
	}
	return nil
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func others(participants []string, uid string) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		if p != uid {
			out = append(out, p)
		}
	}
	return out
}
