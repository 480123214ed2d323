package usecase

import (
	"context"
	"time"
)

// VerifiedToken holds the claims of a successfully verified ID token.
type VerifiedToken struct {
	UID     string
	Email   string
	Name    string
	Picture string
}

// AuthUser is an account known to the identity provider.
type AuthUser struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (*VerifiedToken, error)
	ListUsers(ctx context.Context, max int) ([]*AuthUser, error)
}

// Notifier pushes realtime events to connected users. Delivery is best
// effort and never fails the caller.
type Notifier interface {
	Notify(userIDs []string, eventType string, data interface{})
}

type RateLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

type noopNotifier struct{}

func (noopNotifier) Notify([]string, string, interface{}) {}
