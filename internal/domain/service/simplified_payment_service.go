package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"picklrzone/pkg/logger"
)

// SimplifiedCheckoutService stands in for Stripe in development and tests.
// Sessions are kept in memory and count as paid as soon as they exist.
type SimplifiedCheckoutService struct {
	mu       sync.RWMutex
	sessions map[string]*CheckoutSession
}

func NewSimplifiedCheckoutService() *SimplifiedCheckoutService {
	return &SimplifiedCheckoutService{
		sessions: make(map[string]*CheckoutSession),
	}
}

func (s *SimplifiedCheckoutService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	id := "cs_test_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	metadata := make(map[string]string, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	session := &CheckoutSession{
		ID:            id,
		URL:           strings.ReplaceAll(req.SuccessURL, "{CHECKOUT_SESSION_ID}", id),
		PaymentStatus: PaymentStatusPaid,
		Metadata:      metadata,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	logger.Debug("Created simulated checkout session %s for user %s", id, req.UserID)
	return session, nil
}

func (s *SimplifiedCheckoutService) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

// SetPaymentStatus overrides a session's status, e.g. to simulate an
// abandoned checkout.
func (s *SimplifiedCheckoutService) SetPaymentStatus(sessionID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		session.PaymentStatus = status
	}
}
