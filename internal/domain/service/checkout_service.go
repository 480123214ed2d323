package service

import (
	"context"
	"errors"
)

const PaymentStatusPaid = "paid"

// ErrSessionNotFound is returned when the processor has no such session.
var ErrSessionNotFound = errors.New("checkout session not found")

// CheckoutItem is one course line in a hosted checkout.
type CheckoutItem struct {
	CourseID     string
	Name         string
	AmountCents  int64
	ThumbnailURL string
}

// CheckoutRequest describes the hosted payment page to open for a user.
type CheckoutRequest struct {
	UserID     string
	Items      []CheckoutItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the processor's view of a checkout.
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	Metadata      map[string]string
}

func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// CheckoutGateway creates and looks up hosted checkout sessions.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
