package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/internal/domain/service"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

const (
	metadataUserID    = "userId"
	metadataCourseIDs = "courseIds"
)

type PaymentUseCase struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	gateway        service.CheckoutGateway
	clientURL      string
	now            func() time.Time
}

func NewPaymentUseCase(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	gateway service.CheckoutGateway,
	clientURL string,
) *PaymentUseCase {
	return &PaymentUseCase{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		gateway:        gateway,
		clientURL:      strings.TrimRight(clientURL, "/"),
		now:            time.Now,
	}
}

// CheckoutItemInput mirrors a cart line. Only the course id is trusted;
// name and price are read from the catalog.
type CheckoutItemInput struct {
	CourseID     string
	Title        string
	Price        float64
	ThumbnailURL string
}

type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

func (uc *PaymentUseCase) CreateCheckoutSession(ctx context.Context, caller *Identity, items []CheckoutItemInput) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, errors.Validation("No items provided", nil)
	}

	seen := make(map[string]bool, len(items))
	var courseIDs []string
	var lineItems []service.CheckoutItem
	for _, item := range items {
		if item.CourseID == "" {
			return nil, errors.Validation("Each item requires a courseId", nil)
		}
		if seen[item.CourseID] {
			continue
		}
		seen[item.CourseID] = true

		course, err := uc.courseRepo.GetByID(ctx, item.CourseID)
		if err != nil {
			return nil, err
		}

		enrolled, err := uc.enrollmentRepo.Exists(ctx, caller.UID, course.ID)
		if err != nil {
			return nil, err
		}
		if enrolled {
			return nil, errors.Conflict(fmt.Sprintf("You are already enrolled in %q", course.Title))
		}

		courseIDs = append(courseIDs, course.ID)
		lineItems = append(lineItems, service.CheckoutItem{
			CourseID:     course.ID,
			Name:         course.Title,
			AmountCents:  entity.PriceInCents(course.Price),
			ThumbnailURL: course.ThumbnailURL,
		})
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, service.CheckoutRequest{
		UserID:     caller.UID,
		Items:      lineItems,
		SuccessURL: uc.clientURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  uc.clientURL + "/cart",
		Metadata: map[string]string{
			metadataUserID:    caller.UID,
			metadataCourseIDs: strings.Join(courseIDs, ","),
		},
	})
	if err != nil {
		return nil, errors.Internal("Failed to create checkout session", err)
	}

	return &CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

// ConfirmPayment turns a paid session into enrollments. It is safe to call
// repeatedly; only enrollments created by this call are returned.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, caller *Identity, sessionID string) ([]*entity.Enrollment, error) {
	if sessionID == "" {
		return nil, errors.Validation("Session ID required", nil)
	}

	session, err := uc.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if stderrors.Is(err, service.ErrSessionNotFound) {
			return nil, errors.NotFound("Checkout session", err)
		}
		return nil, errors.Internal("Failed to retrieve checkout session", err)
	}

	if !session.Paid() {
		return nil, errors.BadRequest("Payment not completed", nil)
	}
	if session.Metadata[metadataUserID] != caller.UID {
		return nil, errors.Forbidden("Session does not belong to this user", nil)
	}

	enrollments := []*entity.Enrollment{}
	for _, courseID := range strings.Split(session.Metadata[metadataCourseIDs], ",") {
		courseID = strings.TrimSpace(courseID)
		if courseID == "" {
			continue
		}

		enrollment := &entity.Enrollment{
			ID:              entity.EnrollmentID(caller.UID, courseID),
			UserID:          caller.UID,
			CourseID:        courseID,
			PurchasedAt:     uc.now(),
			StripeSessionID: session.ID,
		}
		created, err := uc.courseRepo.RecordEnrollment(ctx, enrollment)
		if err != nil {
			return nil, err
		}
		if created {
			enrollments = append(enrollments, enrollment)
		}
	}

	logger.Info("Confirmed checkout %s for user %s: %d new enrollments", session.ID, caller.UID, len(enrollments))
	return enrollments, nil
}

func (uc *PaymentUseCase) ListEnrollments(ctx context.Context, caller *Identity) ([]*entity.Enrollment, error) {
	return uc.enrollmentRepo.ListByUser(ctx, caller.UID)
}
