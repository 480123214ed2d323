package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"picklrzone/internal/adapter/repository/memory"
	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type fixture struct {
	users       repository.UserRepository
	courses     repository.CourseRepository
	reviews     repository.ReviewRepository
	enrollments repository.EnrollmentRepository
	bookings    repository.BookingRepository
	submissions repository.SubmissionRepository
	chats       repository.ChatRepository
	notifier    *recordingNotifier
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		users:       memory.NewUserRepository(store),
		courses:     memory.NewCourseRepository(store),
		reviews:     memory.NewReviewRepository(store),
		enrollments: memory.NewEnrollmentRepository(store),
		bookings:    memory.NewBookingRepository(store),
		submissions: memory.NewSubmissionRepository(store),
		chats:       memory.NewChatRepository(store),
		notifier:    &recordingNotifier{},
	}
}

func (f *fixture) addUser(t *testing.T, uid, name, role string) *Identity {
	t.Helper()
	user := &entity.User{
		UID:         uid,
		Email:       uid + "@example.com",
		DisplayName: name,
		Role:        role,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return &Identity{UID: uid, Email: user.Email, Name: name, Role: role}
}

func (f *fixture) addCourse(t *testing.T, vendor *Identity, title string, price float64) *entity.Course {
	t.Helper()
	course := &entity.Course{
		Title:      title,
		Price:      price,
		Level:      entity.LevelIntermediate,
		VendorID:   vendor.UID,
		VendorName: vendor.Name,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, f.courses.Create(context.Background(), course))
	return course
}

func (f *fixture) enroll(t *testing.T, student *Identity, courseID string) {
	t.Helper()
	created, err := f.courses.RecordEnrollment(context.Background(), &entity.Enrollment{
		ID:          entity.EnrollmentID(student.UID, courseID),
		UserID:      student.UID,
		CourseID:    courseID,
		PurchasedAt: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, created)
}

type notification struct {
	userIDs   []string
	eventType string
	data      interface{}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (n *recordingNotifier) Notify(userIDs []string, eventType string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notification{userIDs: userIDs, eventType: eventType, data: data})
}

func (n *recordingNotifier) last() notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) == 0 {
		return notification{}
	}
	return n.events[len(n.events)-1]
}

type stubAuthClient struct {
	tokens   map[string]*VerifiedToken
	accounts []*AuthUser
	listErr  error
}

func (s *stubAuthClient) VerifyToken(_ context.Context, token string) (*VerifiedToken, error) {
	if v, ok := s.tokens[token]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("token %q rejected", token)
}

func (s *stubAuthClient) ListUsers(_ context.Context, max int) ([]*AuthUser, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.accounts) > max {
		return s.accounts[:max], nil
	}
	return s.accounts, nil
}

// countingLimiter allows the first n calls per action.
type countingLimiter struct {
	n     int
	calls map[string]int
}

func (l *countingLimiter) Allow(userID, action string) (bool, time.Duration) {
	if l.calls == nil {
		l.calls = make(map[string]int)
	}
	key := userID + ":" + action
	l.calls[key]++
	if l.calls[key] > l.n {
		return false, 30 * time.Second
	}
	return true, 0
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code, appErr.Message)
}
