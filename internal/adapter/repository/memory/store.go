// Package memory keeps every collection in process memory. It backs local
// runs without Firestore credentials and the usecase tests.
package memory

import (
	"sync"
	"time"

	"picklrzone/internal/domain/entity"
)

type (
	// Store is shared by all repositories so that multi-document writes
	// happen under a single lock.
	Store struct {
		mu sync.RWMutex

		users         map[string]*entity.User
		courses       map[string]*entity.Course
		reviews       map[string]*entity.Review
		enrollments   map[string]*entity.Enrollment
		bookings      map[string]*entity.Booking
		submissions   map[string]*entity.Submission
		conversations map[string]*entity.Conversation
		messages      map[string][]*entity.Message
	}
)

func NewStore() *Store {
	return &Store{
		users:         make(map[string]*entity.User),
		courses:       make(map[string]*entity.Course),
		reviews:       make(map[string]*entity.Review),
		enrollments:   make(map[string]*entity.Enrollment),
		bookings:      make(map[string]*entity.Booking),
		submissions:   make(map[string]*entity.Submission),
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
}

func copyCourse(c *entity.Course) *entity.Course {
	cp := *c
	cp.Lessons = append([]entity.Lesson(nil), c.Lessons...)
	return &cp
}

func copyConversation(c *entity.Conversation) *entity.Conversation {
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	cp.ParticipantNames = make(map[string]string, len(c.ParticipantNames))
	for k, v := range c.ParticipantNames {
		cp.ParticipantNames[k] = v
	}
	cp.ParticipantPhotos = make(map[string]string, len(c.ParticipantPhotos))
	for k, v := range c.ParticipantPhotos {
		cp.ParticipantPhotos[k] = v
	}
	cp.LastReadAt = make(map[string]time.Time, len(c.LastReadAt))
	for k, v := range c.LastReadAt {
		cp.LastReadAt[k] = v
	}
	if c.LastMessageAt != nil {
		at := *c.LastMessageAt
		cp.LastMessageAt = &at
	}
	return &cp
}
