package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type submissionRepository struct{ s *Store }

func NewSubmissionRepository(s *Store) repository.SubmissionRepository {
	return &submissionRepository{s: s}
}

func (r *submissionRepository) Create(_ context.Context, submission *entity.Submission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	cp := *submission
	r.s.submissions[submission.ID] = &cp
	return nil
}

func (r *submissionRepository) GetByID(_ context.Context, id string) (*entity.Submission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	submission, ok := r.s.submissions[id]
	if !ok {
		return nil, errors.NotFound("Submission", nil)
	}
	cp := *submission
	return &cp, nil
}

func (r *submissionRepository) ListByUserAndCourse(_ context.Context, userID, courseID string) ([]*entity.Submission, error) {
	return r.filter(func(s *entity.Submission) bool {
		return s.UserID == userID && s.CourseID == courseID
	}), nil
}

func (r *submissionRepository) ListByVendor(_ context.Context, vendorID string) ([]*entity.Submission, error) {
	return r.filter(func(s *entity.Submission) bool { return s.VendorID == vendorID }), nil
}

func (r *submissionRepository) filter(match func(*entity.Submission) bool) []*entity.Submission {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	submissions := []*entity.Submission{}
	for _, s := range r.s.submissions {
		if match(s) {
			cp := *s
			submissions = append(submissions, &cp)
		}
	}
	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	return submissions
}

func (r *submissionRepository) Update(_ context.Context, id string, fn func(*entity.Submission) error) (*entity.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.submissions[id]
	if !ok {
		return nil, errors.NotFound("Submission", nil)
	}

	cp := *stored
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.s.submissions[id] = &cp

	out := cp
	return &out, nil
}
