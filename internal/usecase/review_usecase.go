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

type ReviewUseCase struct {
	courseRepo repository.CourseRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

func NewReviewUseCase(
	courseRepo repository.CourseRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		courseRepo: courseRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

type CreateReviewInput struct {
	Rating int
	Text   string
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, courseID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByCourse(ctx, courseID)
}

// CreateReview stores a review and updates the course rating in one step.
// Each user may review a course once.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, caller *Identity, courseID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.Validation("Rating and text are required", nil)
	}

	profile, err := lookupProfile(ctx, uc.userRepo, caller.UID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:           entity.ReviewID(courseID, caller.UID),
		CourseID:     courseID,
		UserID:       caller.UID,
		UserName:     firstNonEmpty(profile.DisplayName, caller.Name, "Anonymous"),
		UserPhotoURL: profile.PhotoURL,
		Rating:       input.Rating,
		Text:         text,
		CreatedAt:    uc.now(),
	}

	course, err := uc.courseRepo.RecordReview(ctx, review)
	if err != nil {
		return nil, err
	}

	logger.Debug("Course %s rated %d by %s, average now %.1f over %d reviews",
		courseID, review.Rating, caller.UID, course.AverageRating, course.TotalReviews)
	return review, nil
}
