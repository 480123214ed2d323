package usecase

import (
	"context"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

type CourseUseCase struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

func NewCourseUseCase(courseRepo repository.CourseRepository, userRepo repository.UserRepository) *CourseUseCase {
	return &CourseUseCase{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

type CreateCourseInput struct {
	Title            string
	Description      string
	ShortDescription string
	Price            float64
	ThumbnailURL     string
	IntroVideoURL    string
	Category         string
	Level            string
	Lessons          []entity.Lesson
}

// UpdateCourseInput is a partial patch; nil fields are left unchanged.
type UpdateCourseInput struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Price            *float64
	ThumbnailURL     *string
	IntroVideoURL    *string
	Category         *string
	Level            *string
	Lessons          *[]entity.Lesson
}

func (uc *CourseUseCase) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	return uc.courseRepo.List(ctx)
}

func (uc *CourseUseCase) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

func (uc *CourseUseCase) CreateCourse(ctx context.Context, caller *Identity, input CreateCourseInput) (*entity.Course, error) {
	if !entity.ValidLevel(input.Level) {
		return nil, errors.Validation("Level must be one of beginner, intermediate, advanced, all-levels", nil)
	}
	if input.Price < 0 {
		return nil, errors.Validation("Price must not be negative", nil)
	}

	profile, err := lookupProfile(ctx, uc.userRepo, caller.UID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	course := &entity.Course{
		Title:            input.Title,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		ThumbnailURL:     input.ThumbnailURL,
		IntroVideoURL:    input.IntroVideoURL,
		Category:         input.Category,
		Level:            input.Level,
		Lessons:          entity.SortLessons(input.Lessons),
		VendorID:         caller.UID,
		VendorName:       firstNonEmpty(profile.DisplayName, caller.Name, "Unknown"),
		VendorPhotoURL:   profile.PhotoURL,
		VendorLocation:   profile.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Info("Vendor %s created course %s (%d lessons)", caller.UID, course.ID, len(course.Lessons))
	return course, nil
}

func (uc *CourseUseCase) UpdateCourse(ctx context.Context, caller *Identity, id string, input UpdateCourseInput) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.VendorID != caller.UID {
		return nil, errors.Forbidden("You can only edit your own courses", nil)
	}

	if input.Level != nil && !entity.ValidLevel(*input.Level) {
		return nil, errors.Validation("Level must be one of beginner, intermediate, advanced, all-levels", nil)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, errors.Validation("Price must not be negative", nil)
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.ShortDescription != nil {
		course.ShortDescription = *input.ShortDescription
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.ThumbnailURL != nil {
		course.ThumbnailURL = *input.ThumbnailURL
	}
	if input.IntroVideoURL != nil {
		course.IntroVideoURL = *input.IntroVideoURL
	}
	if input.Category != nil {
		course.Category = *input.Category
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if input.Lessons != nil {
		course.Lessons = entity.SortLessons(*input.Lessons)
	}
	course.UpdatedAt = uc.now()

	if err := uc.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes the course and its reviews. Enrollments, bookings
// and submissions that reference it are kept.
func (uc *CourseUseCase) DeleteCourse(ctx context.Context, caller *Identity, id string) error {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if course.VendorID != caller.UID {
		return errors.Forbidden("You can only delete your own courses", nil)
	}

	if err := uc.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Vendor %s deleted course %s", caller.UID, id)
	return nil
}

// lookupProfile returns the stored profile or an empty one when the user
// never saved a profile.
func lookupProfile(ctx context.Context, userRepo repository.UserRepository, uid string) (*entity.User, error) {
	user, err := userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return &entity.User{UID: uid}, nil
		}
		return nil, err
	}
	return user, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
