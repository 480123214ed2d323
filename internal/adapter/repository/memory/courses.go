package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type courseRepository struct{ s *Store }

func NewCourseRepository(s *Store) repository.CourseRepository {
	return &courseRepository{s: s}
}

func (r *courseRepository) Create(_ context.Context, course *entity.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	if _, ok := r.s.courses[course.ID]; ok {
		return errors.Conflict("Course already exists")
	}
	r.s.courses[course.ID] = copyCourse(course)
	return nil
}

func (r *courseRepository) GetByID(_ context.Context, id string) (*entity.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	course, ok := r.s.courses[id]
	if !ok {
		return nil, errors.NotFound("Course", nil)
	}
	return copyCourse(course), nil
}

func (r *courseRepository) List(_ context.Context) ([]*entity.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	courses := make([]*entity.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		courses = append(courses, copyCourse(c))
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})
	return courses, nil
}

func (r *courseRepository) Update(_ context.Context, course *entity.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.courses[course.ID]
	if !ok {
		return errors.NotFound("Course", nil)
	}

	updated := copyCourse(course)
	updated.VendorID = existing.VendorID
	updated.VendorName = existing.VendorName
	updated.VendorPhotoURL = existing.VendorPhotoURL
	updated.VendorLocation = existing.VendorLocation
	updated.AverageRating = existing.AverageRating
	updated.TotalReviews = existing.TotalReviews
	updated.RatingSum = existing.RatingSum
	updated.TotalStudents = existing.TotalStudents
	updated.CreatedAt = existing.CreatedAt
	r.s.courses[course.ID] = updated
	return nil
}

func (r *courseRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for reviewID, review := range r.s.reviews {
		if review.CourseID == id {
			delete(r.s.reviews, reviewID)
		}
	}
	delete(r.s.courses, id)
	return nil
}

func (r *courseRepository) RecordReview(_ context.Context, review *entity.Review) (*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	course, ok := r.s.courses[review.CourseID]
	if !ok {
		return nil, errors.NotFound("Course", nil)
	}
	for _, existing := range r.s.reviews {
		if existing.CourseID == review.CourseID && existing.UserID == review.UserID {
			return nil, errors.Conflict("You have already reviewed this course")
		}
	}

	cp := *review
	r.s.reviews[review.ID] = &cp
	course.ApplyRating(review.Rating)
	return copyCourse(course), nil
}

func (r *courseRepository) RecordEnrollment(_ context.Context, enrollment *entity.Enrollment) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return false, nil
		}
	}

	if course, ok := r.s.courses[enrollment.CourseID]; ok {
		enrollment.CourseTitle = course.Title
		course.TotalStudents++
	}
	cp := *enrollment
	r.s.enrollments[enrollment.ID] = &cp
	return true, nil
}

type reviewRepository struct{ s *Store }

func NewReviewRepository(s *Store) repository.ReviewRepository {
	return &reviewRepository{s: s}
}

func (r *reviewRepository) ListByCourse(_ context.Context, courseID string) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reviews := []*entity.Review{}
	for _, rv := range r.s.reviews {
		if rv.CourseID == courseID {
			cp := *rv
			reviews = append(reviews, &cp)
		}
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

type enrollmentRepository struct{ s *Store }

func NewEnrollmentRepository(s *Store) repository.EnrollmentRepository {
	return &enrollmentRepository{s: s}
}

func (r *enrollmentRepository) ListByUser(_ context.Context, userID string) ([]*entity.Enrollment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	enrollments := []*entity.Enrollment{}
	for _, e := range r.s.enrollments {
		if e.UserID == userID {
			cp := *e
			enrollments = append(enrollments, &cp)
		}
	}
	sort.SliceStable(enrollments, func(i, j int) bool {
		return enrollments[i].PurchasedAt.After(enrollments[j].PurchasedAt)
	})
	return enrollments, nil
}

func (r *enrollmentRepository) Exists(_ context.Context, userID, courseID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}
