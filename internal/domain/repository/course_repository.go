package repository

import (
	"context"

	"picklrzone/internal/domain/entity"
)

// CourseRepository owns every write that touches a course document,
// including the aggregate counters maintained by reviews and enrollments.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	List(ctx context.Context) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes the course together with its reviews in one batch.
	Delete(ctx context.Context, id string) error

	// RecordReview stores the review and folds its rating into the course
	// atomically. A second review by the same user fails with Conflict.
	RecordReview(ctx context.Context, review *entity.Review) (*entity.Course, error)

	// RecordEnrollment creates the enrollment unless it exists and bumps
	// totalStudents when the course is still present. Reports whether
	// a new enrollment was written.
	RecordEnrollment(ctx context.Context, enrollment *entity.Enrollment) (bool, error)
}
