package repository

import (
	"context"

	"picklrzone/internal/domain/entity"
)

type EnrollmentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.Enrollment, error)
	Exists(ctx context.Context, userID, courseID string) (bool, error)
}
