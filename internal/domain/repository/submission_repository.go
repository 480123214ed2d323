package repository

import (
	"context"

	"picklrzone/internal/domain/entity"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	GetByID(ctx context.Context, id string) (*entity.Submission, error)
	ListByUserAndCourse(ctx context.Context, userID, courseID string) ([]*entity.Submission, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Submission, error)
	Update(ctx context.Context, id string, fn func(*entity.Submission) error) (*entity.Submission, error)
}
