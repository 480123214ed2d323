package repository

import (
	"context"

	"picklrzone/internal/domain/entity"
)

type ReviewRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]*entity.Review, error)
}
