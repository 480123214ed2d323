package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) ListByCourse(ctx context.Context, courseID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Where("courseId", "==", courseID)
	reviews, err := collect(query.Documents(ctx), func(rv *entity.Review, id string) { rv.ID = id })
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}

	// Sorted here rather than in the query to avoid a composite index.
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}
