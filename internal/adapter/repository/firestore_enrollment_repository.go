package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type firestoreEnrollmentRepository struct {
	client *firestore.Client
}

func NewFirestoreEnrollmentRepository(client *firestore.Client) repository.EnrollmentRepository {
	return &firestoreEnrollmentRepository{
		client: client,
	}
}

func (r *firestoreEnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Enrollment, error) {
	query := r.client.Collection(enrollmentsCollection).Where("userId", "==", userID)
	enrollments, err := collect(query.Documents(ctx), func(e *entity.Enrollment, id string) { e.ID = id })
	if err != nil {
		return nil, errors.Internal("Failed to list enrollments", err)
	}

	sort.SliceStable(enrollments, func(i, j int) bool {
		return enrollments[i].PurchasedAt.After(enrollments[j].PurchasedAt)
	})
	return enrollments, nil
}

func (r *firestoreEnrollmentRepository) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	iter := r.client.Collection(enrollmentsCollection).
		Where("userId", "==", userID).
		Where("courseId", "==", courseID).
		Limit(1).
		Documents(ctx)

	docs, err := iter.GetAll()
	if err != nil {
		return false, errors.Internal("Failed to check enrollment", err)
	}
	return len(docs) > 0, nil
}
