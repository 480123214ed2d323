package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type firestoreSubmissionRepository struct {
	client *firestore.Client
}

func NewFirestoreSubmissionRepository(client *firestore.Client) repository.SubmissionRepository {
	return &firestoreSubmissionRepository{
		client: client,
	}
}

func setSubmissionID(s *entity.Submission, id string) { s.ID = id }

func (r *firestoreSubmissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}

	_, err := r.client.Collection(submissionsCollection).Doc(submission.ID).Set(ctx, submission)
	if err != nil {
		return errors.Internal("Failed to create submission", err)
	}
	return nil
}

func (r *firestoreSubmissionRepository) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	doc, err := r.client.Collection(submissionsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Submission", err)
		}
		return nil, errors.Internal("Failed to get submission", err)
	}

	var submission entity.Submission
	if err := doc.DataTo(&submission); err != nil {
		return nil, errors.Internal("Failed to parse submission data", err)
	}
	submission.ID = doc.Ref.ID

	return &submission, nil
}

func (r *firestoreSubmissionRepository) ListByUserAndCourse(ctx context.Context, userID, courseID string) ([]*entity.Submission, error) {
	query := r.client.Collection(submissionsCollection).
		Where("userId", "==", userID).
		Where("courseId", "==", courseID)
	return r.list(ctx, query)
}

func (r *firestoreSubmissionRepository) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Submission, error) {
	return r.list(ctx, r.client.Collection(submissionsCollection).Where("vendorId", "==", vendorID))
}

func (r *firestoreSubmissionRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Submission, error) {
	submissions, err := collect(query.Documents(ctx), setSubmissionID)
	if err != nil {
		return nil, errors.Internal("Failed to list submissions", err)
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	return submissions, nil
}

func (r *firestoreSubmissionRepository) Update(ctx context.Context, id string, fn func(*entity.Submission) error) (*entity.Submission, error) {
	ref := r.client.Collection(submissionsCollection).Doc(id)

	var submission entity.Submission
	var fnErr error
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Submission", err)
			}
			return err
		}

		submission = entity.Submission{}
		if err := doc.DataTo(&submission); err != nil {
			return err
		}
		submission.ID = doc.Ref.ID

		if fnErr = fn(&submission); fnErr != nil {
			return fnErr
		}
		return tx.Set(ref, &submission)
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, transactionError("Failed to update submission", "Submission was modified concurrently", err)
	}

	return &submission, nil
}
