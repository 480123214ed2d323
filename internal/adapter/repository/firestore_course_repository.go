package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

type firestoreCourseRepository struct {
	client *firestore.Client
}

func NewFirestoreCourseRepository(client *firestore.Client) repository.CourseRepository {
	return &firestoreCourseRepository{
		client: client,
	}
}

func setCourseID(c *entity.Course, id string) { c.ID = id }

func (r *firestoreCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if course.ID == "" {
		course.ID = uuid.New().String()
	}

	_, err := r.client.Collection(coursesCollection).Doc(course.ID).Create(ctx, course)
	if err != nil {
		return errors.Internal("Failed to create course", err)
	}
	return nil
}

func (r *firestoreCourseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	doc, err := r.client.Collection(coursesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Course", err)
		}
		return nil, errors.Internal("Failed to get course", err)
	}

	var course entity.Course
	if err := doc.DataTo(&course); err != nil {
		return nil, errors.Internal("Failed to parse course data", err)
	}
	course.ID = doc.Ref.ID

	return &course, nil
}

func (r *firestoreCourseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	query := r.client.Collection(coursesCollection).OrderBy("createdAt", firestore.Desc)
	courses, err := collect(query.Documents(ctx), setCourseID)
	if err != nil {
		return nil, errors.Internal("Failed to list courses", err)
	}
	return courses, nil
}

// Update writes the editable fields only. Owner and counters are left to
// the paths that maintain them.
func (r *firestoreCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	_, err := r.client.Collection(coursesCollection).Doc(course.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: course.Title},
		{Path: "description", Value: course.Description},
		{Path: "shortDescription", Value: course.ShortDescription},
		{Path: "price", Value: course.Price},
		{Path: "thumbnailUrl", Value: course.ThumbnailURL},
		{Path: "introVideoUrl", Value: course.IntroVideoURL},
		{Path: "category", Value: course.Category},
		{Path: "level", Value: course.Level},
		{Path: "lessons", Value: course.Lessons},
		{Path: "updatedAt", Value: course.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Course", err)
		}
		return errors.Internal("Failed to update course", err)
	}
	return nil
}

func (r *firestoreCourseRepository) Delete(ctx context.Context, id string) error {
	courseRef := r.client.Collection(coursesCollection).Doc(id)
	reviews := r.client.Collection(reviewsCollection).Where("courseId", "==", id)

	removed := 0
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		removed = 0
		docs, err := tx.Documents(reviews).GetAll()
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
			removed++
		}
		return tx.Delete(courseRef)
	})
	if err != nil {
		return errors.Internal("Failed to delete course", err)
	}

	logger.Debug("Deleted course %s with %d reviews", id, removed)
	return nil
}

func (r *firestoreCourseRepository) RecordReview(ctx context.Context, review *entity.Review) (*entity.Course, error) {
	courseRef := r.client.Collection(coursesCollection).Doc(review.CourseID)
	reviewRef := r.client.Collection(reviewsCollection).Doc(review.ID)
	// Reviews written before ids were derived from (course, user) are only
	// reachable through a query.
	legacy := r.client.Collection(reviewsCollection).
		Where("courseId", "==", review.CourseID).
		Where("userId", "==", review.UserID).
		Limit(1)

	var updated entity.Course
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		courseDoc, err := tx.Get(courseRef)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Course", err)
			}
			return err
		}

		existing, err := tx.Documents(legacy).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return errors.Conflict("You have already reviewed this course")
		}

		if err := courseDoc.DataTo(&updated); err != nil {
			return err
		}
		updated.ID = courseDoc.Ref.ID
		updated.ApplyRating(review.Rating)

		if err := tx.Create(reviewRef, review); err != nil {
			return err
		}
		return tx.Update(courseRef, []firestore.Update{
			{Path: "averageRating", Value: updated.AverageRating},
			{Path: "totalReviews", Value: updated.TotalReviews},
			{Path: "ratingSum", Value: updated.RatingSum},
		})
	})
	if err != nil {
		return nil, transactionError("Failed to save review", "You have already reviewed this course", err)
	}

	return &updated, nil
}

func (r *firestoreCourseRepository) RecordEnrollment(ctx context.Context, enrollment *entity.Enrollment) (bool, error) {
	enrollmentRef := r.client.Collection(enrollmentsCollection).Doc(enrollment.ID)
	courseRef := r.client.Collection(coursesCollection).Doc(enrollment.CourseID)
	legacy := r.client.Collection(enrollmentsCollection).
		Where("userId", "==", enrollment.UserID).
		Where("courseId", "==", enrollment.CourseID).
		Limit(1)

	created := false
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		created = false

		existing, err := tx.Documents(legacy).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		courseExists := true
		courseDoc, err := tx.Get(courseRef)
		if err != nil {
			if !isNotFound(err) {
				return err
			}
			courseExists = false
		}
		if courseExists {
			var course entity.Course
			if err := courseDoc.DataTo(&course); err != nil {
				return err
			}
			enrollment.CourseTitle = course.Title
		}

		if err := tx.Create(enrollmentRef, enrollment); err != nil {
			return err
		}
		if courseExists {
			if err := tx.Update(courseRef, []firestore.Update{
				{Path: "totalStudents", Value: firestore.Increment(1)},
			}); err != nil {
				return err
			}
		}

		created = true
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, errors.Internal("Failed to record enrollment", err)
	}

	return created, nil
}

// transactionError keeps AppErrors raised inside a transaction and maps a
// lost create race to Conflict.
func transactionError(message, conflict string, err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	if status.Code(err) == codes.AlreadyExists {
		return errors.Conflict(conflict)
	}
	return errors.Internal(message, err)
}
