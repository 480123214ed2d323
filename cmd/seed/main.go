package main

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"picklrzone/internal/adapter/repository"
	"picklrzone/internal/domain/entity"
	"picklrzone/pkg/config"
	"picklrzone/pkg/logger"
)

// Collections wiped before seeding. User profiles are kept.
var seededCollections = []string{"courses", "reviews", "submissions", "bookings"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.FirebaseProject == "" {
		logger.Logger().Fatal().Msg("FIREBASE_PROJECT_ID is required")
	}

	ctx := context.Background()

	var opts []option.ClientOption
	switch {
	case cfg.FirebaseServiceAccountJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON)))
	case cfg.FirebaseServiceAccountPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseServiceAccountPath))
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("Failed to create Firestore client")
	}
	defer client.Close()

	logger.Info("Clearing old data...")
	for _, name := range seededCollections {
		n, err := clearCollection(ctx, client, name)
		if err != nil {
			logger.Logger().Fatal().Err(err).Str("collection", name).Msg("Failed to clear collection")
		}
		logger.Info("Cleared %d docs from %s", n, name)
	}

	courseRepo := repository.NewFirestoreCourseRepository(client)
	now := time.Now().UTC()

	courseIDs := make([]string, 0, len(sampleCourses))
	lessons := 0
	for i := range sampleCourses {
		course := sampleCourses[i]
		course.Lessons = entity.SortLessons(course.Lessons)
		course.CreatedAt = now
		course.UpdatedAt = now

		if err := courseRepo.Create(ctx, &course); err != nil {
			logger.Logger().Fatal().Err(err).Str("title", course.Title).Msg("Failed to create course")
		}
		courseIDs = append(courseIDs, course.ID)
		lessons += len(course.Lessons)
		logger.Info("Created %q with %d lessons", course.Title, len(course.Lessons))
	}

	// Reviews are written directly: the course aggregates above already
	// account for them.
	for _, r := range sampleReviews {
		review := entity.Review{
			ID:        entity.ReviewID(courseIDs[r.course], r.userID),
			CourseID:  courseIDs[r.course],
			UserID:    r.userID,
			UserName:  r.userName,
			Rating:    r.rating,
			Text:      r.text,
			CreatedAt: now,
		}
		if _, err := client.Collection("reviews").Doc(review.ID).Set(ctx, review); err != nil {
			logger.Logger().Fatal().Err(err).Str("review", review.ID).Msg("Failed to create review")
		}
	}

	logger.Info("Seed complete: %d courses, %d lessons, %d reviews", len(courseIDs), lessons, len(sampleReviews))
}

func clearCollection(ctx context.Context, client *firestore.Client, name string) (int, error) {
	refs, err := client.Collection(name).DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, err
	}

	bw := client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return 0, err
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, err
		}
	}
	return len(refs), nil
}
