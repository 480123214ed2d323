package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/internal/domain/service"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

type SubmissionUseCase struct {
	submissionRepo repository.SubmissionRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	uploads        service.FileUploadService
	notifier       Notifier
	now            func() time.Time
}

// NewSubmissionUseCase builds the usecase. uploads may be nil when no
// storage bucket is configured.
func NewSubmissionUseCase(
	submissionRepo repository.SubmissionRepository,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	uploads service.FileUploadService,
	notifier Notifier,
) *SubmissionUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &SubmissionUseCase{
		submissionRepo: submissionRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		uploads:        uploads,
		notifier:       notifier,
		now:            time.Now,
	}
}

type CreateSubmissionInput struct {
	VideoURL string
	Notes    string
}

type EvaluateSubmissionInput struct {
	VendorFeedback string
	VendorRating   *int
}

func (uc *SubmissionUseCase) CreateSubmission(ctx context.Context, caller *Identity, courseID string, input CreateSubmissionInput) (*entity.Submission, error) {
	videoURL := strings.TrimSpace(input.VideoURL)
	if videoURL == "" {
		return nil, errors.Validation("Video URL is required", nil)
	}

	enrolled, err := uc.enrollmentRepo.Exists(ctx, caller.UID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errors.Forbidden("You must be enrolled to submit", nil)
	}

	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	profile, err := lookupProfile(ctx, uc.userRepo, caller.UID)
	if err != nil {
		return nil, err
	}

	submission := &entity.Submission{
		CourseID:     course.ID,
		CourseTitle:  course.Title,
		UserID:       caller.UID,
		UserName:     firstNonEmpty(profile.DisplayName, caller.Name, "Anonymous"),
		UserPhotoURL: profile.PhotoURL,
		VideoURL:     videoURL,
		Notes:        input.Notes,
		Status:       entity.SubmissionStatusPending,
		VendorID:     course.VendorID,
		CreatedAt:    uc.now(),
	}
	if err := uc.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	uc.notifier.Notify([]string{submission.VendorID}, "submission", submission)
	return submission, nil
}

// RequestUploadURL hands out a signed URL the client can PUT a practice
// video to before creating the submission.
func (uc *SubmissionUseCase) RequestUploadURL(ctx context.Context, caller *Identity, contentType string) (*service.SignedUpload, error) {
	if uc.uploads == nil {
		return nil, errors.ServiceUnavailable("Video uploads are not configured", nil)
	}
	if !strings.HasPrefix(contentType, "video/") {
		return nil, errors.Validation("Content type must be a video type", nil)
	}

	upload, err := uc.uploads.GenerateSignedUploadURL(ctx, contentType, "submissions/"+caller.UID)
	if err != nil {
		return nil, errors.Internal("Failed to generate upload URL", err)
	}
	return upload, nil
}

func (uc *SubmissionUseCase) ListMySubmissions(ctx context.Context, caller *Identity, courseID string) ([]*entity.Submission, error) {
	return uc.submissionRepo.ListByUserAndCourse(ctx, caller.UID, courseID)
}

func (uc *SubmissionUseCase) ListVendorSubmissions(ctx context.Context, caller *Identity) ([]*entity.Submission, error) {
	return uc.submissionRepo.ListByVendor(ctx, caller.UID)
}

func (uc *SubmissionUseCase) EvaluateSubmission(ctx context.Context, caller *Identity, submissionID string, input EvaluateSubmissionInput) (*entity.Submission, error) {
	feedback := strings.TrimSpace(input.VendorFeedback)
	if feedback == "" {
		return nil, errors.Validation("Feedback is required", nil)
	}
	if r := input.VendorRating; r != nil && (*r < 1 || *r > 5) {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	submission, err := uc.submissionRepo.Update(ctx, submissionID, func(s *entity.Submission) error {
		if s.VendorID != caller.UID {
			return errors.Forbidden("You can only evaluate submissions for your courses", nil)
		}
		if err := s.Evaluate(feedback, input.VendorRating, uc.now()); err != nil {
			if stderrors.Is(err, entity.ErrSubmissionReviewed) {
				return errors.Conflict("Submission has already been reviewed")
			}
			return errors.Validation(err.Error(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vendor %s evaluated submission %s", caller.UID, submission.ID)
	uc.notifier.Notify([]string{submission.UserID}, "submission", submission)
	return submission, nil
}
