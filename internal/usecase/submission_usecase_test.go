package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/service"
	"picklrzone/pkg/errors"
)

type fakeUploads struct {
	folder      string
	contentType string
}

func (u *fakeUploads) GenerateSignedUploadURL(_ context.Context, contentType, folder string) (*service.SignedUpload, error) {
	u.folder = folder
	u.contentType = contentType
	return &service.SignedUpload{
		UploadURL: "https://storage.example.com/upload",
		FileURL:   "https://storage.example.com/" + folder + "/clip.mp4",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}

func (u *fakeUploads) Close() error { return nil }

func TestSubmissionLifecycle(t *testing.T) {
	f := newFixture()
	uc := NewSubmissionUseCase(f.submissions, f.courses, f.enrollments, f.users, nil, f.notifier)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Serves", 39.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	submission, err := uc.CreateSubmission(ctx, student, course.ID, CreateSubmissionInput{
		VideoURL: "  https://youtu.be/drop  ",
		Notes:    "Working on consistency",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/drop", submission.VideoURL)
	assert.Equal(t, entity.SubmissionStatusPending, submission.Status)
	assert.Equal(t, vendor.UID, submission.VendorID)
	assert.Equal(t, "submission", f.notifier.last().eventType)

	rating := 4
	reviewed, err := uc.EvaluateSubmission(ctx, vendor, submission.ID, EvaluateSubmissionInput{
		VendorFeedback: "Lower paddle face",
		VendorRating:   &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusReviewed, reviewed.Status)
	assert.Equal(t, "Lower paddle face", reviewed.VendorFeedback)
	require.NotNil(t, reviewed.VendorRating)
	assert.Equal(t, 4, *reviewed.VendorRating)
	assert.Equal(t, []string{student.UID}, f.notifier.last().userIDs)

	_, err = uc.EvaluateSubmission(ctx, vendor, submission.ID, EvaluateSubmissionInput{VendorFeedback: "again"})
	requireCode(t, err, errors.CodeConflict)

	mine, err := uc.ListMySubmissions(ctx, student, course.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	queue, err := uc.ListVendorSubmissions(ctx, vendor)
	require.NoError(t, err)
	require.Len(t, queue, 1)
}

func TestCreateSubmissionRequiresEnrollment(t *testing.T) {
	f := newFixture()
	uc := NewSubmissionUseCase(f.submissions, f.courses, f.enrollments, f.users, nil, nil)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Serves", 39.99)
	ctx := context.Background()

	_, err := uc.CreateSubmission(ctx, student, course.ID, CreateSubmissionInput{VideoURL: ""})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.CreateSubmission(ctx, student, course.ID, CreateSubmissionInput{VideoURL: "https://youtu.be/x"})
	requireCode(t, err, errors.CodeForbidden)

	queue, err := uc.ListVendorSubmissions(ctx, vendor)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestEvaluateSubmissionRules(t *testing.T) {
	f := newFixture()
	uc := NewSubmissionUseCase(f.submissions, f.courses, f.enrollments, f.users, nil, nil)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	rival := f.addUser(t, "r", "Rival", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Serves", 39.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	submission, err := uc.CreateSubmission(ctx, student, course.ID, CreateSubmissionInput{VideoURL: "https://youtu.be/x"})
	require.NoError(t, err)

	_, err = uc.EvaluateSubmission(ctx, vendor, submission.ID, EvaluateSubmissionInput{VendorFeedback: "  "})
	requireCode(t, err, errors.CodeValidation)

	bad := 6
	_, err = uc.EvaluateSubmission(ctx, vendor, submission.ID, EvaluateSubmissionInput{VendorFeedback: "ok", VendorRating: &bad})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.EvaluateSubmission(ctx, rival, submission.ID, EvaluateSubmissionInput{VendorFeedback: "ok"})
	requireCode(t, err, errors.CodeForbidden)

	_, err = uc.EvaluateSubmission(ctx, vendor, "missing", EvaluateSubmissionInput{VendorFeedback: "ok"})
	requireCode(t, err, errors.CodeNotFound)

	// feedback without a rating is accepted
	reviewed, err := uc.EvaluateSubmission(ctx, vendor, submission.ID, EvaluateSubmissionInput{VendorFeedback: "ok"})
	require.NoError(t, err)
	assert.Nil(t, reviewed.VendorRating)
}

func TestRequestUploadURL(t *testing.T) {
	f := newFixture()
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	ctx := context.Background()

	unconfigured := NewSubmissionUseCase(f.submissions, f.courses, f.enrollments, f.users, nil, nil)
	_, err := unconfigured.RequestUploadURL(ctx, student, "video/mp4")
	requireCode(t, err, errors.CodeServiceUnavailable)

	uploads := &fakeUploads{}
	uc := NewSubmissionUseCase(f.submissions, f.courses, f.enrollments, f.users, uploads, nil)

	_, err = uc.RequestUploadURL(ctx, student, "image/png")
	requireCode(t, err, errors.CodeValidation)

	upload, err := uc.RequestUploadURL(ctx, student, "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "submissions/s", uploads.folder)
	assert.Equal(t, "video/mp4", uploads.contentType)
	assert.Contains(t, upload.FileURL, "submissions/s/")
}
