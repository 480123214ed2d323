package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/domain/entity"
	"picklrzone/pkg/errors"
)

func TestCreateCourse(t *testing.T) {
	f := newFixture()
	uc := NewCourseUseCase(f.courses, f.users)
	vendor := f.addUser(t, "vendor-ben-johns", "Ben Johns", entity.RoleVendor)

	course, err := uc.CreateCourse(context.Background(), vendor, CreateCourseInput{
		Title:            "Mastering the Third Shot Drop",
		Description:      "The shot that moves you to the kitchen line.",
		ShortDescription: "Control the kitchen line.",
		Price:            49.99,
		Category:         "Third Shot Drop",
		Level:            entity.LevelIntermediate,
		Lessons: []entity.Lesson{
			{Title: "Practice Drills", Order: 5},
			{Title: "Why It Matters", Order: 1},
			{Title: "The Drop Motion", Order: 3},
			{Title: "Grip", Order: 2},
			{Title: "Reading the Court", Order: 4},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "Ben Johns", course.VendorName)
	assert.Equal(t, "vendor-ben-johns", course.VendorID)
	assert.Zero(t, course.TotalStudents)
	assert.Zero(t, course.TotalReviews)
	require.Len(t, course.Lessons, 5)
	for i, l := range course.Lessons {
		assert.Equal(t, i+1, l.Order)
	}
}

func TestCreateCourseVendorNameFallback(t *testing.T) {
	f := newFixture()
	uc := NewCourseUseCase(f.courses, f.users)

	course, err := uc.CreateCourse(context.Background(), &Identity{UID: "v", Role: entity.RoleVendor}, CreateCourseInput{
		Title: "Dinking", Level: entity.LevelBeginner,
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", course.VendorName)
}

func TestCreateCourseValidation(t *testing.T) {
	f := newFixture()
	uc := NewCourseUseCase(f.courses, f.users)
	vendor := f.addUser(t, "v", "V", entity.RoleVendor)

	_, err := uc.CreateCourse(context.Background(), vendor, CreateCourseInput{Title: "x", Level: "expert"})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.CreateCourse(context.Background(), vendor, CreateCourseInput{Title: "x", Level: entity.LevelBeginner, Price: -1})
	requireCode(t, err, errors.CodeValidation)
}

func TestUpdateCourseOwnership(t *testing.T) {
	f := newFixture()
	uc := NewCourseUseCase(f.courses, f.users)
	owner := f.addUser(t, "owner", "Owner", entity.RoleVendor)
	other := f.addUser(t, "other", "Other", entity.RoleVendor)
	course := f.addCourse(t, owner, "Serves", 39.99)
	ctx := context.Background()

	title := "Killer Serve Masterclass"
	_, err := uc.UpdateCourse(ctx, other, course.ID, UpdateCourseInput{Title: &title})
	requireCode(t, err, errors.CodeForbidden)

	updated, err := uc.UpdateCourse(ctx, owner, course.ID, UpdateCourseInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, 39.99, updated.Price)

	_, err = uc.UpdateCourse(ctx, owner, "missing", UpdateCourseInput{Title: &title})
	requireCode(t, err, errors.CodeNotFound)
}

func TestDeleteCourseRemovesReviews(t *testing.T) {
	f := newFixture()
	courses := NewCourseUseCase(f.courses, f.users)
	reviews := NewReviewUseCase(f.courses, f.reviews, f.users)
	owner := f.addUser(t, "owner", "Owner", entity.RoleVendor)
	student := f.addUser(t, "mike", "Mike Chen", entity.RoleUser)
	course := f.addCourse(t, owner, "Doubles", 54.99)
	ctx := context.Background()

	_, err := reviews.CreateReview(ctx, student, course.ID, CreateReviewInput{Rating: 5, Text: "Great"})
	require.NoError(t, err)

	requireCode(t, courses.DeleteCourse(ctx, student, course.ID), errors.CodeForbidden)
	require.NoError(t, courses.DeleteCourse(ctx, owner, course.ID))

	_, err = courses.GetCourse(ctx, course.ID)
	requireCode(t, err, errors.CodeNotFound)

	remaining, err := reviews.ListReviews(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
