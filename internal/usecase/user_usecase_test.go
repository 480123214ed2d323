package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/domain/entity"
	"picklrzone/pkg/errors"
)

func TestGetProfileCreatesDefault(t *testing.T) {
	f := newFixture()
	uc := NewUserUseCase(f.users)
	caller := &Identity{UID: "sarah", Email: "sarah@example.com"}

	user, err := uc.GetProfile(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", user.DisplayName)
	assert.Equal(t, entity.RoleUser, user.Role)

	stored, err := f.users.GetByID(context.Background(), "sarah")
	require.NoError(t, err)
	assert.Equal(t, user.DisplayName, stored.DisplayName)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture()
	uc := NewUserUseCase(f.users)
	caller := f.addUser(t, "ben", "Ben", entity.RoleUser)
	ctx := context.Background()

	vendor := entity.RoleVendor
	location := "Austin, TX"
	user, err := uc.UpdateProfile(ctx, caller, UpdateProfileInput{Role: &vendor, Location: &location})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, user.Role)
	assert.Equal(t, "Austin, TX", user.Location)
	assert.Equal(t, "Ben", user.DisplayName, "fields not provided stay unchanged")

	admin := "admin"
	_, err = uc.UpdateProfile(ctx, caller, UpdateProfileInput{Role: &admin})
	requireCode(t, err, errors.CodeValidation)
}

func TestGetPublicProfile(t *testing.T) {
	f := newFixture()
	uc := NewUserUseCase(f.users)
	f.addUser(t, "ben", "Ben Johns", entity.RoleVendor)

	profile, err := uc.GetPublicProfile(context.Background(), "ben")
	require.NoError(t, err)
	assert.Equal(t, "Ben Johns", profile.DisplayName)

	_, err = uc.GetPublicProfile(context.Background(), "nobody")
	requireCode(t, err, errors.CodeNotFound)
}
