package usecase

import (
	"context"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// UpdateProfileInput carries only the fields present in the request.
type UpdateProfileInput struct {
	DisplayName *string
	Role        *string
	Bio         *string
	Location    *string
	PhotoURL    *string
}

// GetProfile returns the caller's profile, creating a default one on first use.
func (uc *UserUseCase) GetProfile(ctx context.Context, caller *Identity) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, caller.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	user = uc.defaultProfile(caller)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Created profile for user %s", caller.UID)
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, caller *Identity, input UpdateProfileInput) (*entity.User, error) {
	if input.Role != nil && !entity.ValidRole(*input.Role) {
		return nil, errors.Validation("Role must be 'user' or 'vendor'", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, caller.UID)
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	if user == nil {
		user = uc.defaultProfile(caller)
		applyProfileInput(user, input)
		if user.DisplayName == "" {
			user.DisplayName = caller.Name
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	applyProfileInput(user, input)
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, uid string) (*entity.PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (uc *UserUseCase) defaultProfile(caller *Identity) *entity.User {
	now := uc.now()
	displayName := caller.Name
	if displayName == "" {
		displayName = caller.Email
	}

	return &entity.User{
		UID:         caller.UID,
		Email:       caller.Email,
		DisplayName: displayName,
		Role:        entity.RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applyProfileInput(user *entity.User, input UpdateProfileInput) {
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
}
