package usecase

import (
	"context"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

// Identity is the authenticated caller attached to every protected request.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (i *Identity) IsVendor() bool {
	return i.Role == entity.RoleVendor
}

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

// Authenticate verifies the token and resolves the caller's role from the
// stored profile. Callers without a profile are plain users.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Identity, error) {
	verified, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Unauthorized: Invalid token", err)
	}

	identity := &Identity{
		UID:   verified.UID,
		Email: verified.Email,
		Name:  verified.Name,
		Role:  entity.RoleUser,
	}

	user, err := uc.userRepo.GetByID(ctx, verified.UID)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return identity, nil
		}
		return nil, err
	}
	if entity.ValidRole(user.Role) {
		identity.Role = user.Role
	}

	return identity, nil
}
