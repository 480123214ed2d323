package memory

import (
	"context"
	"sort"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type userRepository struct{ s *Store }

func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{s: s}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *user
	r.s.users[user.UID] = &cp
	return nil
}

func (r *userRepository) GetByID(_ context.Context, uid string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[uid]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *user
	return &cp, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.UID]
	if !ok {
		existing = &entity.User{UID: user.UID, Email: user.Email, CreatedAt: user.CreatedAt}
		r.s.users[user.UID] = existing
	}
	existing.DisplayName = user.DisplayName
	existing.PhotoURL = user.PhotoURL
	existing.Role = user.Role
	existing.Bio = user.Bio
	existing.Location = user.Location
	existing.UpdatedAt = user.UpdatedAt
	return nil
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		users = append(users, &cp)
	}
	// Map order is random; keep results stable for callers that truncate.
	sort.Slice(users, func(i, j int) bool { return users[i].UID < users[j].UID })
	return users, nil
}
