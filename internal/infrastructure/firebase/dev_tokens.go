package firebase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"picklrzone/internal/usecase"
)

// DevTokenPrefix marks tokens accepted without a round trip to Firebase.
// "dev-ben" authenticates as uid "ben".
const DevTokenPrefix = "dev-"

var ErrInvalidDevToken = errors.New("invalid development token")

// DevAuthClient accepts development tokens and hands every other token to
// next. It must never be wired outside development.
type DevAuthClient struct {
	next  usecase.FirebaseAuthClient
	mu    sync.RWMutex
	users map[string]*usecase.AuthUser
}

// NewDevAuthClient wraps next, which may be nil when no Firebase project is
// configured.
func NewDevAuthClient(next usecase.FirebaseAuthClient) *DevAuthClient {
	return &DevAuthClient{
		next:  next,
		users: make(map[string]*usecase.AuthUser),
	}
}

// GenerateDevToken returns the token that authenticates as uid.
func GenerateDevToken(uid string) string {
	return DevTokenPrefix + uid
}

func (d *DevAuthClient) VerifyToken(ctx context.Context, token string) (*usecase.VerifiedToken, error) {
	if !strings.HasPrefix(token, DevTokenPrefix) {
		if d.next == nil {
			return nil, ErrInvalidDevToken
		}
		return d.next.VerifyToken(ctx, token)
	}

	uid := strings.TrimPrefix(token, DevTokenPrefix)
	if uid == "" || strings.ContainsAny(uid, "/ ") {
		return nil, ErrInvalidDevToken
	}

	user := &usecase.AuthUser{
		UID:         uid,
		Email:       uid + "@dev.picklrzone.local",
		DisplayName: uid,
	}
	d.mu.Lock()
	d.users[uid] = user
	d.mu.Unlock()

	return &usecase.VerifiedToken{UID: uid, Email: user.Email, Name: user.DisplayName}, nil
}

// ListUsers returns development accounts seen so far followed by the
// wrapped provider's accounts.
func (d *DevAuthClient) ListUsers(ctx context.Context, max int) ([]*usecase.AuthUser, error) {
	d.mu.RLock()
	users := make([]*usecase.AuthUser, 0, len(d.users))
	for _, u := range d.users {
		cp := *u
		users = append(users, &cp)
	}
	d.mu.RUnlock()
	sort.Slice(users, func(i, j int) bool { return users[i].UID < users[j].UID })

	if len(users) >= max {
		return users[:max], nil
	}
	if d.next == nil {
		return users, nil
	}

	more, err := d.next.ListUsers(ctx, max-len(users))
	return append(users, more...), err
}
