package entity

import (
	"time"
)

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
)

type User struct {
	UID         string `json:"uid" firestore:"uid"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	PhotoURL    string `json:"photoURL" firestore:"photoURL"`
	Role        string `json:"role" firestore:"role"`
	Bio         string `json:"bio" firestore:"bio"`
	Location    string `json:"location" firestore:"location"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// PublicProfile is the subset of a profile visible to other users.
type PublicProfile struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
}

func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		UID:         u.UID,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        u.Role,
		Bio:         u.Bio,
		Location:    u.Location,
	}
}

func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleVendor
}
