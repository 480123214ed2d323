package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"picklrzone/internal/usecase"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*usecase.VerifiedToken, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &usecase.VerifiedToken{
		UID:     result.UID,
		Email:   claimString(result.Claims, "email"),
		Name:    claimString(result.Claims, "name"),
		Picture: claimString(result.Claims, "picture"),
	}, nil
}

// ListUsers returns up to max accounts in the provider's default order.
func (f *FirebaseAuthClient) ListUsers(ctx context.Context, max int) ([]*usecase.AuthUser, error) {
	var users []*usecase.AuthUser

	iter := f.client.Users(ctx, "")
	for len(users) < max {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return users, err
		}

		users = append(users, &usecase.AuthUser{
			UID:         record.UID,
			Email:       record.Email,
			DisplayName: record.DisplayName,
			PhotoURL:    record.PhotoURL,
		})
	}

	return users, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
