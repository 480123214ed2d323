package service

import (
	"context"
	"time"
)

// SignedUpload is a short-lived URL the client PUTs the file to, plus the
// URL the object will be readable at afterwards.
type SignedUpload struct {
	UploadURL string    `json:"uploadUrl"`
	FileURL   string    `json:"fileUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type FileUploadService interface {
	GenerateSignedUploadURL(ctx context.Context, contentType, folder string) (*SignedUpload, error)
	Close() error
}
