package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"picklrzone/internal/domain/service"
	"picklrzone/pkg/logger"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	expiry     time.Duration

	// signerEmail overrides the account used to sign URLs. Empty lets the
	// client detect it from the credentials.
	signerEmail string
}

func NewCloudStorageClient(ctx context.Context, bucketName, signerEmail string, expiry time.Duration, corsOrigins []string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	storageClient := &CloudStorageClient{
		client:      client,
		bucketName:  bucketName,
		expiry:      expiry,
		signerEmail: signerEmail,
	}

	if err := storageClient.setBucketCORS(ctx, corsOrigins); err != nil {
		logger.Warn("Failed to set CORS configuration on bucket %s: %v", bucketName, err)
	}

	return storageClient, nil
}

// setBucketCORS lets browsers PUT directly to signed URLs. An existing
// configuration is left alone.
func (c *CloudStorageClient) setBucketCORS(ctx context.Context, origins []string) error {
	bucket := c.client.Bucket(c.bucketName)

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}
	if len(bucketAttrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          time.Hour,
			Methods:         []string{http.MethodGet, http.MethodPut, http.MethodOptions},
			Origins:         origins,
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to update bucket CORS: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) GenerateSignedUploadURL(ctx context.Context, contentType, folder string) (*service.SignedUpload, error) {
	objectName := fmt.Sprintf("%s/%s-%s%s",
		strings.Trim(folder, "/"),
		uuid.New().String(),
		time.Now().UTC().Format("20060102150405"),
		videoExtension(contentType),
	)

	expiresAt := time.Now().Add(c.expiry)
	url, err := c.client.Bucket(c.bucketName).SignedURL(objectName, &storage.SignedURLOptions{
		GoogleAccessID: c.signerEmail,
		Scheme:         storage.SigningSchemeV4,
		Method:         http.MethodPut,
		ContentType:    contentType,
		Expires:        expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate signed URL: %v", err)
	}

	return &service.SignedUpload{
		UploadURL: url,
		FileURL:   fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName),
		ExpiresAt: expiresAt,
	}, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func videoExtension(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/quicktime":
		return ".mov"
	case "video/webm":
		return ".webm"
	case "video/x-matroska":
		return ".mkv"
	default:
		return ".bin"
	}
}
