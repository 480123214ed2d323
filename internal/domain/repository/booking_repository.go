package repository

import (
	"context"

	"picklrzone/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Booking, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Booking, error)

	// Update loads the booking, applies fn and saves the result atomically.
	// An error from fn aborts the write and is returned unchanged.
	Update(ctx context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error)
}
