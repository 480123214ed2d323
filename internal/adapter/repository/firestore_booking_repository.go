package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func setBookingID(b *entity.Booking, id string) { b.ID = id }

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Booking", err)
		}
		return nil, errors.Internal("Failed to get booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}
	booking.ID = doc.Ref.ID

	return &booking, nil
}

func (r *firestoreBookingRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	return r.listWhere(ctx, "userId", userID)
}

func (r *firestoreBookingRepository) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Booking, error) {
	return r.listWhere(ctx, "vendorId", vendorID)
}

func (r *firestoreBookingRepository) listWhere(ctx context.Context, field, value string) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Where(field, "==", value)
	bookings, err := collect(query.Documents(ctx), setBookingID)
	if err != nil {
		return nil, errors.Internal("Failed to list bookings", err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *firestoreBookingRepository) Update(ctx context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error) {
	ref := r.client.Collection(bookingsCollection).Doc(id)

	var booking entity.Booking
	var fnErr error
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Booking", err)
			}
			return err
		}

		booking = entity.Booking{}
		if err := doc.DataTo(&booking); err != nil {
			return err
		}
		booking.ID = doc.Ref.ID

		if fnErr = fn(&booking); fnErr != nil {
			return fnErr
		}
		return tx.Set(ref, &booking)
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, transactionError("Failed to update booking", "Booking was modified concurrently", err)
	}

	return &booking, nil
}
