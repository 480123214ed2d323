package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
)

type bookingRepository struct{ s *Store }

func NewBookingRepository(s *Store) repository.BookingRepository {
	return &bookingRepository{s: s}
}

func (r *bookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	cp := *booking
	r.s.bookings[booking.ID] = &cp
	return nil
}

func (r *bookingRepository) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	booking, ok := r.s.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	cp := *booking
	return &cp, nil
}

func (r *bookingRepository) ListByUser(_ context.Context, userID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.UserID == userID }), nil
}

func (r *bookingRepository) ListByVendor(_ context.Context, vendorID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.VendorID == vendorID }), nil
}

func (r *bookingRepository) filter(match func(*entity.Booking) bool) []*entity.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bookings := []*entity.Booking{}
	for _, b := range r.s.bookings {
		if match(b) {
			cp := *b
			bookings = append(bookings, &cp)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings
}

func (r *bookingRepository) Update(_ context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}

	cp := *stored
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.s.bookings[id] = &cp

	out := cp
	return &out, nil
}
