package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/domain/repository"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

const upcomingWindow = 7 * 24 * time.Hour

type BookingUseCase struct {
	bookingRepo    repository.BookingRepository
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	notifier       Notifier
	now            func() time.Time
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *BookingUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &BookingUseCase{
		bookingRepo:    bookingRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

type CreateBookingInput struct {
	RequestedDate    string
	RequestedEndTime string
	Message          string
}

func (uc *BookingUseCase) CreateBooking(ctx context.Context, caller *Identity, courseID string, input CreateBookingInput) (*entity.Booking, error) {
	if input.RequestedDate == "" || strings.TrimSpace(input.Message) == "" {
		return nil, errors.Validation("Date and message are required", nil)
	}
	start, err := entity.ParseBookingTime(input.RequestedDate)
	if err != nil {
		return nil, errors.Validation("requestedDate must be a valid date-time", err)
	}
	end, err := entity.ParseBookingTime(input.RequestedEndTime)
	if err != nil {
		return nil, errors.Validation("requestedEndTime must be a valid date-time", err)
	}
	if !end.After(start) {
		return nil, errors.Validation("requestedEndTime must be after requestedDate", nil)
	}

	enrolled, err := uc.enrollmentRepo.Exists(ctx, caller.UID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errors.Forbidden("You must be enrolled to book a session", nil)
	}

	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	profile, err := lookupProfile(ctx, uc.userRepo, caller.UID)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		CourseID:         course.ID,
		CourseTitle:      course.Title,
		UserID:           caller.UID,
		UserName:         firstNonEmpty(profile.DisplayName, caller.Name, "Anonymous"),
		VendorID:         course.VendorID,
		VendorName:       course.VendorName,
		RequestedDate:    start,
		RequestedEndTime: end,
		Message:          input.Message,
		Status:           entity.BookingStatusPending,
		CreatedAt:        uc.now(),
	}
	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	uc.notifier.Notify([]string{booking.VendorID}, "booking", booking)
	return booking, nil
}

func (uc *BookingUseCase) ListMyBookings(ctx context.Context, caller *Identity) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByUser(ctx, caller.UID)
}

// ListVendorBookings returns the vendor's bookings with pending requests
// that clash with an already confirmed session flagged.
func (uc *BookingUseCase) ListVendorBookings(ctx context.Context, caller *Identity) ([]*entity.BookingView, error) {
	bookings, err := uc.bookingRepo.ListByVendor(ctx, caller.UID)
	if err != nil {
		return nil, err
	}
	return entity.DetectConflicts(bookings), nil
}

// UpcomingBookings lists confirmed sessions in the next seven days where
// the caller is either the student or the vendor, soonest first.
func (uc *BookingUseCase) UpcomingBookings(ctx context.Context, caller *Identity) ([]*entity.Booking, error) {
	asStudent, err := uc.bookingRepo.ListByUser(ctx, caller.UID)
	if err != nil {
		return nil, err
	}
	asVendor, err := uc.bookingRepo.ListByVendor(ctx, caller.UID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	horizon := now.Add(upcomingWindow)
	seen := make(map[string]bool)
	upcoming := []*entity.Booking{}
	for _, b := range append(asStudent, asVendor...) {
		if seen[b.ID] || b.Status != entity.BookingStatusConfirmed {
			continue
		}
		if b.RequestedDate.Before(now) || b.RequestedDate.After(horizon) {
			continue
		}
		seen[b.ID] = true
		upcoming = append(upcoming, b)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].RequestedDate.Before(upcoming[j].RequestedDate)
	})
	return upcoming, nil
}

func (uc *BookingUseCase) RespondToBooking(ctx context.Context, caller *Identity, bookingID, status, vendorResponse string) (*entity.Booking, error) {
	if status != entity.BookingStatusConfirmed && status != entity.BookingStatusDeclined {
		return nil, errors.Validation("Status must be 'confirmed' or 'declined'", nil)
	}

	booking, err := uc.bookingRepo.Update(ctx, bookingID, func(b *entity.Booking) error {
		if b.VendorID != caller.UID {
			return errors.Forbidden("You can only respond to your own bookings", nil)
		}
		if b.Status != entity.BookingStatusPending {
			logger.Info("Vendor %s replaces %s response on booking %s", caller.UID, b.Status, b.ID)
		}
		if err := b.Respond(status, vendorResponse, uc.now()); err != nil {
			return errors.Validation(err.Error(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vendor %s %s booking %s", caller.UID, booking.Status, booking.ID)
	uc.notifier.Notify([]string{booking.UserID}, "booking", booking)
	return booking, nil
}
