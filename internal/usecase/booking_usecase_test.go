package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/domain/entity"
	"picklrzone/pkg/errors"
)

func TestBookingLifecycle(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, f.notifier)
	vendor := f.addUser(t, "vendor-ben-johns", "Ben Johns", entity.RoleVendor)
	student := f.addUser(t, "mike", "Mike Chen", entity.RoleUser)
	course := f.addCourse(t, vendor, "Mastering the Third Shot Drop", 49.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{
		RequestedDate:    "2024-06-01T10:00",
		RequestedEndTime: "2024-06-01T10:30",
		Message:          "Can we work on my drops?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "Mike Chen", booking.UserName)
	assert.Equal(t, vendor.UID, booking.VendorID)
	assert.Equal(t, "Ben Johns", booking.VendorName)
	assert.Equal(t, []string{vendor.UID}, f.notifier.last().userIDs)

	confirmed, err := uc.RespondToBooking(ctx, vendor, booking.ID, entity.BookingStatusConfirmed, "See you then!")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, "See you then!", confirmed.VendorResponse)
	assert.NotNil(t, confirmed.RespondedAt)
	assert.Equal(t, []string{student.UID}, f.notifier.last().userIDs)

	mine, err := uc.ListMyBookings(ctx, student)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.BookingStatusConfirmed, mine[0].Status)
}

func TestRespondToBookingReplacesEarlierResponse(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, f.notifier)
	first := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return first }

	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Dinking", 44.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{
		RequestedDate: "2024-06-01T10:00", RequestedEndTime: "2024-06-01T10:30", Message: "hi",
	})
	require.NoError(t, err)

	_, err = uc.RespondToBooking(ctx, vendor, booking.ID, entity.BookingStatusConfirmed, "See you then!")
	require.NoError(t, err)

	second := first.Add(2 * time.Hour)
	uc.now = func() time.Time { return second }
	declined, err := uc.RespondToBooking(ctx, vendor, booking.ID, entity.BookingStatusDeclined, "Rained out")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusDeclined, declined.Status)
	assert.Equal(t, "Rained out", declined.VendorResponse)
	require.NotNil(t, declined.RespondedAt)
	assert.True(t, second.Equal(*declined.RespondedAt))
	assert.Equal(t, []string{student.UID}, f.notifier.last().userIDs)

	stored, err := f.bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusDeclined, stored.Status)
	assert.Equal(t, "Rained out", stored.VendorResponse)

	rival := f.addUser(t, "r", "Rival", entity.RoleVendor)
	_, err = uc.RespondToBooking(ctx, rival, booking.ID, entity.BookingStatusConfirmed, "")
	requireCode(t, err, errors.CodeForbidden)
}

func TestCreateBookingRules(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, nil)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Dinking", 44.99)
	ctx := context.Background()

	valid := CreateBookingInput{RequestedDate: "2024-06-01T10:00", RequestedEndTime: "2024-06-01T10:30", Message: "hi"}

	_, err := uc.CreateBooking(ctx, student, course.ID, valid)
	requireCode(t, err, errors.CodeForbidden)

	f.enroll(t, student, course.ID)

	_, err = uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{RequestedDate: valid.RequestedDate, RequestedEndTime: valid.RequestedEndTime})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{RequestedDate: "2024-06-01T10:30", RequestedEndTime: "2024-06-01T10:00", Message: "hi"})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{RequestedDate: "tomorrow", RequestedEndTime: "2024-06-01T10:00", Message: "hi"})
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.CreateBooking(ctx, student, course.ID, valid)
	require.NoError(t, err)
}

func TestRespondToBookingRules(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, nil)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	rival := f.addUser(t, "r", "Rival", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Dinking", 44.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	booking, err := uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{
		RequestedDate: "2024-06-01T10:00", RequestedEndTime: "2024-06-01T10:30", Message: "hi",
	})
	require.NoError(t, err)

	_, err = uc.RespondToBooking(ctx, vendor, booking.ID, "maybe", "")
	requireCode(t, err, errors.CodeValidation)

	_, err = uc.RespondToBooking(ctx, rival, booking.ID, entity.BookingStatusConfirmed, "")
	requireCode(t, err, errors.CodeForbidden)

	_, err = uc.RespondToBooking(ctx, vendor, "missing", entity.BookingStatusConfirmed, "")
	requireCode(t, err, errors.CodeNotFound)

	stored, err := f.bookings.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)
}

func TestListVendorBookingsFlagsConflicts(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, nil)
	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	alice := f.addUser(t, "alice", "Alice", entity.RoleUser)
	bob := f.addUser(t, "bob", "Bob", entity.RoleUser)
	course := f.addCourse(t, vendor, "Doubles", 54.99)
	f.enroll(t, alice, course.ID)
	f.enroll(t, bob, course.ID)
	ctx := context.Background()

	first, err := uc.CreateBooking(ctx, alice, course.ID, CreateBookingInput{
		RequestedDate: "2024-06-01T10:00", RequestedEndTime: "2024-06-01T10:30", Message: "first",
	})
	require.NoError(t, err)
	second, err := uc.CreateBooking(ctx, bob, course.ID, CreateBookingInput{
		RequestedDate: "2024-06-01T10:15", RequestedEndTime: "2024-06-01T10:45", Message: "second",
	})
	require.NoError(t, err)

	_, err = uc.RespondToBooking(ctx, vendor, first.ID, entity.BookingStatusConfirmed, "")
	require.NoError(t, err)

	views, err := uc.ListVendorBookings(ctx, vendor)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[string]*entity.BookingView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID[second.ID].HasConflict)
	assert.Equal(t, []string{first.ID}, byID[second.ID].ConflictsWith)
	assert.False(t, byID[first.ID].HasConflict)
}

func TestUpcomingBookings(t *testing.T) {
	f := newFixture()
	uc := NewBookingUseCase(f.bookings, f.courses, f.enrollments, f.users, nil)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	vendor := f.addUser(t, "v", "Vendor", entity.RoleVendor)
	student := f.addUser(t, "s", "Student", entity.RoleUser)
	course := f.addCourse(t, vendor, "Serves", 39.99)
	f.enroll(t, student, course.ID)
	ctx := context.Background()

	book := func(start, end string, confirm bool) *entity.Booking {
		b, err := uc.CreateBooking(ctx, student, course.ID, CreateBookingInput{RequestedDate: start, RequestedEndTime: end, Message: "session"})
		require.NoError(t, err)
		if confirm {
			_, err = uc.RespondToBooking(ctx, vendor, b.ID, entity.BookingStatusConfirmed, "")
			require.NoError(t, err)
		}
		return b
	}

	later := book("2024-06-05T10:00", "2024-06-05T11:00", true)
	sooner := book("2024-06-02T10:00", "2024-06-02T11:00", true)
	book("2024-06-03T10:00", "2024-06-03T11:00", false) // still pending
	book("2024-06-20T10:00", "2024-06-20T11:00", true)  // beyond a week
	book("2024-05-30T10:00", "2024-05-30T11:00", true)  // already past

	for _, caller := range []*Identity{student, vendor} {
		upcoming, err := uc.UpcomingBookings(ctx, caller)
		require.NoError(t, err)
		require.Len(t, upcoming, 2, caller.UID)
		assert.Equal(t, sooner.ID, upcoming[0].ID)
		assert.Equal(t, later.ID, upcoming[1].ID)
	}
}
