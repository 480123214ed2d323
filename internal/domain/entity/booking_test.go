package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(id, vendorID, status, start, end string) *Booking {
	s, _ := ParseBookingTime(start)
	e, _ := ParseBookingTime(end)
	return &Booking{ID: id, VendorID: vendorID, Status: status, RequestedDate: s, RequestedEndTime: e}
}

func TestBookingOverlaps(t *testing.T) {
	base := slot("a", "v1", BookingStatusPending, "2024-06-01T10:00", "2024-06-01T10:30")

	assert.True(t, base.Overlaps(slot("b", "v1", BookingStatusConfirmed, "2024-06-01T10:15", "2024-06-01T10:45")))
	assert.False(t, base.Overlaps(slot("c", "v1", BookingStatusConfirmed, "2024-06-01T10:30", "2024-06-01T11:00")))
	assert.False(t, base.Overlaps(slot("d", "v1", BookingStatusConfirmed, "2024-06-01T09:00", "2024-06-01T10:00")))
	assert.True(t, base.Overlaps(slot("e", "v1", BookingStatusConfirmed, "2024-06-01T09:00", "2024-06-01T12:00")))
}

func TestDetectConflicts(t *testing.T) {
	bookings := []*Booking{
		slot("pending", "v1", BookingStatusPending, "2024-06-01T10:00", "2024-06-01T10:30"),
		slot("confirmed", "v1", BookingStatusConfirmed, "2024-06-01T10:15", "2024-06-01T10:45"),
		slot("adjacent", "v1", BookingStatusConfirmed, "2024-06-01T10:30", "2024-06-01T11:00"),
		slot("declined", "v1", BookingStatusDeclined, "2024-06-01T10:00", "2024-06-01T10:30"),
		slot("other-vendor", "v2", BookingStatusConfirmed, "2024-06-01T10:00", "2024-06-01T10:30"),
	}

	views := DetectConflicts(bookings)
	require.Len(t, views, len(bookings))

	assert.True(t, views[0].HasConflict)
	assert.Equal(t, []string{"confirmed"}, views[0].ConflictsWith)

	for _, v := range views[1:] {
		assert.False(t, v.HasConflict, v.ID)
		assert.Empty(t, v.ConflictsWith, v.ID)
	}
}

func TestBookingRespond(t *testing.T) {
	at := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	b := &Booking{Status: BookingStatusPending}

	assert.ErrorIs(t, b.Respond("maybe", "", at), ErrInvalidBookingStatus)

	require.NoError(t, b.Respond(BookingStatusConfirmed, "See you then!", at))
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.Equal(t, "See you then!", b.VendorResponse)
	require.NotNil(t, b.RespondedAt)
	assert.Equal(t, at, *b.RespondedAt)

	later := at.Add(time.Hour)
	require.NoError(t, b.Respond(BookingStatusDeclined, "Court is booked, sorry", later))
	assert.Equal(t, BookingStatusDeclined, b.Status)
	assert.Equal(t, "Court is booked, sorry", b.VendorResponse)
	assert.Equal(t, later, *b.RespondedAt)

	assert.ErrorIs(t, b.Respond(BookingStatusPending, "", later), ErrInvalidBookingStatus)
	assert.Equal(t, BookingStatusDeclined, b.Status)
}

func TestParseBookingTime(t *testing.T) {
	want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-06-01T10:00",
		"2024-06-01T10:00:00",
		"2024-06-01T10:00:00Z",
		"2024-06-01T12:00:00+02:00",
		"2024-06-01T10:00:00.000Z",
	} {
		got, err := ParseBookingTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location(), in)
	}

	_, err := ParseBookingTime("June 1st")
	assert.Error(t, err)
	_, err = ParseBookingTime("")
	assert.Error(t, err)
}
