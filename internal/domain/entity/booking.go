package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDeclined  = "declined"
)

var ErrInvalidBookingStatus = errors.New("status must be confirmed or declined")

// bookingTimeLayouts are tried in order; zone-less values are read as UTC.
var bookingTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type Booking struct {
	ID               string     `json:"id" firestore:"id"`
	CourseID         string     `json:"courseId" firestore:"courseId"`
	CourseTitle      string     `json:"courseTitle" firestore:"courseTitle"`
	UserID           string     `json:"userId" firestore:"userId"`
	UserName         string     `json:"userName" firestore:"userName"`
	VendorID         string     `json:"vendorId" firestore:"vendorId"`
	VendorName       string     `json:"vendorName" firestore:"vendorName"`
	RequestedDate    time.Time  `json:"requestedDate" firestore:"requestedDate"`
	RequestedEndTime time.Time  `json:"requestedEndTime" firestore:"requestedEndTime"`
	Message          string     `json:"message" firestore:"message"`
	Status           string     `json:"status" firestore:"status"`
	VendorResponse   string     `json:"vendorResponse,omitempty" firestore:"vendorResponse,omitempty"`
	CreatedAt        time.Time  `json:"createdAt" firestore:"createdAt"`
	RespondedAt      *time.Time `json:"respondedAt,omitempty" firestore:"respondedAt,omitempty"`
}

// Respond records the vendor's answer. A vendor may change their mind, so a
// later response replaces an earlier one.
func (b *Booking) Respond(status, vendorResponse string, at time.Time) error {
	if status != BookingStatusConfirmed && status != BookingStatusDeclined {
		return ErrInvalidBookingStatus
	}

	b.Status = status
	b.VendorResponse = vendorResponse
	b.RespondedAt = &at
	return nil
}

// Overlaps uses half-open intervals, so back-to-back sessions do not collide.
func (b *Booking) Overlaps(other *Booking) bool {
	return b.RequestedDate.Before(other.RequestedEndTime) &&
		other.RequestedDate.Before(b.RequestedEndTime)
}

// BookingView is a booking as shown on the vendor dashboard.
type BookingView struct {
	*Booking
	HasConflict   bool     `json:"hasConflict"`
	ConflictsWith []string `json:"conflictsWith"`
}

// DetectConflicts flags each pending booking whose slot intersects a confirmed
// booking of the same vendor. The result keeps the input order.
func DetectConflicts(bookings []*Booking) []*BookingView {
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := &BookingView{Booking: b, ConflictsWith: []string{}}
		if b.Status == BookingStatusPending {
			for _, other := range bookings {
				if other.ID == b.ID || other.Status != BookingStatusConfirmed || other.VendorID != b.VendorID {
					continue
				}
				if b.Overlaps(other) {
					view.ConflictsWith = append(view.ConflictsWith, other.ID)
				}
			}
		}
		view.HasConflict = len(view.ConflictsWith) > 0
		views = append(views, view)
	}
	return views
}

func ParseBookingTime(value string) (time.Time, error) {
	for _, layout := range bookingTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", value)
}
