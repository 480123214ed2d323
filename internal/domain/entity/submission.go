package entity

import (
	"errors"
	"time"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusReviewed = "reviewed"
)

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSubmissionReviewed = errors.New("submission has already been reviewed")
	ErrFeedbackRequired   = errors.New("feedback is required")
)

type Submission struct {
	ID             string     `json:"id" firestore:"id"`
	CourseID       string     `json:"courseId" firestore:"courseId"`
	CourseTitle    string     `json:"courseTitle" firestore:"courseTitle"`
	UserID         string     `json:"userId" firestore:"userId"`
	UserName       string     `json:"userName" firestore:"userName"`
	UserPhotoURL   string     `json:"userPhotoURL" firestore:"userPhotoURL"`
	VideoURL       string     `json:"videoUrl" firestore:"videoUrl"`
	Notes          string     `json:"notes" firestore:"notes"`
	Status         string     `json:"status" firestore:"status"`
	VendorID       string     `json:"vendorId" firestore:"vendorId"`
	VendorFeedback string     `json:"vendorFeedback,omitempty" firestore:"vendorFeedback,omitempty"`
	VendorRating   *int       `json:"vendorRating,omitempty" firestore:"vendorRating,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
	ReviewedAt     *time.Time `json:"reviewedAt,omitempty" firestore:"reviewedAt,omitempty"`
}

// Evaluate records the vendor's feedback. Reviewed is terminal.
func (s *Submission) Evaluate(feedback string, rating *int, at time.Time) error {
	if feedback == "" {
		return ErrFeedbackRequired
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return ErrInvalidRating
	}
	if s.Status != SubmissionStatusPending {
		return ErrSubmissionReviewed
	}

	s.Status = SubmissionStatusReviewed
	s.VendorFeedback = feedback
	s.VendorRating = rating
	s.ReviewedAt = &at
	return nil
}
