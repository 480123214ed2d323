package entity

import "time"

type Enrollment struct {
	ID              string    `json:"id" firestore:"id"`
	UserID          string    `json:"userId" firestore:"userId"`
	CourseID        string    `json:"courseId" firestore:"courseId"`
	CourseTitle     string    `json:"courseTitle" firestore:"courseTitle"`
	PurchasedAt     time.Time `json:"purchasedAt" firestore:"purchasedAt"`
	StripeSessionID string    `json:"stripeSessionId" firestore:"stripeSessionId"`
}

func EnrollmentID(userID, courseID string) string {
	return userID + "_" + courseID
}
