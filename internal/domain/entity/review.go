package entity

import (
	"time"
)

type Review struct {
	ID           string    `json:"id" firestore:"id"`
	CourseID     string    `json:"courseId" firestore:"courseId"`
	UserID       string    `json:"userId" firestore:"userId"`
	UserName     string    `json:"userName" firestore:"userName"`
	UserPhotoURL string    `json:"userPhotoURL" firestore:"userPhotoURL"`
	Rating       int       `json:"rating" firestore:"rating"` // 1-5
	Text         string    `json:"text" firestore:"text"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// ReviewID is keyed on course and author so a second review collides.
func ReviewID(courseID, userID string) string {
	return courseID + "_" + userID
}
