package entity

import (
	"math"
	"sort"
	"time"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAllLevels    = "all-levels"
)

type Lesson struct {
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty" firestore:"videoUrl,omitempty"`
	Duration    int    `json:"duration,omitempty" firestore:"duration,omitempty"` // minutes
	Order       int    `json:"order" firestore:"order"`
}

type Course struct {
	ID               string   `json:"id" firestore:"id"`
	Title            string   `json:"title" firestore:"title"`
	Description      string   `json:"description" firestore:"description"`
	ShortDescription string   `json:"shortDescription" firestore:"shortDescription"`
	Price            float64  `json:"price" firestore:"price"`
	ThumbnailURL     string   `json:"thumbnailUrl" firestore:"thumbnailUrl"`
	IntroVideoURL    string   `json:"introVideoUrl" firestore:"introVideoUrl"`
	Category         string   `json:"category" firestore:"category"`
	Level            string   `json:"level" firestore:"level"`
	Lessons          []Lesson `json:"lessons" firestore:"lessons"`

	// Vendor snapshot captured when the course is created.
	VendorID       string `json:"vendorId" firestore:"vendorId"`
	VendorName     string `json:"vendorName" firestore:"vendorName"`
	VendorPhotoURL string `json:"vendorPhotoURL" firestore:"vendorPhotoURL"`
	VendorLocation string `json:"vendorLocation" firestore:"vendorLocation"`

	AverageRating float64 `json:"averageRating" firestore:"averageRating"`
	TotalReviews  int     `json:"totalReviews" firestore:"totalReviews"`
	// RatingSum is the exact total behind AverageRating. Only the average
	// is published.
	RatingSum     int     `json:"-" firestore:"ratingSum"`
	TotalStudents int     `json:"totalStudents" firestore:"totalStudents"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ApplyRating adds one rating to the exact sum and republishes the rounded
// mean, so the result does not depend on the order ratings arrive in.
// Courses stored before ratingSum existed have it recovered from the
// published average first.
func (c *Course) ApplyRating(rating int) {
	if c.RatingSum == 0 && c.TotalReviews > 0 {
		c.RatingSum = int(math.Round(c.AverageRating * float64(c.TotalReviews)))
	}
	c.RatingSum += rating
	c.TotalReviews++
	c.AverageRating = RoundRating(float64(c.RatingSum) / float64(c.TotalReviews))
}

// RoundRating rounds to one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// SortLessons orders lessons by their order field, keeping input order on ties.
func SortLessons(lessons []Lesson) []Lesson {
	sorted := make([]Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels:
		return true
	}
	return false
}

// PriceInCents converts a dollar price to the smallest currency unit.
func PriceInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
