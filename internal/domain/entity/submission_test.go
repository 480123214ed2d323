package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionEvaluate(t *testing.T) {
	at := time.Now()
	bad, good := 6, 4

	s := &Submission{Status: SubmissionStatusPending}
	assert.ErrorIs(t, s.Evaluate("", nil, at), ErrFeedbackRequired)
	assert.ErrorIs(t, s.Evaluate("Nice", &bad, at), ErrInvalidRating)

	require.NoError(t, s.Evaluate("Keep your paddle up", &good, at))
	assert.Equal(t, SubmissionStatusReviewed, s.Status)
	assert.Equal(t, 4, *s.VendorRating)

	assert.ErrorIs(t, s.Evaluate("Again", nil, at), ErrSubmissionReviewed)
}
