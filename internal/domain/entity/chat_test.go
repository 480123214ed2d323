package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewText(t *testing.T) {
	assert.Equal(t, "hello", PreviewText("hello"))

	long := strings.Repeat("é", 150)
	preview := PreviewText(long)
	assert.Equal(t, 100, len([]rune(preview)))
}

func TestConversationApplyMessage(t *testing.T) {
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	conv := &Conversation{Participants: []string{"a", "b"}, CreatedAt: created}
	assert.Equal(t, created, conv.ActivityAt())

	sent := created.Add(time.Hour)
	conv.ApplyMessage(&Message{SenderID: "a", Text: "Ready for Saturday?", CreatedAt: sent})

	assert.Equal(t, "Ready for Saturday?", conv.LastMessage)
	assert.Equal(t, "a", conv.LastMessageBy)
	require.NotNil(t, conv.LastMessageAt)
	assert.Equal(t, sent, conv.ActivityAt())
	assert.Equal(t, sent, conv.LastReadAt["a"])
	_, ok := conv.LastReadAt["b"]
	assert.False(t, ok)
}
