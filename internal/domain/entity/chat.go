package entity

import (
	"time"
	"unicode/utf8"
)

const (
	ConversationTypeDM    = "dm"
	ConversationTypeGroup = "group"

	lastMessagePreviewLen = 100
)

type Conversation struct {
	ID                string               `json:"id" firestore:"id"`
	Type              string               `json:"type" firestore:"type"`
	Name              string               `json:"name,omitempty" firestore:"name,omitempty"`
	Participants      []string             `json:"participants" firestore:"participants"`
	ParticipantNames  map[string]string    `json:"participantNames" firestore:"participantNames"`
	ParticipantPhotos map[string]string    `json:"participantPhotos" firestore:"participantPhotos"`
	LastMessage       string               `json:"lastMessage,omitempty" firestore:"lastMessage"`
	LastMessageBy     string               `json:"lastMessageBy,omitempty" firestore:"lastMessageBy"`
	LastMessageAt     *time.Time           `json:"lastMessageAt,omitempty" firestore:"lastMessageAt"`
	LastReadAt        map[string]time.Time `json:"lastReadAt" firestore:"lastReadAt"`
	CreatedBy         string               `json:"createdBy" firestore:"createdBy"`
	CreatedAt         time.Time            `json:"createdAt" firestore:"createdAt"`
}

func (c *Conversation) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}

// ActivityAt is the sort key for conversation lists.
func (c *Conversation) ActivityAt() time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

// ApplyMessage updates the denormalized preview after msg is appended.
func (c *Conversation) ApplyMessage(msg *Message) {
	at := msg.CreatedAt
	c.LastMessage = PreviewText(msg.Text)
	c.LastMessageBy = msg.SenderID
	c.LastMessageAt = &at
	if c.LastReadAt == nil {
		c.LastReadAt = make(map[string]time.Time)
	}
	c.LastReadAt[msg.SenderID] = at
}

// PreviewText truncates to the first 100 characters.
func PreviewText(text string) string {
	if utf8.RuneCountInString(text) <= lastMessagePreviewLen {
		return text
	}
	return string([]rune(text)[:lastMessagePreviewLen])
}
