package entity

import "time"

type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	SenderID       string    `json:"senderId" firestore:"senderId"`
	SenderName     string    `json:"senderName" firestore:"senderName"`
	SenderPhotoURL string    `json:"senderPhotoURL" firestore:"senderPhotoURL"`
	Text           string    `json:"text" firestore:"text"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}
