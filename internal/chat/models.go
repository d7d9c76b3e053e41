// internal/chat/models.go

package chat

import "time"

// Message is a single append-only chat record between two users.
type Message struct {
	ID         string    `json:"id" db:"id"`
	SenderID   int64     `json:"sender_id" db:"sender_id"`
	ReceiverID int64     `json:"receiver_id" db:"receiver_id"`
	Body       string    `json:"body" db:"body"`
	Image      *string   `json:"image,omitempty" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the payload for appending a message.
type SendMessageRequest struct {
	ReceiverID int64   `json:"receiver_id" validate:"required"`
	Body       string  `json:"body" validate:"required"`
	Image      *string `json:"image,omitempty" validate:"omitempty,url"`
}
