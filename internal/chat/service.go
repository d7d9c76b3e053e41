// internal/chat/service.go

package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMessageTooLong   = errors.New("message body too long")
	ErrInvalidRecipient = errors.New("cannot send a message to yourself")
)

type Service interface {
	Send(ctx context.Context, senderID int64, req *SendMessageRequest) (*Message, error)
	ListBetween(ctx context.Context, userA, userB int64) ([]*Message, error)
}

type service struct {
	repo   Repository
	maxLen int
}

// NewService creates the message log service. maxLen bounds the body length.
func NewService(repo Repository, maxLen int) Service {
	return &service{repo: repo, maxLen: maxLen}
}

func (s *service) Send(ctx context.Context, senderID int64, req *SendMessageRequest) (*Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrInvalidRecipient
	}
	if len(req.Body) > s.maxLen {
		return nil, ErrMessageTooLong
	}

	msg := &Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
		Image:      req.Image,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *service) ListBetween(ctx context.Context, userA, userB int64) ([]*Message, error) {
	return s.repo.ListBetween(ctx, userA, userB)
}
