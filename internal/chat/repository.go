// internal/chat/repository.go

package chat

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository is the append-only message log.
type Repository interface {
	Append(ctx context.Context, msg *Message) error
	// ListBetween returns every message exchanged between the two users,
	// in either direction, ordered by timestamp.
	ListBetween(ctx context.Context, userA, userB int64) ([]*Message, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Append(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, body, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Body, msg.Image, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListBetween(ctx context.Context, userA, userB int64) ([]*Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, body, image_url, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC`

	var messages []*Message
	if err := r.db.SelectContext(ctx, &messages, query, userA, userB); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
