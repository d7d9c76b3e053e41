// internal/profile/repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines the profile repository interface
type Repository interface {
	GetByID(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error)
	UpdateLocation(ctx context.Context, userID int64, lat, lon float64) error
}

// postgresRepository implements Repository using PostgreSQL
type postgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// GetByID retrieves a profile by user ID
func (r *postgresRepository) GetByID(ctx context.Context, userID int64) (*Profile, error) {
	var profile Profile
	query := `
		SELECT id, email, first_name, COALESCE(gender, '') AS gender, type,
		       latitude, longitude, image_urls, created_at, updated_at
		FROM users
		WHERE id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// Update applies a partial profile update
func (r *postgresRepository) Update(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error) {
	var setClauses []string
	var args []interface{}
	argCount := 1

	if req.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argCount))
		args = append(args, *req.FirstName)
		argCount++
	}
	if req.Gender != nil {
		setClauses = append(setClauses, fmt.Sprintf("gender = $%d", argCount))
		args = append(args, *req.Gender)
		argCount++
	}
	if req.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *req.Type)
		argCount++
	}
	if req.ImageURLs != nil {
		setClauses = append(setClauses, fmt.Sprintf("image_urls = $%d", argCount))
		args = append(args, pq.Array(req.ImageURLs))
		argCount++
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), argCount)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return nil, ErrProfileNotFound
	}

	return r.GetByID(ctx, userID)
}

// UpdateLocation sets both coordinates in one statement
func (r *postgresRepository) UpdateLocation(ctx context.Context, userID int64, lat, lon float64) error {
	query := `UPDATE users SET latitude = $1, longitude = $2, updated_at = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, lat, lon, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}
