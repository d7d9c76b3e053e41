// internal/match/repository.go
// PostgreSQL adapter for the match store

package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type postgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a Postgres-backed Store
func NewPostgresStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

const profileColumns = "id, first_name, gender, type, latitude, longitude, image_urls"

func (r *postgresStore) FindByID(ctx context.Context, id int64) (*Profile, error) {
	var p Profile
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", profileColumns)

	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, storeErr("find profile", err)
	}

	return &p, nil
}

func (r *postgresStore) FindByFilter(ctx context.Context, filter CandidateFilter) ([]*Profile, error) {
	return r.findByFilter(ctx, filter, false)
}

func (r *postgresStore) FindWithLocationByFilter(ctx context.Context, filter CandidateFilter) ([]*Profile, error) {
	return r.findByFilter(ctx, filter, true)
}

func (r *postgresStore) findByFilter(ctx context.Context, filter CandidateFilter, locatedOnly bool) ([]*Profile, error) {
	var where []string
	var args []interface{}
	argCount := 1

	if filter.Gender != nil {
		where = append(where, fmt.Sprintf("gender = $%d", argCount))
		args = append(args, *filter.Gender)
		argCount++
	}
	if filter.Type != nil {
		where = append(where, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *filter.Type)
		argCount++
	}
	if locatedOnly {
		where = append(where, "latitude IS NOT NULL", "longitude IS NOT NULL")
	}

	query := fmt.Sprintf("SELECT %s FROM users", profileColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var profiles []*Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, storeErr("find candidates", err)
	}

	return profiles, nil
}

func (r *postgresStore) GetRelations(ctx context.Context, userID int64) (*Relations, error) {
	rel := &Relations{}

	matchQuery := `
		SELECT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
		FROM matches
		WHERE user1_id = $1 OR user2_id = $1
	`
	if err := r.db.SelectContext(ctx, &rel.MatchIDs, matchQuery, userID); err != nil {
		return nil, storeErr("load matches", err)
	}

	crushQuery := `SELECT liked_user_id FROM liked_profiles WHERE user_id = $1`
	if err := r.db.SelectContext(ctx, &rel.CrushIDs, crushQuery, userID); err != nil {
		return nil, storeErr("load liked profiles", err)
	}

	return rel, nil
}

// CreateLike records the like on both sides in one transaction: a
// received-like entry on the target and a crush entry on the liker.
func (r *postgresStore) CreateLike(ctx context.Context, likerID, targetID int64, image, comment *string, dedup bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("begin like", err)
	}
	defer tx.Rollback()

	if dedup {
		// Replace semantics: drop any earlier entry from the same sender
		_, err = tx.ExecContext(ctx,
			`DELETE FROM received_likes WHERE user_id = $1 AND liker_id = $2`,
			targetID, likerID,
		)
		if err != nil {
			return storeErr("dedup like", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO received_likes (user_id, liker_id, image_url, comment) VALUES ($1, $2, $3, $4)`,
		targetID, likerID, image, comment,
	)
	if err != nil {
		return storeErr("append received like", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO liked_profiles (user_id, liked_user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		likerID, targetID,
	)
	if err != nil {
		return storeErr("add liked profile", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit like", err)
	}
	return nil
}

// CreateMatch inserts the match pair and clears pending like/crush entries in
// both directions, in one transaction. The pair is stored with
// user1_id < user2_id so the relation is symmetric by construction.
func (r *postgresStore) CreateMatch(ctx context.Context, userID, targetID int64) error {
	user1, user2 := userID, targetID
	if user1 > user2 {
		user1, user2 = user2, user1
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("begin match", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (user1_id, user2_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		user1, user2,
	)
	if err != nil {
		return storeErr("insert match", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM liked_profiles
		 WHERE (user_id = $1 AND liked_user_id = $2) OR (user_id = $2 AND liked_user_id = $1)`,
		userID, targetID,
	)
	if err != nil {
		return storeErr("clear liked profiles", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM received_likes
		 WHERE (user_id = $1 AND liker_id = $2) OR (user_id = $2 AND liker_id = $1)`,
		userID, targetID,
	)
	if err != nil {
		return storeErr("clear received likes", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit match", err)
	}
	return nil
}

func (r *postgresStore) DeleteLike(ctx context.Context, likerID, targetID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("begin delete like", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM received_likes WHERE user_id = $1 AND liker_id = $2`,
		targetID, likerID,
	)
	if err != nil {
		return storeErr("remove received like", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM liked_profiles WHERE user_id = $1 AND liked_user_id = $2`,
		likerID, targetID,
	)
	if err != nil {
		return storeErr("remove liked profile", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit delete like", err)
	}
	return nil
}

func (r *postgresStore) ListMatches(ctx context.Context, userID int64) ([]*Profile, error) {
	query := `
		SELECT u.id, u.first_name, u.gender, u.type, u.latitude, u.longitude, u.image_urls
		FROM matches m
		JOIN users u ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.matched_at DESC
	`

	var profiles []*Profile
	if err := r.db.SelectContext(ctx, &profiles, query, userID); err != nil {
		return nil, storeErr("list matches", err)
	}

	return profiles, nil
}

func (r *postgresStore) ListReceivedLikes(ctx context.Context, userID int64) ([]*ReceivedLike, error) {
	query := `
		SELECT rl.id, rl.user_id, rl.liker_id, rl.image_url, rl.comment, rl.created_at,
		       u.id AS liker_uid, u.first_name AS liker_first_name, u.image_urls AS liker_image_urls
		FROM received_likes rl
		JOIN users u ON u.id = rl.liker_id
		WHERE rl.user_id = $1
		ORDER BY rl.created_at ASC, rl.id ASC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, storeErr("list received likes", err)
	}
	defer rows.Close()

	var likes []*ReceivedLike
	for rows.Next() {
		var like ReceivedLike
		var liker LikerInfo

		err := rows.Scan(
			&like.ID, &like.UserID, &like.LikerID, &like.Image, &like.Comment, &like.CreatedAt,
			&liker.ID, &liker.FirstName, &liker.ImageURLs,
		)
		if err != nil {
			return nil, storeErr("scan received like", err)
		}

		like.Liker = &liker
		likes = append(likes, &like)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate received likes", err)
	}

	return likes, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
