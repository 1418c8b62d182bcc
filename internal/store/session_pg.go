package store

import (
	"context"
	"errors"

	"locallibrary/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionPG is the per-session key/value store. The only value kept
// per session today is the home page visit counter.
type SessionPG struct {
	db *pgxpool.Pool
}

func NewSessionPG(db *pgxpool.Pool) *SessionPG {
	return &SessionPG{db: db}
}

// Get fetches a session row. Missing sessions are not an error: a
// fresh zero-visit session is returned instead.
func (r *SessionPG) Get(ctx context.Context, sessionID string) (entity.Session, error) {
	const query = `
	SELECT id, num_visits, created_at, last_used_at
	FROM sessions
	WHERE id = $1
	LIMIT 1
	`
	var s entity.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(&s.ID, &s.NumVisits, &s.CreatedAt, &s.LastUsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{ID: sessionID}, nil
		}
		return entity.Session{}, err
	}
	return s, nil
}

func (r *SessionPG) Visits(ctx context.Context, sessionID string) (int, error) {
	s, err := r.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return s.NumVisits, nil
}

func (r *SessionPG) SetVisits(ctx context.Context, sessionID string, visits int) error {
	const query = `
	INSERT INTO sessions (id, num_visits)
	VALUES ($1, $2)
	ON CONFLICT (id)
	DO UPDATE SET num_visits = EXCLUDED.num_visits, last_used_at = now()
	`
	_, err := r.db.Exec(ctx, query, sessionID, visits)
	return err
}

// CleanupExpired drops sessions idle for more than 30 days.
func (r *SessionPG) CleanupExpired(ctx context.Context) error {
	const query = `DELETE FROM sessions WHERE last_used_at < now() - interval '30 days'`
	_, err := r.db.Exec(ctx, query)
	return err
}
