package repositories

import (
	"context"
	"database/sql"
	"time"

	"tasktrack/internal/models"
)

type SessionRepository interface {
	Store(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Store(ctx context.Context, session *models.Session) error {
	const q = `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q,
		session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	return err
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	const q = `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`
	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, q, token).Scan(
		&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Delete is idempotent: removing an unknown token is not an error.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
