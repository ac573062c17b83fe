package services

import (
	"context"
	"log"
	"time"

	"tasktrack/internal/models"
	"tasktrack/internal/repositories"
	"tasktrack/internal/utils"
)

type SessionService interface {
	// Issue mints a fresh opaque token and persists the session.
	Issue(ctx context.Context, userID int64) (*models.Session, error)
	// Resolve maps a token back to a live session. Expired sessions are
	// removed on the way out and reported as ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (*models.Session, error)
	// Revoke drops the session; unknown tokens are ignored.
	Revoke(ctx context.Context, token string) error
	CleanupExpired(ctx context.Context) error
}

type sessionService struct {
	repo repositories.SessionRepository
	ttl  time.Duration
}

func NewSessionService(repo repositories.SessionRepository, ttl time.Duration) SessionService {
	return &sessionService{repo: repo, ttl: ttl}
}

func (s *sessionService) Issue(ctx context.Context, userID int64) (*models.Session, error) {
	token, err := utils.NewSessionToken(32)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Store(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		if err := s.repo.Delete(ctx, session.Token); err != nil {
			log.Printf("[session][resolve] warning: delete expired session failed: %v", err)
		}
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}

func (s *sessionService) CleanupExpired(ctx context.Context) error {
	n, err := s.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[session][cleanup] removed %d expired sessions", n)
	}
	return nil
}
