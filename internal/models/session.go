package models

import "time"

// Session maps an opaque client-held token to an authenticated user.
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
