package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tasktrack/internal/models"
)

type mockSessionService struct {
	resolveFunc func(ctx context.Context, token string) (*models.Session, error)
}

func (m *mockSessionService) Issue(ctx context.Context, userID int64) (*models.Session, error) {
	return nil, errors.New("not implemented")
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSessionService) Revoke(ctx context.Context, token string) error { return nil }

func (m *mockSessionService) CleanupExpired(ctx context.Context) error { return nil }

func TestSessionAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		cookie         *http.Cookie
		resolveFunc    func(ctx context.Context, token string) (*models.Session, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing cookie",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication required",
		},
		{
			name:           "empty cookie value",
			cookie:         &http.Cookie{Name: "tasktrack_session", Value: ""},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication required",
		},
		{
			name:   "unknown or expired session",
			cookie: &http.Cookie{Name: "tasktrack_session", Value: "stale"},
			resolveFunc: func(ctx context.Context, token string) (*models.Session, error) {
				return nil, models.ErrSessionNotFound
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication required",
		},
		{
			name:   "store failure",
			cookie: &http.Cookie{Name: "tasktrack_session", Value: "tok"},
			resolveFunc: func(ctx context.Context, token string) (*models.Session, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid session",
			cookie: &http.Cookie{Name: "tasktrack_session", Value: "tok"},
			resolveFunc: func(ctx context.Context, token string) (*models.Session, error) {
				assert.Equal(t, "tok", token)
				return &models.Session{Token: token, UserID: 42}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_id":42`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &mockSessionService{resolveFunc: tt.resolveFunc}

			r := gin.New()
			r.Use(SessionAuth(sessions, "tasktrack_session"))
			r.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet(ContextUserID)})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestSessionAuth_PreflightPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SessionAuth(&mockSessionService{}, "tasktrack_session"))
	r.OPTIONS("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
