package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/models"
)

func newUserServiceForTest(email *mockEmailService) (UserService, *mockUserRepository, *mockCategoryRepository) {
	users := &mockUserRepository{}
	categories := &mockCategoryRepository{}
	var emailSvc EmailService
	if email != nil {
		emailSvc = email
	}
	return NewUserService(users, categories, NewAuthService(), emailSvc), users, categories
}

func TestUserService_Register_SeedsDefaultCategories(t *testing.T) {
	svc, _, categories := newUserServiceForTest(nil)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	seeded, err := categories.FindAllByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, seeded, 4)

	names := make([]string, 0, len(seeded))
	for _, c := range seeded {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Work", "Personal", "Shopping", "Health"}, names)
	assert.Equal(t, "#0d6efd", seeded[0].Color)
}

func TestUserService_Register_PasswordIsHashed(t *testing.T) {
	svc, users, _ := newUserServiceForTest(nil)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.True(t, NewAuthService().CheckPassword(stored.PasswordHash, "secret"))
}

func TestUserService_Register_Duplicates(t *testing.T) {
	svc, _, _ := newUserServiceForTest(nil)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other@example.com", "secret")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	_, err = svc.Register(context.Background(), "bob", "alice@example.com", "secret")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestUserService_Register_SendsWelcomeEmail(t *testing.T) {
	email := &mockEmailService{}
	svc, _, _ := newUserServiceForTest(email)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com"}, email.sent)
}

func TestUserService_Register_EmailFailureDoesNotFailRegistration(t *testing.T) {
	email := &mockEmailService{err: assert.AnError}
	svc, users, _ := newUserServiceForTest(email)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = users.GetByUsername(context.Background(), "alice")
	assert.NoError(t, err)
}

func TestUserService_Authenticate(t *testing.T) {
	svc, _, _ := newUserServiceForTest(nil)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", "secret")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
