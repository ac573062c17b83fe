package services

import (
	"context"
	"errors"
	"time"

	"tasktrack/internal/models"
)

// hand-written repository mocks; unset funcs fail loudly

type mockTaskRepository struct {
	storeFunc                    func(ctx context.Context, task *models.Task) error
	findByIDFunc                 func(ctx context.Context, id, userID int64) (*models.Task, error)
	findAllFunc                  func(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	updateFunc                   func(ctx context.Context, task *models.Task) error
	deleteFunc                   func(ctx context.Context, id, userID int64) error
	countByStatusFunc            func(ctx context.Context, userID int64) (int, map[models.TaskStatus]int, error)
	countOverdueFunc             func(ctx context.Context, userID int64) (int, error)
	countHighPriorityPendingFunc func(ctx context.Context, userID int64) (int, error)
	categoryBreakdownFunc        func(ctx context.Context, userID int64) ([]models.CategoryStat, error)
}

func (m *mockTaskRepository) Store(ctx context.Context, task *models.Task) error {
	if m.storeFunc != nil {
		return m.storeFunc(ctx, task)
	}
	return errors.New("not implemented")
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskRepository) FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskRepository) Update(ctx context.Context, task *models.Task) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, task)
	}
	return errors.New("not implemented")
}

func (m *mockTaskRepository) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errors.New("not implemented")
}

func (m *mockTaskRepository) CountByStatus(ctx context.Context, userID int64) (int, map[models.TaskStatus]int, error) {
	if m.countByStatusFunc != nil {
		return m.countByStatusFunc(ctx, userID)
	}
	return 0, nil, errors.New("not implemented")
}

func (m *mockTaskRepository) CountOverdue(ctx context.Context, userID int64) (int, error) {
	if m.countOverdueFunc != nil {
		return m.countOverdueFunc(ctx, userID)
	}
	return 0, errors.New("not implemented")
}

func (m *mockTaskRepository) CountHighPriorityPending(ctx context.Context, userID int64) (int, error) {
	if m.countHighPriorityPendingFunc != nil {
		return m.countHighPriorityPendingFunc(ctx, userID)
	}
	return 0, errors.New("not implemented")
}

func (m *mockTaskRepository) CategoryBreakdown(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	if m.categoryBreakdownFunc != nil {
		return m.categoryBreakdownFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

// mockUserRepository keeps users in memory.
type mockUserRepository struct {
	users  []*models.User
	nextID int64
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// mockCategoryRepository keeps categories in memory.
type mockCategoryRepository struct {
	categories []models.Category
	nextID     int64
}

func (m *mockCategoryRepository) Store(ctx context.Context, category *models.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.categories = append(m.categories, *category)
	return nil
}

func (m *mockCategoryRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id, userID int64) error {
	for i, c := range m.categories {
		if c.ID == id && c.UserID == userID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// mockSessionRepository keeps sessions in memory.
type mockSessionRepository struct {
	sessions map[string]models.Session
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]models.Session)}
}

func (m *mockSessionRepository) Store(ctx context.Context, session *models.Session) error {
	m.sessions[session.Token] = *session
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range m.sessions {
		if !s.ExpiresAt.After(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

// mockEmailService records sent welcome emails.
type mockEmailService struct {
	sent []string
	err  error
}

func (m *mockEmailService) SendWelcomeEmail(email, username string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}
