package handlers

import (
	"context"
	"errors"

	"tasktrack/internal/models"
)

type mockUserService struct {
	registerFunc     func(ctx context.Context, username, email, password string) (*models.User, error)
	authenticateFunc func(ctx context.Context, username, password string) (*models.User, error)
	getByIDFunc      func(ctx context.Context, id int64) (*models.User, error)
}

func (m *mockUserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, username, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

type mockSessionService struct {
	issueFunc   func(ctx context.Context, userID int64) (*models.Session, error)
	resolveFunc func(ctx context.Context, token string) (*models.Session, error)
	revoked     []string
}

func (m *mockSessionService) Issue(ctx context.Context, userID int64) (*models.Session, error) {
	if m.issueFunc != nil {
		return m.issueFunc(ctx, userID)
	}
	return &models.Session{Token: "test-token", UserID: userID}, nil
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, token)
	}
	return nil, models.ErrSessionNotFound
}

func (m *mockSessionService) Revoke(ctx context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func (m *mockSessionService) CleanupExpired(ctx context.Context) error { return nil }

type mockTaskService struct {
	createFunc  func(ctx context.Context, task *models.Task) (*models.Task, error)
	getByIDFunc func(ctx context.Context, id, userID int64) (*models.Task, error)
	getAllFunc  func(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	updateFunc  func(ctx context.Context, task *models.Task) (*models.Task, error)
	deleteFunc  func(ctx context.Context, id, userID int64) error
}

func (m *mockTaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, task)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskService) GetByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskService) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, task)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTaskService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errors.New("not implemented")
}

type mockCategoryService struct {
	createFunc func(ctx context.Context, category *models.Category) (*models.Category, error)
	getAllFunc func(ctx context.Context, userID int64) ([]models.Category, error)
	deleteFunc func(ctx context.Context, id, userID int64) error
}

func (m *mockCategoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, category)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCategoryService) GetAll(ctx context.Context, userID int64) ([]models.Category, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCategoryService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errors.New("not implemented")
}

type mockStatsService struct {
	getStatsFunc func(ctx context.Context, userID int64) (*models.Stats, error)
}

func (m *mockStatsService) GetStats(ctx context.Context, userID int64) (*models.Stats, error) {
	if m.getStatsFunc != nil {
		return m.getStatsFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}
