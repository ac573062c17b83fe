package services

import (
	"context"

	"tasktrack/internal/models"
	"tasktrack/internal/repositories"
)

type CategoryService interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	GetAll(ctx context.Context, userID int64) ([]models.Category, error)
	Delete(ctx context.Context, id, userID int64) error
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}
	if err := s.repo.Store(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetAll(ctx context.Context, userID int64) ([]models.Category, error) {
	return s.repo.FindAllByUser(ctx, userID)
}

// Delete removes the category only. Tasks referencing it keep their
// category_id; the reference simply stops resolving.
func (s *categoryService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
