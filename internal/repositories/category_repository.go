package repositories

import (
	"context"
	"database/sql"

	"tasktrack/internal/models"
)

type CategoryRepository interface {
	Store(ctx context.Context, category *models.Category) error
	FindAllByUser(ctx context.Context, userID int64) ([]models.Category, error)
	// Delete removes the category only when it is owned by userID.
	// Referencing tasks are left untouched.
	Delete(ctx context.Context, id, userID int64) error
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Store(ctx context.Context, category *models.Category) error {
	const q = `
		INSERT INTO categories (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		category.UserID, category.Name, category.Color,
	).Scan(&category.ID)
}

func (r *categoryRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Category, error) {
	const q = `SELECT id, user_id, name, color FROM categories WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
