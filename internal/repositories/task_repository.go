package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tasktrack/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	// FindByID returns the task only when it is owned by userID.
	FindByID(ctx context.Context, id, userID int64) (*models.Task, error)
	FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, userID int64) error

	// stats aggregates, all scoped to one user
	CountByStatus(ctx context.Context, userID int64) (total int, byStatus map[models.TaskStatus]int, err error)
	CountOverdue(ctx context.Context, userID int64) (int, error)
	CountHighPriorityPending(ctx context.Context, userID int64) (int, error)
	CategoryBreakdown(ctx context.Context, userID int64) ([]models.CategoryStat, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, user_id, category_id, title, description, status, priority, due_date, created_at`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const q = `
		INSERT INTO tasks (user_id, category_id, title, description, status, priority, due_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		task.UserID, task.CategoryID, task.Title, task.Description,
		task.Status, task.Priority, task.DueDate,
	).Scan(&task.ID, &task.CreatedAt)
}

func (r *taskRepository) FindByID(ctx context.Context, id, userID int64) (*models.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
		&task.ID, &task.UserID, &task.CategoryID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &task.DueDate, &task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// FindAll composes the WHERE clause from the supplied filter. Predicates are
// independent and combined with AND; the owner predicate is always present.
func (r *taskRepository) FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	baseQuery := `SELECT ` + taskColumns + ` FROM tasks`

	conditions := []string{"user_id = $1"}
	args := []interface{}{filter.UserID}
	argID := 2

	if filter.Search != nil {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argID, argID))
		args = append(args, "%"+*filter.Search+"%")
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argID))
		args = append(args, *filter.Priority)
		argID++
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argID))
		args = append(args, *filter.CategoryID)
		argID++
	}
	if filter.Overdue {
		conditions = append(conditions, "due_date < NOW()", "status <> 'completed'")
	}

	baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	baseQuery += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Description,
			&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	const q = `
		UPDATE tasks SET
			category_id=$1, title=$2, description=$3, status=$4, priority=$5, due_date=$6
		WHERE id=$7 AND user_id=$8`
	res, err := r.db.ExecContext(ctx, q,
		task.CategoryID, task.Title, task.Description, task.Status,
		task.Priority, task.DueDate, task.ID, task.UserID,
	)
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

func (r *taskRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
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

func (r *taskRepository) CountByStatus(ctx context.Context, userID int64) (int, map[models.TaskStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM tasks WHERE user_id = $1 GROUP BY status`, userID)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	total := 0
	byStatus := make(map[models.TaskStatus]int)
	for rows.Next() {
		var status models.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return 0, nil, err
		}
		byStatus[status] = count
		total += count
	}
	return total, byStatus, rows.Err()
}

func (r *taskRepository) CountOverdue(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND due_date < NOW() AND status <> 'completed'`, userID).Scan(&count)
	return count, err
}

func (r *taskRepository) CountHighPriorityPending(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND priority = 'high' AND status = 'pending'`, userID).Scan(&count)
	return count, err
}

// CategoryBreakdown counts the user's tasks per owned category. Categories
// without tasks are omitted; tasks pointing at a foreign or deleted category
// do not show up here.
func (r *taskRepository) CategoryBreakdown(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, COUNT(t.id), c.color
		FROM categories c
		JOIN tasks t ON t.category_id = c.id AND t.user_id = c.user_id
		WHERE c.user_id = $1
		GROUP BY c.id, c.name, c.color
		ORDER BY c.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Name, &s.Count, &s.Color); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
