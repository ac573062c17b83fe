package services

import (
	"context"
	"math"

	"tasktrack/internal/models"
	"tasktrack/internal/repositories"
)

type StatsService interface {
	GetStats(ctx context.Context, userID int64) (*models.Stats, error)
}

type statsService struct {
	tasks repositories.TaskRepository
}

func NewStatsService(tasks repositories.TaskRepository) StatsService {
	return &statsService{tasks: tasks}
}

func (s *statsService) GetStats(ctx context.Context, userID int64) (*models.Stats, error) {
	total, byStatus, err := s.tasks.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	overdue, err := s.tasks.CountOverdue(ctx, userID)
	if err != nil {
		return nil, err
	}

	highPriority, err := s.tasks.CountHighPriorityPending(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.tasks.CategoryBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}
	if byCategory == nil {
		byCategory = []models.CategoryStat{}
	}

	completed := byStatus[models.StatusCompleted]

	// completion rate in percent, one decimal, 0 for an empty task list
	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*1000) / 10
	}

	return &models.Stats{
		TotalTasks:      total,
		Completed:       completed,
		Pending:         byStatus[models.StatusPending],
		InProgress:      byStatus[models.StatusInProgress],
		Overdue:         overdue,
		HighPriority:    highPriority,
		CompletionRate:  rate,
		TasksByCategory: byCategory,
	}, nil
}
