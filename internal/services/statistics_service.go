package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/john-g1t/testing-service/internal/repositories"
)

type statisticsService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewStatisticsService(repo repositories.Repository, logger *slog.Logger) StatisticsService {
	return &statisticsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *statisticsService) Global(ctx context.Context) (*GlobalStats, error) {
	users, err := s.repo.User().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	tests, err := s.repo.Test().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tests: %w", err)
	}

	return &GlobalStats{
		TotalUsers: users,
		TotalTests: tests,
	}, nil
}

func (s *statisticsService) ForUser(ctx context.Context, userID uint) (*UserStats, error) {
	exists, err := s.repo.User().Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	attempts, err := s.repo.Attempt().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user attempts: %w", err)
	}

	stats := &UserStats{
		UserID:        userID,
		TotalAttempts: len(attempts),
	}

	sum := 0
	for _, attempt := range attempts {
		if !attempt.IsFinished() {
			continue
		}
		stats.FinishedAttempts++
		sum += attempt.Score
		if stats.BestScore == nil || attempt.Score > *stats.BestScore {
			score := attempt.Score
			stats.BestScore = &score
		}
	}
	if stats.FinishedAttempts > 0 {
		avg := float64(sum) / float64(stats.FinishedAttempts)
		stats.AverageScore = &avg
	}

	return stats, nil
}
