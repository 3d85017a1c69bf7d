package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/john-g1t/testing-service/internal/cache"
	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
	"github.com/john-g1t/testing-service/internal/utils"
)

const (
	activeTestsCacheKey = "tests:active"
	activeTestsCacheTTL = 5 * time.Minute
)

type testService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
	cache     cache.CacheService
}

func NewTestService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator, cacheService cache.CacheService) TestService {
	return &testService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		cache:     cacheService,
	}
}

// ===== AUTHORING OPERATIONS =====

func (s *testService) Create(ctx context.Context, req *CreateTestRequest, creatorID uint) (*models.Test, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		return nil, ErrInvalidTestWindow
	}

	// Tests are born active; there is no reactivation once deactivated.
	test := &models.Test{
		CreatedBy:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		TimeLimit:   req.TimeLimit,
		MaxAttempts: req.MaxAttempts,
		IsActive:    true,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.repo.Test().Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	s.logger.Info("Test created",
		"test_id", test.ID,
		"creator_id", creatorID,
		"title", test.Title)

	s.invalidateActiveTests(ctx)

	return test, nil
}

func (s *testService) AddQuestion(ctx context.Context, testID uint, req *AddQuestionRequest) (*models.Question, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if _, err := s.repo.Test().GetByID(ctx, testID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	question := &models.Question{
		TestID:     testID,
		Text:       req.Text,
		AnswerType: req.AnswerType,
		MaxPoints:  req.MaxPoints,
	}
	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

func (s *testService) AddAnswerOption(ctx context.Context, questionID uint, req *AddAnswerOptionRequest) (*models.AnswerOption, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if _, err := s.repo.Question().GetByID(ctx, questionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	option := &models.AnswerOption{
		QuestionID: questionID,
		OptionText: req.OptionText,
		Score:      req.Score,
	}
	if err := s.repo.AnswerOption().Create(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}

	return option, nil
}

// Deactivate is one-way: there is no operation that reactivates a test.
func (s *testService) Deactivate(ctx context.Context, testID uint) error {
	if _, err := s.repo.Test().GetByID(ctx, testID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrTestNotFound
		}
		return fmt.Errorf("failed to get test: %w", err)
	}

	if err := s.repo.Test().Deactivate(ctx, testID); err != nil {
		return fmt.Errorf("failed to deactivate test: %w", err)
	}

	s.logger.Info("Test deactivated", "test_id", testID)

	s.invalidateActiveTests(ctx)

	return nil
}

// ===== GET OPERATIONS =====

func (s *testService) GetByID(ctx context.Context, testID uint) (*models.Test, error) {
	test, err := s.repo.Test().GetByID(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}

func (s *testService) GetWithQuestions(ctx context.Context, testID uint) (*models.Test, error) {
	test, err := s.repo.Test().GetByIDWithQuestions(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test with questions: %w", err)
	}
	return test, nil
}

func (s *testService) GetActive(ctx context.Context) ([]*models.Test, error) {
	if s.cache != nil {
		var cached []*models.Test
		if err := s.cache.Get(ctx, activeTestsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	tests, err := s.repo.Test().GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active tests: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, activeTestsCacheKey, tests, activeTestsCacheTTL); err != nil {
			s.logger.Warn("Failed to cache active tests", "error", err)
		}
	}

	return tests, nil
}

func (s *testService) GetByCreator(ctx context.Context, creatorID uint) ([]*models.Test, error) {
	tests, err := s.repo.Test().GetByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tests by creator: %w", err)
	}
	return tests, nil
}

func (s *testService) GetQuestions(ctx context.Context, testID uint) ([]*models.Question, error) {
	if _, err := s.GetByID(ctx, testID); err != nil {
		return nil, err
	}
	questions, err := s.repo.Question().GetByTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

func (s *testService) GetAnswerOptions(ctx context.Context, questionID uint) ([]*models.AnswerOption, error) {
	if _, err := s.repo.Question().GetByID(ctx, questionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	options, err := s.repo.AnswerOption().GetByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answer options: %w", err)
	}
	return options, nil
}

func (s *testService) invalidateActiveTests(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, activeTestsCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate active tests cache", "error", err)
	}
}
