package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/john-g1t/testing-service/internal/events"
	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
)

type attemptService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher

	// now is swapped out in tests to exercise the deadline clamp.
	now func() time.Time
}

func NewAttemptService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) AttemptService {
	return &attemptService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       time.Now,
	}
}

// ===== CORE ATTEMPT OPERATIONS =====

// Start checks the preconditions in order (user, test, active flag, test
// window, attempt count) and persists a new attempt. The count and insert run
// in one transaction; together with the unique attempt-number index this keeps
// the max-attempts bound under concurrent starts.
func (s *attemptService) Start(ctx context.Context, userID, testID uint) (uint, error) {
	s.logger.Info("Starting test attempt",
		"user_id", userID,
		"test_id", testID)

	exists, err := s.repo.User().Exists(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return 0, ErrUserNotFound
	}

	test, err := s.repo.Test().GetByID(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrTestNotFound
		}
		return 0, fmt.Errorf("failed to get test: %w", err)
	}

	now := s.now()
	if err := checkTestWindow(test, now); err != nil {
		return 0, err
	}

	var attempt *models.TestAttempt
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		count, err := tx.Attempt().CountByUserAndTest(ctx, userID, testID)
		if err != nil {
			return fmt.Errorf("failed to count attempts: %w", err)
		}
		if test.MaxAttempts != nil && count >= int64(*test.MaxAttempts) {
			return ErrMaxAttemptsReached
		}

		attempt = &models.TestAttempt{
			UserID:        userID,
			TestID:        testID,
			StartedAt:     now,
			Score:         0,
			AttemptNumber: int(count) + 1,
		}
		if err := tx.Attempt().Create(ctx, attempt); err != nil {
			return fmt.Errorf("failed to create attempt: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Test attempt started",
		"attempt_id", attempt.ID,
		"attempt_number", attempt.AttemptNumber)

	s.publish(ctx, events.NewAttemptStartedEvent(attempt.ID, userID, testID, attempt.AttemptNumber))

	return attempt.ID, nil
}

// SubmitAnswer appends one answer row to an unfinished attempt. Rows are
// never overwritten or deduplicated; whether the question belongs to the
// attempt's test is not checked here.
func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID, questionID uint, optionID *uint, answerText *string) error {
	attempt, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return err
	}
	if attempt.IsFinished() {
		return ErrAttemptAlreadyFinished
	}

	if _, err := s.repo.Question().GetByID(ctx, questionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to get question: %w", err)
	}

	answer := &models.UserAnswer{
		AttemptID:      attemptID,
		QuestionID:     questionID,
		AnswerOptionID: optionID,
		AnswerText:     answerText,
	}
	if err := s.repo.UserAnswer().Create(ctx, answer); err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	s.logger.Debug("Answer submitted",
		"attempt_id", attemptID,
		"question_id", questionID)

	return nil
}

// Finish is the terminal transition. A finish call past the per-attempt
// deadline is not rejected; its effective end time is clamped back to
// startedAt + timeLimit. The conditional update makes the first of two racing
// finishers win and the second observe ErrAttemptAlreadyFinished.
func (s *attemptService) Finish(ctx context.Context, attemptID uint) (int, error) {
	attempt, err := s.getAttempt(ctx, attemptID)
	if err != nil {
		return 0, err
	}
	if attempt.IsFinished() {
		return 0, ErrAttemptAlreadyFinished
	}

	test, err := s.repo.Test().GetByID(ctx, attempt.TestID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrTestNotFound
		}
		return 0, fmt.Errorf("failed to get test: %w", err)
	}

	finishedAt := clampFinishTime(test, attempt, s.now())

	answers, err := s.repo.UserAnswer().GetByAttempt(ctx, attemptID)
	if err != nil {
		return 0, fmt.Errorf("failed to load answers: %w", err)
	}

	score, err := s.scoreAttempt(ctx, answers)
	if err != nil {
		return 0, err
	}

	won, err := s.repo.Attempt().Finish(ctx, attemptID, finishedAt, score)
	if err != nil {
		return 0, fmt.Errorf("failed to finish attempt: %w", err)
	}
	if !won {
		return 0, ErrAttemptAlreadyFinished
	}

	s.logger.Info("Test attempt finished",
		"attempt_id", attemptID,
		"score", score,
		"finished_at", finishedAt)

	s.publish(ctx, events.NewAttemptFinishedEvent(attemptID, attempt.UserID, attempt.TestID, attempt.AttemptNumber, score, finishedAt))

	return score, nil
}

// ===== GET OPERATIONS =====

func (s *attemptService) GetByID(ctx context.Context, attemptID uint) (*models.TestAttempt, error) {
	return s.getAttempt(ctx, attemptID)
}

func (s *attemptService) GetByUser(ctx context.Context, userID uint) ([]*models.TestAttempt, error) {
	attempts, err := s.repo.Attempt().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts by user: %w", err)
	}
	return attempts, nil
}

func (s *attemptService) GetByTest(ctx context.Context, testID uint) ([]*models.TestAttempt, error) {
	attempts, err := s.repo.Attempt().GetByTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts by test: %w", err)
	}
	return attempts, nil
}

func (s *attemptService) GetAnswers(ctx context.Context, attemptID uint) ([]*models.UserAnswer, error) {
	if _, err := s.getAttempt(ctx, attemptID); err != nil {
		return nil, err
	}
	answers, err := s.repo.UserAnswer().GetByAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt answers: %w", err)
	}
	return answers, nil
}
