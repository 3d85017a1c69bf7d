package repositories

import (
	"context"
	"time"

	"github.com/john-g1t/testing-service/internal/models"
)

// AttemptRepository is the storage port for test attempts.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.TestAttempt) error
	GetByID(ctx context.Context, id uint) (*models.TestAttempt, error)

	GetByUser(ctx context.Context, userID uint) ([]*models.TestAttempt, error)
	GetByTest(ctx context.Context, testID uint) ([]*models.TestAttempt, error)
	GetByUserAndTest(ctx context.Context, userID, testID uint) ([]*models.TestAttempt, error)
	List(ctx context.Context, filters AttemptFilters) ([]*models.TestAttempt, int64, error)

	// CountByUserAndTest counts every attempt for the pair, finished or not.
	CountByUserAndTest(ctx context.Context, userID, testID uint) (int64, error)

	// Finish sets finished_at and score on an unfinished attempt. The update
	// is conditional on finished_at still being null so that of two racing
	// finishers exactly one succeeds; it reports whether this caller won.
	Finish(ctx context.Context, id uint, finishedAt time.Time, score int) (bool, error)
}

// UserAnswerRepository is the storage port for submitted answers.
type UserAnswerRepository interface {
	Create(ctx context.Context, answer *models.UserAnswer) error
	GetByAttempt(ctx context.Context, attemptID uint) ([]*models.UserAnswer, error)
}
