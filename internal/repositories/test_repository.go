package repositories

import (
	"context"

	"github.com/john-g1t/testing-service/internal/models"
)

// TestRepository is the storage port for tests.
type TestRepository interface {
	Create(ctx context.Context, test *models.Test) error
	GetByID(ctx context.Context, id uint) (*models.Test, error)
	GetByIDWithQuestions(ctx context.Context, id uint) (*models.Test, error)
	Update(ctx context.Context, test *models.Test) error
	Deactivate(ctx context.Context, id uint) error

	List(ctx context.Context, filters TestFilters) ([]*models.Test, int64, error)
	GetActive(ctx context.Context) ([]*models.Test, error)
	GetByCreator(ctx context.Context, creatorID uint) ([]*models.Test, error)
	Count(ctx context.Context) (int64, error)
}

// QuestionRepository is the storage port for questions.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	GetByTest(ctx context.Context, testID uint) ([]*models.Question, error)
}

// AnswerOptionRepository is the storage port for answer options.
type AnswerOptionRepository interface {
	Create(ctx context.Context, option *models.AnswerOption) error
	GetByID(ctx context.Context, id uint) (*models.AnswerOption, error)
	GetByQuestion(ctx context.Context, questionID uint) ([]*models.AnswerOption, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*models.AnswerOption, error)
}
