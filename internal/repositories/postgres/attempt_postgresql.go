package postgres

import (
	"context"
	"time"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
	"gorm.io/gorm"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a AttemptPostgreSQL) Create(ctx context.Context, attempt *models.TestAttempt) error {
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a AttemptPostgreSQL) GetByID(ctx context.Context, id uint) (*models.TestAttempt, error) {
	var attempt models.TestAttempt
	if err := a.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a AttemptPostgreSQL) GetByUser(ctx context.Context, userID uint) ([]*models.TestAttempt, error) {
	var attempts []*models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at desc").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a AttemptPostgreSQL) GetByTest(ctx context.Context, testID uint) ([]*models.TestAttempt, error) {
	var attempts []*models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("started_at desc").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a AttemptPostgreSQL) GetByUserAndTest(ctx context.Context, userID, testID uint) ([]*models.TestAttempt, error) {
	var attempts []*models.TestAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Order("attempt_number asc").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a AttemptPostgreSQL) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.TestAttempt, int64, error) {
	var attempts []*models.TestAttempt
	var total int64

	query := a.db.WithContext(ctx).Model(&models.TestAttempt{})
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.TestID != nil {
		query = query.Where("test_id = ?", *filters.TestID)
	}
	if filters.FinishedOnly {
		query = query.Where("finished_at IS NOT NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Order("started_at desc").Find(&attempts).Error; err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}

func (a AttemptPostgreSQL) CountByUserAndTest(ctx context.Context, userID, testID uint) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.TestAttempt{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Count(&count).Error
	return count, err
}

func (a AttemptPostgreSQL) Finish(ctx context.Context, id uint, finishedAt time.Time, score int) (bool, error) {
	// Conditional on finished_at still being null: the first finisher wins,
	// a second caller sees zero rows affected.
	result := a.db.WithContext(ctx).
		Model(&models.TestAttempt{}).
		Where("id = ? AND finished_at IS NULL", id).
		Updates(map[string]interface{}{
			"finished_at": finishedAt,
			"score":       score,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type UserAnswerPostgreSQL struct {
	db *gorm.DB
}

func NewUserAnswerPostgreSQL(db *gorm.DB) repositories.UserAnswerRepository {
	return &UserAnswerPostgreSQL{db: db}
}

func (u UserAnswerPostgreSQL) Create(ctx context.Context, answer *models.UserAnswer) error {
	return u.db.WithContext(ctx).Create(answer).Error
}

func (u UserAnswerPostgreSQL) GetByAttempt(ctx context.Context, attemptID uint) ([]*models.UserAnswer, error) {
	var answers []*models.UserAnswer
	if err := u.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("id asc").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
