package postgres

import (
	"context"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

func (q QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	return q.db.WithContext(ctx).Create(question).Error
}

func (q QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := q.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (q QuestionPostgreSQL) GetByTest(ctx context.Context, testID uint) ([]*models.Question, error) {
	var questions []*models.Question
	if err := q.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Preload("Options").
		Order("id asc").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

type AnswerOptionPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerOptionPostgreSQL(db *gorm.DB) repositories.AnswerOptionRepository {
	return &AnswerOptionPostgreSQL{db: db}
}

func (a AnswerOptionPostgreSQL) Create(ctx context.Context, option *models.AnswerOption) error {
	return a.db.WithContext(ctx).Create(option).Error
}

func (a AnswerOptionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.AnswerOption, error) {
	var option models.AnswerOption
	if err := a.db.WithContext(ctx).First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (a AnswerOptionPostgreSQL) GetByQuestion(ctx context.Context, questionID uint) ([]*models.AnswerOption, error) {
	var options []*models.AnswerOption
	if err := a.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id asc").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (a AnswerOptionPostgreSQL) GetByIDs(ctx context.Context, ids []uint) ([]*models.AnswerOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var options []*models.AnswerOption
	if err := a.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
