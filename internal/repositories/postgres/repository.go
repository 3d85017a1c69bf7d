package postgres

import (
	"context"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB

	user         repositories.UserRepository
	test         repositories.TestRepository
	question     repositories.QuestionRepository
	answerOption repositories.AnswerOptionRepository
	attempt      repositories.AttemptRepository
	userAnswer   repositories.UserAnswerRepository
}

// NewRepository builds the aggregate postgres-backed Repository around one
// gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		db:           db,
		user:         NewUserPostgreSQL(db),
		test:         NewTestPostgreSQL(db),
		question:     NewQuestionPostgreSQL(db),
		answerOption: NewAnswerOptionPostgreSQL(db),
		attempt:      NewAttemptPostgreSQL(db),
		userAnswer:   NewUserAnswerPostgreSQL(db),
	}
}

// AutoMigrate creates or updates the schema for all entities, including the
// unique (user_id, test_id, attempt_number) index on attempts.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Test{},
		&models.Question{},
		&models.AnswerOption{},
		&models.TestAttempt{},
		&models.UserAnswer{},
	)
}

func (r *repository) User() repositories.UserRepository                 { return r.user }
func (r *repository) Test() repositories.TestRepository                 { return r.test }
func (r *repository) Question() repositories.QuestionRepository         { return r.question }
func (r *repository) AnswerOption() repositories.AnswerOptionRepository { return r.answerOption }
func (r *repository) Attempt() repositories.AttemptRepository           { return r.attempt }
func (r *repository) UserAnswer() repositories.UserAnswerRepository     { return r.userAnswer }

func (r *repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
