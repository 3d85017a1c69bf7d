package services

import (
	"context"
	"time"

	"github.com/john-g1t/testing-service/internal/models"
)

// AttemptService owns the attempt state machine: Created (unfinished) moves
// to Finished via Finish only; SubmitAnswer is a self-loop on Created.
type AttemptService interface {
	Start(ctx context.Context, userID, testID uint) (uint, error)
	SubmitAnswer(ctx context.Context, attemptID, questionID uint, optionID *uint, answerText *string) error
	Finish(ctx context.Context, attemptID uint) (int, error)

	GetByID(ctx context.Context, attemptID uint) (*models.TestAttempt, error)
	GetByUser(ctx context.Context, userID uint) ([]*models.TestAttempt, error)
	GetByTest(ctx context.Context, testID uint) ([]*models.TestAttempt, error)
	GetAnswers(ctx context.Context, attemptID uint) ([]*models.UserAnswer, error)
}

// TestService covers authoring: creating tests, attaching questions and
// options, and the one-way deactivate.
type TestService interface {
	Create(ctx context.Context, req *CreateTestRequest, creatorID uint) (*models.Test, error)
	AddQuestion(ctx context.Context, testID uint, req *AddQuestionRequest) (*models.Question, error)
	AddAnswerOption(ctx context.Context, questionID uint, req *AddAnswerOptionRequest) (*models.AnswerOption, error)
	Deactivate(ctx context.Context, testID uint) error

	GetByID(ctx context.Context, testID uint) (*models.Test, error)
	GetWithQuestions(ctx context.Context, testID uint) (*models.Test, error)
	GetActive(ctx context.Context) ([]*models.Test, error)
	GetByCreator(ctx context.Context, creatorID uint) ([]*models.Test, error)
	GetQuestions(ctx context.Context, testID uint) ([]*models.Question, error)
	GetAnswerOptions(ctx context.Context, questionID uint) ([]*models.AnswerOption, error)
}

type UserService interface {
	Register(ctx context.Context, req *RegisterUserRequest) (*models.User, error)
	GetByID(ctx context.Context, userID uint) (*models.User, error)
	Exists(ctx context.Context, userID uint) (bool, error)
}

type StatisticsService interface {
	Global(ctx context.Context) (*GlobalStats, error)
	ForUser(ctx context.Context, userID uint) (*UserStats, error)
}

type ExportService interface {
	ExportTestResults(ctx context.Context, testID uint) ([]byte, error)
}

// ===== REQUEST STRUCTURES =====

type CreateTestRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	TimeLimit   *int       `json:"time_limit" validate:"omitempty,min=1"`
	MaxAttempts *int       `json:"max_attempts" validate:"omitempty,min=1"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

type AddQuestionRequest struct {
	Text       string            `json:"text" validate:"required,min=1"`
	AnswerType models.AnswerType `json:"answer_type" validate:"required,answer_type"`
	MaxPoints  *int              `json:"max_points" validate:"omitempty,min=0"`
}

type AddAnswerOptionRequest struct {
	OptionText string `json:"option_text" validate:"required,min=1"`
	Score      *int   `json:"score" validate:"omitempty,min=0"`
}

type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

// ===== STATISTICS STRUCTURES =====

type GlobalStats struct {
	TotalUsers int64 `json:"total_users"`
	TotalTests int64 `json:"total_tests"`
}

type UserStats struct {
	UserID           uint     `json:"user_id"`
	TotalAttempts    int      `json:"total_attempts"`
	FinishedAttempts int      `json:"finished_attempts"`
	BestScore        *int     `json:"best_score,omitempty"`
	AverageScore     *float64 `json:"average_score,omitempty"`
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Attempt() AttemptService
	Test() TestService
	User() UserService
	Statistics() StatisticsService
	Export() ExportService
}

type serviceManager struct {
	attempt    AttemptService
	test       TestService
	user       UserService
	statistics StatisticsService
	export     ExportService
}

func NewServiceManager(attempt AttemptService, test TestService, user UserService, statistics StatisticsService, export ExportService) ServiceManager {
	return &serviceManager{
		attempt:    attempt,
		test:       test,
		user:       user,
		statistics: statistics,
		export:     export,
	}
}

func (m *serviceManager) Attempt() AttemptService       { return m.attempt }
func (m *serviceManager) Test() TestService             { return m.test }
func (m *serviceManager) User() UserService             { return m.user }
func (m *serviceManager) Statistics() StatisticsService { return m.statistics }
func (m *serviceManager) Export() ExportService         { return m.export }
