package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/repositories"
)

// ===== REPOSITORY MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) Create(ctx context.Context, test *models.Test) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockTestRepository) GetByID(ctx context.Context, id uint) (*models.Test, error) {
	args := m.Called(ctx, id)
	if test, ok := args.Get(0).(*models.Test); ok {
		return test, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) GetByIDWithQuestions(ctx context.Context, id uint) (*models.Test, error) {
	args := m.Called(ctx, id)
	if test, ok := args.Get(0).(*models.Test); ok {
		return test, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTestRepository) Update(ctx context.Context, test *models.Test) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockTestRepository) Deactivate(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestRepository) List(ctx context.Context, filters repositories.TestFilters) ([]*models.Test, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Test), args.Get(1).(int64), args.Error(2)
}

func (m *MockTestRepository) GetActive(ctx context.Context) ([]*models.Test, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Test), args.Error(1)
}

func (m *MockTestRepository) GetByCreator(ctx context.Context, creatorID uint) ([]*models.Test, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]*models.Test), args.Error(1)
}

func (m *MockTestRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	args := m.Called(ctx, id)
	if question, ok := args.Get(0).(*models.Question); ok {
		return question, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) GetByTest(ctx context.Context, testID uint) ([]*models.Question, error) {
	args := m.Called(ctx, testID)
	return args.Get(0).([]*models.Question), args.Error(1)
}

type MockAnswerOptionRepository struct {
	mock.Mock
}

func (m *MockAnswerOptionRepository) Create(ctx context.Context, option *models.AnswerOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockAnswerOptionRepository) GetByID(ctx context.Context, id uint) (*models.AnswerOption, error) {
	args := m.Called(ctx, id)
	if option, ok := args.Get(0).(*models.AnswerOption); ok {
		return option, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnswerOptionRepository) GetByQuestion(ctx context.Context, questionID uint) ([]*models.AnswerOption, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).([]*models.AnswerOption), args.Error(1)
}

func (m *MockAnswerOptionRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.AnswerOption, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.AnswerOption), args.Error(1)
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *models.TestAttempt) error {
	args := m.Called(ctx, attempt)
	if args.Error(0) == nil && attempt.ID == 0 {
		attempt.ID = 1
	}
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByID(ctx context.Context, id uint) (*models.TestAttempt, error) {
	args := m.Called(ctx, id)
	if attempt, ok := args.Get(0).(*models.TestAttempt); ok {
		return attempt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAttemptRepository) GetByUser(ctx context.Context, userID uint) ([]*models.TestAttempt, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.TestAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByTest(ctx context.Context, testID uint) ([]*models.TestAttempt, error) {
	args := m.Called(ctx, testID)
	return args.Get(0).([]*models.TestAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetByUserAndTest(ctx context.Context, userID, testID uint) ([]*models.TestAttempt, error) {
	args := m.Called(ctx, userID, testID)
	return args.Get(0).([]*models.TestAttempt), args.Error(1)
}

func (m *MockAttemptRepository) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.TestAttempt, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.TestAttempt), args.Get(1).(int64), args.Error(2)
}

func (m *MockAttemptRepository) CountByUserAndTest(ctx context.Context, userID, testID uint) (int64, error) {
	args := m.Called(ctx, userID, testID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) Finish(ctx context.Context, id uint, finishedAt time.Time, score int) (bool, error) {
	args := m.Called(ctx, id, finishedAt, score)
	return args.Bool(0), args.Error(1)
}

type MockUserAnswerRepository struct {
	mock.Mock
}

func (m *MockUserAnswerRepository) Create(ctx context.Context, answer *models.UserAnswer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockUserAnswerRepository) GetByAttempt(ctx context.Context, attemptID uint) ([]*models.UserAnswer, error) {
	args := m.Called(ctx, attemptID)
	return args.Get(0).([]*models.UserAnswer), args.Error(1)
}

// ===== AGGREGATE MOCK =====

// MockRepository bundles the per-entity mocks; WithTransaction executes fn
// against the same mock set, so transactional code paths are exercised.
type MockRepository struct {
	userRepo         *MockUserRepository
	testRepo         *MockTestRepository
	questionRepo     *MockQuestionRepository
	answerOptionRepo *MockAnswerOptionRepository
	attemptRepo      *MockAttemptRepository
	userAnswerRepo   *MockUserAnswerRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		userRepo:         &MockUserRepository{},
		testRepo:         &MockTestRepository{},
		questionRepo:     &MockQuestionRepository{},
		answerOptionRepo: &MockAnswerOptionRepository{},
		attemptRepo:      &MockAttemptRepository{},
		userAnswerRepo:   &MockUserAnswerRepository{},
	}
}

func (m *MockRepository) User() repositories.UserRepository                 { return m.userRepo }
func (m *MockRepository) Test() repositories.TestRepository                 { return m.testRepo }
func (m *MockRepository) Question() repositories.QuestionRepository         { return m.questionRepo }
func (m *MockRepository) AnswerOption() repositories.AnswerOptionRepository { return m.answerOptionRepo }
func (m *MockRepository) Attempt() repositories.AttemptRepository           { return m.attemptRepo }
func (m *MockRepository) UserAnswer() repositories.UserAnswerRepository     { return m.userAnswerRepo }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) Ping(ctx context.Context) error { return nil }
func (m *MockRepository) Close() error                   { return nil }

func (m *MockRepository) AssertExpectations(t mock.TestingT) {
	m.userRepo.AssertExpectations(t)
	m.testRepo.AssertExpectations(t)
	m.questionRepo.AssertExpectations(t)
	m.answerOptionRepo.AssertExpectations(t)
	m.attemptRepo.AssertExpectations(t)
	m.userAnswerRepo.AssertExpectations(t)
}

// ===== SHARED TEST HELPERS =====

func uintPtr(v uint) *uint           { return &v }
func intPtr(v int) *int              { return &v }
func stringPtr(v string) *string     { return &v }
func timePtr(v time.Time) *time.Time { return &v }
