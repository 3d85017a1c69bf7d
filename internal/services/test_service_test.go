package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/john-g1t/testing-service/internal/models"
	"github.com/john-g1t/testing-service/internal/utils"
)

func newTestServiceForTest(repo *MockRepository) TestService {
	return NewTestService(repo, testLogger(), utils.NewValidator(), nil)
}

func TestTestService_Create(t *testing.T) {
	t.Run("creates active test", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.testRepo.On("Create", mock.Anything, mock.MatchedBy(func(test *models.Test) bool {
			return test.Title == "Go basics" && test.CreatedBy == 1 && test.IsActive
		})).Return(nil)

		test, err := svc.Create(context.Background(), &CreateTestRequest{
			Title:       "Go basics",
			TimeLimit:   intPtr(30),
			MaxAttempts: intPtr(3),
		}, 1)

		assert.NoError(t, err)
		assert.NotNil(t, test)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty title fails validation", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		_, err := svc.Create(context.Background(), &CreateTestRequest{Title: ""}, 1)

		assert.ErrorIs(t, err, ErrValidationFailed)
		mockRepo.testRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)

		_, err := svc.Create(context.Background(), &CreateTestRequest{
			Title:     "Backwards window",
			StartTime: &start,
			EndTime:   &end,
		}, 1)

		assert.ErrorIs(t, err, ErrInvalidTestWindow)
	})
}

func TestTestService_AddQuestion(t *testing.T) {
	t.Run("attaches question to existing test", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.testRepo.On("GetByID", mock.Anything, uint(10)).Return(&models.Test{ID: 10, IsActive: true}, nil)
		mockRepo.questionRepo.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
			return q.TestID == 10 && q.AnswerType == models.AnswerSingle
		})).Return(nil)

		question, err := svc.AddQuestion(context.Background(), 10, &AddQuestionRequest{
			Text:       "What is a goroutine?",
			AnswerType: models.AnswerSingle,
		})

		assert.NoError(t, err)
		assert.NotNil(t, question)
	})

	t.Run("unknown test", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.testRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddQuestion(context.Background(), 404, &AddQuestionRequest{
			Text:       "Orphan question",
			AnswerType: models.AnswerText,
		})

		assert.ErrorIs(t, err, ErrTestNotFound)
	})

	t.Run("invalid answer type", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		_, err := svc.AddQuestion(context.Background(), 10, &AddQuestionRequest{
			Text:       "Bad type",
			AnswerType: models.AnswerType("checkbox"),
		})

		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}

func TestTestService_AddAnswerOption(t *testing.T) {
	t.Run("attaches option with score", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.questionRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.Question{ID: 7}, nil)
		mockRepo.answerOptionRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *models.AnswerOption) bool {
			return o.QuestionID == 7 && *o.Score == 5
		})).Return(nil)

		option, err := svc.AddAnswerOption(context.Background(), 7, &AddAnswerOptionRequest{
			OptionText: "A lightweight thread",
			Score:      intPtr(5),
		})

		assert.NoError(t, err)
		assert.NotNil(t, option)
	})

	t.Run("option without score allowed", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.questionRepo.On("GetByID", mock.Anything, uint(7)).Return(&models.Question{ID: 7}, nil)
		mockRepo.answerOptionRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *models.AnswerOption) bool {
			return o.Score == nil
		})).Return(nil)

		_, err := svc.AddAnswerOption(context.Background(), 7, &AddAnswerOptionRequest{
			OptionText: "A distractor",
		})

		assert.NoError(t, err)
	})

	t.Run("unknown question", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.questionRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddAnswerOption(context.Background(), 404, &AddAnswerOptionRequest{
			OptionText: "Orphan option",
		})

		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestTestService_Deactivate(t *testing.T) {
	t.Run("deactivates existing test", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.testRepo.On("GetByID", mock.Anything, uint(10)).Return(&models.Test{ID: 10, IsActive: true}, nil)
		mockRepo.testRepo.On("Deactivate", mock.Anything, uint(10)).Return(nil)

		assert.NoError(t, svc.Deactivate(context.Background(), 10))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown test", func(t *testing.T) {
		mockRepo := newMockRepository()
		svc := newTestServiceForTest(mockRepo)

		mockRepo.testRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Deactivate(context.Background(), 404), ErrTestNotFound)
	})
}

func TestTestService_GetActive(t *testing.T) {
	mockRepo := newMockRepository()
	svc := newTestServiceForTest(mockRepo)

	active := []*models.Test{{ID: 1, Title: "One", IsActive: true}}
	mockRepo.testRepo.On("GetActive", mock.Anything).Return(active, nil)

	tests, err := svc.GetActive(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, active, tests)
}
