package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/john-g1t/testing-service/internal/services"
)

type HandlerManager struct {
	attemptHandler    *AttemptHandler
	testHandler       *TestHandler
	userHandler       *UserHandler
	statisticsHandler *StatisticsHandler
}

func NewHandlerManager(serviceManager services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		attemptHandler:    NewAttemptHandler(serviceManager.Attempt()),
		testHandler:       NewTestHandler(serviceManager.Test(), serviceManager.Export()),
		userHandler:       NewUserHandler(serviceManager.User()),
		statisticsHandler: NewStatisticsHandler(serviceManager.Statistics()),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// User routes
		users := v1.Group("/users")
		{
			users.POST("", hm.userHandler.Register)
			users.GET("/:id", hm.userHandler.GetUser)
			users.GET("/:id/attempts", hm.attemptHandler.GetAttemptsByUser)
		}

		// Test routes
		tests := v1.Group("/tests")
		{
			tests.POST("/creator/:creator_id", hm.testHandler.CreateTest)
			tests.GET("/active", hm.testHandler.GetActiveTests)
			tests.GET("/creator/:creator_id", hm.testHandler.GetTestsByCreator)
			tests.GET("/:id", hm.testHandler.GetTest)
			tests.GET("/:id/details", hm.testHandler.GetTestWithQuestions)
			tests.POST("/:id/questions", hm.testHandler.AddQuestion)
			tests.GET("/:id/questions", hm.testHandler.GetQuestions)
			tests.POST("/:id/deactivate", hm.testHandler.DeactivateTest)
			tests.GET("/:id/attempts", hm.attemptHandler.GetAttemptsByTest)
			tests.GET("/:id/results/export", hm.testHandler.ExportResults)
		}

		// Question routes
		questions := v1.Group("/questions")
		{
			questions.POST("/:question_id/options", hm.testHandler.AddAnswerOption)
			questions.GET("/:question_id/options", hm.testHandler.GetAnswerOptions)
		}

		// Attempt routes
		attempts := v1.Group("/attempts")
		{
			attempts.POST("/start", hm.attemptHandler.StartAttempt)
			attempts.GET("/:id", hm.attemptHandler.GetAttempt)
			attempts.POST("/:id/answer", hm.attemptHandler.SubmitAnswer)
			attempts.POST("/:id/finish", hm.attemptHandler.FinishAttempt)
			attempts.GET("/:id/answers", hm.attemptHandler.GetAttemptAnswers)
		}

		// Statistics routes
		stats := v1.Group("/stats")
		{
			stats.GET("/global", hm.statisticsHandler.GetGlobalStats)
			stats.GET("/users/:user_id", hm.statisticsHandler.GetUserStats)
		}
	}
}
