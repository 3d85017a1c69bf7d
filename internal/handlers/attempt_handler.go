package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/john-g1t/testing-service/internal/services"
)

type AttemptHandler struct {
	attemptService services.AttemptService
}

func NewAttemptHandler(attemptService services.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
	}
}

type StartAttemptRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	TestID uint `json:"test_id" binding:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID uint    `json:"question_id" binding:"required"`
	OptionID   *uint   `json:"option_id"`
	AnswerText *string `json:"answer_text"`
}

// StartAttempt opens a new attempt for a user on a test.
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	var req StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	attemptID, err := h.attemptService.Start(c.Request.Context(), req.UserID, req.TestID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attempt_id": attemptID})
}

// SubmitAnswer records an answer row for an open attempt. The answer must
// carry an option reference, free text, or both.
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	attemptID := parseIDParam(c, "id")
	if attemptID == 0 {
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if req.OptionID == nil && req.AnswerText == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Either option_id or answer_text is required",
		})
		return
	}

	if err := h.attemptService.SubmitAnswer(c.Request.Context(), attemptID, req.QuestionID, req.OptionID, req.AnswerText); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// FinishAttempt closes an attempt and returns its final score.
func (h *AttemptHandler) FinishAttempt(c *gin.Context) {
	attemptID := parseIDParam(c, "id")
	if attemptID == 0 {
		return
	}

	score, err := h.attemptService.Finish(c.Request.Context(), attemptID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": score})
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attemptID := parseIDParam(c, "id")
	if attemptID == 0 {
		return
	}

	attempt, err := h.attemptService.GetByID(c.Request.Context(), attemptID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}

func (h *AttemptHandler) GetAttemptAnswers(c *gin.Context) {
	attemptID := parseIDParam(c, "id")
	if attemptID == 0 {
		return
	}

	answers, err := h.attemptService.GetAnswers(c.Request.Context(), attemptID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, answers)
}

func (h *AttemptHandler) GetAttemptsByUser(c *gin.Context) {
	userID := parseIDParam(c, "id")
	if userID == 0 {
		return
	}

	attempts, err := h.attemptService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}

func (h *AttemptHandler) GetAttemptsByTest(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	attempts, err := h.attemptService.GetByTest(c.Request.Context(), testID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}
