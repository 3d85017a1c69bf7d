package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/john-g1t/testing-service/internal/services"
)

type TestHandler struct {
	testService   services.TestService
	exportService services.ExportService
}

func NewTestHandler(testService services.TestService, exportService services.ExportService) *TestHandler {
	return &TestHandler{
		testService:   testService,
		exportService: exportService,
	}
}

func (h *TestHandler) CreateTest(c *gin.Context) {
	var req services.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	creatorID := parseIDParam(c, "creator_id")
	if creatorID == 0 {
		return
	}

	test, err := h.testService.Create(c.Request.Context(), &req, creatorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, test)
}

func (h *TestHandler) AddQuestion(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	var req services.AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	question, err := h.testService.AddQuestion(c.Request.Context(), testID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *TestHandler) AddAnswerOption(c *gin.Context) {
	questionID := parseIDParam(c, "question_id")
	if questionID == 0 {
		return
	}

	var req services.AddAnswerOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	option, err := h.testService.AddAnswerOption(c.Request.Context(), questionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, option)
}

func (h *TestHandler) DeactivateTest(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	if err := h.testService.Deactivate(c.Request.Context(), testID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *TestHandler) GetTest(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	test, err := h.testService.GetByID(c.Request.Context(), testID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) GetTestWithQuestions(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	test, err := h.testService.GetWithQuestions(c.Request.Context(), testID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) GetActiveTests(c *gin.Context) {
	tests, err := h.testService.GetActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) GetTestsByCreator(c *gin.Context) {
	creatorID := parseIDParam(c, "creator_id")
	if creatorID == 0 {
		return
	}

	tests, err := h.testService.GetByCreator(c.Request.Context(), creatorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) GetQuestions(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	questions, err := h.testService.GetQuestions(c.Request.Context(), testID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *TestHandler) GetAnswerOptions(c *gin.Context) {
	questionID := parseIDParam(c, "question_id")
	if questionID == 0 {
		return
	}

	options, err := h.testService.GetAnswerOptions(c.Request.Context(), questionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// ExportResults streams the test's attempt results as an Excel workbook.
func (h *TestHandler) ExportResults(c *gin.Context) {
	testID := parseIDParam(c, "id")
	if testID == 0 {
		return
	}

	data, err := h.exportService.ExportTestResults(c.Request.Context(), testID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("test_%d_results.xlsx", testID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
