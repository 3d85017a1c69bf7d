package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/john-g1t/testing-service/internal/services"
)

type StatisticsHandler struct {
	statisticsService services.StatisticsService
}

func NewStatisticsHandler(statisticsService services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsService: statisticsService,
	}
}

func (h *StatisticsHandler) GetGlobalStats(c *gin.Context) {
	stats, err := h.statisticsService.Global(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatisticsHandler) GetUserStats(c *gin.Context) {
	userID := parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	stats, err := h.statisticsService.ForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
