package handlers

import (
	"context"
	"net/http"

	"ekima-service/internal/middleware"
	"ekima-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: s}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		userID = c.Param("id")
	}
	stats, err := h.Service.GetUserStats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetTopicCompletion(c *gin.Context) {
	userID := middleware.UserID(c)
	topicID := c.Param("topicId")
	completion, err := h.Service.GetTopicCompletion(context.Background(), userID, topicID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, completion)
}
