package handlers

import (
	"context"
	"net/http"

	"ekima-service/internal/middleware"
	"ekima-service/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	Service *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: s}
}

// GetRecommendations returns the caller's current recommendation set,
// generating a fresh one when nothing cached applies.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user ID is required"})
		return
	}
	recs, err := h.Service.GenerateForUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GetStoredRecommendations returns the last persisted set without rerunning
// the engine.
func (h *RecommendationHandler) GetStoredRecommendations(c *gin.Context) {
	userID := c.Param("id")
	recs, err := h.Service.GetStored(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (h *RecommendationHandler) MarkUsed(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.MarkUsed(context.Background(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *RecommendationHandler) SaveFeedback(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SaveFeedback(context.Background(), id, body.Feedback); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
