package handlers

import (
	"context"
	"net/http"

	"ekima-service/internal/middleware"
	"ekima-service/internal/models"
	"ekima-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizAttemptHandler struct {
	Service *service.QuizAttemptService
}

func NewQuizAttemptHandler(s *service.QuizAttemptService) *QuizAttemptHandler {
	return &QuizAttemptHandler{Service: s}
}

func (h *QuizAttemptHandler) SubmitAttempt(c *gin.Context) {
	var attempt models.QuizAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attempt.UserID = middleware.UserID(c)
	if attempt.UserID == "" || attempt.ChapterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user ID and chapter ID are required"})
		return
	}
	xpEarned, err := h.Service.SubmitAttempt(context.Background(), &attempt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attempt": attempt, "xp_earned": xpEarned})
}

func (h *QuizAttemptHandler) GetUserAttempts(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		userID = c.Param("id")
	}
	attempts, err := h.Service.GetUserAttempts(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
