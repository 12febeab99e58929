package handlers

import (
	"context"
	"net/http"

	"ekima-service/internal/middleware"
	"ekima-service/internal/models"
	"ekima-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		userID = c.Param("id")
	}
	records, err := h.Service.GetUserProgress(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ProgressHandler) GetChapterProgress(c *gin.Context) {
	userID := middleware.UserID(c)
	chapterID := c.Param("chapterId")
	record, err := h.Service.GetChapterProgress(context.Background(), userID, chapterID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Progress not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateProgress upserts the caller's study record for one chapter. The
// user ID always comes from the auth context, not the body.
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	var p models.Progress
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.UserID = middleware.UserID(c)
	if p.UserID == "" || p.ChapterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user ID and chapter ID are required"})
		return
	}
	updated, err := h.Service.UpdateProgress(context.Background(), &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
