package controllers

import (
	"net/http"
	"strconv"

	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	progress *services.ProgressService
	hub      *services.Hub
}

func NewProgressController(progress *services.ProgressService, hub *services.Hub) *ProgressController {
	return &ProgressController{progress: progress, hub: hub}
}

// POST /api/diet/progress
func (pc *ProgressController) RecordProgress(c *gin.Context) {
	var input services.ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	entry, err := pc.progress.Record(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.hub.Broadcast(userID, "progress.recorded", entry)

	c.JSON(http.StatusCreated, gin.H{"message": "Progress recorded successfully", "progress": entry})
}

// GET /api/diet/progress?limit=30
func (pc *ProgressController) ListProgress(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	entries, err := pc.progress.List(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": entries})
}
