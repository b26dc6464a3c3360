package controllers

import (
	"net/http"

	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
)

// POST /api/diet/profile
func SaveProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.SaveProfile(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully", "profile": profile})
}

// GET /api/diet/profile
func GetProfile(c *gin.Context) {
	profile, err := services.GetProfile(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
