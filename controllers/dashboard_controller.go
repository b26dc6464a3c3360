package controllers

import (
	"net/http"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/services"
	"github.com/UJJWAL-7777/Diet-Manager/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	plans    *services.MealPlanService
	progress *services.ProgressService
}

func NewDashboardController(plans *services.MealPlanService, progress *services.ProgressService) *DashboardController {
	return &DashboardController{plans: plans, progress: progress}
}

// GET /api/diet/dashboard
func (dc *DashboardController) Dashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	stats := gin.H{}

	if profile, err := services.GetProfile(userID); err == nil {
		stats["profile"] = profile

		if latest, err := dc.progress.Latest(userID); err == nil && latest != nil {
			stats["recentWeight"] = latest.Weight
			stats["lastUpdated"] = latest.Date

			if bmi, err := utils.CalculateBMI(profile.Height, latest.Weight); err == nil {
				stats["bmi"] = bmi
				stats["bmiCategory"] = utils.BMICategory(bmi)
			}
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if plan, err := dc.plans.Get(userID, today); err == nil && plan != nil {
		stats["todayMealPlan"] = plan
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
