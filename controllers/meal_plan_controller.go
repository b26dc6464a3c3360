package controllers

import (
	"net/http"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/models"
	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	plans *services.MealPlanService
	hub   *services.Hub
}

func NewMealPlanController(plans *services.MealPlanService, hub *services.Hub) *MealPlanController {
	return &MealPlanController{plans: plans, hub: hub}
}

func parsePlanDate(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// GET /api/diet/meal-plan/:date
func (mc *MealPlanController) GetMealPlan(c *gin.Context) {
	date, ok := parsePlanDate(c)
	if !ok {
		return
	}

	plan, err := mc.plans.Get(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		// no plan yet for this date; hand back an empty one
		c.JSON(http.StatusOK, gin.H{"mealPlan": models.MealPlan{Date: date, Meals: []models.Meal{}}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}

// POST /api/diet/meal-plan/:date
func (mc *MealPlanController) SaveMealPlan(c *gin.Context) {
	date, ok := parsePlanDate(c)
	if !ok {
		return
	}

	var body struct {
		Meals []services.MealInput `json:"meals"`
		Notes string               `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	plan, warnings, err := mc.plans.Save(userID, date, body.Meals, body.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.hub.Broadcast(userID, "mealplan.saved", plan)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Meal plan saved successfully",
		"mealPlan": plan,
		"warnings": warnings,
	})
}
