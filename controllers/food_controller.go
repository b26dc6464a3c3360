package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /api/diet/foods?search=&category=&page=&limit=
func (fc *FoodController) ListFoods(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	foods, totalPages, err := services.ListPublicFoods(services.FoodListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foods":       foods,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// GET /api/diet/foods/search?query=apple
func (fc *FoodController) SearchFoods(c *gin.Context) {
	results, err := fc.foods.SearchFoods(c.Query("query"))
	if errors.Is(err, services.ErrQueryTooShort) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// POST /api/diet/foods
func (fc *FoodController) CreateFood(c *gin.Context) {
	var input services.CustomFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.CreateCustomFood(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Food created successfully", "food": food})
}

// POST /api/diet/foods/recognize  { "imageBase64": "data:image/jpeg;base64,..." }
func (fc *FoodController) RecognizeFood(c *gin.Context) {
	var input struct {
		ImageBase64 string `json:"imageBase64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	results, err := fc.foods.RecognizeAndSearch(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
