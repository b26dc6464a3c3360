package routes

import (
	"net/http"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/controllers"
	"github.com/UJJWAL-7777/Diet-Manager/middlewares"
	"github.com/UJJWAL-7777/Diet-Manager/pkg/logger"
	"github.com/UJJWAL-7777/Diet-Manager/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.Default()

	rek, err := services.NewRekognitionService(cfg.AWS.Region)
	if err != nil {
		log.Warnw("photo recognition disabled", "error", err)
		rek = nil
	}
	foodSvc := services.NewFoodService(log, rek,
		services.NewUSDAService(cfg.USDA.APIKey),
		services.NewEdamamService(cfg.Edamam.AppID, cfg.Edamam.AppKey),
	)

	hub := services.NewHub()
	planSvc := services.NewMealPlanService()
	progressSvc := services.NewProgressService()

	authCtl := controllers.NewAuthController(cfg)
	foodCtl := controllers.NewFoodController(foodSvc)
	planCtl := controllers.NewMealPlanController(planSvc, hub)
	progressCtl := controllers.NewProgressController(progressSvc, hub)
	dashCtl := controllers.NewDashboardController(planSvc, progressSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!", "timestamp": time.Now().UTC()})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.PUT("/reset-password/:token", authCtl.ResetPassword)
	}

	diet := r.Group("/api/diet")
	diet.Use(middlewares.AuthMiddleware())
	{
		diet.POST("/profile", controllers.SaveProfile)
		diet.GET("/profile", controllers.GetProfile)

		diet.GET("/foods", foodCtl.ListFoods)
		diet.GET("/foods/search", foodCtl.SearchFoods)
		diet.POST("/foods", foodCtl.CreateFood)
		diet.POST("/foods/recognize", foodCtl.RecognizeFood)

		diet.GET("/meal-plan/:date", planCtl.GetMealPlan)
		diet.POST("/meal-plan/:date", planCtl.SaveMealPlan)

		diet.POST("/progress", progressCtl.RecordProgress)
		diet.GET("/progress", progressCtl.ListProgress)

		diet.GET("/dashboard", dashCtl.Dashboard)
		diet.GET("/ws", rtCtl.EventsWS)
	}

	return r
}
