package routes

import (
	"food-hub-api/handlers"
	"food-hub-api/middleware"
	"food-hub-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// ── Auth ───────────────────────────────────────────────────────
	auth := v1.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/logout", handlers.Logout)
	}

	// ── Users ──────────────────────────────────────────────────────
	users := v1.Group("/users")
	users.Use(middleware.AuthRequired())
	{
		users.GET("", middleware.RoleRequired(models.RoleAdmin), handlers.GetAllUsers)
		users.GET("/showMe", handlers.ShowCurrentUser)
		users.PATCH("/updateUser", handlers.UpdateUser)
		users.PATCH("/updatePassword", handlers.UpdateUserPassword)
		users.GET("/:id", handlers.GetSingleUser)
	}

	// ── Meals ──────────────────────────────────────────────────────
	meals := v1.Group("/meals")
	{
		meals.GET("", handlers.GetAllMeals)
		meals.POST("", middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), handlers.CreateMeal)
		meals.POST("/uploadImage", middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), handlers.UploadImage)
		meals.GET("/:id", handlers.GetSingleMeal)
		meals.PATCH("/:id", middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), handlers.UpdateMeal)
		meals.DELETE("/:id", middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin), handlers.DeleteMeal)
		meals.GET("/:id/reviews", handlers.GetSingleMealReviews)
	}

	// ── Reviews ────────────────────────────────────────────────────
	reviews := v1.Group("/reviews")
	reviews.Use(middleware.AuthRequired())
	{
		reviews.POST("", handlers.CreateReview)
		reviews.GET("", handlers.GetAllReviews)
		reviews.GET("/:id", handlers.GetSingleReview)
		reviews.PATCH("/:id", handlers.UpdateReview)
		reviews.DELETE("/:id", handlers.DeleteReview)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.POST("", handlers.CreateOrder)
		orders.GET("", middleware.RoleRequired(models.RoleAdmin), handlers.GetAllOrders)
		orders.GET("/showMe", handlers.GetCurrentUserOrders)
		orders.GET("/:id", handlers.GetSingleOrder)
		orders.PATCH("/:id", handlers.UpdateOrder)
	}
}
