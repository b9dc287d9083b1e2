package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"food-hub-api/apierrors"
	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	uploadsDir   = "public/uploads"
	maxImageSize = 1024 * 1024 // 1MB
)

type CreateMealRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Price        float64 `json:"price" binding:"gte=0"`
	Description  string  `json:"description" binding:"required,max=1000"`
	Image        string  `json:"image"`
	Category     string  `json:"category" binding:"required,oneof=pizza burgers tacos"`
	Restaurant   string  `json:"restaurant" binding:"required,oneof=dominoes 'burger king' 'taco bell'"`
	Featured     bool    `json:"featured"`
	FreeShipping bool    `json:"freeShipping"`
	Availability *bool   `json:"availability"`
}

// CreateMeal adds a meal to the catalog — admin only
func CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	image := req.Image
	if image == "" {
		image = models.DefaultMealImage
	}
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	meal := models.Meal{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Image:        image,
		Category:     models.MealCategory(req.Category),
		Restaurant:   models.MealRestaurant(req.Restaurant),
		Featured:     req.Featured,
		FreeShipping: req.FreeShipping,
		Availability: availability,
		UserID:       middleware.GetUserID(c),
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// GetAllMeals lists the whole catalog (public)
func GetAllMeals(c *gin.Context) {
	var meals []models.Meal
	if err := config.DB.Find(&meals).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}

// GetSingleMeal returns one meal with its reviews (public)
func GetSingleMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.Preload("Reviews").First(&meal, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No meal with id: %s", c.Param("id"))))
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

type UpdateMealRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=100"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Description  *string  `json:"description" binding:"omitempty,max=1000"`
	Image        *string  `json:"image"`
	Category     *string  `json:"category" binding:"omitempty,oneof=pizza burgers tacos"`
	Restaurant   *string  `json:"restaurant" binding:"omitempty,oneof=dominoes 'burger king' 'taco bell'"`
	Featured     *bool    `json:"featured"`
	FreeShipping *bool    `json:"freeShipping"`
	Availability *bool    `json:"availability"`
}

// UpdateMeal applies a partial update — admin only. Absent fields are left
// untouched; present ones go through the same validation as on create. The
// derived rating fields are owned by the aggregator and can not be set here.
func UpdateMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No meal with id: %s", c.Param("id"))))
		return
	}

	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Image != nil {
		update["image"] = *req.Image
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Restaurant != nil {
		update["restaurant"] = *req.Restaurant
	}
	if req.Featured != nil {
		update["featured"] = *req.Featured
	}
	if req.FreeShipping != nil {
		update["free_shipping"] = *req.FreeShipping
	}
	if req.Availability != nil {
		update["availability"] = *req.Availability
	}
	if err := config.DB.Model(&meal).Updates(update).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// DeleteMeal removes a meal and, as an explicit step, every review that
// references it — admin only.
func DeleteMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.First(&meal, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No meal with id: %s", c.Param("id"))))
		return
	}

	if err := config.DB.Where("meal_id = ?", meal.ID).Delete(&models.Review{}).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	if err := config.DB.Delete(&meal).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Success! The meal has been removed."})
}

// UploadImage accepts a single image file of at most 1MB and stores it under
// the public uploads path — admin only.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		middleware.Abort(c, apierrors.BadRequest("No file uploaded"))
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image") {
		middleware.Abort(c, apierrors.BadRequest("Please upload image"))
		return
	}
	if file.Size > maxImageSize {
		middleware.Abort(c, apierrors.BadRequest("Please upload image smaller than 1MB"))
		return
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		middleware.Abort(c, err)
		return
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadsDir, name)); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": "/uploads/" + name})
}
