package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"food-hub-api/apierrors"
	"food-hub-api/authz"
	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"
	"food-hub-api/ratings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,max=100"`
	Comment string `json:"comment" binding:"required"`
	Meal    uint   `json:"meal" binding:"required"`
}

// CreateReview records a rating for a meal. A user gets one review per meal;
// a second attempt is rejected before the unique index even sees it.
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	var meal models.Meal
	if err := config.DB.First(&meal, req.Meal).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No meal with id: %d", req.Meal)))
		return
	}

	userID := middleware.GetUserID(c)
	var existing models.Review
	err := config.DB.Where("meal_id = ? AND user_id = ?", req.Meal, userID).First(&existing).Error
	if err == nil {
		middleware.Abort(c, apierrors.BadRequest("You have already submitted a review for this meal"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Abort(c, err)
		return
	}

	review := models.Review{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
		UserID:  userID,
		MealID:  req.Meal,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	ratings.Recompute(config.DB, review.MealID)
	publish(c, "review.created", review.ID, map[string]interface{}{
		"reviewId": review.ID,
		"mealId":   review.MealID,
		"userId":   review.UserID,
		"rating":   review.Rating,
	})

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// GetAllReviews lists every review with its meal and reviewer populated
func GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	err := config.DB.
		Preload("Meal", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "price", "restaurant")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&reviews).Error
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

// GetSingleReview returns one review with its meal and reviewer populated
func GetSingleReview(c *gin.Context) {
	var review models.Review
	err := config.DB.
		Preload("Meal", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "price", "restaurant")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		First(&review, c.Param("id")).Error
	if err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No review with id %s", c.Param("id"))))
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,max=100"`
	Comment string `json:"comment" binding:"required"`
}

// UpdateReview overwrites a review's rating, title and comment; owner or
// admin only.
func UpdateReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No review with id %s", c.Param("id"))))
		return
	}
	if err := authz.CheckPermissions(middleware.GetActor(c), review.UserID); err != nil {
		middleware.Abort(c, err)
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	review.Rating = req.Rating
	review.Title = req.Title
	review.Comment = req.Comment
	if err := config.DB.Save(&review).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	ratings.Recompute(config.DB, review.MealID)

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DeleteReview removes a review; owner or admin only
func DeleteReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No review with id %s", c.Param("id"))))
		return
	}
	if err := authz.CheckPermissions(middleware.GetActor(c), review.UserID); err != nil {
		middleware.Abort(c, err)
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	ratings.Recompute(config.DB, review.MealID)
	publish(c, "review.deleted", review.ID, map[string]interface{}{
		"reviewId": review.ID,
		"mealId":   review.MealID,
	})

	c.JSON(http.StatusOK, gin.H{"msg": "Success, review has been deleted"})
}

// GetSingleMealReviews lists every review for one meal (public)
func GetSingleMealReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Where("meal_id = ?", c.Param("id")).Find(&reviews).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}
