package ratings

import (
	"log/slog"
	"math"

	"food-hub-api/models"

	"gorm.io/gorm"
)

// Recompute recalculates a meal's averageRating and numOfReviews from the
// review table and writes them back onto the meal. The stored average is the
// ceiling of the arithmetic mean, an integer "stars" value. With no reviews
// both fields reset to zero.
//
// This is best-effort denormalization: failures are logged and swallowed so
// the triggering review write never rolls back. Concurrent reviews on the
// same meal can race the scan-then-write and leave a stale aggregate.
func Recompute(db *gorm.DB, mealID uint) {
	var agg struct {
		Average float64
		Count   int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("meal_id = ?", mealID).
		Scan(&agg).Error
	if err != nil {
		slog.Error("rating recompute scan failed", "meal_id", mealID, "error", err)
		return
	}

	err = db.Model(&models.Meal{}).
		Where("id = ?", mealID).
		Updates(map[string]interface{}{
			"average_rating": int(math.Ceil(agg.Average)),
			"num_of_reviews": agg.Count,
		}).Error
	if err != nil {
		slog.Error("rating recompute write failed", "meal_id", mealID, "error", err)
	}
}
