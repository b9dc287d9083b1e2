package models

import "time"

// Review holds a single user's rating of a meal. The composite unique index
// enforces at most one review per (meal, user) pair.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	UserID    uint      `json:"user" gorm:"not null;uniqueIndex:idx_reviews_meal_user"`
	User      *User     `json:"userInfo,omitempty" gorm:"foreignKey:UserID"`
	MealID    uint      `json:"meal" gorm:"not null;uniqueIndex:idx_reviews_meal_user"`
	Meal      *Meal     `json:"mealInfo,omitempty" gorm:"foreignKey:MealID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
