package models

import "time"

// MealCategory and MealRestaurant are closed sets, validated at bind time.
type MealCategory string

const (
	CategoryPizza   MealCategory = "pizza"
	CategoryBurgers MealCategory = "burgers"
	CategoryTacos   MealCategory = "tacos"
)

type MealRestaurant string

const (
	RestaurantDominoes   MealRestaurant = "dominoes"
	RestaurantBurgerKing MealRestaurant = "burger king"
	RestaurantTacoBell   MealRestaurant = "taco bell"
)

const DefaultMealImage = "/uploads/example.jpeg"

type Meal struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Price        float64        `json:"price" gorm:"not null;default:0"`
	Description  string         `json:"description" gorm:"not null"`
	Image        string         `json:"image" gorm:"default:'/uploads/example.jpeg'"`
	Category     MealCategory   `json:"category" gorm:"not null"`
	Restaurant   MealRestaurant `json:"restaurant" gorm:"not null"`
	Featured     bool           `json:"featured" gorm:"default:false"`
	FreeShipping bool           `json:"freeShipping" gorm:"default:false"`
	Availability bool           `json:"availability" gorm:"default:true"`

	// AverageRating and NumOfReviews are derived from the review table and
	// written only by ratings.Recompute.
	AverageRating int `json:"averageRating" gorm:"default:0"`
	NumOfReviews  int `json:"numOfReviews" gorm:"default:0"`

	UserID    uint      `json:"user" gorm:"not null"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:MealID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
