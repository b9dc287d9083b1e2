package models

import "time"

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Items           []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID"`
	Subtotal        float64     `json:"subtotal" gorm:"not null"`
	Tax             float64     `json:"tax" gorm:"not null"`
	ShippingFee     float64     `json:"shippingFee" gorm:"not null"`
	Total           float64     `json:"total" gorm:"not null"`
	ClientSecret    string      `json:"clientSecret" gorm:"not null"`
	PaymentIntentID string      `json:"paymentIntentId"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	UserID          uint        `json:"user" gorm:"not null"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem snapshots meal name, price and image at order-creation time, so
// later meal edits never alter past orders.
type OrderItem struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	OrderID uint    `json:"order_id" gorm:"not null"`
	MealID  uint    `json:"meal" gorm:"not null"`
	Name    string  `json:"name" gorm:"not null"`
	Price   float64 `json:"price" gorm:"not null"`
	Image   string  `json:"image"`
	Amount  int     `json:"amount" gorm:"not null"`
}
