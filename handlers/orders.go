package handlers

import (
	"fmt"
	"net/http"

	"food-hub-api/apierrors"
	"food-hub-api/authz"
	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"
	"food-hub-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Items []struct {
		Meal   uint `json:"meal"`
		Amount int  `json:"amount" binding:"min=1"`
	} `json:"items" binding:"dive"`
	Tax         float64 `json:"tax"`
	ShippingFee float64 `json:"shippingFee"`
}

// CreateOrder prices the submitted cart, obtains a payment intent, and
// persists a pending order. Line items snapshot the meal's name, price and
// image so later catalog edits never change this order.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	if len(req.Items) < 1 {
		middleware.Abort(c, apierrors.BadRequest("There are no items in the cart"))
		return
	}
	// A zero tax or shipping fee is indistinguishable from a missing one and
	// is rejected the same way.
	if req.Tax == 0 || req.ShippingFee == 0 {
		middleware.Abort(c, apierrors.BadRequest("Please include tax and shipping fee"))
		return
	}

	var orderItems []models.OrderItem
	var subtotal float64
	for _, item := range req.Items {
		var meal models.Meal
		if err := config.DB.First(&meal, item.Meal).Error; err != nil {
			middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No meal with id: %d", item.Meal)))
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			MealID: meal.ID,
			Name:   meal.Name,
			Price:  meal.Price,
			Image:  meal.Image,
			Amount: item.Amount,
		})
		subtotal += float64(item.Amount) * meal.Price
	}
	total := req.Tax + req.ShippingFee + subtotal

	intent, err := Payments.CreateIntent(c.Request.Context(), total, "usd")
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	order := models.Order{
		Items:        orderItems,
		Subtotal:     subtotal,
		Tax:          req.Tax,
		ShippingFee:  req.ShippingFee,
		Total:        total,
		ClientSecret: intent.ClientSecret,
		Status:       models.StatusPending,
		UserID:       middleware.GetUserID(c),
	}
	if err := config.DB.Create(&order).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	publish(c, "order.created", order.ID, map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"total":   order.Total,
	})

	c.JSON(http.StatusCreated, gin.H{"order": order, "clientSecret": order.ClientSecret})
}

// GetAllOrders lists every order — admin only
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").Find(&orders).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

// GetSingleOrder fetches one order; owner or admin only
func GetSingleOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No order with id : %s", c.Param("id"))))
		return
	}
	if err := authz.CheckPermissions(middleware.GetActor(c), order.UserID); err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetCurrentUserOrders lists the caller's own orders
func GetCurrentUserOrders(c *gin.Context) {
	var orders []models.Order
	err := config.DB.Preload("Items").
		Where("user_id = ?", middleware.GetUserID(c)).
		Find(&orders).Error
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

type UpdateOrderRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// UpdateOrder marks an order paid, storing the supplied payment intent id
// verbatim; owner or admin only. The id is not checked against the stored
// client secret.
func UpdateOrder(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No order with id : %s", c.Param("id"))))
		return
	}
	if err := authz.CheckPermissions(middleware.GetActor(c), order.UserID); err != nil {
		middleware.Abort(c, err)
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusPaid); err != nil {
		middleware.Abort(c, err)
		return
	}

	update := map[string]interface{}{
		"payment_intent_id": req.PaymentIntentID,
		"status":            models.StatusPaid,
	}
	if err := config.DB.Model(&order).Updates(update).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	order.PaymentIntentID = req.PaymentIntentID
	order.Status = models.StatusPaid

	publish(c, "order.paid", order.ID, map[string]interface{}{
		"orderId":         order.ID,
		"paymentIntentId": order.PaymentIntentID,
	})

	c.JSON(http.StatusOK, gin.H{"order": order})
}
