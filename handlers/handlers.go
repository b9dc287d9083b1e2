package handlers

import (
	"fmt"

	"food-hub-api/events"
	"food-hub-api/middleware"
	"food-hub-api/models"
	"food-hub-api/payments"

	"github.com/gin-gonic/gin"
)

// Payments is the payment-intent collaborator, swappable in tests
var Payments payments.Client = payments.FakeStripe{}

// Events publishes domain events; nil disables publishing
var Events *events.Producer

func publish(c *gin.Context, eventType string, key uint, payload map[string]interface{}) {
	Events.Publish(c.Request.Context(), eventType, fmt.Sprint(key), payload)
}

// tokenUser is the public identity shape carried in the session token and
// echoed by the auth and user endpoints.
func tokenUser(user *models.User) gin.H {
	return gin.H{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Role,
	}
}

func currentTokenUser(c *gin.Context) gin.H {
	return gin.H{
		"userId": middleware.GetUserID(c),
		"name":   middleware.GetUserName(c),
		"role":   middleware.GetRole(c),
	}
}
