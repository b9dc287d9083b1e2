package handlers

import (
	"errors"
	"net/http"

	"food-hub-api/apierrors"
	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account and starts a session. The first account
// ever created becomes admin; everyone after that is a regular user.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.FromBinding(err))
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		middleware.Abort(c, apierrors.BadRequest("Email already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.Abort(c, err)
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	middleware.AttachTokenCookie(c, token)

	publish(c, "user.registered", user.ID, map[string]interface{}{
		"userId": user.ID,
		"email":  user.Email,
		"role":   user.Role,
	})

	c.JSON(http.StatusCreated, gin.H{"user": tokenUser(&user)})
}

// Login verifies credentials and starts a session
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, apierrors.BadRequest("Please provide email and password"))
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		middleware.Abort(c, apierrors.Unauthenticated("Invalid Credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		middleware.Abort(c, apierrors.Unauthenticated("Invalid Credentials"))
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	middleware.AttachTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"user": tokenUser(&user)})
}

// Logout clears the session cookie
func Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"msg": "user logged out"})
}
