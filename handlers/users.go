package handlers

import (
	"fmt"
	"net/http"

	"food-hub-api/apierrors"
	"food-hub-api/authz"
	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers lists all regular-role accounts — admin only
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role = ?", models.RoleUser).Find(&users).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetSingleUser fetches one user record; owner or admin only
func GetSingleUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		middleware.Abort(c, apierrors.NotFound(fmt.Sprintf("No user with id : %s", c.Param("id"))))
		return
	}
	if err := authz.CheckPermissions(middleware.GetActor(c), user.ID); err != nil {
		middleware.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ShowCurrentUser echoes the identity from the session token
func ShowCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentTokenUser(c)})
}

type UpdateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UpdateUser changes the caller's name and email and re-issues the session
// cookie so the token reflects the new name.
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Name == "" {
		middleware.Abort(c, apierrors.BadRequest("Please provide all values"))
		return
	}

	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	user.Email = req.Email
	user.Name = req.Name
	if err := config.DB.Save(&user).Error; err != nil {
		middleware.Abort(c, err)
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

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateUserPassword verifies the old password before storing the new one
func UpdateUserPassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		middleware.Abort(c, apierrors.BadRequest("Please provide both values"))
		return
	}

	var user models.User
	if err := config.DB.First(&user, middleware.GetUserID(c)).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		middleware.Abort(c, apierrors.Unauthenticated("Invalid Credentials"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	user.PasswordHash = string(hash)
	if err := config.DB.Save(&user).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Success! Password updated."})
}
