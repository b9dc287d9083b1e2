package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-hub-api/apierrors"
	"food-hub-api/authz"
	"food-hub-api/config"
	"food-hub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenCookie = "token"

type Claims struct {
	UserID uint            `json:"userId"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the user's id, name and role
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AttachTokenCookie stores the JWT in an http-only session cookie
func AttachTokenCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie overwrites the session cookie with an expired value
func ClearTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     tokenCookie,
		Value:    "logout",
		Path:     "/",
		Expires:  time.Now(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// AuthRequired validates the session token and injects the claims into the
// request context. The token is read from the cookie, with an Authorization
// header fallback for non-browser clients.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if cookie, err := c.Cookie(tokenCookie); err == nil {
			tokenStr = cookie
		} else if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenStr == "" {
			Abort(c, apierrors.Unauthenticated("Authentication Invalid"))
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			Abort(c, apierrors.Unauthenticated("Authentication Invalid"))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := GetRole(c)
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		Abort(c, apierrors.Unauthorized("Unauthorized to access this route"))
	}
}

// GetUserID extracts the caller's user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	id, _ := val.(uint)
	return id
}

// GetUserName extracts the caller's name from context
func GetUserName(c *gin.Context) string {
	val, _ := c.Get("name")
	name, _ := val.(string)
	return name
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get("role")
	role, _ := val.(string)
	return models.UserRole(role)
}

// GetActor builds the authz identity for the current request
func GetActor(c *gin.Context) authz.Actor {
	return authz.Actor{ID: GetUserID(c), Role: GetRole(c)}
}
