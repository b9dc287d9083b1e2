package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-hub-api/config"
	"food-hub-api/middleware"
	"food-hub-api/models"
	"food-hub-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	))
	config.DB = db
	config.JWTSecret = []byte("test_secret")

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// register creates an account and returns its session cookies. The first
// account registered on a fresh router is the admin.
func register(t *testing.T, r *gin.Engine, name, email string) []*http.Cookie {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return rec.Result().Cookies()
}

// createMeal posts a meal as admin and returns its id
func createMeal(t *testing.T, r *gin.Engine, admin []*http.Cookie, name string, price float64) uint {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/v1/meals", map[string]interface{}{
		"name":        name,
		"price":       price,
		"description": "a test meal",
		"category":    "pizza",
		"restaurant":  "dominoes",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	meal := parseBody(t, rec)["meal"].(map[string]interface{})
	return uint(meal["id"].(float64))
}

func mealPath(id uint) string {
	return fmt.Sprintf("/api/v1/meals/%d", id)
}
