package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/models"
	"github.com/ecobites/ecobites-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full route table against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodDonation{},
		&models.FoodItem{},
		&models.NonFoodDonation{},
		&models.NonFoodItem{},
		&models.PickupRequest{},
	))
	initializers.DB = db

	router := gin.New()
	routes.AuthRoutes(router)
	routes.DonorRoutes(router)
	routes.ListingRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// signupUser registers a user through the API and returns their id.
func signupUser(t *testing.T, router *gin.Engine, username, email string) uint {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, initializers.DB.Where("email = ?", email).First(&user).Error)
	return user.ID
}

func foodDonationBody(email string, expiry string) gin.H {
	return gin.H{
		"name":          "Asha",
		"email":         email,
		"contactNumber": "9876543210",
		"address": gin.H{
			"street":     "1 Main St",
			"city":       "Bengaluru",
			"state":      "Karnataka",
			"postalCode": "560001",
			"country":    "India",
		},
		"donationType": "free",
		"foodItems": []gin.H{
			{
				"type":       "Fruits",
				"name":       "Bananas",
				"quantity":   "2",
				"unit":       "kg",
				"expiryDate": expiry,
			},
		},
	}
}
