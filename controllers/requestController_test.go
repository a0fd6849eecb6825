package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestBody(donorID int) gin.H {
	return gin.H{
		"donorId":       donorID,
		"requesterName": "Ravi",
		"contactNumber": "9000000000",
		"address": gin.H{
			"street":     "2 Side St",
			"city":       "Bengaluru",
			"state":      "Karnataka",
			"postalCode": "560002",
			"country":    "India",
		},
		"description": "Can pick up this evening",
	}
}

func createDonation(t *testing.T, router *gin.Engine, email string) int {
	t.Helper()
	expiry := time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	rec := doJSON(t, router, http.MethodPost, "/api/donor/donorform", foodDonationBody(email, expiry))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int(decodeBody(t, rec)["ID"].(float64))
}

func TestCreateRequest_MissingDonor(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/donor/request", requestBody(9999))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	initializers.DB.Model(&models.PickupRequest{}).Count(&count)
	assert.Zero(t, count, "no request document may be created for a missing donor")
}

func TestCreateRequest_MissingFields(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/donor/request", gin.H{"donorId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequest_CopiesOwner(t *testing.T) {
	router := setupRouter(t)
	userID := signupUser(t, router, "asha", "asha@x.com")
	donorID := createDonation(t, router, "asha@x.com")

	rec := doJSON(t, router, http.MethodPost, "/api/donor/request", requestBody(donorID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody(t, rec)
	assert.Equal(t, float64(userID), created["userId"], "owner id must be copied from the donation")
	assert.Equal(t, models.RequestPending, created["status"])
}

func TestGetRequestsByDonor(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "asha", "asha@x.com")
	donorID := createDonation(t, router, "asha@x.com")

	t.Run("empty list returns 200 with empty array", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/donor/requests/%d", donorID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	rec := doJSON(t, router, http.MethodPost, "/api/donor/request", requestBody(donorID))
	require.Equal(t, http.StatusCreated, rec.Code)

	res := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/donor/requests/%d", donorID), nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Ravi")
}

func TestUpdateRequestStatus(t *testing.T) {
	router := setupRouter(t)
	signupUser(t, router, "asha", "asha@x.com")
	donorID := createDonation(t, router, "asha@x.com")

	rec := doJSON(t, router, http.MethodPost, "/api/donor/request", requestBody(donorID))
	require.Equal(t, http.StatusCreated, rec.Code)
	requestID := int(decodeBody(t, rec)["ID"].(float64))

	statusPath := fmt.Sprintf("/api/donor/requests/%d/status", requestID)

	t.Run("accept", func(t *testing.T) {
		res := doJSON(t, router, http.MethodPatch, statusPath, gin.H{"status": "Accepted"})
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var request models.PickupRequest
		require.NoError(t, initializers.DB.First(&request, requestID).Error)
		assert.Equal(t, models.RequestAccepted, request.Status)

		var donation models.FoodDonation
		require.NoError(t, initializers.DB.First(&donation, donorID).Error)
		assert.True(t, donation.IsAccepted, "accepting a request marks the donation as claimed")
	})

	t.Run("a decided status can be overwritten", func(t *testing.T) {
		res := doJSON(t, router, http.MethodPatch, statusPath, gin.H{"status": "Rejected"})
		require.Equal(t, http.StatusOK, res.Code)

		var request models.PickupRequest
		require.NoError(t, initializers.DB.First(&request, requestID).Error)
		assert.Equal(t, models.RequestRejected, request.Status)
	})

	t.Run("invalid status value", func(t *testing.T) {
		res := doJSON(t, router, http.MethodPatch, statusPath, gin.H{"status": "Maybe"})
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("unknown request id", func(t *testing.T) {
		res := doJSON(t, router, http.MethodPatch, "/api/donor/requests/9999/status", gin.H{"status": "Accepted"})
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
