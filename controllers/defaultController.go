package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Ecobites API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/signup" - Create user account
- POST "/api/auth/signin" - Access user account
- PUT "/api/auth/update" - Update profile (auth required)
- GET "/api/auth/user" - Get current user (auth required)

DONATIONS
- POST "/api/donor/donorform" - Create a food donation
- GET "/api/donor/donorform" - List available food donations
- GET "/api/donor/get-donor/{id}" - Get food donation by ID
- PUT "/api/donor/{id}" - Update a food donation
- GET "/api/donor/userdonations/{userId}" - Donations owned by a user
- POST "/api/donor/nfdonorform" - Create a non-food donation
- GET "/api/donor/nfdonorform" - List non-food donations
- GET "/api/donor/nfdonorform/{id}" - Get non-food donation by ID

REQUESTS
- POST "/api/donor/request" - Submit a pickup request
- GET "/api/donor/requests/{donorId}" - Requests against one donation
- GET "/api/donor/user-requests/{userId}" - Requests addressed to a user
- PATCH "/api/donor/requests/{requestId}/status" - Accept or reject a request

LISTINGS
- GET "/api/listings?kind=food|nonfood&lat=&lng=&sort=distance|expiry" - Ranked availability feed`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
