package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/models"
	"github.com/ecobites/ecobites-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest records a pickup request against a food donation. The target
// donation must exist; its owner id is copied onto the request so the owner
// can list everything addressed to them.
func CreateRequest(ctx *gin.Context) {
	var request models.PickupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var donation models.FoodDonation
	if err := initializers.DB.First(&donation, request.DonorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Donor not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate donor", err)
		}
		return
	}

	request.UserID = donation.UserID
	request.Status = models.RequestPending

	if err := initializers.DB.Create(&request).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create request", err)
		return
	}

	// Delivery is best-effort; the request stands either way.
	message := fmt.Sprintf("Ecobites: %s requested a pickup of your donation \"%s\". Log in to accept or reject it.", request.RequesterName, donation.Name)
	if err := utils.SendSMS(donation.ContactNumber, message); err != nil {
		initializers.Log.WithError(err).Warn("Failed to notify donor by SMS")
	}

	ctx.JSON(http.StatusCreated, request)
}

// GetRequestsByDonor lists the requests submitted against one donation.
func GetRequestsByDonor(ctx *gin.Context) {
	donorId, err := strconv.Atoi(ctx.Param("donorId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid donor ID", err)
		return
	}

	requests := []models.PickupRequest{}
	result := initializers.DB.
		Where("donor_id = ?", donorId).
		Order("created_at desc").
		Find(&requests)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch requests", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// GetRequestsByUser lists every request addressed to donations a user owns.
func GetRequestsByUser(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	requests := []models.PickupRequest{}
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&requests)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch requests", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// UpdateRequestStatus sets a request to Accepted or Rejected. Accepting also
// marks the parent donation as claimed so the availability feed stops
// advertising it. A decided status can still be overwritten by a later call.
func UpdateRequestStatus(ctx *gin.Context) {
	requestId, err := strconv.Atoi(ctx.Param("requestId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request ID", err)
		return
	}

	var statusData models.RequestStatusUpdate
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Status must be Accepted or Rejected", err)
		return
	}

	var request models.PickupRequest
	if err := initializers.DB.First(&request, requestId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Request not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve request", err)
		}
		return
	}

	if result := initializers.DB.Model(&request).Update("status", statusData.Status); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update request status", result.Error)
		return
	}

	if statusData.Status == models.RequestAccepted {
		if result := initializers.DB.Model(&models.FoodDonation{}).
			Where("id = ?", request.DonorID).
			Update("is_accepted", true); result.Error != nil {
			initializers.Log.WithError(result.Error).Error("Failed to mark donation as claimed")
		}
	}

	message := fmt.Sprintf("Ecobites: your pickup request has been %s.", statusData.Status)
	if err := utils.SendSMS(request.ContactNumber, message); err != nil {
		initializers.Log.WithError(err).Warn("Failed to notify requester by SMS")
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Request status updated successfully."})
}
