package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// CreateFoodDonation stores a food donation. The donor email must belong to a
// registered user; otherwise nothing is persisted.
func CreateFoodDonation(ctx *gin.Context) {
	var donation models.FoodDonation
	if err := ctx.ShouldBindJSON(&donation); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := findUserByEmail(donation.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusBadRequest, "Email is not registered, please sign up", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate donor email", err)
		}
		return
	}

	donation.UserID = int(user.ID)
	donation.IsAccepted = false

	if err := initializers.DB.Create(&donation).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create donation", err)
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

// GetFoodDonations lists donations that have not been claimed yet.
func GetFoodDonations(ctx *gin.Context) {
	donations := []models.FoodDonation{}

	result := initializers.DB.
		Preload("FoodItems").
		Where("is_accepted = ?", false).
		Order("created_at desc").
		Find(&donations)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch donations", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

func GetFoodDonation(ctx *gin.Context) {
	donationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid donation ID", err)
		return
	}

	var donation models.FoodDonation
	result := initializers.DB.Preload("FoodItems").First(&donation, donationId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Donation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve donation", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

// UpdateFoodDonation applies a partial update to a donation.
func UpdateFoodDonation(ctx *gin.Context) {
	donationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid donation ID", err)
		return
	}

	var update models.FoodDonationUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var donation models.FoodDonation
	result := initializers.DB.Preload("FoodItems").First(&donation, donationId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Donation not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve donation", result.Error)
		}
		return
	}

	if update.Name != nil {
		donation.Name = *update.Name
	}
	if update.ContactNumber != nil {
		donation.ContactNumber = *update.ContactNumber
	}
	if update.Address != nil {
		donation.Address = *update.Address
	}
	if update.Latitude != nil {
		donation.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		donation.Longitude = update.Longitude
	}
	if update.LocationCity != nil {
		donation.LocationCity = *update.LocationCity
	}
	if update.LocationState != nil {
		donation.LocationState = *update.LocationState
	}
	if update.AvailableUntil != nil {
		donation.AvailableUntil = update.AvailableUntil
	}
	if update.DonationType != nil {
		donation.DonationType = *update.DonationType
	}
	if update.Price != nil {
		donation.Price = update.Price
	}
	if update.IsAccepted != nil {
		donation.IsAccepted = *update.IsAccepted
	}

	if err := initializers.DB.Save(&donation).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update donation", err)
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

// GetUserDonations lists the donations owned by one user.
func GetUserDonations(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	donations := []models.FoodDonation{}
	result := initializers.DB.
		Preload("FoodItems").
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&donations)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch donations", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, donations)
}
