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

// CreateNonFoodDonation stores a non-food donation. Unlike the food form,
// coordinates are mandatory and ownership is captured by user id.
func CreateNonFoodDonation(ctx *gin.Context) {
	var donation models.NonFoodDonation
	if err := ctx.ShouldBindJSON(&donation); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, donation.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusBadRequest, "User is not registered, please sign up", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate user", err)
		}
		return
	}

	if err := initializers.DB.Create(&donation).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create donation", err)
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

func GetNonFoodDonations(ctx *gin.Context) {
	donations := []models.NonFoodDonation{}

	result := initializers.DB.
		Preload("NonFoodItems").
		Order("created_at desc").
		Find(&donations)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch donations", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

func GetNonFoodDonation(ctx *gin.Context) {
	donationId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid donation ID", err)
		return
	}

	var donation models.NonFoodDonation
	result := initializers.DB.Preload("NonFoodItems").First(&donation, donationId)
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
