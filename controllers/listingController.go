package controllers

import (
	"net/http"
	"strconv"

	"github.com/ecobites/ecobites-api/geocode"
	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/listings"
	"github.com/ecobites/ecobites-api/models"
	"github.com/gin-gonic/gin"
)

// ranker resolves missing donation coordinates through Nominatim.
var ranker = listings.NewRanker(geocode.NewClient(), initializers.Log)

// GetListings serves the ranked availability feed. Without requester
// coordinates the feed is still returned, unranked by distance, with
// locationError flagged so the client can say why.
func GetListings(ctx *gin.Context) {
	kind := ctx.DefaultQuery("kind", "food")

	sortKey := listings.SortKey(ctx.Query("sort"))
	if sortKey != "" && sortKey != listings.SortDistance && sortKey != listings.SortExpiry {
		respondWithError(ctx, http.StatusBadRequest, "sort must be distance or expiry", nil)
		return
	}

	var requester *geocode.Coordinates
	locationError := false
	latStr, lngStr := ctx.Query("lat"), ctx.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid coordinates", nil)
			return
		}
		requester = &geocode.Coordinates{Latitude: lat, Longitude: lng}
	} else {
		locationError = true
	}

	opts := listings.Options{Requester: requester, SortKey: sortKey}

	switch kind {
	case "food":
		donations := []models.FoodDonation{}
		result := initializers.DB.
			Preload("FoodItems").
			Where("is_accepted = ?", false).
			Find(&donations)
		if result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch donations", result.Error)
			return
		}

		ranked, err := ranker.RankFood(ctx.Request.Context(), donations, opts)
		if err != nil {
			initializers.Log.WithError(err).Warn("Some food listings could not be ranked")
		}
		ctx.JSON(http.StatusOK, gin.H{"listings": ranked, "locationError": locationError})

	case "nonfood":
		donations := []models.NonFoodDonation{}
		result := initializers.DB.
			Preload("NonFoodItems").
			Order("created_at desc").
			Find(&donations)
		if result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch donations", result.Error)
			return
		}

		ranked := ranker.RankNonFood(donations, opts)
		ctx.JSON(http.StatusOK, gin.H{"listings": ranked, "locationError": locationError})

	default:
		respondWithError(ctx, http.StatusBadRequest, "kind must be food or nonfood", nil)
	}
}
