package routes

import (
	"github.com/ecobites/ecobites-api/controllers"
	"github.com/gin-gonic/gin"
)

func ListingRoutes(server *gin.Engine) {
	server.GET("/api/listings", controllers.GetListings)
}
