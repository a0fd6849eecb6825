package routes

import (
	"github.com/ecobites/ecobites-api/controllers"
	"github.com/gin-gonic/gin"
)

func DonorRoutes(server *gin.Engine) {
	donor := server.Group("/api/donor")
	{
		donor.POST("/donorform", controllers.CreateFoodDonation)
		donor.GET("/donorform", controllers.GetFoodDonations)
		donor.GET("/get-donor/:id", controllers.GetFoodDonation)
		donor.PUT("/:id", controllers.UpdateFoodDonation)
		donor.GET("/userdonations/:userId", controllers.GetUserDonations)

		donor.POST("/nfdonorform", controllers.CreateNonFoodDonation)
		donor.GET("/nfdonorform", controllers.GetNonFoodDonations)
		donor.GET("/nfdonorform/:id", controllers.GetNonFoodDonation)

		donor.POST("/request", controllers.CreateRequest)
		donor.GET("/requests/:donorId", controllers.GetRequestsByDonor)
		donor.GET("/user-requests/:userId", controllers.GetRequestsByUser)
		donor.PATCH("/requests/:requestId/status", controllers.UpdateRequestStatus)
	}
}
