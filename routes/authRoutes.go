package routes

import (
	"github.com/ecobites/ecobites-api/controllers"
	"github.com/ecobites/ecobites-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/signin", controllers.Signin)
		auth.PUT("/update", middlewares.RequireAuth(), controllers.UpdateProfile)
		auth.GET("/user", middlewares.RequireAuth(), controllers.GetCurrentUser)
	}
}
