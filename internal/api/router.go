package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. The auth middleware is passed in so the
// caller decides the provider; tests use a stub.
func NewRouter(app App, authMiddleware gin.HandlerFunc, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	if len(allowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
		}))
	}

	api := router.Group("/api")
	api.Use(authMiddleware)
	{
		api.GET("/profile", GetProfile(app))
		api.PUT("/profile", UpdateProfile(app))
		api.GET("/vitals", GetVitals(app))
		api.POST("/vitals", PostVitals(app))
		api.GET("/risk", GetRisk(app))
		api.POST("/report", PostReport(app))

		api.GET("/doctors", GetDoctors(app))
		api.POST("/appointments", PostAppointment(app))
		api.GET("/appointments", GetAppointments(app))

		api.GET("/beds/:category", GetBedAvailability(app))
		api.POST("/beds/book", PostBedBooking(app))

		api.GET("/search", GetSearch(app))
	}
	return router
}
