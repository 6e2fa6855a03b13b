package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/controllers"
	"github.com/tablebook/tablebook/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())
	r.Use(middlewares.SubdomainTenant(db))

	availabilityCtrl := controllers.NewAvailabilityController(db)
	reservationCtrl := controllers.NewReservationController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      GUEST API
	// ----------------------------------------------------------------
	api := r.Group("/api")
	{
		api.GET("/availability", availabilityCtrl.GetAvailability)

		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations/:reservation_id", reservationCtrl.GetReservation)
		api.GET("/reservations/code/:code", reservationCtrl.GetReservationByCode)
		api.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)

		api.GET("/restaurants/:subdomain", restaurantCtrl.GetBySubdomain)
		api.GET("/restaurant", restaurantCtrl.GetCurrentTenant) // tenant via Host subdomain
	}

	// ----------------------------------------------------------------
	//                      ADMIN PROVISIONING
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.NewStrictRateLimiter())
	{
		admin.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
		admin.POST("/restaurants", restaurantCtrl.CreateRestaurant)
		admin.POST("/restaurants/:restaurant_id/tables", restaurantCtrl.CreateTable)
	}

	return r
}
