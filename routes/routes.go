package routes

import (
	"net/http"
	"time"

	"coden/handlers"
	"coden/middleware"
	"coden/models"
	"coden/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.GET("/verify", hb.Auth.Verify)
	}
}

// RegisterAreaRoutes registers area lookup endpoints.
func RegisterAreaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/areas")
	{
		api.GET("", hb.Area.List)
		api.GET("/:id", hb.Area.Get)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Customer
// facing operations are public; on-site transitions require a staff session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.Create)
		api.GET("/:id", hb.Booking.Get)
		api.POST("/:id/confirm-payment", hb.Booking.ConfirmPayment)

		staff := api.Group("")
		staff.Use(middleware.SessionAuth(hb.Sessions))
		staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleStaff))
		staff.GET("", hb.Booking.List)
		staff.POST("/:id/invoice", hb.Booking.IssueInvoice)
		staff.POST("/:id/pay", hb.Booking.Pay)
		staff.POST("/:id/check-in", hb.Booking.CheckIn)
		staff.POST("/:id/network", hb.Booking.GrantNetwork)
		staff.DELETE("/:id/network", hb.Booking.RevokeNetwork)
		staff.POST("/:id/complete", hb.Booking.Complete)
		staff.POST("/:id/cancel", hb.Booking.Cancel)
		staff.GET("/:id/usage", hb.Booking.Usage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAreaRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
