package routes

import (
	"time"

	"mediflow/handlers"
	"mediflow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot computation endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/slots", h.GetSlotsHandler)

		// Operational endpoints require staff authentication.
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.POST("/refresh", h.RefreshSlotsHandler)
	}
}

// RegisterSystemRoutes registers health and diagnostics endpoints.
func RegisterSystemRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// CORSMiddleware returns the shared CORS policy for the API.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
