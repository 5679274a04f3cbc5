// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsense/internal/http/handlers"
	"tripsense/internal/http/middleware"
)

func NewRouter(planner handlers.TripPlanner) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging())
	r.Use(middleware.Recovery())

	tripHandler := handlers.NewTripHandler(planner)
	r.POST("/api/trips/parse", tripHandler.Parse)
	r.POST("/api/trips/extract", tripHandler.ExtractOnly)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
