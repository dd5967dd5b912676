package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllowedHeaders is the request header set the frontends may send.
// Browsers do not treat "*" as a wildcard on credentialed requests, so the list is explicit.
var AllowedHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Language", "Authorization", "X-Requested-With", RequestIDHeader}

// CORS lets the listed frontends call the API with credentials and any method
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
