package api

import (
	"context"                     // Ping timeout
	"freelance_board/internal/db" // Persistence layer
	"net/http"                    // HTTP status codes
	"time"                        // Durations

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RootMessage is returned by GET /
const RootMessage = "Freelance board backend is up!"

// RootHandler answers GET / with a greeting
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": RootMessage})
	}
}

// HealthHandler reports process liveness; it never touches storage
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// DBHealthHandler pings storage and reports the outcome as db_ok instead of failing
func DBHealthHandler(store *db.Store, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout) // Bound the ping
		defer cancel()
		ok := true
		if err := store.Ping(ctx); err != nil {
			ok = false
			logrus.WithField("error", err.Error()).Warn("Database ping failed")
		}
		c.JSON(http.StatusOK, gin.H{"db_ok": ok})
	}
}
