package main

import (
	"context"                         // context package is needed for Redis operations
	"errors"                          // Shutdown error check
	"freelance_board/internal/api"    // Custom package for API handlers
	"freelance_board/internal/config" // Custom package for configuration
	"freelance_board/internal/db"     // Custom package for persistence
	"freelance_board/internal/utils"  // Cache helpers
	"net/http"                        // HTTP server
	"os"                              // Process signals
	"os/signal"                       // Signal notification
	"syscall"                         // SIGTERM
	"time"                            // Shutdown grace period

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	// Connect to the database
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Table creation normally runs through cmd/migrate; this is a development shortcut
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
	}

	// Setup Redis client when a cache is configured
	var cache *utils.ListCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection; the cache is optional so a failure only disables it
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.WithField("error", err.Error()).Warn("Redis unreachable, list cache disabled")
			_ = redisClient.Close()
		} else {
			cache = utils.NewListCache(redisClient, cfg.CacheTTL)
			defer redisClient.Close()
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Store:         db.NewStore(gdb),
		Cache:         cache,
		CORSOrigins:   cfg.CORSOrigins,
		DBPingTimeout: cfg.DBPingTimeout,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// setupLogger picks the formatter and level from config
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
