package api

import (
	"freelance_board/internal/db"         // Persistence layer
	"freelance_board/internal/middleware" // Request id key
	"freelance_board/internal/utils"      // Cache helpers
	"net/http"                            // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserHandler registers a freelancer or employer
func CreateUserHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user := req.toModel()
		// Single insert; the generated ID comes back on the model
		if err := store.CreateUser(c.Request.Context(), &user); err != nil {
			abortWithStorageError(c, "create_user", err)
			return
		}
		cache.Invalidate(c.Request.Context(), utils.UsersCacheKey) // Next list goes to the database
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"user_id":    user.ID,
			"user_type":  user.UserType,
		}).Info("User created")
		c.JSON(http.StatusOK, newUserResponse(user))
	}
}

// ListUsersHandler returns every registered user
func ListUsersHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []UserResponse
		if cache.Get(ctx, utils.UsersCacheKey, &cached) { // Serve from cache when present
			c.JSON(http.StatusOK, cached)
			return
		}
		users, err := store.ListUsers(ctx)
		if err != nil {
			abortWithStorageError(c, "list_users", err)
			return
		}
		resp := make([]UserResponse, len(users))
		for i, u := range users {
			resp[i] = newUserResponse(u)
		}
		cache.Set(ctx, utils.UsersCacheKey, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// GetUserByWalletHandler finds the user registered with a wallet address
func GetUserByWalletHandler(store *db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.GetUserByWallet(c.Request.Context(), c.Param("wallet_address"))
		if err != nil {
			abortWithStorageError(c, "get_user_by_wallet", err)
			return
		}
		c.JSON(http.StatusOK, newUserResponse(*user))
	}
}
