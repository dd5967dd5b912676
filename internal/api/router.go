package api

import (
	"freelance_board/internal/db"         // Persistence layer
	"freelance_board/internal/middleware" // Custom package for middleware
	"freelance_board/internal/utils"      // Cache helpers
	"time"                                // Durations

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps are the collaborators the route table needs
type Deps struct {
	Store         *db.Store
	Cache         *utils.ListCache // nil disables caching
	CORSOrigins   []string
	DBPingTimeout time.Duration
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(d Deps) *gin.Engine {
	if d.DBPingTimeout <= 0 {
		d.DBPingTimeout = 2 * time.Second
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())
	if len(d.CORSOrigins) > 0 {
		r.Use(middleware.CORS(d.CORSOrigins))
	}

	r.GET("/", RootHandler())
	r.GET("/health", HealthHandler())
	r.GET("/db-health", DBHealthHandler(d.Store, d.DBPingTimeout))

	// User routes
	r.POST("/users", CreateUserHandler(d.Store, d.Cache))
	r.GET("/users", ListUsersHandler(d.Store, d.Cache))
	r.GET("/users/wallet/:wallet_address", GetUserByWalletHandler(d.Store))

	// Freelancer job routes
	r.POST("/freelancer/jobs", CreateFreelancerJobHandler(d.Store, d.Cache))
	r.GET("/freelancer/jobs", ListFreelancerJobsHandler(d.Store, d.Cache))

	// Employer job routes
	r.POST("/employer/jobs", CreateEmployerJobHandler(d.Store, d.Cache))
	r.GET("/employer/jobs", ListEmployerJobsHandler(d.Store, d.Cache))

	return r
}
