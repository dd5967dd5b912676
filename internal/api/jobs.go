package api

import (
	"freelance_board/internal/db"         // Persistence layer
	"freelance_board/internal/middleware" // Request id key
	"freelance_board/internal/utils"      // Cache helpers
	"net/http"                            // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateFreelancerJobHandler posts a job offered by a freelancer
func CreateFreelancerJobHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateFreelancerJobRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		job := req.toModel()
		if err := store.CreateFreelancerJob(c.Request.Context(), &job); err != nil {
			abortWithStorageError(c, "create_freelancer_job", err) // Unknown user_id maps to 400
			return
		}
		cache.Invalidate(c.Request.Context(), utils.FreelancerJobsCacheKey) // Next list goes to the database
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"job_id":     job.ID,
			"user_id":    job.UserID,
			"budget":     job.Budget.Decimal.StringFixed(2),
		}).Info("Freelancer job created")
		c.JSON(http.StatusOK, newFreelancerJobResponse(job))
	}
}

// ListFreelancerJobsHandler returns every freelancer job
func ListFreelancerJobsHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []FreelancerJobResponse
		if cache.Get(ctx, utils.FreelancerJobsCacheKey, &cached) { // Serve from cache when present
			c.JSON(http.StatusOK, cached)
			return
		}
		jobs, err := store.ListFreelancerJobs(ctx)
		if err != nil {
			abortWithStorageError(c, "list_freelancer_jobs", err)
			return
		}
		resp := make([]FreelancerJobResponse, len(jobs))
		for i, j := range jobs {
			resp[i] = newFreelancerJobResponse(j)
		}
		cache.Set(ctx, utils.FreelancerJobsCacheKey, resp)
		c.JSON(http.StatusOK, resp)
	}
}

// CreateEmployerJobHandler posts a job offered by an employer
func CreateEmployerJobHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateEmployerJobRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		job := req.toModel()
		if err := store.CreateEmployerJob(c.Request.Context(), &job); err != nil {
			abortWithStorageError(c, "create_employer_job", err)
			return
		}
		cache.Invalidate(c.Request.Context(), utils.EmployerJobsCacheKey) // Next list goes to the database
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"job_id":     job.ID,
			"user_id":    job.UserID,
			"salary":     job.Salary.Decimal.StringFixed(2),
		}).Info("Employer job created")
		c.JSON(http.StatusOK, newEmployerJobResponse(job))
	}
}

// ListEmployerJobsHandler returns every employer job
func ListEmployerJobsHandler(store *db.Store, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []EmployerJobResponse
		if cache.Get(ctx, utils.EmployerJobsCacheKey, &cached) { // Serve from cache when present
			c.JSON(http.StatusOK, cached)
			return
		}
		jobs, err := store.ListEmployerJobs(ctx)
		if err != nil {
			abortWithStorageError(c, "list_employer_jobs", err)
			return
		}
		resp := make([]EmployerJobResponse, len(jobs))
		for i, j := range jobs {
			resp[i] = newEmployerJobResponse(j)
		}
		cache.Set(ctx, utils.EmployerJobsCacheKey, resp)
		c.JSON(http.StatusOK, resp)
	}
}
