// Package router assembles the gin engine: middleware, session store, and
// the route table. Role gating happens once here, per route group, so every
// handler behind a gate is written against a single known role.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dkarpov/hirehub/internal/auth"
	"github.com/dkarpov/hirehub/internal/handlers"
	"github.com/dkarpov/hirehub/internal/models"
)

type Deps struct {
	Store        sessions.Store
	Logger       *zap.Logger
	AllowOrigins []string

	Accounts     *handlers.AccountHandler
	Jobs         *handlers.JobHandler
	Applications *handlers.ApplicationHandler
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(d.Logger))

	config := cors.DefaultConfig()
	if len(d.AllowOrigins) == 1 && d.AllowOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = d.AllowOrigins
	}
	config.AllowCredentials = !config.AllowAllOrigins
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.Use(sessions.Sessions(auth.SessionName, d.Store))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/register", d.Accounts.Register)
		api.POST("/auth/login", d.Accounts.Login)
		api.GET("/auth/me", d.Accounts.Me)

		api.GET("/jobs", d.Jobs.ListJobs)

		authed := api.Group("", auth.RequireAuth())
		{
			authed.POST("/auth/logout", d.Accounts.Logout)
			authed.PUT("/profile", d.Accounts.UpdateProfile)

			seeker := authed.Group("", auth.RequireRole(models.RoleSeeker))
			{
				seeker.POST("/jobs/:id/apply", d.Applications.Apply)
				seeker.GET("/applications", d.Applications.MyApplications)
			}

			employer := authed.Group("", auth.RequireRole(models.RoleEmployer))
			{
				employer.POST("/jobs", d.Jobs.CreateJob)
				employer.GET("/employer/applicants", d.Applications.EmployerApplicants)
			}
		}
	}

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}
