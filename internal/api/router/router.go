package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"funkdesk/backend/config"
	"funkdesk/backend/internal/api/handler"
	"funkdesk/backend/internal/api/middleware"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/jwt"
	"funkdesk/backend/pkg/redis"
)

const maxRequestBody = 2 << 20 // request bodies carry JSON only, uploads go to the cloud service

// Setup initializes and returns the gin engine.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	svc *service.Service,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxRequestBody))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public endpoints
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}
		v1.GET("/maintenance", h.Maintenance.Status)

		// authenticated endpoints
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		authorized.Use(middleware.MaintenanceGate(svc.Maintenance))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// absence workflow
			team := authorized.Group("/team")
			{
				team.GET("/absences", h.Absence.List)
				team.POST("/absences", h.Absence.Submit)
				team.GET("/absences/session", h.Absence.Session)
				team.GET("/absences/:id", h.Absence.Get)
				team.PUT("/absences/:id/status", h.Absence.UpdateStatus)
			}

			// user administration (Management only; the service enforces the
			// policy too, the middleware just fails fast)
			users := authorized.Group("/users", middleware.RoleAuth(model.RoleManagement))
			{
				users.GET("", h.User.List)
				users.POST("", h.User.Create)
				users.PATCH("/:id/role", h.User.ChangeRole)
				users.DELETE("/:id", h.User.Delete)
				users.POST("/:id/reset-password", h.User.ResetPassword)
			}

			// maintenance administration
			maintenance := authorized.Group("/maintenance", middleware.RoleAuth(model.RoleManagement))
			{
				maintenance.PUT("", h.Maintenance.SetMode)
				maintenance.PUT("/password", h.Maintenance.SetPassword)
			}

			// content
			news := authorized.Group("/news")
			{
				news.GET("", h.News.List)
				news.POST("", h.News.Create)
				news.DELETE("/:id", h.News.Delete)
			}

			posts := authorized.Group("/scheduled-posts")
			{
				posts.GET("", h.ScheduledPost.List)
				posts.GET("/:id", h.ScheduledPost.Get)
				posts.POST("", h.ScheduledPost.Create)
				posts.PATCH("/:id", h.ScheduledPost.Update)
				posts.DELETE("/:id", h.ScheduledPost.Delete)
			}

			applications := authorized.Group("/applications")
			{
				applications.GET("", h.Application.List)
				applications.POST("", h.Application.Create)
				applications.PATCH("/:id", h.Application.Update)
				applications.PATCH("/:id/archive", h.Application.SetArchived)
				applications.DELETE("/:id", h.Application.Delete)
			}

			// external services
			cloud := authorized.Group("/cloud")
			{
				cloud.GET("/files", h.Cloud.List)
				cloud.DELETE("/files/:id", h.Cloud.Delete)
			}
			authorized.GET("/mail/unseen", h.Mail.Unseen)

			// exports
			export := authorized.Group("/export", middleware.RoleAuth(model.RoleManagement))
			{
				export.GET("/absences", h.Export.AbsencesXLSX)
				export.GET("/absences.ics", h.Export.AbsencesICS)
			}
		}
	}

	return r
}
