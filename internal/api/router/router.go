package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wilfreed8/EtuManager-sub001/config"
	"github.com/wilfreed8/EtuManager-sub001/internal/api/handler"
	"github.com/wilfreed8/EtuManager-sub001/internal/api/middleware"
	"github.com/wilfreed8/EtuManager-sub001/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时批量接口不限流（Redis 不可用的降级模式）
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	batchLimit := middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	staff := middleware.RoleAuth(middleware.RoleAdmin, middleware.RoleTeacher)
	adminOnly := middleware.RoleAuth(middleware.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		// 学年范围
		v1.GET("/scope", h.Scope.GetScope)

		years := v1.Group("/academic-years")
		{
			years.PUT("/:id/select", adminOnly, h.Scope.SelectYear)
			years.DELETE("/selection", adminOnly, h.Scope.ClearSelection)
			years.PUT("/:id/activate", adminOnly, h.Scope.ActivateYear)
		}

		// 成绩配置
		gradingConfig := v1.Group("/grading-config")
		{
			gradingConfig.GET("", h.GradingConfig.GetConfig)
			gradingConfig.PUT("", adminOnly, h.GradingConfig.UpdateConfig)
		}

		// 成绩单
		bulletins := v1.Group("/bulletins")
		{
			bulletins.GET("/students/:id", h.Bulletin.GetStudentBulletin)
			bulletins.GET("/classes/:id", staff, batchLimit, h.Bulletin.GetClassBulletins)
		}

		// 排名
		v1.GET("/rankings/classes/:id", staff, h.Bulletin.GetClassRanking)

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/classes/:id/results", adminOnly, batchLimit, h.Export.ExportClassResults)
		}
	}

	return r
}
