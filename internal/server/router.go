package server

import (
	"net/http"

	"asset-inspector/internal/config"
	"asset-inspector/internal/handlers"
	"asset-inspector/internal/middleware"
	"asset-inspector/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("inv_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.POST("/api/auth/register", handlers.Register)
	r.POST("/api/auth/login", handlers.Login)
	r.POST("/api/auth/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/auth/me", handlers.Me)

	// АКТИВЫ
	api.GET("/assets", handlers.ListAssets)
	api.GET("/assets/:id", handlers.GetAsset)
	api.POST("/assets",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateAsset,
	)
	api.PUT("/assets/:id",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateAsset,
	)

	// удаление активов — только админ
	api.DELETE("/assets/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteAsset,
	)

	// ====== ИНВЕНТАРИЗАЦИЯ ПО QR ======
	api.GET("/inspections/scan/:asset_number",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleInspector),
		handlers.ScanAsset,
	)
	api.POST("/inspections/scan",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleInspector),
		handlers.RecordInspection,
	)

	// журнал и статистика доступны всем авторизованным
	api.GET("/inspections", handlers.ListInspections)
	api.GET("/inspections/stats", handlers.InspectionStats)

	// КАМПАНИИ
	api.GET("/campaigns", handlers.ListCampaigns)
	api.GET("/campaigns/:id", handlers.GetCampaign)
	api.POST("/campaigns",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateCampaign,
	)
	api.POST("/campaigns/:id/status",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateCampaignStatus,
	)

	// АУДИТ
	api.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
