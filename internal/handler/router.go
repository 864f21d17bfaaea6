package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vouch-backend/internal/domain/identity"
	"vouch-backend/internal/handler/api"
	"vouch-backend/internal/handler/middleware"
	"vouch-backend/internal/infra/metrics"
	"vouch-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	m *metrics.Metrics,
	vouchHandler *api.VouchHandler,
	rewardHandler *api.RewardHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, m, vouchHandler, rewardHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Metrics,
	vouchHandler *api.VouchHandler,
	rewardHandler *api.RewardHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRole(identity.RoleCustomer),
	}
	businessOnly := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRole(identity.RoleBusiness),
	}

	apiGroup := engine.Group("/api")
	addRoutes(apiGroup, []route{
		{Method: http.MethodPost, Path: "/vouch/start", Handler: vouchHandler.Start, Mw: customerOnly},
		{Method: http.MethodPost, Path: "/vouch/stop", Handler: vouchHandler.Stop, Mw: customerOnly},
		{Method: http.MethodGet, Path: "/vouch/status/:location_id", Handler: vouchHandler.Status, Mw: customerOnly},
		{Method: http.MethodPost, Path: "/rewards/redeem", Handler: rewardHandler.Redeem, Mw: businessOnly},
		{Method: http.MethodGet, Path: "/my-rewards", Handler: rewardHandler.MyRewards, Mw: customerOnly},
		{Method: http.MethodPost, Path: "/reviews", Handler: reviewHandler.Create, Mw: customerOnly},
		{Method: http.MethodGet, Path: "/public/reviews/:location_id", Handler: reviewHandler.ListByLocation},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
