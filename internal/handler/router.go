package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"toolshed/internal/handler/api"
	"toolshed/internal/handler/middleware"
	"toolshed/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	toolHandler *api.ToolHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, toolHandler, reservationHandler, reviewHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	toolHandler *api.ToolHandler,
	reservationHandler *api.ReservationHandler,
	reviewHandler *api.ReviewHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.Static("/uploads", cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: authHandler.ForgotPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodGet, Path: "/verify", Handler: authHandler.Verify},
			})
		}

		tools := apiGroup.Group("/tools")
		{
			addRoutes(tools, []route{
				{Method: http.MethodGet, Path: "", Handler: toolHandler.ListTools},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: toolHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: reviewHandler.ListToolReviews},
			})

			toolsAuth := tools.Group("")
			toolsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(toolsAuth, []route{
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: reviewHandler.CreateReview},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodPatch, Path: "/:id/close", Handler: reservationHandler.CloseReservation},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodPost, Path: "", Handler: reportHandler.CreateReport},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/tools", Handler: toolHandler.CreateTool},
				{Method: http.MethodDelete, Path: "/tools/:id", Handler: toolHandler.DeleteTool},
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.GetAdminReservations},
				{Method: http.MethodGet, Path: "/reservations/pending", Handler: reservationHandler.GetPendingReservations},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: reservationHandler.DecideReservation},
				{Method: http.MethodGet, Path: "/reports", Handler: reportHandler.ListAdminReports},
				{Method: http.MethodGet, Path: "/reports/all", Handler: reportHandler.ListAllReports},
				{Method: http.MethodPatch, Path: "/reports/:id/resolve", Handler: reportHandler.ResolveReport},
			})
		}
	}
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
