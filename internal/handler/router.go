package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"playroom-booking/internal/handler/api"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Draft    *api.DraftHandler
	Promo    *api.PromoHandler
	Reward   *api.RewardHandler
	Checkout *api.CheckoutHandler
	Catalog  *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.OptionalAuth())
	{
		apiGroup.GET("/health", healthCheck)
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/draft", Handler: h.Draft.Start},
		})

		session := apiGroup.Group("")
		session.Use(middleware.RequireSession())

		draft := session.Group("/draft")
		{
			addRoutes(draft, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Draft.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Draft.Discard},
				{Method: http.MethodPut, Path: "/people", Handler: h.Draft.SetPeople},
				{Method: http.MethodPut, Path: "/console", Handler: h.Draft.SetConsole},
				{Method: http.MethodPut, Path: "/room", Handler: h.Draft.SetRoom},
				{Method: http.MethodPut, Path: "/unit", Handler: h.Draft.SetUnit},
				{Method: http.MethodPut, Path: "/game", Handler: h.Draft.SelectGame},
				{Method: http.MethodPut, Path: "/date", Handler: h.Draft.SetDate},
				{Method: http.MethodPut, Path: "/start-time", Handler: h.Draft.SetStartTime},
				{Method: http.MethodPut, Path: "/duration", Handler: h.Draft.SetDuration},
				{Method: http.MethodPut, Path: "/notes", Handler: h.Draft.SetNotes},
				{Method: http.MethodPut, Path: "/step", Handler: h.Draft.GoToStep},
				{Method: http.MethodPut, Path: "/fnbs/:itemId", Handler: h.Draft.UpsertFnb},
				{Method: http.MethodDelete, Path: "/fnbs/:itemId", Handler: h.Draft.RemoveFnb},
				{Method: http.MethodGet, Path: "/availability/days", Handler: h.Draft.Days},
				{Method: http.MethodGet, Path: "/availability/times", Handler: h.Draft.Times},
				{Method: http.MethodGet, Path: "/durations", Handler: h.Draft.Durations},
				{Method: http.MethodPost, Path: "/promo", Handler: h.Promo.Apply},
				{Method: http.MethodDelete, Path: "/promo", Handler: h.Promo.Remove},
				{Method: http.MethodPost, Path: "/reward", Handler: h.Reward.Apply},
				{Method: http.MethodPost, Path: "/reward/refresh", Handler: h.Reward.Refresh},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Checkout.Submit},
			})
		}

		catalog := session.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/rooms", Handler: h.Catalog.Rooms},
				{Method: http.MethodGet, Path: "/units", Handler: h.Catalog.Units},
				{Method: http.MethodGet, Path: "/fnbs", Handler: h.Catalog.Fnbs},
			})
		}

		payments := session.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/return", Handler: h.Checkout.Return},
				{Method: http.MethodPost, Path: "/notification", Handler: h.Checkout.Notification},
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
