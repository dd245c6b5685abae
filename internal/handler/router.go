package handler

import (
	"net/http"
	"time"

	"poi-finder-api/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

// RouterConfig carries the HTTP concerns of the router
type RouterConfig struct {
	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
}

// Handlers groups every route handler. History is nil when no database is configured.
type Handlers struct {
	GeoCode   *GeoCodeHandler
	POIs      *POIHandler
	Weather   *WeatherHandler
	Translate *TranslateHandler
	Workspace *WorkspaceHandler
	History   *HistoryHandler
}

// NewRouter wires middleware and routes.
func NewRouter(cfg RouterConfig, h Handlers, verifier TokenVerifier, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestLogger(log), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	if cfg.RateLimit > 0 {
		r.Use(NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst).Middleware())
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", Health)

	api.Use(Authenticate(verifier))
	api.POST("/geocoding", h.GeoCode.GeoCode)
	api.POST("/pois", h.POIs.Nearby)
	api.POST("/weather", h.Weather.Current)
	api.POST("/translate", h.Translate.Translate)

	ws := api.Group("/workspaces")
	ws.POST("", h.Workspace.Create)
	ws.GET("/:id", h.Workspace.Get)
	ws.POST("/:id/search", h.Workspace.Search)
	ws.POST("/:id/weather", h.Workspace.Weather)
	ws.POST("/:id/translate", h.Workspace.Translate)

	if h.History != nil {
		api.GET("/history", RequireSession(), h.History.Recent)
	}

	return r
}

// Health handles GET /api/health
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
