//	@title						POI Finder API
//	@version					1.0
//	@description				Resolves place names to coordinates and ranks nearby points of interest.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "poi-finder-api/docs"
	"poi-finder-api/internal/config"
	"poi-finder-api/internal/handler"
	"poi-finder-api/internal/logger"
	"poi-finder-api/internal/provider"
	"poi-finder-api/internal/provider/googletranslate"
	"poi-finder-api/internal/provider/nominatim"
	"poi-finder-api/internal/provider/openweather"
	"poi-finder-api/internal/provider/overpass"
	"poi-finder-api/internal/repository"
	"poi-finder-api/internal/service"
	"poi-finder-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A local .env is optional; configs/app.env and the environment still apply.
	_ = godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	appLogger := logger.Setup(config.Environment, config.LogLevel)
	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := provider.NewHTTPClient(config.HTTPTimeout)

	geocoder := nominatim.NewClient(nominatim.Config{
		Endpoint:          config.NominatimURL,
		CountryCode:       config.CountryCode,
		AcceptLanguage:    config.AcceptLanguage,
		UserAgent:         config.UserAgent,
		RequestsPerSecond: config.NominatimRate,
	}, httpClient)
	pois := overpass.NewClient(overpass.Config{
		Endpoint:  config.OverpassURL,
		ResultCap: config.OverpassResultCap,
		UserAgent: config.UserAgent,
	}, httpClient)
	weather := openweather.NewClient(openweather.Config{
		Endpoint: config.WeatherURL,
		APIKey:   config.WeatherAPIKey,
		Language: config.WeatherLanguage,
	}, httpClient)
	translator := googletranslate.NewClient(googletranslate.Config{
		Endpoint:  config.TranslateURL,
		UserAgent: config.UserAgent,
	}, httpClient)

	providers := service.Providers{
		Geocoder:   geocoder,
		POIs:       pois,
		Weather:    weather,
		Translator: translator,
	}

	// Database connection is optional; without it history is disabled
	var historyHandler *handler.HistoryHandler
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare db schema")
		}
		providers.History = repo
		historyHandler = handler.NewHistoryHandler(repo)
	} else {
		log.Warn().Msg("DB_SOURCE is empty, search history is disabled")
	}

	searchCfg := service.SearchConfig{
		CountryCode:  config.CountryCode,
		RadiusMeters: config.SearchRadius,
		Limit:        service.DefaultRankLimit,
	}

	// Initialize layers
	geoCodeService := service.NewGeoCodeService(geocoder, config.CountryCode)
	nearbyService := service.NewNearbyService(pois, config.SearchRadius, service.DefaultRankLimit)
	translateService := service.NewTranslateService(translator)
	workspaces := service.NewWorkspaceService(providers, searchCfg, config.WorkspaceTTL, appLogger)
	defer workspaces.Close()
	go workspaces.Run(ctx)

	verifier := session.NewVerifier(config.JWTSecret)
	if !verifier.Enabled() {
		log.Warn().Msg("JWT_SECRET is empty, every request is anonymous")
	}

	r := handler.NewRouter(handler.RouterConfig{
		CORSOrigins: config.CORSOrigins,
		RateLimit:   config.RateLimit,
		RateBurst:   config.RateBurst,
	}, handler.Handlers{
		GeoCode:   handler.NewGeoCodeHandler(geoCodeService),
		POIs:      handler.NewPOIHandler(nearbyService),
		Weather:   handler.NewWeatherHandler(weather),
		Translate: handler.NewTranslateHandler(translateService),
		Workspace: handler.NewWorkspaceHandler(workspaces),
		History:   historyHandler,
	}, verifier, appLogger)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
