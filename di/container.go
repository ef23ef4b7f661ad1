package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"gridsense-server/api"
	"gridsense-server/api/gridfeed"
	"gridsense-server/config"
	"gridsense-server/dao/redis"
	"gridsense-server/db"
	"gridsense-server/server"
	"gridsense-server/server/handlers"
	services "gridsense-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisSeriesDao         *redis.RedisSeriesDAO
	GridFeedAPI            gridfeed.GridFeedAPI
	MetricDeriver          *services.MetricDeriver
	SyntheticGenerator     *services.SyntheticSeriesGenerator
	LiveFeedAdapter        *services.LiveFeedAdapter
	SeriesAssembler        *services.SeriesAssembler
	SeriesRefresherService *services.SeriesRefresherService
	ForecastHandler        *handlers.ForecastHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	GridSenseHttpServer    *server.GridSenseHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewStoreRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Series DAO
	redisSeriesDao := redis.NewRedisSeriesDAO(redisClient)

	// Initialize grid feed client - fixture-backed mock outside prod
	var gridFeedApiClient gridfeed.GridFeedAPI
	if env != "prod" {
		gridFeedApiClient = gridfeed.NewGridFeedApiClientMock()
		log.Printf("Using mock grid feed api")
	} else {
		log.Printf("Using prod grid feed api")
		httpClient := api.NewHTTPClient(config.GRID_FEED_ENDPOINT_BASE)
		gridFeedApiClient = gridfeed.NewGridFeedApiClient(httpClient)
	}

	// Initialize the normalization pipeline
	demandEstimator := services.NewJitterDemandEstimator(config.ASSUMED_BASELINE_LOAD_MW, config.DEMAND_JITTER_MAX)
	metricDeriver := services.NewMetricDeriver(config.ASSUMED_BASELINE_LOAD_MW, demandEstimator)
	syntheticGenerator := services.NewSyntheticSeriesGenerator()
	liveFeedAdapter := services.NewLiveFeedAdapter(gridFeedApiClient, metricDeriver)
	seriesAssembler := services.NewSeriesAssembler(liveFeedAdapter, syntheticGenerator)

	// Initialize the refresher over the supported horizons
	seriesRefresherService := services.NewSeriesRefresherService(
		redisSeriesDao, seriesAssembler, config.SUPPORTED_HORIZONS_HOURS)

	// Initialize forecast handler
	forecastHandler := handlers.NewForecastHandler(redisSeriesDao, seriesAssembler)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(forecastHandler, muxRouter)

	// initialize grid sense server
	gridSenseHttpServer := server.NewGridSenseHttpServer(router, muxRouter)

	return &Container{
		RedisClient:            redisClient,
		RedisSeriesDao:         redisSeriesDao,
		GridFeedAPI:            gridFeedApiClient,
		MetricDeriver:          metricDeriver,
		SyntheticGenerator:     syntheticGenerator,
		LiveFeedAdapter:        liveFeedAdapter,
		SeriesAssembler:        seriesAssembler,
		SeriesRefresherService: seriesRefresherService,
		ForecastHandler:        forecastHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		GridSenseHttpServer:    gridSenseHttpServer,
	}
}
