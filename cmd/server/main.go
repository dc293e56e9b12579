package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinlens/internal/advisor"
	"coinlens/internal/bot"
	"coinlens/internal/cache"
	"coinlens/internal/config"
	"coinlens/internal/handler"
	"coinlens/internal/provider"
	"coinlens/internal/service"
	"coinlens/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "coinlens/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newProvidersFunc       = buildProviders
	newOpenAIClientFunc    = advisor.NewOpenAIClient
	newBriefingServiceFunc = advisor.NewBriefingService
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func buildProviders(tracer trace.Tracer, cfg *config.Config) service.Providers {
	return service.Providers{
		Markets:   provider.NewCoinGeckoProvider(tracer),
		History:   provider.NewCryptoCompareProvider(tracer),
		Rates:     provider.NewExchangeRateProvider(tracer),
		NFTs:      provider.NewOpenSeaProvider(tracer, cfg.OpenSeaAPIKey),
		Posts:     provider.NewCryptoPanicProvider(tracer, cfg.CryptoPanicAPIKey),
		Feeds:     provider.NewFeedProvider(tracer, cfg.NewsFeeds),
		Sentiment: provider.NewFearGreedProvider(tracer),
	}
}

// @title           Coinlens API
// @version         1.0
// @description     Cached crypto market data, news and sentiment with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cache store: Redis when configured, process memory otherwise
	var store cache.Store = cache.NewMemoryStore(cache.DefaultTTL)
	if cfg.RedisURL != "" {
		os.Setenv("REDIS_URL", cfg.RedisURL)
		initRedisFunc(ctx)
		store = cache.NewRedisStore(cache.Client, cache.DefaultTTL)
	}

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create providers and the aggregator
	agg := service.NewAggregator(tracer, store, newProvidersFunc(tracer, cfg))

	// Market briefing (optional)
	var briefing handler.BriefingSource
	if cfg.OpenAIAPIKey != "" {
		llm := newOpenAIClientFunc(cfg.OpenAIAPIKey)
		briefing = newBriefingServiceFunc(tracer, llm, agg, cfg.OpenAIModel)
		log.Println("Market briefing enabled")
	}

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(agg)

	// Create handlers and routes
	h := handler.New(tracer, agg, briefing)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("coinlens"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
