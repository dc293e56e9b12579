package main

import (
	"context"
	"fmt"
	"log"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"coinlens/internal/cache"
	"coinlens/internal/config"
	"coinlens/internal/provider"
	"coinlens/internal/service"
	"coinlens/internal/tui"
	"coinlens/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
	gossh "golang.org/x/crypto/ssh"
)

var (
	loadEnvFunc       = godotenv.Load
	loadConfigFunc    = config.Load
	initRedisFunc     = cache.InitRedis
	initTracerFunc    = tracing.InitTracer
	newProvidersFunc  = buildProviders
	newWishServerFunc = wish.NewServer
	setupSignalNotify = ossignal.Notify
	waitForSignalFunc = func(quit <-chan os.Signal) { <-quit }
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

	agg := service.NewAggregator(tracer, store, newProvidersFunc(tracer, cfg))

	// Build Wish SSH server. The dashboard is public; key auth only
	// logs the fingerprint so sessions can be correlated.
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.SSHPort)

	srv, err := newWishServerFunc(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			log.Printf("SSH session: user=%s fingerprint=%s", ctx.User(), gossh.FingerprintSHA256(key))
			return true
		}),
		wish.WithMiddleware(
			bubbletea.Middleware(func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
				model := tui.NewAppModel(tui.Services{
					Data:     agg,
					Username: s.User(),
				})
				pty, _, _ := s.Pty()
				model.SetSize(pty.Window.Width, pty.Window.Height)

				return model, []tea.ProgramOption{tea.WithAltScreen()}
			}),
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatalf("failed to create SSH server: %v", err)
	}

	if srv != nil {
		go func() {
			log.Printf("SSH server listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil {
				log.Printf("SSH server stopped: %v", err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down SSH server...")

	cancel()

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("SSH server shutdown error: %v", err)
		}
	}

	log.Println("SSH server exited")
}
