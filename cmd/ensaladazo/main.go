package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ensaladazo/ensaladazo-backend/internal/api"
	"github.com/ensaladazo/ensaladazo-backend/internal/api/handlers"
	"github.com/ensaladazo/ensaladazo-backend/internal/api/middleware"
	"github.com/ensaladazo/ensaladazo-backend/internal/cache"
	"github.com/ensaladazo/ensaladazo-backend/internal/config"
	"github.com/ensaladazo/ensaladazo-backend/internal/health"
	"github.com/ensaladazo/ensaladazo-backend/internal/metrics"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	service "github.com/ensaladazo/ensaladazo-backend/internal/services"
	"github.com/ensaladazo/ensaladazo-backend/internal/tracing"
	"github.com/ensaladazo/ensaladazo-backend/pkg/sendgrid"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Error reporting
	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Env,
			Release:          handlers.Version,
			EnableTracing:    cfg.Sentry.TracesSampleRate > 0,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		}); err != nil {
			slog.Error("❌ Error initializing sentry", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer sentry.Flush(2 * time.Second)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis backs the product cache and the login limiter; both are
	// optional, so a missing Redis only degrades the service.
	var (
		redisClient  *redis.Client
		productCache cache.Cache
		limiter      repository.RateLimitRepository
	)

	redisClient, err = repository.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("⚠️ Redis unavailable, running without cache and login rate limit", slog.String("error", err.Error()))
	} else {
		productCache = cache.NewRedisCache(redisClient, cfg.Cache)
		limiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

		defer func() {
			if err := productCache.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()
	}

	var mailer sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		mailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Info("SendGrid API key not set, contact acknowledgements disabled")
	}

	tokens, err := service.NewTokenIssuer(cfg.Security)
	if err != nil {
		slog.Error("❌ Error configuring login tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userService := service.NewUserService(repos.User)
	productService := service.NewProductService(repos.Product, productCache)
	cartService := service.NewCartService(repos.Cart, repos.Product, userService)
	authService := service.NewAuthService(repos.AuthUser, limiter, tokens)
	contactService := service.NewContactService(repos.Contact, mailer)
	customSaladService := service.NewCustomSaladService(repos.CustomSalad, userService)

	// Seed the storefront menu
	seedCtx, cancelSeed := context.WithTimeout(ctx, 30*time.Second)
	seeded, err := productService.SeedCatalog(seedCtx)
	cancelSeed()

	if err != nil {
		slog.Error("❌ Error seeding the catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", handlers.Version), slog.Int("productsSeeded", len(seeded)))

	readiness, err := health.NewHealthHandler("ensaladazo-backend", handlers.Version, &health.Endpoints{
		DB:          repos.DB,
		RedisClient: redisClient,
	})
	if err != nil {
		slog.Error("❌ Error creating the readiness check", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Setup router
	routerMux := api.NewRouter(api.Handlers{
		Health:      handlers.NewHealthHandler(),
		Product:     handlers.NewProductHandler(productService),
		Cart:        handlers.NewCartHandler(cartService),
		User:        handlers.NewUserHandler(userService),
		Auth:        handlers.NewAuthHandler(authService),
		Contact:     handlers.NewContactHandler(contactService),
		CustomSalad: handlers.NewCustomSaladHandler(customSaladService),
		Ready:       readiness.Handler(),
		Metrics:     metrics.Handler(),
	})

	// Middleware chaining, innermost first
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = metrics.Middleware(routerMux)(handler)
	handler = otelhttp.NewHandler(handler, "ensaladazo-http")

	if sentryEnabled {
		handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
	}

	handler = middleware.Recover(handler)

	// Setup http server
	server := http.Server{
		Addr:              cfg.HTTPServer.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
