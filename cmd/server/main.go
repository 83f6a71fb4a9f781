package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
	otelchimetric "github.com/riandyrn/otelchi/metric"
	"go.opentelemetry.io/otel"

	"github.com/naijachef/osa/internal/api"
	"github.com/naijachef/osa/internal/chat"
	"github.com/naijachef/osa/internal/config"
	"github.com/naijachef/osa/internal/logger"
	"github.com/naijachef/osa/internal/metrics"
	"github.com/naijachef/osa/internal/sentry"
	"github.com/naijachef/osa/internal/services/generation"
	"github.com/naijachef/osa/internal/services/youtube"
	"github.com/naijachef/osa/internal/telemetry"
)

func main() {
	defer sentry.Recover()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize telemetry
	if cfg.OtelExporterOTLPEndpoint != "" {
		shutdown, err := telemetry.InitTelemetry(ctx, cfg.ServiceName, cfg.ServiceVersion, cfg.Env, cfg.OtelExporterOTLPEndpoint, nil)
		if err != nil {
			slog.Warn("Failed to init telemetry", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Initialize Sentry
	sentry.Init(cfg.SentryDSN, cfg.Env, cfg.ServiceName, cfg.ServiceVersion)
	if cfg.SentryDSN != "" {
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize business metrics
	if err := metrics.Init(); err != nil {
		slog.Warn("Failed to init business metrics", "error", err)
	}

	// Initialize logger with OTel support
	logger := logger.New(cfg.Env)
	slog.SetDefault(logger)

	// Generative backend client
	backend, err := generation.NewBackendClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create generative backend client: %v", err)
	}

	// Video search client and resolver
	videoClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to create video search client: %v", err)
	}
	resolver := youtube.NewResolver(videoClient, cfg.Video.SearchSuffix, cfg.Video.MaxResults)

	// Structured generation over the backend
	generator := generation.NewGenerator(backend.Models, resolver, cfg.Generation)

	// Conversation orchestration
	orchestrator := chat.NewOrchestrator(generator)

	// API handlers
	apiServer := api.NewServer(cfg, orchestrator)

	// Router
	r := chi.NewRouter()

	// Middleware
	r.Use(otelchi.Middleware(cfg.ServiceName,
		otelchi.WithChiRoutes(r),
		otelchi.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	))

	// HTTP metrics
	metricCfg := otelchimetric.NewBaseConfig(cfg.ServiceName, otelchimetric.WithMeterProvider(otel.GetMeterProvider()))
	r.Use(otelchimetric.NewRequestDurationMillis(metricCfg))
	r.Use(otelchimetric.NewRequestInFlight(metricCfg))
	r.Use(otelchimetric.NewResponseSizeBytes(metricCfg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Use(sentry.HTTPMiddleware)

	// Health check endpoint
	r.Get("/health", apiServer.HandleHealth)

	// Conversation API
	r.Post("/api/chat", apiServer.HandleChat)
	r.Post("/api/speech", apiServer.HandleSpeech)
	r.Post("/api/restaurants", apiServer.HandleRestaurants)

	slog.Info("Starting server", "port", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
