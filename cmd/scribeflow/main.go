// ScribeFlow server: provides the HTTP/WebSocket API, manages queue
// workers, and orchestrates media transcription pipelines.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scribeflow/scribeflow/pkg/api"
	"github.com/scribeflow/scribeflow/pkg/cleanup"
	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/costs"
	"github.com/scribeflow/scribeflow/pkg/database"
	"github.com/scribeflow/scribeflow/pkg/events"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/providers/builtin"
	"github.com/scribeflow/scribeflow/pkg/queue"
	"github.com/scribeflow/scribeflow/pkg/quota"
	"github.com/scribeflow/scribeflow/pkg/resilience"
	"github.com/scribeflow/scribeflow/pkg/selector"
	"github.com/scribeflow/scribeflow/pkg/services"
	"github.com/scribeflow/scribeflow/pkg/summarize"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting ScribeFlow",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, continue
	}

	// 4. Provider registry, health monitor, circuit breaker
	registry := providers.NewRegistry()
	if err := builtin.RegisterAll(registry, cfg); err != nil {
		slog.Error("Failed to register providers", "error", err)
		os.Exit(1)
	}
	healthMonitor := health.NewMonitor()
	breaker := resilience.NewBreaker()
	stats := cfg.Stats()
	slog.Info("Providers registered",
		"asr", stats.ASRProviders,
		"llm", stats.LLMProviders)

	// 5. Quota, cost tracking, provider selection
	quotaManager := quota.NewManager(dbClient.Client)
	seedFreeTierQuotas(ctx, registry, quotaManager)

	redisEvaler := costs.NewGoRedisEvaler(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	usageStore := costs.NewEntStore(dbClient.Client)
	costTracker := costs.NewTracker(redisEvaler, usageStore, 48*time.Hour)

	providerSelector := selector.New(registry, healthMonitor, breaker, quotaManager, cfg.Selector)

	// 6. Domain services
	taskService := services.NewTaskService(dbClient.Client)
	transcriptService := services.NewTranscriptService(dbClient.Client)
	summaryService := services.NewSummaryService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	storageClient, err := registry.Instantiate(ctx, providers.ServiceStorage, "s3", providers.Overrides{})
	if err != nil {
		slog.Error("Failed to initialize storage client", "error", err)
		os.Exit(1)
	}
	presigner, okPresign := storageClient.(services.Presigner)
	if !okPresign {
		slog.Error("Storage client does not support presigned uploads")
		os.Exit(1)
	}
	uploadService := services.NewUploadService(taskService, presigner, cfg.Media)
	slog.Info("Services initialized")

	// 7. Streaming infrastructure
	eventPublisher := events.NewPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 8. Pipeline executor and worker pool
	generator, err := summarize.NewGenerator()
	if err != nil {
		slog.Error("Failed to load prompt catalog", "error", err)
		os.Exit(1)
	}

	executor := queue.NewExecutor(queue.ExecutorDeps{
		Client:      dbClient.Client,
		Registry:    registry,
		Selector:    providerSelector,
		Health:      healthMonitor,
		Breaker:     breaker,
		Quota:       quotaManager,
		Costs:       costTracker,
		Publisher:   eventPublisher,
		Transcripts: transcriptService,
		Summaries:   summaryService,
		Generator:   generator,
		Config:      cfg,
	})

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, taskService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(api.ServerDeps{
		Config:            cfg,
		DBClient:          dbClient,
		TaskService:       taskService,
		TranscriptService: transcriptService,
		SummaryService:    summaryService,
		UploadService:     uploadService,
		Registry:          registry,
		HealthMonitor:     healthMonitor,
		Breaker:           breaker,
		QuotaManager:      quotaManager,
		CostTracker:       costTracker,
		UsageStore:        usageStore,
		WorkerPool:        workerPool,
		Executor:          executor,
		ConnManager:       connManager,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("ScribeFlow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first so in-flight pipelines
	// finish, then close the HTTP surface.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// seedFreeTierQuotas creates global quota lanes for providers that advertise
// a free allocation, so selection can score remaining free capacity from the
// first request.
func seedFreeTierQuotas(ctx context.Context, registry *providers.Registry, manager *quota.Manager) {
	for _, reg := range registry.Discover(providers.ServiceASR) {
		if reg.Metadata.FreeTierSeconds <= 0 {
			continue
		}
		windowType := quota.WindowTotal
		if reg.Metadata.FreeTierResetPeriod == "monthly" {
			windowType = quota.WindowMonth
		}
		variants := reg.Metadata.Variants
		if len(variants) == 0 {
			variants = []string{providers.VariantFile}
		}
		for _, variant := range variants {
			if _, err := manager.EnsureEntry(ctx, quota.OwnerGlobal, reg.Name, variant, windowType, reg.Metadata.FreeTierSeconds); err != nil {
				slog.Error("Failed to seed free tier quota",
					"provider", reg.Name,
					"variant", variant,
					"error", err)
			}
		}
	}
}
