package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scribeflow/scribeflow/pkg/config"
	"github.com/scribeflow/scribeflow/pkg/costs"
	"github.com/scribeflow/scribeflow/pkg/database"
	"github.com/scribeflow/scribeflow/pkg/events"
	"github.com/scribeflow/scribeflow/pkg/health"
	"github.com/scribeflow/scribeflow/pkg/providers"
	"github.com/scribeflow/scribeflow/pkg/queue"
	"github.com/scribeflow/scribeflow/pkg/quota"
	"github.com/scribeflow/scribeflow/pkg/resilience"
	"github.com/scribeflow/scribeflow/pkg/services"
)

// Server is the API server: route registration, middleware, and handler
// dependencies.
type Server struct {
	echo *echo.Echo
	http *http.Server
	cfg  *config.Config

	dbClient *database.Client

	taskService       *services.TaskService
	transcriptService *services.TranscriptService
	summaryService    *services.SummaryService
	uploadService     *services.UploadService

	registry      *providers.Registry
	healthMonitor *health.Monitor
	breaker       *resilience.Breaker
	quotaManager  *quota.Manager
	costTracker   *costs.Tracker
	usageStore    *costs.EntStore

	workerPool  *queue.WorkerPool
	executor    *queue.Executor
	connManager *events.ConnectionManager
}

// ServerDeps collects the collaborators a Server needs.
type ServerDeps struct {
	Config            *config.Config
	DBClient          *database.Client
	TaskService       *services.TaskService
	TranscriptService *services.TranscriptService
	SummaryService    *services.SummaryService
	UploadService     *services.UploadService
	Registry          *providers.Registry
	HealthMonitor     *health.Monitor
	Breaker           *resilience.Breaker
	QuotaManager      *quota.Manager
	CostTracker       *costs.Tracker
	UsageStore        *costs.EntStore
	WorkerPool        *queue.WorkerPool
	Executor          *queue.Executor
	ConnManager       *events.ConnectionManager
}

// NewServer creates the API server and registers all routes.
func NewServer(deps ServerDeps) *Server {
	s := &Server{
		echo:              echo.New(),
		cfg:               deps.Config,
		dbClient:          deps.DBClient,
		taskService:       deps.TaskService,
		transcriptService: deps.TranscriptService,
		summaryService:    deps.SummaryService,
		uploadService:     deps.UploadService,
		registry:          deps.Registry,
		healthMonitor:     deps.HealthMonitor,
		breaker:           deps.Breaker,
		quotaManager:      deps.QuotaManager,
		costTracker:       deps.CostTracker,
		usageStore:        deps.UsageStore,
		workerPool:        deps.WorkerPool,
		executor:          deps.Executor,
		connManager:       deps.ConnManager,
	}
	s.setupRoutes()
	// echo/v5 no longer owns the http.Server; serve the router through one
	// we control so shutdown can drain in-flight requests.
	s.http = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.Use(traceIDMiddleware())
	e.Use(securityHeaders())

	// Infra endpoints: raw responses, no envelope.
	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", s.wsHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/uploads/presign", s.presignUploadHandler)

	v1.POST("/tasks", s.createTaskHandler)
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.DELETE("/tasks/:id", s.deleteTaskHandler)
	v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)

	v1.GET("/tasks/:id/transcript", s.getTranscriptHandler)
	v1.PUT("/tasks/:id/transcript/segments/:segment_id", s.editSegmentHandler)

	v1.GET("/tasks/:id/summaries", s.getSummariesHandler)
	v1.POST("/tasks/:id/summaries/regenerate", s.regenerateSummariesHandler)
	v1.POST("/tasks/:id/visualize", s.visualizeHandler)

	v1.GET("/providers", s.listProvidersHandler)

	admin := v1.Group("/admin")
	admin.GET("/quota", s.listQuotaHandler)
	admin.POST("/quota/refresh", s.refreshQuotaHandler)
	admin.GET("/costs/daily", s.dailyCostsHandler)
	admin.GET("/costs/providers", s.providerCostsHandler)
}

// Start begins serving on addr. Blocks until the server stops; a graceful
// stop returns http.ErrServerClosed.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
