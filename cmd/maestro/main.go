// Maestro orchestration server — provides the HTTP API, runs the task
// pipeline, and coordinates the distributed worker fleet.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"

	"github.com/maestro-run/maestro/pkg/agent"
	"github.com/maestro-run/maestro/pkg/api"
	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/cleanup"
	"github.com/maestro-run/maestro/pkg/config"
	"github.com/maestro-run/maestro/pkg/database"
	"github.com/maestro-run/maestro/pkg/distributed"
	"github.com/maestro-run/maestro/pkg/llm"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/orchestrator"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	"github.com/maestro-run/maestro/pkg/version"
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
	// Parse command-line flags
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

	podID := resolvePodID()

	slog.Info("Starting Maestro",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
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

	errorLogs := services.NewErrorLogService(dbClient.Client)

	// 3. One-time startup orphan recovery
	if err := orchestrator.CleanupStartupOrphans(ctx, dbClient.Client, errorLogs, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Connect the broker. A failed connection degrades distributed modes
	// to local execution rather than blocking startup.
	var brokerClient *broker.Client
	if cfg.Distributed.Enabled && cfg.Redis.Addr != "" {
		brokerClient, err = connectBroker(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("Broker unavailable, distributed execution degraded to local",
				"addr", cfg.Redis.Addr, "error", err)
			brokerClient = nil
		} else {
			defer func() {
				if err := brokerClient.Close(); err != nil {
					slog.Error("Error closing broker client", "error", err)
				}
			}()
			slog.Info("Connected to Redis broker", "addr", cfg.Redis.Addr)
		}
	}

	// 5. Load the agent registry from storage
	reg := registry.New(dbClient.Client, nil)
	if err := reg.Load(ctx); err != nil {
		slog.Error("Failed to load agent registry", "error", err)
		os.Exit(1)
	}

	// 6. Start the performance monitor
	mon := monitor.New(dbClient.Client, monitor.Config{
		BufferSize:        cfg.Monitor.BufferSize,
		FlushInterval:     cfg.Monitor.FlushInterval,
		SweepInterval:     cfg.Monitor.SweepInterval,
		ResolvedRetention: monitor.DefaultConfig().ResolvedRetention,
	})
	mon.Start(ctx)
	defer mon.Stop()

	// 7. Create LLM client and agent invoker
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	invoker := agent.NewInvoker(reg, llmClient, mon)

	// 8. Start the distributed coordination service
	dist := distributed.New(dbClient.Client, brokerClient, distributed.Config{
		NodeID:           podID,
		StatsInterval:    cfg.Distributed.StatsInterval,
		StaleAfter:       cfg.Distributed.StaleAfter,
		LeaseDuration:    cfg.Distributed.LeaseDuration,
		ElectionInterval: cfg.Distributed.ElectionInterval,
	})
	if cfg.Distributed.Enabled && brokerClient != nil {
		dist.Start(ctx)
		defer dist.Stop()
		slog.Info("Distributed coordination started", "node_id", podID)
	}

	// 9. Start the orchestrator
	orch := orchestrator.New(dbClient.Client, reg, mon, llmClient, invoker, dist,
		orchestrator.Config{
			QueueSize: cfg.Orchestrator.QueueSize,
			PodID:     podID,
		})
	orch.Start(ctx)

	// 10. Optionally run an in-process worker consuming broker queues
	var runner *distributed.Runner
	if brokerClient != nil && getEnv("WORKER_MODE", "true") == "true" {
		runner = distributed.NewRunner(dbClient.Client, brokerClient, dist, reg, mon,
			invoker, orch, distributed.RunnerConfig{})
		if err := runner.Start(ctx); err != nil {
			slog.Error("Failed to start worker runner", "error", err)
			os.Exit(1)
		}
		slog.Info("Worker runner started")
	}

	// 11. Retention cleanup, gated on the cleanup_coordinator lease so only
	// one pod sweeps at a time
	cleanupSvc := cleanup.NewService(dbClient.Client, cfg.Retention)
	cleanupCtx, cleanupCancel := context.WithCancel(ctx)
	if cfg.Distributed.Enabled && brokerClient != nil {
		go gateCleanupOnLeadership(cleanupCtx, cleanupSvc, dist, cfg.Distributed.ElectionInterval)
	} else {
		cleanupSvc.Start(cleanupCtx)
	}
	defer func() {
		cleanupCancel()
		cleanupSvc.Stop()
	}()

	// 12. Create and start the HTTP server (non-blocking)
	manualTasks := services.NewManualTaskService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client, orch)
	server := api.NewServer(dbClient, brokerClient, reg, taskService, mon, dist,
		manualTasks, errorLogs)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully", "pod_id", podID)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.GracefulShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	// Drain the worker before stopping the orchestrator: in-flight subtasks
	// may still call back into it.
	if runner != nil {
		runner.Stop(shutdownCtx)
		slog.Info("Worker runner stopped")
	}

	orch.Stop()
	slog.Info("Orchestrator stopped")

	slog.Info("Maestro shutdown complete")
}

// connectBroker dials Redis with exponential backoff so a broker that is
// still coming up (e.g. during a rolling restart) does not force degraded
// mode for the whole process lifetime.
func connectBroker(ctx context.Context, rc config.RedisConfig) (*broker.Client, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 15 * time.Second

	var client *broker.Client
	err := backoff.Retry(func() error {
		var err error
		client, err = broker.NewClient(ctx, broker.Config{
			Addr:         rc.Addr,
			Password:     rc.Password,
			DB:           rc.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		return err
	}, backoff.WithContext(b, ctx))
	return client, err
}

// gateCleanupOnLeadership starts and stops the cleanup service as the
// cleanup_coordinator lease is won and lost.
func gateCleanupOnLeadership(ctx context.Context, svc *cleanup.Service, dist *distributed.Service, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	running := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			leader := dist.IsLeader(ctx, distributed.RoleCleanupCoordinator)
			switch {
			case leader && !running:
				svc.Start(ctx)
				running = true
			case !leader && running:
				svc.Stop()
				running = false
			}
		}
	}
}
