package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/recruitflow/recruitflow/internal/api"
	"github.com/recruitflow/recruitflow/internal/config"
	"github.com/recruitflow/recruitflow/internal/domain/candidate"
	"github.com/recruitflow/recruitflow/internal/domain/dashboard"
	"github.com/recruitflow/recruitflow/internal/domain/interview"
	"github.com/recruitflow/recruitflow/internal/domain/position"
	"github.com/recruitflow/recruitflow/internal/fixtures"
	"github.com/recruitflow/recruitflow/internal/mcp"
	"github.com/recruitflow/recruitflow/internal/sqlite"
	"github.com/recruitflow/recruitflow/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	candidateRepo := sqlite.NewCandidateRepository(db)
	positionRepo := sqlite.NewPositionRepository(db)
	interviewRepo := sqlite.NewInterviewRepository(db)

	if cfg.Fixtures.Seed {
		stores := fixtures.Stores{
			Candidates: candidateRepo,
			Positions:  positionRepo,
			Interviews: interviewRepo,
		}
		if err := fixtures.Seed(context.Background(), stores, logger); err != nil {
			logger.Error("failed to seed fixtures", "error", err)
			os.Exit(1)
		}
	}

	candidateSvc := candidate.NewService(candidateRepo, logger)
	positionSvc := position.NewService(positionRepo, logger)
	interviewSvc := interview.NewService(interviewRepo, logger)
	dashboardSvc := dashboard.NewService(candidateRepo, positionRepo, logger)

	handler := api.NewHandler(candidateSvc, positionSvc, interviewSvc, dashboardSvc)

	mcpServer := mcp.NewServer(mcp.Config{
		Handler: handler,
		Logger:  logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, handler, cfg)
	}
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	stdio := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled.
	if err := mcpServer.Run(ctx, stdio); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, handler *api.Handler, cfg config.Config) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := transport.NewServer(handler, logger, cfg.Auth.Token, mcpHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
