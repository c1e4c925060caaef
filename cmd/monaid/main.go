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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/monailabs/monai/internal/common"
	"github.com/monailabs/monai/internal/export"
	"github.com/monailabs/monai/internal/llm"
	"github.com/monailabs/monai/internal/pipeline"
	repo "github.com/monailabs/monai/internal/repository"
	"github.com/monailabs/monai/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	provider, err := llm.New(cfg.LLM, logger)
	if err != nil {
		logger.Error("failed to configure inference provider", "error", err)
		os.Exit(1)
	}
	calendar, err := pipeline.NewCalendar(cfg.Eval.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Eval.Timezone, "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	dataRepo := repo.NewJobDataRepository(entc, logger)
	rulesRepo := repo.NewRuleRepository(entc, logger)
	groupsRepo := repo.NewRuleGroupRepository(entc, logger)
	auditRepo := repo.NewQueryLogRepository(entc, logger)

	evaluator := pipeline.NewEvaluator(
		jobsRepo, dataRepo, rulesRepo, auditRepo,
		provider, calendar, cfg.LLM.MaxTokens, logger,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := server.NewRouter(server.Deps{
		Config:    cfg,
		Evaluator: evaluator,
		Jobs:      jobsRepo,
		Rules:     rulesRepo,
		Groups:    groupsRepo,
		Audit:     auditRepo,
		Export:    export.NewService(auditRepo, logger),
		Metrics:   server.NewMetrics(registry),
		Registry:  registry,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("monaid listening",
		"addr", cfg.Server.HTTPAddr,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
