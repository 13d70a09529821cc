package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/rs/cors"

	"github.com/equibridge/backend/internal/accounts"
	"github.com/equibridge/backend/internal/auth"
	"github.com/equibridge/backend/internal/autoinvest"
	"github.com/equibridge/backend/internal/config"
	"github.com/equibridge/backend/internal/daily"
	"github.com/equibridge/backend/internal/disability"
	"github.com/equibridge/backend/internal/investment"
	"github.com/equibridge/backend/internal/jobs"
	"github.com/equibridge/backend/internal/ledger"
	"github.com/equibridge/backend/internal/orgs"
	"github.com/equibridge/backend/internal/router"
	"github.com/equibridge/backend/internal/storage"
	"github.com/equibridge/backend/internal/student"
	"github.com/equibridge/backend/internal/validate"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Unable to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("Cannot reach PostgreSQL. Ensure Postgres is running, e.g. docker-compose up -d", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to PostgreSQL")

	if err := storage.Migrate(cfg.DatabaseURL); err != nil {
		slog.Error("Schema migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Schema migrations applied")

	// River migrations
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		slog.Error("Failed to create River migrator", "error", err)
		os.Exit(1)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		slog.Error("River migrate up failed", "error", err)
		os.Exit(1)
	}
	slog.Info("River migrations applied")

	orgRepo := orgs.NewRepository(pool)
	if err := orgRepo.EnsureSeed(ctx); err != nil {
		slog.Error("Organization seed failed", "error", err)
		os.Exit(1)
	}

	validator, err := validate.NewValidator()
	if err != nil {
		slog.Error("Schema validator init failed", "error", err)
		os.Exit(1)
	}

	ledgerRepo := ledger.NewRepository(pool)
	ledgerSvc := ledger.NewService(ledgerRepo, cfg.LedgerHistoryLimit)

	investmentRepo := investment.NewRepository(pool)
	investmentSvc := investment.NewService(investmentRepo, ledgerSvc, cfg.Market)

	// Jobs: insert func is set after the River client exists (breaks init cycle)
	var insertMu sync.Mutex
	var insertFn jobs.InsertAutoInvestTxFunc
	insertAutoInvest := func(ctx context.Context, tx pgx.Tx, args autoinvest.Args) error {
		insertMu.Lock()
		fn := insertFn
		insertMu.Unlock()
		if fn == nil {
			panic("river insert not wired")
		}
		return fn(ctx, tx, args)
	}

	jobsRepo := jobs.NewRepository(pool)
	jobsSvc := jobs.NewService(jobsRepo, ledgerSvc, insertAutoInvest)

	workers := river.NewWorkers()
	river.AddWorker(workers, autoinvest.NewWorker(investmentSvc, logger))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		slog.Error("Failed to create River client", "error", err)
		os.Exit(1)
	}

	insertMu.Lock()
	insertFn = func(ctx context.Context, tx pgx.Tx, args autoinvest.Args) error {
		_, err := riverClient.InsertTx(ctx, tx, args, nil)
		return err
	}
	insertMu.Unlock()

	accountRepo := accounts.NewRepository(pool)

	studentRepo := student.NewRepository(pool)
	studentSvc := student.NewService(studentRepo, orgRepo, ledgerSvc, cfg.Repayment)

	authRepo := auth.NewRepository(pool)
	authSvc := auth.NewService(authRepo, cfg.JWTSecret)

	authHandler := auth.NewHandler(authSvc, logger)
	dailyHandler := daily.NewHandler(accountRepo, jobsSvc, ledgerSvc, investmentSvc, validator, logger)
	disabilityHandler := disability.NewHandler(accountRepo, jobsSvc, validator, logger)
	investmentHandler := investment.NewHandler(investmentSvc, logger)
	ledgerHandler := ledger.NewHandler(ledgerSvc, logger)
	studentHandler := student.NewHandler(studentSvc, orgRepo, validator, logger)

	apiRouter := router.New(authHandler, dailyHandler, disabilityHandler, investmentHandler, ledgerHandler, studentHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(apiRouter)

	riverCtx, stopRiver := context.WithCancel(ctx)
	defer stopRiver()
	go func() {
		if err := riverClient.Start(riverCtx); err != nil && riverCtx.Err() == nil {
			slog.Error("River client stopped", "error", err)
		}
	}()

	serverAddr := "0.0.0.0:" + cfg.Port
	slog.Info("Starting HTTP server", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		slog.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
}
