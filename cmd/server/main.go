package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lucasmv/bankapi/internal/adapter/httpapi"
	"github.com/lucasmv/bankapi/internal/adapter/repository/memory"
	"github.com/lucasmv/bankapi/internal/adapter/repository/postgres"
	"github.com/lucasmv/bankapi/internal/config"
	"github.com/lucasmv/bankapi/internal/domain"
	"github.com/lucasmv/bankapi/internal/log"
	"github.com/lucasmv/bankapi/internal/usecase/account"
	"github.com/lucasmv/bankapi/internal/usecase/transaction"
	"github.com/lucasmv/bankapi/internal/usecase/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	logger := log.Default("server")

	// 1. Setup persistence
	accountRepo, transactionRepo, cleanup, err := buildRepositories(cfg)
	if err != nil {
		stdlog.Fatalf("Failed to set up %s storage: %v", cfg.DataBackend, err)
	}
	defer cleanup()

	// 2. Initialize services
	accountService := account.NewService(accountRepo)
	transactionService := transaction.NewService(
		validation.NewAccountResolver(accountRepo),
		validation.NewBalanceValidator(),
		transactionRepo,
	)

	// 3. Start HTTP server
	api := httpapi.NewServer(accountService, transactionService, logger.WithComponent("httpapi"))
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.Handler(cfg.APIToken),
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			stdlog.Fatalf("Failed to serve: %v", err)
		}
	}()

	waitForShutdown(srv, logger)
}

// buildRepositories selects the storage backend from the configuration
func buildRepositories(cfg *config.Config) (domain.AccountRepository, domain.TransactionRepository, func(), error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		db, err := postgres.NewDB(cfg.DatabaseConnStr())
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgres.NewAccountRepository(db), postgres.NewTransactionRepository(db), func() { db.Close() }, nil
	default:
		accounts := memory.NewAccountRepository()
		return accounts, memory.NewTransactionRepository(accounts), func() {}, nil
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(srv *http.Server, logger *log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("Shutting down gracefully", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		stdlog.Fatalf("Failed to shut down server: %v", err)
	}
	logger.Info("HTTP server stopped")
}
