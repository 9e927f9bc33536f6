// Package main is the entry point for the Centavo API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/centavo/backend/config"
	"github.com/centavo/backend/internal/application/usecase/account"
	"github.com/centavo/backend/internal/application/usecase/dashboard"
	"github.com/centavo/backend/internal/application/usecase/futureentry"
	"github.com/centavo/backend/internal/application/usecase/installment"
	"github.com/centavo/backend/internal/application/usecase/transaction"
	"github.com/centavo/backend/internal/infra/db"
	"github.com/centavo/backend/internal/infra/server/router"
	"github.com/centavo/backend/internal/integration/entrypoint/controller"
	"github.com/centavo/backend/internal/integration/persistence"
	"github.com/centavo/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Centavo API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.AccountModel{},
			&model.TransactionModel{},
			&model.FutureEntryModel{},
			&model.InstallmentPurchaseModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers (only if database is available)
	var accountController *controller.AccountController
	var transactionController *controller.TransactionController
	var futureEntryController *controller.FutureEntryController
	var installmentController *controller.InstallmentController
	var dashboardController *controller.DashboardController

	if database != nil {
		// Create repositories
		accountRepo := persistence.NewAccountRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		futureEntryRepo := persistence.NewFutureEntryRepository(database.DB())
		purchaseRepo := persistence.NewInstallmentPurchaseRepository(database.DB())
		snapshotLoader := persistence.NewSnapshotLoader(database.DB())

		// Create account use cases
		createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
		listAccountsUseCase := account.NewListAccountsUseCase(snapshotLoader)
		updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
		deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

		// Create transaction use cases
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
		deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

		// Create installment use cases
		createPurchaseUseCase := installment.NewCreatePurchaseUseCase(purchaseRepo, futureEntryRepo, accountRepo)
		listPurchasesUseCase := installment.NewListPurchasesUseCase(purchaseRepo)
		deletePurchaseUseCase := installment.NewDeletePurchaseUseCase(purchaseRepo, futureEntryRepo)

		// Create future entry use cases
		createFutureEntryUseCase := futureentry.NewCreateFutureEntryUseCase(futureEntryRepo, accountRepo)
		listFutureEntriesUseCase := futureentry.NewListFutureEntriesUseCase(futureEntryRepo)
		payFutureEntryUseCase := futureentry.NewPayFutureEntryUseCase(futureEntryRepo, transactionRepo, accountRepo)
		deleteFutureEntryUseCase := futureentry.NewDeleteFutureEntryUseCase(futureEntryRepo, deletePurchaseUseCase)

		// Create dashboard use cases
		summaryUseCase := dashboard.NewGetSummaryUseCase(snapshotLoader)
		timelineUseCase := dashboard.NewGetTimelineUseCase(snapshotLoader)
		gridUseCase := dashboard.NewGetCategoryGridUseCase(snapshotLoader)
		netWorthUseCase := dashboard.NewGetNetWorthHistoryUseCase(snapshotLoader)
		statementUseCase := dashboard.NewGetCardStatementUseCase(snapshotLoader)

		// Create controllers
		accountController = controller.NewAccountController(
			createAccountUseCase,
			listAccountsUseCase,
			updateAccountUseCase,
			deleteAccountUseCase,
		)
		transactionController = controller.NewTransactionController(
			createTransactionUseCase,
			listTransactionsUseCase,
			deleteTransactionUseCase,
		)
		futureEntryController = controller.NewFutureEntryController(
			createFutureEntryUseCase,
			listFutureEntriesUseCase,
			payFutureEntryUseCase,
			deleteFutureEntryUseCase,
		)
		installmentController = controller.NewInstallmentController(
			createPurchaseUseCase,
			listPurchasesUseCase,
			deletePurchaseUseCase,
		)
		dashboardController = controller.NewDashboardController(
			summaryUseCase,
			timelineUseCase,
			gridUseCase,
			netWorthUseCase,
			statementUseCase,
		)

		slog.Info("Ledger systems initialized successfully")
	} else {
		slog.Warn("Ledger systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		futureEntryController,
		installmentController,
		dashboardController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
