package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/moneta-dev/moneta/internal/budget"
	"github.com/moneta-dev/moneta/internal/card"
	"github.com/moneta-dev/moneta/internal/config"
	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/goal"
	monetaHttp "github.com/moneta-dev/moneta/internal/http"
	budgetHandler "github.com/moneta-dev/moneta/internal/http/budget"
	cardHandler "github.com/moneta-dev/moneta/internal/http/card"
	dashboardHandler "github.com/moneta-dev/moneta/internal/http/dashboard"
	debtHandler "github.com/moneta-dev/moneta/internal/http/debt"
	goalHandler "github.com/moneta-dev/moneta/internal/http/goal"
	investmentHandler "github.com/moneta-dev/moneta/internal/http/investment"
	profileHandler "github.com/moneta-dev/moneta/internal/http/profile"
	recurringHandler "github.com/moneta-dev/moneta/internal/http/recurring"
	txHandler "github.com/moneta-dev/moneta/internal/http/transaction"
	"github.com/moneta-dev/moneta/internal/investment"
	"github.com/moneta-dev/moneta/internal/kv"
	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/profile"
	"github.com/moneta-dev/moneta/internal/recurring"
	"github.com/moneta-dev/moneta/internal/report"
	"github.com/moneta-dev/moneta/internal/storage"
	"github.com/moneta-dev/moneta/internal/transaction"
)

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	kvStore, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.KV.Driver, "error", err)
		os.Exit(1)
	}
	defer kvStore.Close()

	store := storage.New(kvStore)

	var (
		cardService        = card.NewService(store)
		transactionService = transaction.NewService(store)
		goalService        = goal.NewService(store)
		debtService        = debt.NewService(store)
		budgetService      = budget.NewService(store)
		investmentService  = investment.NewService(store)
		profileService     = profile.NewService(store)
		ledgerService      = ledger.NewService(store)
		recurringService   = recurring.NewService(store)
		reportService      = report.NewService(store)
	)

	var (
		cardH        = cardHandler.NewHandler(cardService)
		transactionH = txHandler.NewHandler(transactionService)
		goalH        = goalHandler.NewHandler(goalService, ledgerService)
		debtH        = debtHandler.NewHandler(debtService, ledgerService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		investmentH  = investmentHandler.NewHandler(investmentService)
		profileH     = profileHandler.NewHandler(profileService)
		dashboardH   = dashboardHandler.NewHandler(reportService, ledgerService)
		recurringH   = recurringHandler.NewHandler(recurringService)
	)

	router := monetaHttp.New(
		cardH, transactionH, goalH, debtH, budgetH,
		investmentH, profileH, dashboardH, recurringH,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "store", cfg.KV.Driver)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.KV.Driver {
	case "memory":
		return kv.NewMemory(), nil
	case "redis":
		return kv.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	case "postgres":
		return kv.NewPostgres(ctx, cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("unknown kv driver %q", cfg.KV.Driver)
	}
}
