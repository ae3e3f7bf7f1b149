package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmarques/financo/internal/account"
	accountStore "github.com/dmarques/financo/internal/account/store"
	"github.com/dmarques/financo/internal/budget"
	budgetStore "github.com/dmarques/financo/internal/budget/store"
	"github.com/dmarques/financo/internal/cache"
	"github.com/dmarques/financo/internal/category"
	categoryStore "github.com/dmarques/financo/internal/category/store"
	"github.com/dmarques/financo/internal/config"
	"github.com/dmarques/financo/internal/creditcard"
	cardStore "github.com/dmarques/financo/internal/creditcard/store"
	"github.com/dmarques/financo/internal/database"
	"github.com/dmarques/financo/internal/goal"
	goalStore "github.com/dmarques/financo/internal/goal/store"
	financoHttp "github.com/dmarques/financo/internal/http"
	accountHandler "github.com/dmarques/financo/internal/http/account"
	analyticsHandler "github.com/dmarques/financo/internal/http/analytics"
	budgetHandler "github.com/dmarques/financo/internal/http/budget"
	cardHandler "github.com/dmarques/financo/internal/http/creditcard"
	goalHandler "github.com/dmarques/financo/internal/http/goal"
	importHandler "github.com/dmarques/financo/internal/http/importcsv"
	rulesHandler "github.com/dmarques/financo/internal/http/rules"
	txHandler "github.com/dmarques/financo/internal/http/transaction"
	"github.com/dmarques/financo/internal/importer"
	"github.com/dmarques/financo/internal/snapshot"
	"github.com/dmarques/financo/internal/transaction"
	txStore "github.com/dmarques/financo/internal/transaction/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ruleStore := categoryStore.New(db)

	customRules, err := ruleStore.ListRules(context.Background())
	if err != nil {
		slog.Error("failed to load custom rules", "error", err)
		os.Exit(1)
	}

	catalog, err := category.NewCatalog(customRules...)
	if err != nil {
		slog.Error("failed to build rule catalog", "error", err)
		os.Exit(1)
	}

	var (
		engine         = category.NewEngine(catalog)
		accountService = account.NewService(accountStore.New(db))
		txService      = transaction.NewService(txStore.New(db), accountService)
		budgetService  = budget.NewService(budgetStore.New(db))
		goalService    = goal.NewService(goalStore.New(db))
		cardService    = creditcard.NewService(cardStore.New(db))
		loader         = snapshot.NewLoader(txService, accountService, budgetService, goalService)
		analyticsCache = cache.New(cfg.Analytics.CacheEntries, cfg.Analytics.CacheTTL)
	)

	var (
		accountH   = accountHandler.NewHandler(accountService, analyticsCache)
		txH        = txHandler.NewHandler(txService, engine, analyticsCache)
		cardH      = cardHandler.NewHandler(cardService)
		budgetH    = budgetHandler.NewHandler(budgetService, analyticsCache)
		goalH      = goalHandler.NewHandler(goalService, analyticsCache)
		rulesH     = rulesHandler.NewHandler(catalog, ruleStore)
		analyticsH = analyticsHandler.NewHandler(loader, analyticsCache)
		importH    = importHandler.NewHandler(importer.NewParser(), txService, engine, analyticsCache)
	)

	router := financoHttp.New(accountH, txH, cardH, budgetH, goalH, rulesH, analyticsH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
