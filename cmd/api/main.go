package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	assetStore "github.com/MrJamesThe3rd/flowy/internal/asset/store"
	"github.com/MrJamesThe3rd/flowy/internal/balance"
	categoryStore "github.com/MrJamesThe3rd/flowy/internal/category/store"
	"github.com/MrJamesThe3rd/flowy/internal/config"
	"github.com/MrJamesThe3rd/flowy/internal/currency"
	"github.com/MrJamesThe3rd/flowy/internal/database"
	debtStore "github.com/MrJamesThe3rd/flowy/internal/debt/store"
	"github.com/MrJamesThe3rd/flowy/internal/flow"
	flowStore "github.com/MrJamesThe3rd/flowy/internal/flow/store"
	flowyHttp "github.com/MrJamesThe3rd/flowy/internal/http"
	flowHandler "github.com/MrJamesThe3rd/flowy/internal/http/flow"
	portfolioHandler "github.com/MrJamesThe3rd/flowy/internal/http/portfolio"
	scheduleHandler "github.com/MrJamesThe3rd/flowy/internal/http/schedule"
	"github.com/MrJamesThe3rd/flowy/internal/schedule"
	scheduleStore "github.com/MrJamesThe3rd/flowy/internal/schedule/store"
)

func main() {
	_ = godotenv.Load()

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

	var (
		assets     = assetStore.New(db)
		debts      = debtStore.New(db)
		categories = categoryStore.New(db)
		flows      = flowStore.New(db)
		schedules  = scheduleStore.New(db)

		rates     = currency.NewHTTPRateSource(cfg.Rates.URL, cfg.Rates.Base, cfg.Rates.Timeout)
		converter = currency.NewConverter(rates)
		adjuster  = balance.NewAdjuster(assets, debts, converter)

		flowService    = flow.NewService(flows, schedules, assets, debts, categories, adjuster)
		scheduleEngine = schedule.NewEngine(schedules, flowService)
	)

	var (
		flowsH     = flowHandler.NewHandler(flowService)
		schedulesH = scheduleHandler.NewHandler(scheduleEngine)
		portfolioH = portfolioHandler.NewHandler(assets, debts)
	)

	router := flowyHttp.New(flowsH, schedulesH, portfolioH, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
