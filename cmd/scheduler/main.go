package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

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
	"github.com/MrJamesThe3rd/flowy/internal/schedule"
	scheduleStore "github.com/MrJamesThe3rd/flowy/internal/schedule/store"
)

func main() {
	once := flag.Bool("once", false, "run a single pass and exit")
	flag.Parse()

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

		flowService = flow.NewService(flows, schedules, assets, debts, categories, adjuster)
		engine      = schedule.NewEngine(schedules, flowService)
	)

	if *once {
		runPass(context.Background(), engine, cfg.Scheduler.MaxCatchUp)
		return
	}

	slog.Info("scheduler started", "interval", cfg.Scheduler.Interval)

	ticker := time.NewTicker(cfg.Scheduler.Interval)
	defer ticker.Stop()

	runPass(context.Background(), engine, cfg.Scheduler.MaxCatchUp)

	for range ticker.C {
		runPass(context.Background(), engine, cfg.Scheduler.MaxCatchUp)
	}
}

// runPass processes every owner with due schedules. ProcessDue advances
// each schedule one period per call, so a fallen-behind owner is
// re-processed until the due set drains or the catch-up bound is hit.
func runPass(ctx context.Context, engine *schedule.Engine, maxCatchUp int) {
	today := time.Now()

	owners, err := engine.DueOwners(ctx, today)
	if err != nil {
		slog.Error("failed to list owners with due schedules", "error", err)
		return
	}

	for _, owner := range owners {
		for range maxCatchUp {
			result, err := engine.ProcessDue(ctx, owner, today)
			if err != nil {
				slog.Error("processing pass failed", "owner", owner.UserID, "error", err)
				break
			}

			slog.Info("processed due schedules",
				"owner", owner.UserID,
				"processed", result.Processed,
				"created", len(result.CreatedFlows),
				"errors", len(result.Errors))

			for _, item := range result.Errors {
				slog.Error("schedule failed", "schedule_id", item.ScheduleID, "error", item.Error)
			}

			if result.Processed == 0 {
				break
			}
		}
	}
}
