package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/flowy/cmd/tui/internal/view"
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
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

type model struct {
	flowService *flow.Service
	engine      *schedule.Engine
	owner       scope.Scope

	currentView View

	flowsView     view.FlowsModel
	reviewView    view.ReviewModel
	schedulesView view.SchedulesModel
}

type View int

const (
	ViewMenu      View = 0
	ViewFlows     View = 1
	ViewReview    View = 2
	ViewSchedules View = 3
)

func ownerFromConfig(cfg *config.Config) scope.Scope {
	userID, err := uuid.Parse(cfg.TUI.UserID)
	if err != nil {
		slog.Error("TUI_USER_ID must be a valid UUID", "error", err)
		os.Exit(1)
	}

	if cfg.TUI.FamilyID == "" {
		return scope.Personal(userID)
	}

	familyID, err := uuid.Parse(cfg.TUI.FamilyID)
	if err != nil {
		slog.Error("TUI_FAMILY_ID must be a valid UUID", "error", err)
		os.Exit(1)
	}

	return scope.Family(userID, familyID)
}

func initialModel() model {
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

	owner := ownerFromConfig(cfg)

	assets := assetStore.New(db)
	debts := debtStore.New(db)
	categories := categoryStore.New(db)
	flows := flowStore.New(db)
	schedules := scheduleStore.New(db)

	rates := currency.NewHTTPRateSource(cfg.Rates.URL, cfg.Rates.Base, cfg.Rates.Timeout)
	adjuster := balance.NewAdjuster(assets, debts, currency.NewConverter(rates))

	flowSvc := flow.NewService(flows, schedules, assets, debts, categories, adjuster)
	engine := schedule.NewEngine(schedules, flowSvc)

	return model{
		flowService:   flowSvc,
		engine:        engine,
		owner:         owner,
		currentView:   ViewMenu,
		flowsView:     view.NewFlowsModel(flowSvc, owner),
		reviewView:    view.NewReviewModel(flowSvc, owner),
		schedulesView: view.NewSchedulesModel(engine, owner),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewFlows
				m.flowsView = view.NewFlowsModel(m.flowService, m.owner)

				return m, m.flowsView.Init()
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.flowService, m.owner)

				return m, m.reviewView.Init()
			case "3":
				m.currentView = ViewSchedules
				m.schedulesView = view.NewSchedulesModel(m.engine, m.owner)

				return m, m.schedulesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewFlows:
		var newModel tea.Model
		newModel, cmd = m.flowsView.Update(msg)
		m.flowsView = newModel.(view.FlowsModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewSchedules:
		var newModel tea.Model
		newModel, cmd = m.schedulesView.Update(msg)
		m.schedulesView = newModel.(view.SchedulesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Flowy TUI\n\n" +
				"1. Browse Flows\n" +
				"2. Review Flagged Flows\n" +
				"3. Manage Schedules\n\n" +
				"q. Quit",
		)
	case ViewFlows:
		return m.flowsView.View()
	case ViewReview:
		return m.reviewView.View()
	case ViewSchedules:
		return m.schedulesView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
