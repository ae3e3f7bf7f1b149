package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dmarques/financo/cmd/tui/internal/view"
	"github.com/dmarques/financo/internal/account"
	accountStore "github.com/dmarques/financo/internal/account/store"
	"github.com/dmarques/financo/internal/budget"
	budgetStore "github.com/dmarques/financo/internal/budget/store"
	"github.com/dmarques/financo/internal/category"
	categoryStore "github.com/dmarques/financo/internal/category/store"
	"github.com/dmarques/financo/internal/config"
	"github.com/dmarques/financo/internal/database"
	"github.com/dmarques/financo/internal/goal"
	goalStore "github.com/dmarques/financo/internal/goal/store"
	"github.com/dmarques/financo/internal/snapshot"
	"github.com/dmarques/financo/internal/transaction"
	txStore "github.com/dmarques/financo/internal/transaction/store"
)

type model struct {
	txService *transaction.Service
	engine    *category.Engine
	loader    *snapshot.Loader

	currentView View

	reviewView   view.ReviewModel
	insightsView view.InsightsModel
	listView     view.ListModel
}

type View int

const (
	ViewMenu     View = 0
	ViewReview   View = 1
	ViewInsights View = 2
	ViewList     View = 3
)

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

	customRules, err := categoryStore.New(db).ListRules(context.Background())
	if err != nil {
		slog.Error("failed to load custom rules", "error", err)
		os.Exit(1)
	}

	catalog, err := category.NewCatalog(customRules...)
	if err != nil {
		slog.Error("failed to build rule catalog", "error", err)
		os.Exit(1)
	}

	engine := category.NewEngine(catalog)
	accountSvc := account.NewService(accountStore.New(db))
	txSvc := transaction.NewService(txStore.New(db), accountSvc)
	budgetSvc := budget.NewService(budgetStore.New(db))
	goalSvc := goal.NewService(goalStore.New(db))
	loader := snapshot.NewLoader(txSvc, accountSvc, budgetSvc, goalSvc)

	return model{
		txService:    txSvc,
		engine:       engine,
		loader:       loader,
		currentView:  ViewMenu,
		reviewView:   view.NewReviewModel(txSvc, engine),
		insightsView: view.NewInsightsModel(loader),
		listView:     view.NewListModel(txSvc),
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
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.txService, m.engine)

				return m, m.reviewView.Init()
			case "2":
				m.currentView = ViewInsights
				m.insightsView = view.NewInsightsModel(m.loader)

				return m, m.insightsView.Init()
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService)

				return m, m.listView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewInsights:
		var newModel tea.Model
		newModel, cmd = m.insightsView.Update(msg)
		m.insightsView = newModel.(view.InsightsModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Financo TUI\n\n" +
				"1. Review Category Suggestions\n" +
				"2. Insights & Financial Score\n" +
				"3. Browse Transactions\n\n" +
				"q. Quit",
		)
	case ViewReview:
		return m.reviewView.View()
	case ViewInsights:
		return m.insightsView.View()
	case ViewList:
		return m.listView.View()
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
