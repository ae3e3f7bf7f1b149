package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmarques/financo/internal/analytics"
	"github.com/dmarques/financo/internal/insight"
	"github.com/dmarques/financo/internal/snapshot"
)

var insightStyles = map[insight.Type]lipgloss.Style{
	insight.TypeCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	insight.TypeWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	insight.TypeSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	insight.TypeInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

var faintStyle = lipgloss.NewStyle().Faint(true)

// InsightsModel shows the financial score and the generated insights,
// most urgent first.
type InsightsModel struct {
	CommonModel
	loader *snapshot.Loader

	score    analytics.Score
	insights []insight.Insight

	loading bool
	err     error
}

func NewInsightsModel(loader *snapshot.Loader) InsightsModel {
	return InsightsModel{loader: loader, loading: true}
}

func (m InsightsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}

	case loadInsightsMsg:
		m.loading = false
		m.err = msg.err
		m.score = msg.score
		m.insights = msg.insights
	}

	return m, nil
}

func (m InsightsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Calculando...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Saúde financeira: %d/100\n", m.score.Total))
	b.WriteString(faintStyle.Render(fmt.Sprintf(
		"poupança %.1f · orçamentos %.1f · metas %.1f · diversificação %.1f",
		m.score.Breakdown.SavingsRate,
		m.score.Breakdown.BudgetCompliance,
		m.score.Breakdown.GoalProgress,
		m.score.Breakdown.Diversification,
	)))
	b.WriteString("\n\n")

	if len(m.insights) == 0 {
		b.WriteString("Nenhum insight no momento.\n")
	}

	for _, in := range m.insights {
		style, ok := insightStyles[in.Type]
		if !ok {
			style = insightStyles[insight.TypeInfo]
		}

		b.WriteString(style.Render(in.Title))
		b.WriteString("\n" + in.Description + "\n")

		if in.Recommendation != "" {
			b.WriteString(faintStyle.Render(in.Recommendation) + "\n")
		}

		b.WriteString("\n")
	}

	b.WriteString("(r para recalcular, Esc para voltar)")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

type loadInsightsMsg struct {
	score    analytics.Score
	insights []insight.Insight
	err      error
}

func (m InsightsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		snap, err := m.loader.Load(ctx)
		if err != nil {
			return loadInsightsMsg{err: err}
		}

		engine := analytics.New(snap)

		return loadInsightsMsg{
			score:    engine.FinancialScore(),
			insights: insight.Generate(engine),
		}
	}
}
