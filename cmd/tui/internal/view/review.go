package view

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/transaction"
)

// ReviewModel walks through the engine's categorization suggestions one
// at a time; each one is applied only on explicit confirmation.
type ReviewModel struct {
	CommonModel
	txService *transaction.Service
	engine    *category.Engine

	queue   []category.Suggestion
	current *category.Suggestion
	form    *huh.Form
	accept  bool

	loading    bool
	status     string
	totalCount int
}

func NewReviewModel(txSvc *transaction.Service, engine *category.Engine) ReviewModel {
	return ReviewModel{
		txService: txSvc,
		engine:    engine,
		loading:   true,
		status:    "Analisando transações...",
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadSuggestionsCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.loading {
			return m, nil
		}

	case loadSuggestionsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao carregar: %v", msg.err)
			return m, nil
		}

		m.queue = msg.suggestions
		m.totalCount = len(m.queue)

		if m.totalCount == 0 {
			m.status = "Nenhuma sugestão no momento. Tudo categorizado!"
			return m, nil
		}

		return m.nextSuggestion()

	case applyResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao aplicar: %v", msg.err)
			return m, nil
		}

		return m.nextSuggestion()
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		if m.accept {
			return m, m.applyCmd()
		}

		return m.nextSuggestion()
	}

	return m, nil
}

// nextSuggestion pops the queue and builds a fresh confirm form for it.
func (m ReviewModel) nextSuggestion() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.current = nil
		m.form = nil
		m.status = "Revisão concluída!"

		return m, nil
	}

	s := m.queue[0]
	m.queue = m.queue[1:]
	m.current = &s
	m.accept = true

	reviewed := m.totalCount - len(m.queue)
	m.status = fmt.Sprintf("Sugestão %d/%d", reviewed, m.totalCount)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Aplicar esta categoria?").
				Affirmative("Aplicar").
				Negative("Pular").
				Value(&m.accept),
		),
	).WithShowHelp(false)

	return m, m.form.Init()
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc para voltar)")
	}

	tx := m.current.Transaction
	old := m.current.OldCategory
	if old == "" {
		old = "(sem categoria)"
	}

	info := fmt.Sprintf(
		"%s\n\nData:      %s\nValor:     %s\nDescrição: %s\n\nAtual:     %s\nSugerida:  %s (%.0f%%, %s)",
		m.status,
		FormatDate(tx.Date),
		FormatAmount(tx.AmountCents),
		tx.Description,
		old,
		m.current.NewCategory,
		m.current.Confidence*100,
		m.current.Reason,
	)

	formView := ""
	if m.form != nil {
		formView = "\n\n" + m.form.View()
	}

	return lipgloss.NewStyle().Padding(2).Render(info + formView + "\n\n(Esc para voltar)")
}

type loadSuggestionsMsg struct {
	suggestions []category.Suggestion
	err         error
}

func (m ReviewModel) loadSuggestionsCmd() tea.Cmd {
	return func() tea.Msg {
		txs, err := m.txService.List(context.Background(), transaction.ListFilter{})
		if err != nil {
			return loadSuggestionsMsg{err: err}
		}

		return loadSuggestionsMsg{suggestions: m.engine.BatchCategorize(txs)}
	}
}

type applyResultMsg struct {
	err error
}

func (m ReviewModel) applyCmd() tea.Cmd {
	s := m.current

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.txService.ApplyCategory(ctx, s.Transaction.ID, s.NewCategory)

		return applyResultMsg{err: err}
	}
}
