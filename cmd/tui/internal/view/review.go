package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

// ReviewModel walks through flows flagged needs_review one at a time:
// fix the description, approve, or skip.
type ReviewModel struct {
	CommonModel
	flowService *flow.Service
	owner       scope.Scope

	queue   []*flow.Flow
	current *flow.Flow

	descInput textinput.Model

	status     string
	loading    bool
	totalCount int
}

func NewReviewModel(flowSvc *flow.Service, owner scope.Scope) ReviewModel {
	ti := textinput.New()
	ti.Placeholder = "Description"
	ti.Width = 50

	return ReviewModel{
		flowService: flowSvc,
		owner:       owner,
		descInput:   ti,
		loading:     true,
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

type loadReviewMsg struct {
	flows []*flow.Flow
	err   error
}

func (m ReviewModel) loadQueueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		flows, err := m.flowService.List(ctx, m.owner, flow.ListFilter{
			NeedsReview: new(true),
		})

		return loadReviewMsg{flows: flows, err: err}
	}
}

type reviewSaveMsg struct {
	err error
}

func (m ReviewModel) approveCmd() tea.Cmd {
	f := m.current
	desc := m.descInput.Value()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.flowService.Update(ctx, m.owner, f.ID, flow.UpdateParams{
			Description: &desc,
			NeedsReview: new(false),
		})

		return reviewSaveMsg{err: err}
	}
}

func (m *ReviewModel) advance() {
	if len(m.queue) == 0 {
		m.current = nil
		return
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.descInput.SetValue(m.current.Description)
	m.descInput.Focus()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReviewMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.queue = msg.flows
		m.totalCount = len(msg.flows)
		m.advance()
		return m, textinput.Blink

	case reviewSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}
		m.status = ""
		m.advance()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			if m.current != nil {
				return m, m.approveCmd()
			}
		case tea.KeyTab:
			// Skip without approving.
			if m.current != nil {
				m.advance()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading review queue...")
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Nothing left to review (%d done).\n\nEsc: back", m.totalCount),
		)
	}

	remaining := len(m.queue) + 1
	header := fmt.Sprintf("Reviewing %d of %d", m.totalCount-remaining+1, m.totalCount)

	details := fmt.Sprintf(
		"%s  %s %s  [%s]",
		FormatDate(m.current.Date),
		FormatAmount(m.current.Amount),
		m.current.Currency,
		m.current.Type,
	)

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(fmt.Sprintf("%s\n\n%s\n\n%s\n\nEnter: approve | Tab: skip | Esc: back",
			header, details, m.descInput.View()))

	if m.status != "" {
		panel = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + panel
	}

	return lipgloss.NewStyle().Padding(1).Render(panel)
}
