package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

type flowsState int

const (
	flowsStateBrowse flowsState = iota
	flowsStateEdit
)

type FlowsModel struct {
	CommonModel
	flowService *flow.Service
	owner       scope.Scope

	state flowsState
	table table.Model
	flows []*flow.Flow
	form  *huh.Form

	// Filter cycling
	typeFilterIdx   int
	reviewFilterIdx int

	filter  flow.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formDesc   string
	formAmount string
}

func NewFlowsModel(flowSvc *flow.Service, owner scope.Scope) FlowsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Currency", Width: 8},
		{Title: "Category", Width: 14},
		{Title: "Description", Width: 36},
		{Title: "Review", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return FlowsModel{
		flowService: flowSvc,
		owner:       owner,
		table:       t,
		filter:      flow.ListFilter{},
	}
}

func (m FlowsModel) Init() tea.Cmd {
	return m.loadFlowsCmd()
}

func (m FlowsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadFlowsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.flows = msg.flows
		m.status = ""
		m.refreshTable()
		return m, nil

	case flowSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}
		m.state = flowsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadFlowsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case flowsStateBrowse:
		return m.updateBrowse(msg)
	case flowsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m FlowsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadFlowsCmd()
		case "e":
			return m.enterEditMode()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 5
			m.applyFilter()
			return m, m.loadFlowsCmd()
		case "v":
			m.reviewFilterIdx = (m.reviewFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadFlowsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m FlowsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.flows) {
		return m, nil
	}

	f := m.flows[idx]
	m.formDesc = f.Description
	m.formAmount = f.Amount.String()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if !d.IsPositive() {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = flowsStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m FlowsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = flowsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m FlowsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading flows...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "Income", "Expense", "Transfer", "Other"}
	reviewLabels := []string{"All", "Needs Review", "Reviewed"}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [v] Review: %s",
		activeStyle(typeLabels[m.typeFilterIdx]),
		activeStyle(reviewLabels[m.reviewFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == flowsStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Edit Flow\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *FlowsModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		m.filter.Type = new(flow.TypeIncome)
	case 2:
		m.filter.Type = new(flow.TypeExpense)
	case 3:
		m.filter.Type = new(flow.TypeTransfer)
	case 4:
		m.filter.Type = new(flow.TypeOther)
	default:
		m.filter.Type = nil
	}

	switch m.reviewFilterIdx {
	case 1:
		m.filter.NeedsReview = new(true)
	case 2:
		m.filter.NeedsReview = new(false)
	default:
		m.filter.NeedsReview = nil
	}
}

func (m *FlowsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.flows))
	for _, f := range m.flows {
		review := ""
		if f.NeedsReview {
			review = "yes"
		}
		rows = append(rows, table.Row{
			FormatDate(f.Date),
			string(f.Type),
			FormatAmount(f.Amount),
			f.Currency,
			f.Category,
			f.Description,
			review,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadFlowsMsg struct {
	flows []*flow.Flow
	err   error
}

func (m FlowsModel) loadFlowsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		flows, err := m.flowService.List(ctx, m.owner, m.filter)
		return loadFlowsMsg{flows: flows, err: err}
	}
}

type flowSaveMsg struct {
	err error
}

func (m FlowsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.flows) {
		return nil
	}

	f := m.flows[idx]
	desc := m.formDesc
	amount, err := decimal.NewFromString(strings.TrimSpace(m.formAmount))
	if err != nil {
		return func() tea.Msg { return flowSaveMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.flowService.Update(ctx, m.owner, f.ID, flow.UpdateParams{
			Description:    &desc,
			Amount:         &amount,
			AdjustBalances: true,
		})

		return flowSaveMsg{err: err}
	}
}
