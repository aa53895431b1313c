package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/schedule"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

// SchedulesModel lists recurring schedules and lets the user pause,
// resume, or run the due ones on the spot.
type SchedulesModel struct {
	CommonModel
	engine *schedule.Engine
	owner  scope.Scope

	table     table.Model
	schedules []*schedule.Schedule

	status  string
	loading bool
}

func NewSchedulesModel(engine *schedule.Engine, owner scope.Scope) SchedulesModel {
	columns := []table.Column{
		{Title: "Next Run", Width: 12},
		{Title: "Frequency", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Currency", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Active", Width: 6},
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
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return SchedulesModel{
		engine:  engine,
		owner:   owner,
		table:   t,
		loading: true,
	}
}

func (m SchedulesModel) Init() tea.Cmd {
	return m.loadSchedulesCmd()
}

type loadSchedulesMsg struct {
	schedules []*schedule.Schedule
	err       error
}

func (m SchedulesModel) loadSchedulesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		schedules, err := m.engine.List(ctx, m.owner, false)
		return loadSchedulesMsg{schedules: schedules, err: err}
	}
}

type toggleScheduleMsg struct {
	err error
}

func (m SchedulesModel) toggleCmd(id uuid.UUID, active bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if active {
			err = m.engine.Deactivate(ctx, m.owner, id)
		} else {
			err = m.engine.Activate(ctx, m.owner, id)
		}
		return toggleScheduleMsg{err: err}
	}
}

type processDueMsg struct {
	result *schedule.Result
	err    error
}

func (m SchedulesModel) processDueCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.engine.ProcessDue(ctx, m.owner, time.Now())
		return processDueMsg{result: result, err: err}
	}
}

func (m *SchedulesModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.schedules))
	for _, s := range m.schedules {
		active := "no"
		if s.IsActive {
			active = "yes"
		}
		rows = append(rows, table.Row{
			FormatDate(s.NextRunDate),
			string(s.Frequency),
			FormatAmount(s.Template.Amount),
			s.Template.Currency,
			s.Template.Category,
			active,
		})
	}
	m.table.SetRows(rows)
}

func (m SchedulesModel) selected() *schedule.Schedule {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.schedules) {
		return nil
	}
	return m.schedules[idx]
}

func (m SchedulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSchedulesMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.schedules = msg.schedules
		m.refreshRows()
		return m, nil

	case toggleScheduleMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		return m, m.loadSchedulesCmd()

	case processDueMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Processed %d schedule(s), %d error(s)",
			msg.result.Processed, len(msg.result.Errors))
		return m, m.loadSchedulesCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case " ":
			if s := m.selected(); s != nil {
				return m, m.toggleCmd(s.ID, s.IsActive)
			}
		case "p":
			m.status = "Processing due schedules..."
			return m, m.processDueCmd()
		case "r":
			return m, m.loadSchedulesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SchedulesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading schedules...")
	}

	help := "Space: toggle active | p: process due | r: refresh | Esc: back"
	view := m.table.View() + "\n\n" + lipgloss.NewStyle().Faint(true).Render(help)

	if m.status != "" {
		view += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(view)
}
