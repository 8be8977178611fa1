package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListModel shows the registry and drives toggle/delete from the keyboard.
type ListModel struct {
	Session *Session
	Table   table.Model
	Rows    []SoftwareRow
	Total   int
	Status  string
	Err     error
}

type listLoadedMsg struct {
	Total int
	Rows  []SoftwareRow
	Err   error
}

type actionDoneMsg struct {
	Status string
	Err    error
}

// OpenAddFormMsg asks the root model to switch to the add form.
type OpenAddFormMsg struct{}

func NewListModel(s *Session, height int) ListModel {
	columns := []table.Column{
		{Title: "ID", Width: 15},
		{Title: "Name", Width: 24},
		{Title: "Version", Width: 10},
		{Title: "Enabled", Width: 8},
		{Title: "Created", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return ListModel{Session: s, Table: t}
}

func (m ListModel) Refresh() tea.Cmd {
	s := m.Session
	return func() tea.Msg {
		total, rows, err := s.List(1, 100, "")
		return listLoadedMsg{Total: total, Rows: rows, Err: err}
	}
}

func (m ListModel) selected() (SoftwareRow, bool) {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Rows) {
		return SoftwareRow{}, false
	}
	return m.Rows[idx], true
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.Refresh()
		case "a":
			return m, func() tea.Msg { return OpenAddFormMsg{} }
		case "enter":
			if row, ok := m.selected(); ok {
				s := m.Session
				return m, func() tea.Msg {
					if err := s.Toggle(row.ID, !row.Enabled); err != nil {
						return actionDoneMsg{Err: err}
					}
					verb := "enabled"
					if row.Enabled {
						verb = "disabled"
					}
					return actionDoneMsg{Status: fmt.Sprintf("%s %s", verb, row.Name)}
				}
			}
		case "d":
			if row, ok := m.selected(); ok {
				s := m.Session
				return m, func() tea.Msg {
					if err := s.Delete(row.ID); err != nil {
						return actionDoneMsg{Err: err}
					}
					return actionDoneMsg{Status: fmt.Sprintf("deleted %s", row.Name)}
				}
			}
		case "q":
			return m, tea.Quit
		}

	case listLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Total = msg.Total
		m.Rows = msg.Rows
		rows := make([]table.Row, 0, len(msg.Rows))
		for _, sw := range msg.Rows {
			state := disabledStyle("off")
			if sw.Enabled {
				state = enabledStyle("on")
			}
			rows = append(rows, table.Row{
				strconv.FormatInt(sw.ID, 10), sw.Name, sw.Version, state, sw.CreateTime,
			})
		}
		m.Table.SetRows(rows)

	case actionDoneMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = msg.Status
		return m, m.Refresh()
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m ListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Software Registry (%d entries)", m.Total)) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("enter: toggle  d: delete  a: add  r: refresh  q: quit"))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
