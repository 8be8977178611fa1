package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateList
	stateAdd
)

type RootModel struct {
	State    state
	Session  *Session
	Login    LoginModel
	List     ListModel
	AddForm  AddFormModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel() RootModel {
	s := NewSession()
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateList || m.State == stateAdd {
			m.List.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			m.Session.Logout()
			return m, tea.Quit
		}

	case LoginDoneMsg:
		if msg.Err == nil {
			if msg.Role != "admin" {
				m.Login.Err = fmt.Errorf("the console needs an admin account")
				return m, nil
			}
			height := m.height
			if height == 0 {
				height = 24
			}
			m.List = NewListModel(m.Session, height)
			m.State = stateList
			return m, m.List.Refresh()
		}

	case OpenAddFormMsg:
		m.AddForm = NewAddFormModel(m.Session)
		m.State = stateAdd
		return m, m.AddForm.Init()

	case AddDoneMsg:
		if msg.Err == nil {
			m.State = stateList
			if msg.ID != 0 {
				m.List.Status = fmt.Sprintf("added software %d", msg.ID)
			}
			return m, m.List.Refresh()
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateList:
		m.List, cmd = m.List.Update(msg)
	case stateAdd:
		m.AddForm, cmd = m.AddForm.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	if m.Quitting {
		return "bye\n"
	}
	switch m.State {
	case stateList:
		return m.List.View()
	case stateAdd:
		return m.AddForm.View()
	default:
		return m.Login.View()
	}
}
