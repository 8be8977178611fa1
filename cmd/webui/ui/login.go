package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type LoginModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	inputHost = iota
	inputPort
	inputUsername
	inputPassword
)

// LoginDoneMsg reports a finished login attempt.
type LoginDoneMsg struct {
	Role string
	Err  error
}

func NewLoginModel(s *Session) LoginModel {
	inputs := make([]textinput.Model, 4)

	inputs[inputHost] = textinput.New()
	inputs[inputHost].Placeholder = "127.0.0.1"
	inputs[inputHost].Focus()
	inputs[inputHost].Prompt = "Host: "
	inputs[inputHost].SetValue("127.0.0.1")

	inputs[inputPort] = textinput.New()
	inputs[inputPort].Placeholder = "3000"
	inputs[inputPort].Prompt = "Port: "
	inputs[inputPort].SetValue("3000")

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "admin"
	inputs[inputUsername].Prompt = "Username: "

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	return LoginModel{
		Session:  s,
		Inputs:   inputs,
		FocusIdx: 0,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) submit() tea.Cmd {
	host := strings.TrimSpace(m.Inputs[inputHost].Value())
	port, err := strconv.Atoi(strings.TrimSpace(m.Inputs[inputPort].Value()))
	if err != nil {
		port = 3000
	}
	username := m.Inputs[inputUsername].Value()
	password := m.Inputs[inputPassword].Value()
	s := m.Session
	return func() tea.Msg {
		data, err := s.Login(host, port, username, password)
		return LoginDoneMsg{Role: data.Role, Err: err}
	}
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submit()
			}
			m.FocusIdx++
			return m.refocus()
		case tea.KeyTab, tea.KeyDown:
			m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
			return m.refocus()
		case tea.KeyShiftTab, tea.KeyUp:
			m.FocusIdx--
			if m.FocusIdx < 0 {
				m.FocusIdx = len(m.Inputs) - 1
			}
			return m.refocus()
		}
	case LoginDoneMsg:
		m.Err = msg.Err
	}

	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m LoginModel) refocus() (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		if i == m.FocusIdx {
			cmds[i] = m.Inputs[i].Focus()
			m.Inputs[i].PromptStyle = focusedStyle
			continue
		}
		m.Inputs[i].Blur()
		m.Inputs[i].PromptStyle = blurredStyle
	}
	return m, tea.Batch(cmds...)
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Software Admin - Login") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + blurredStyle.Render("Tab to move, Enter on the last field to log in, Ctrl+C to quit"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(fmt.Sprintf("login failed: %v", m.Err)))
	}
	return b.String()
}
