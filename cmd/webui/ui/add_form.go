package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type AddFormModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	addName = iota
	addVersion
	addAuthor
	addDesc
)

// AddDoneMsg reports the outcome of an add; a zero ID with nil Err means
// the form was cancelled.
type AddDoneMsg struct {
	ID  int64
	Err error
}

func NewAddFormModel(s *Session) AddFormModel {
	inputs := make([]textinput.Model, 4)

	inputs[addName] = textinput.New()
	inputs[addName].Prompt = "Name: "
	inputs[addName].Focus()

	inputs[addVersion] = textinput.New()
	inputs[addVersion].Prompt = "Version: "

	inputs[addAuthor] = textinput.New()
	inputs[addAuthor].Prompt = "Author: "

	inputs[addDesc] = textinput.New()
	inputs[addDesc].Prompt = "Description: "

	return AddFormModel{Session: s, Inputs: inputs}
}

func (m AddFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddFormModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.Inputs[addName].Value())
	version := strings.TrimSpace(m.Inputs[addVersion].Value())
	author := strings.TrimSpace(m.Inputs[addAuthor].Value())
	desc := strings.TrimSpace(m.Inputs[addDesc].Value())
	s := m.Session
	return func() tea.Msg {
		id, err := s.Add(name, version, author, desc)
		return AddDoneMsg{ID: id, Err: err}
	}
}

func (m AddFormModel) Update(msg tea.Msg) (AddFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return AddDoneMsg{} }
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
	case AddDoneMsg:
		m.Err = msg.Err
	}

	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m AddFormModel) refocus() (AddFormModel, tea.Cmd) {
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

func (m AddFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Software") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + blurredStyle.Render("Enter on the last field to save, Esc to cancel"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(fmt.Sprintf("add failed: %v", m.Err)))
	}
	return b.String()
}
