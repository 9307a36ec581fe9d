package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.heads.SetWidth(min(msg.Width, 110))
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case CaseLoadedMsg:
		m.original = msg.Case
		m.caseFile = cloneCase(msg.Case)
		m.loadingMessage = "Calcul en cours…"
		return m, calculateCmd(m.calcEngine, *m.caseFile)

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			// keep the last valid evaluation on screen
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result
		m.comparison = msg.Comparison
		m.heads.SetRows(headRows(msg.Result))
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, navigate(SceneHelp)
	case key.Matches(msg, m.keys.Back):
		if m.err != nil && m.result != nil {
			m.err = nil
			return m, nil
		}
		return m, navigate(m.previousScene)
	case key.Matches(msg, m.keys.Results):
		return m, navigate(SceneResults)
	case key.Matches(msg, m.keys.Parameters):
		return m, navigate(SceneParameters)
	case key.Matches(msg, m.keys.Offers):
		return m, navigate(SceneOffers)
	case key.Matches(msg, m.keys.Tables):
		return m, navigate(SceneTables)
	}

	switch m.currentScene {
	case SceneParameters:
		return m.updateParameters(msg)
	case SceneResults:
		var cmd tea.Cmd
		m.heads, cmd = m.heads.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateParameters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.caseFile == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.focusedParam > 0 {
			m.focusedParam--
		}
	case key.Matches(msg, m.keys.Down):
		if m.focusedParam < len(parameters)-1 {
			m.focusedParam++
		}
	case key.Matches(msg, m.keys.Decrease), key.Matches(msg, m.keys.Increase):
		dir := int64(1)
		if key.Matches(msg, m.keys.Decrease) {
			dir = -1
		}
		edited := cloneCase(m.caseFile)
		if !adjust(edited, parameters[m.focusedParam], dir) {
			return m, nil
		}
		m.caseFile = edited
		m.modified = true
		return m, calculateCmd(m.calcEngine, *edited)
	case key.Matches(msg, m.keys.Reset):
		if !m.modified {
			return m, nil
		}
		m.caseFile = cloneCase(m.original)
		m.modified = false
		return m, calculateCmd(m.calcEngine, *m.caseFile)
	}
	return m, nil
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}
