package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = min(msg.Width, defaultWidth*2)
			m.syncScroll()
			m.syncSize()
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameRate
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now
	m.scheduler.Advance(dt)
	m.syncSize()

	if m.scheduler.Active() {
		return m, frame()
	}
	m.ticking = false
	m.lastFrame = time.Time{}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	st := m.field.State()
	if !m.field.ClearButtonHit(msg.X+st.ScrollX, msg.Y-fieldTop+st.ScrollY) {
		return m, nil
	}
	m.field.Clear()
	m.input.SetValue("")
	m.syncScroll()
	m.syncSize()
	return m, m.startTicking()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "shift+tab":
		cmds = append(cmds, m.setFocus(!m.field.State().Focused))
	case "ctrl+l":
		m.field.Clear()
		m.input.SetValue("")
		m.syncScroll()
	case "ctrl+e":
		enabled := !m.field.State().Enabled
		if !enabled && m.field.State().Focused {
			m.setFocus(false)
		}
		m.field.SetEnabled(enabled)
	case "ctrl+v":
		m.field.Validate()
	case "ctrl+d":
		m.showDebug = !m.showDebug
	default:
		st := m.field.State()
		if !st.Focused || !st.Enabled {
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		if value := m.input.Value(); value != before {
			m.field.SetText(value)
			m.syncScroll()
		}
	}

	m.syncSize()
	cmds = append(cmds, m.startTicking())
	return m, tea.Batch(cmds...)
}
