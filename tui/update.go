package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	sim "github.com/linksim/linksim/sim"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Width: fixed status panel on the left, log panel takes the rest.
		// Height: window border (2) + title (1) + footer. Sync logic with View.
		logWidth := msg.Width - statusPanelWidth - 8
		if logWidth < 20 {
			logWidth = 20
		}
		logHeight := msg.Height - footerHeight - 7
		if logHeight < 5 {
			logHeight = 5
		}
		m.logViewport.Width = logWidth
		m.logViewport.Height = logHeight
		m.refreshLog()
		return m, nil

	case tickMsg:
		if m.started {
			m.clock += tickGranularity
			m.engine.Advance(m.clock)
			m.refreshLog()
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		if err := m.engine.Start(); err != nil {
			m.status = fmt.Sprintf("start rejected: engine is %s", m.engine.State())
			return m, nil
		}
		m.clock = 0
		m.started = true
		m.status = "simulation started"
		m.refreshLog()

	case " ":
		switch m.engine.State() {
		case sim.StateAwaitingAck:
			if err := m.engine.Pause(); err == nil {
				m.status = "paused"
			}
		case sim.StatePaused:
			if err := m.engine.Resume(); err == nil {
				m.status = "resumed"
			}
		default:
			m.status = fmt.Sprintf("nothing to pause: engine is %s", m.engine.State())
		}

	case "r":
		m.engine.Reset()
		m.started = false
		m.clock = 0
		m.log.lines = nil
		m.log.append("Simulation reset. Press 's' to start.")
		m.status = "reset"
		m.refreshLog()

	default:
		// Remaining keys (arrows, pgup/pgdown) scroll the log panel.
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refreshLog pushes the buffered event lines into the viewport and
// keeps it pinned to the newest entry.
func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.log.lines, "\n"))
	m.logViewport.GotoBottom()
}
