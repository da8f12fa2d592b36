package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sim "github.com/linksim/linksim/sim"
)

func (m Model) View() string {
	if m.width < minWindowWidth || m.height < minWindowHeight {
		return styleScreenTooSmall.
			Width(m.width).
			Height(m.height).
			Render(fmt.Sprintf("Terminal too small\nNeed at least %dx%d", minWindowWidth, minWindowHeight))
	}

	title := styleAppTitle.Width(m.width - 4).Render("linksim · Stop-and-Wait ARQ")

	status := m.renderStatusPanel()
	logs := m.renderLogPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, status, logs)

	footer := m.renderFooter()

	content := lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
	return styleWindow.Width(m.width - 2).Height(m.height - 2).Render(content)
}

func (m Model) renderStatusPanel() string {
	var sb strings.Builder

	sb.WriteString(styleTitle.Render("Sender"))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("State") + m.renderState())
	sb.WriteString("\n")
	if frame, ok := m.engine.CurrentFrame(); ok {
		sb.WriteString(styleLabel.Render("In flight") + styleValue.Render(fmt.Sprintf("frame %d (attempt %d/%d)",
			frame.Seq, frame.Attempt, m.cfg.MaxAttempts)))
	} else {
		sb.WriteString(styleLabel.Render("In flight") + styleValue.Render("-"))
	}
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Pending") + styleValue.Render(fmt.Sprintf("%d frames", m.engine.Pending())))
	sb.WriteString("\n\n")

	sb.WriteString(styleTitle.Render("Receiver"))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Expecting") + styleValue.Render(fmt.Sprintf("frame %d", m.engine.ReceiverExpected())))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Delivered") + styleValue.Render(fmt.Sprintf("%q", string(m.engine.Delivered()))))
	sb.WriteString("\n\n")

	sb.WriteString(styleTitle.Render("Channel"))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Loss") + styleValue.Render(fmt.Sprintf("%.0f%%", m.cfg.LossProbability*100)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Corruption") + styleValue.Render(fmt.Sprintf("%.0f%%", m.cfg.CorruptionProbability*100)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Timeout") + styleValue.Render(fmt.Sprintf("%d ticks", m.cfg.TimeoutTicks)))
	sb.WriteString("\n\n")

	stats := m.engine.Stats()
	sb.WriteString(styleTitle.Render("Statistics"))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Sent") + styleValue.Render(fmt.Sprintf("%d", stats.FramesSent)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("ACKed") + styleValue.Render(fmt.Sprintf("%d", stats.AcksReceived)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Timeouts") + styleValue.Render(fmt.Sprintf("%d", stats.Timeouts)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Dropped") + styleValue.Render(fmt.Sprintf("%d", stats.FramesDropped)))
	sb.WriteString("\n")
	sb.WriteString(styleLabel.Render("Corrupted") + styleValue.Render(fmt.Sprintf("%d", stats.FramesCorrupted)))

	height := m.height - footerHeight - 6
	if height < 5 {
		height = 5
	}
	return stylePanel.Width(statusPanelWidth).Height(height).Render(sb.String())
}

func (m Model) renderState() string {
	switch m.engine.State() {
	case sim.StateAwaitingAck:
		return styleStateRunning.Render("awaiting ACK")
	case sim.StatePaused:
		return styleStatePaused.Render("paused")
	case sim.StateCompleted:
		if m.engine.Aborted() {
			return styleStateAborted.Render("aborted")
		}
		return styleStateRunning.Render("completed")
	default:
		return styleValue.Render("idle")
	}
}

func (m Model) renderLogPanel() string {
	title := styleTitle.Render("Simulation Log")
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.logViewport.View())
	height := m.height - footerHeight - 6
	if height < 5 {
		height = 5
	}
	return stylePanel.Width(m.logViewport.Width + 2).Height(height).Render(body)
}

func (m Model) renderFooter() string {
	help := styleHelp.Render(" s start · space pause/resume · r reset · ↑/↓ scroll · q quit ")
	clock := styleHelp.Render(fmt.Sprintf(" tick %07d ", m.clock))
	line := help
	if m.status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, help, styleStatus.Render(" | "+m.status+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, line, clock)
}
