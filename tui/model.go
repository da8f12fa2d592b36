package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	sim "github.com/linksim/linksim/sim"
)

// eventLog buffers formatted engine events between renders. The engine
// emits synchronously inside Update, so no locking is needed.
type eventLog struct {
	lines []string
}

func (l *eventLog) append(line string) {
	l.lines = append(l.lines, line)
}

type Model struct {
	cfg    sim.Config
	engine *sim.Engine

	// log is shared with the engine subscription closure.
	log         *eventLog
	logViewport viewport.Model

	width  int
	height int

	// clock is the wall-driven engine time in ticks (1 tick per ms).
	clock   int64
	started bool

	// status is the one-line feedback strip (rejected operations land here).
	status string
}

const (
	minWindowWidth   = 70
	minWindowHeight  = 18
	statusPanelWidth = 34
	footerHeight     = 2

	// tickGranularity is both the wall-clock tick period in milliseconds
	// and the number of simulation ticks the engine advances per tick.
	tickGranularity = 100
)
