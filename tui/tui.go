package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	sim "github.com/linksim/linksim/sim"
)

// tickMsg drives the wall clock, one message every tickGranularity ms.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickGranularity*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// New constructs the TUI model and wires the engine's event stream into
// the log panel.
func New(cfg sim.Config) (Model, error) {
	engine, err := sim.NewEngine(cfg)
	if err != nil {
		return Model{}, err
	}

	log := &eventLog{}
	log.append("Simulation ready. Press 's' to start.")
	engine.Subscribe(func(ev sim.Event) {
		log.append(formatEvent(ev))
	})

	return Model{
		cfg:         engine.Config(),
		engine:      engine,
		log:         log,
		logViewport: viewport.New(0, 0),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Run starts the interactive visualization and blocks until quit.
func Run(cfg sim.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// formatEvent renders one engine event as a log panel line.
func formatEvent(ev sim.Event) string {
	switch ev := ev.(type) {
	case sim.FrameSentEvent:
		if ev.Frame.Attempt > 1 {
			return fmt.Sprintf("[%07d] >> retransmit frame %d (attempt %d)", ev.Time, ev.Frame.Seq, ev.Frame.Attempt)
		}
		return fmt.Sprintf("[%07d] >> send frame %d %q", ev.Time, ev.Frame.Seq, ev.Frame.Payload)
	case sim.FrameDroppedEvent:
		return fmt.Sprintf("[%07d] !! frame %d lost in transit", ev.Time, ev.Frame.Seq)
	case sim.FrameCorruptedEvent:
		return fmt.Sprintf("[%07d] !! frame %d corrupted at bit %d, discarded", ev.Time, ev.Frame.Seq, ev.FlippedBit)
	case sim.FrameDeliveredEvent:
		return fmt.Sprintf("[%07d] << frame %d delivered %q", ev.Time, ev.Frame.Seq, ev.Payload)
	case sim.FrameAckedEvent:
		return fmt.Sprintf("[%07d] << ACK %d accepted", ev.Time, ev.Seq)
	case sim.TimeoutFiredEvent:
		return fmt.Sprintf("[%07d] !! timeout for frame %d (attempt %d)", ev.Time, ev.Seq, ev.Attempt)
	case sim.SimulationCompletedEvent:
		return fmt.Sprintf("[%07d] -- all %d frames acknowledged --", ev.Time, ev.Stats.AcksReceived)
	case sim.SimulationAbortedEvent:
		return fmt.Sprintf("[%07d] -- aborted: frame %d exceeded retransmission limit --", ev.Time, ev.Seq)
	default:
		return fmt.Sprintf("[%07d] %s", ev.Timestamp(), ev.Kind())
	}
}
