// sim/engine.go
//
// The Stop-and-Wait ARQ engine. One frame is in flight at a time; the
// engine drives it through send / acknowledge / timeout cycles over an
// unreliable channel and emits observable events for a presentation
// layer to render. Time only advances through Advance (wall-clock
// drivers) or Run (virtual clock); all mutations happen inside those
// calls or the control operations, which are assumed to be delivered
// serially from a single goroutine.

package sim

import (
	"container/heap"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of the engine. Exactly one state holds
// at any time.
type State string

const (
	// StateIdle means no run is in progress and none has completed.
	StateIdle State = "idle"
	// StateAwaitingAck means a frame is in flight and the engine is
	// waiting for its acknowledgment or its timeout.
	StateAwaitingAck State = "awaiting_ack"
	// StatePaused means the countdowns are suspended; the in-flight
	// frame state is retained.
	StatePaused State = "paused"
	// StateCompleted means the run finished, successfully or not
	// (see Aborted).
	StateCompleted State = "completed"
)

// pausedTimer is a timer captured by Pause with its remaining delay, so
// Resume can re-arm it without restarting the full countdown.
type pausedTimer struct {
	remaining  int64
	kind       timerKind
	seq        int
	bits       Bits
	flippedBit int
}

// Engine owns all mutable state of one simulation run. It is not safe
// for concurrent use; the caller must serialize control operations,
// Advance and Run on a single goroutine (an event loop or a TUI update
// loop both qualify).
type Engine struct {
	cfg  Config
	poly Bits

	state State
	clock int64
	// gen grows on every transition that supersedes scheduled work.
	// Timers capture it when armed and no-op on mismatch.
	gen    uint64
	timers timerQueue
	paused []pausedTimer

	seq     int    // absolute sequence number of the frame in flight (or next to send)
	frame   *Frame // frame in flight, nil outside a run
	aborted bool

	sendQ    *SendQueue
	channel  *Channel
	receiver *Receiver
	stats    Statistics

	listeners []func(Event)
}

// NewEngine validates cfg and constructs an engine in the Idle state.
// Returns ErrInvalidConfig (wrapped) when validation fails.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	poly := ParseBits(cfg.Polynomial)
	if len(poly) < 2 || poly[0] != 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "polynomial %q must start with 1 and have at least 2 bits", cfg.Polynomial)
	}
	return &Engine{
		cfg:      cfg,
		poly:     poly,
		state:    StateIdle,
		receiver: NewReceiver(poly),
	}, nil
}

// Subscribe registers a listener for the observable event stream.
// Listeners are invoked synchronously, in subscription order, and must
// not call back into the engine.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Clock returns the engine's current time in ticks.
func (e *Engine) Clock() int64 { return e.clock }

// Stats returns a read-only copy of the run statistics.
func (e *Engine) Stats() Statistics { return e.stats }

// Config returns the run configuration (defaults applied).
func (e *Engine) Config() Config { return e.cfg }

// Aborted reports whether a completed run ended by exceeding the
// retransmission cap.
func (e *Engine) Aborted() bool { return e.aborted }

// CurrentFrame returns the frame in flight, if any.
func (e *Engine) CurrentFrame() (Frame, bool) {
	if e.frame == nil {
		return Frame{}, false
	}
	return *e.frame, true
}

// Delivered returns the payload the receiver has handed upward so far.
func (e *Engine) Delivered() []byte {
	return e.receiver.Delivered()
}

// ReceiverExpected returns the sequence number the receiver expects next.
func (e *Engine) ReceiverExpected() int {
	return e.receiver.Expected()
}

// Pending returns the number of payloads still queued behind the frame
// in flight.
func (e *Engine) Pending() int {
	if e.sendQ == nil {
		return 0
	}
	return e.sendQ.Len()
}

// Start begins a run. Valid only in Idle or Completed; otherwise the
// call is a no-op returning ErrInvalidTransition. The engine clock
// restarts at zero, statistics are cleared, and frame 0 is sent.
func (e *Engine) Start() error {
	if e.state != StateIdle && e.state != StateCompleted {
		return errors.Wrapf(ErrInvalidTransition, "start: engine is %s", e.state)
	}

	e.gen++
	e.timers = nil
	e.paused = nil
	e.clock = 0
	e.seq = 0
	e.aborted = false
	e.stats = Statistics{}
	e.receiver.Reset()

	// Fresh RNG per run: the same seed reproduces the same loss pattern
	// even across Start after Completed.
	rng := NewPartitionedRNG(NewSimulationKey(e.cfg.Seed))
	e.channel = NewChannel(e.cfg.LossProbability, e.cfg.CorruptionProbability, rng)
	e.sendQ = &SendQueue{}
	for _, payload := range e.cfg.payloads() {
		e.sendQ.Enqueue(payload)
	}

	e.state = StateAwaitingAck
	e.nextFrame()
	e.transmit()
	return nil
}

// Pause suspends the countdowns without discarding the in-flight frame.
// Valid only in AwaitingAck. The remaining delay of every live timer is
// recorded so Resume re-arms with the remainder rather than a full
// timeout (repeated pause/resume cannot starve the timeout).
func (e *Engine) Pause() error {
	if e.state != StateAwaitingAck {
		return errors.Wrapf(ErrInvalidTransition, "pause: engine is %s", e.state)
	}
	for _, t := range e.timers {
		if t.gen != e.gen {
			continue // already superseded
		}
		e.paused = append(e.paused, pausedTimer{
			remaining:  t.at - e.clock,
			kind:       t.kind,
			seq:        t.seq,
			bits:       t.bits,
			flippedBit: t.flippedBit,
		})
	}
	e.gen++
	e.timers = nil
	e.state = StatePaused
	logrus.Debugf("[tick %07d] paused with %d suspended timers", e.clock, len(e.paused))
	return nil
}

// Resume re-arms the timers captured by Pause with their remaining
// delays. Valid only in Paused.
func (e *Engine) Resume() error {
	if e.state != StatePaused {
		return errors.Wrapf(ErrInvalidTransition, "resume: engine is %s", e.state)
	}
	e.state = StateAwaitingAck
	for _, p := range e.paused {
		e.schedule(&timer{
			at:         e.clock + p.remaining,
			gen:        e.gen,
			kind:       p.kind,
			seq:        p.seq,
			bits:       p.bits,
			flippedBit: p.flippedBit,
		})
	}
	e.paused = nil
	logrus.Debugf("[tick %07d] resumed", e.clock)
	return nil
}

// Reset cancels all pending work and returns the engine to Idle with
// zeroed statistics. Valid in any state; always succeeds.
func (e *Engine) Reset() {
	e.gen++
	e.timers = nil
	e.paused = nil
	e.clock = 0
	e.seq = 0
	e.frame = nil
	e.aborted = false
	e.stats = Statistics{}
	e.sendQ = nil
	e.receiver.Reset()
	e.state = StateIdle
	logrus.Debugf("engine reset")
}

// Advance moves the engine clock to now (in ticks), firing every timer
// due on the way in firing-time order. now values below the current
// clock are ignored. This is the entry point for wall-clock drivers
// such as the TUI.
func (e *Engine) Advance(now int64) {
	if now < e.clock {
		return
	}
	for len(e.timers) > 0 && e.timers[0].at <= now {
		t := heap.Pop(&e.timers).(*timer)
		e.clock = t.at
		e.fire(t)
	}
	e.clock = now
}

// Run drives the run to completion on a virtual clock, jumping straight
// from timer to timer the way the headless CLI wants. Returns an error
// if no run is in progress.
func (e *Engine) Run() error {
	if e.state != StateAwaitingAck {
		return errors.Wrapf(ErrInvalidTransition, "run: engine is %s", e.state)
	}
	for e.state == StateAwaitingAck && len(e.timers) > 0 {
		t := heap.Pop(&e.timers).(*timer)
		e.clock = t.at
		logrus.Debugf("[tick %07d] firing %d", e.clock, t.kind)
		e.fire(t)
	}
	return nil
}

// === internals ===

func (e *Engine) schedule(t *timer) {
	heap.Push(&e.timers, t)
}

func (e *Engine) emit(ev Event) {
	logrus.Debugf("[tick %07d] %s", e.clock, ev.Kind())
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// nextFrame constructs the next frame from the send queue, attempt 1.
func (e *Engine) nextFrame() {
	payload := e.sendQ.Dequeue()
	e.frame = &Frame{Seq: e.seq, Payload: payload, Attempt: 1}
}

// transmit sends the current frame: emits frameSent, arms the timeout,
// and resolves the channel outcome. A dropped frame is reported right
// away; anything that arrives is deferred by the transit delay.
func (e *Engine) transmit() {
	e.stats.FramesSent++
	e.emit(FrameSentEvent{Time: e.clock, Frame: *e.frame})

	e.schedule(&timer{
		at:   e.clock + e.cfg.TimeoutTicks,
		gen:  e.gen,
		kind: timerTimeout,
		seq:  e.seq,
	})

	encoded := EncodeFrame(*e.frame, e.poly)
	arrived, outcome, flipped := e.channel.Transmit(encoded)
	switch outcome {
	case Dropped:
		e.stats.FramesDropped++
		e.emit(FrameDroppedEvent{Time: e.clock, Frame: *e.frame})
	default:
		e.schedule(&timer{
			at:         e.clock + e.cfg.AckDelayTicks,
			gen:        e.gen,
			kind:       timerArrival,
			seq:        e.seq,
			bits:       arrived,
			flippedBit: flipped,
		})
	}
}

func (e *Engine) fire(t *timer) {
	// Generation guard: a timer armed before a pause, reset,
	// retransmission or acknowledgment no longer speaks for the run.
	if t.gen != e.gen || e.state != StateAwaitingAck {
		return
	}
	switch t.kind {
	case timerTimeout:
		e.handleTimeout()
	case timerArrival:
		e.handleArrival(t)
	}
}

// handleTimeout retransmits the frame in flight, or aborts the run once
// the attempt cap is reached.
func (e *Engine) handleTimeout() {
	e.stats.Timeouts++
	e.emit(TimeoutFiredEvent{Time: e.clock, Seq: e.frame.Seq, Attempt: e.frame.Attempt})

	if e.frame.Attempt >= e.cfg.MaxAttempts {
		e.gen++
		e.timers = nil
		e.aborted = true
		e.state = StateCompleted
		e.emit(SimulationAbortedEvent{Time: e.clock, Seq: e.frame.Seq, Stats: e.stats})
		return
	}

	// Same sequence number and payload go out again; only the attempt
	// counter changes. Bumping the generation makes the previous
	// attempt's in-flight arrival stale, so for each attempt at most one
	// of retransmit / accept can win.
	e.gen++
	e.frame.Attempt++
	e.transmit()
}

// handleArrival delivers a frame to the receiver model and, when the
// resulting acknowledgment matches the sequence number in flight,
// advances the sender.
func (e *Engine) handleArrival(t *timer) {
	ackSeq, result := e.receiver.Receive(t.bits)
	switch result {
	case ReceiveCorrupt:
		e.stats.FramesCorrupted++
		e.emit(FrameCorruptedEvent{Time: e.clock, Frame: *e.frame, FlippedBit: t.flippedBit})
		return
	case ReceiveDelivered:
		e.stats.FramesDelivered++
		e.emit(FrameDeliveredEvent{Time: e.clock, Frame: *e.frame, Payload: e.frame.Payload})
	}

	// Stale-ACK discard: an acknowledgment for anything but the sequence
	// number in flight must not advance the sender twice.
	if ackSeq != e.seq%seqModulus {
		logrus.Debugf("[tick %07d] discarding stale ACK %d (in flight: %d)", e.clock, ackSeq, e.seq)
		return
	}
	e.acceptAck()
}

// acceptAck cancels the pending timeout, advances the sequence number,
// and either sends the next frame or completes the run.
func (e *Engine) acceptAck() {
	e.gen++ // cancels the pending timeout for the acknowledged attempt
	e.stats.AcksReceived++
	e.emit(FrameAckedEvent{Time: e.clock, Seq: e.seq})

	e.seq++
	if e.seq < e.cfg.TotalFrames {
		e.nextFrame()
		e.transmit()
		return
	}

	e.frame = nil
	e.state = StateCompleted
	e.emit(SimulationCompletedEvent{Time: e.clock, Stats: e.stats})
}

// payloads expands the configured message (or synthetic frame labels)
// into per-frame payload chunks. A message is sent one byte per frame.
func (c Config) payloads() [][]byte {
	out := make([][]byte, 0, c.TotalFrames)
	if c.Message != "" {
		for i := 0; i < len(c.Message); i++ {
			out = append(out, []byte{c.Message[i]})
		}
		return out
	}
	for i := 0; i < c.TotalFrames; i++ {
		out = append(out, []byte(fmt.Sprintf("frame-%d", i)))
	}
	return out
}
