// Defines the typed events the engine emits for a presentation layer to
// render. Events are delivered synchronously, in emission order, to
// every subscribed listener. Listeners must not call back into the
// engine's control operations from inside a handler.

package sim

// EventKind discriminates the events of the observable stream.
type EventKind string

const (
	KindFrameSent           EventKind = "frame_sent"
	KindFrameDropped        EventKind = "frame_dropped"
	KindFrameCorrupted      EventKind = "frame_corrupted"
	KindFrameDelivered      EventKind = "frame_delivered"
	KindFrameAcked          EventKind = "frame_acked"
	KindTimeoutFired        EventKind = "timeout_fired"
	KindSimulationCompleted EventKind = "simulation_completed"
	KindSimulationAborted   EventKind = "simulation_aborted"
)

// Event is one observable occurrence in a simulation run. Timestamp is
// the engine clock (in ticks) at emission time.
type Event interface {
	Kind() EventKind
	Timestamp() int64
}

// FrameSentEvent is emitted for every transmission, including
// retransmissions (distinguished by Frame.Attempt).
type FrameSentEvent struct {
	Time  int64
	Frame Frame
}

func (e FrameSentEvent) Kind() EventKind { return KindFrameSent }
func (e FrameSentEvent) Timestamp() int64 { return e.Time }

// FrameDroppedEvent is emitted when the channel loses a frame. The
// sender only recovers through the timeout path.
type FrameDroppedEvent struct {
	Time  int64
	Frame Frame
}

func (e FrameDroppedEvent) Kind() EventKind { return KindFrameDropped }
func (e FrameDroppedEvent) Timestamp() int64 { return e.Time }

// FrameCorruptedEvent is emitted when a frame arrives but fails the
// receiver's CRC check. FlippedBit is the corrupted bit position.
type FrameCorruptedEvent struct {
	Time       int64
	Frame      Frame
	FlippedBit int
}

func (e FrameCorruptedEvent) Kind() EventKind { return KindFrameCorrupted }
func (e FrameCorruptedEvent) Timestamp() int64 { return e.Time }

// FrameDeliveredEvent is emitted when the receiver accepts an in-order
// frame and hands its payload to the network layer.
type FrameDeliveredEvent struct {
	Time    int64
	Frame   Frame
	Payload []byte
}

func (e FrameDeliveredEvent) Kind() EventKind { return KindFrameDelivered }
func (e FrameDeliveredEvent) Timestamp() int64 { return e.Time }

// FrameAckedEvent is emitted when the sender accepts an acknowledgment
// and advances past Seq.
type FrameAckedEvent struct {
	Time int64
	Seq  int
}

func (e FrameAckedEvent) Kind() EventKind { return KindFrameAcked }
func (e FrameAckedEvent) Timestamp() int64 { return e.Time }

// TimeoutFiredEvent is emitted when the retransmission timeout expires
// for the frame in flight. Attempt is the attempt that timed out.
type TimeoutFiredEvent struct {
	Time    int64
	Seq     int
	Attempt int
}

func (e TimeoutFiredEvent) Kind() EventKind { return KindTimeoutFired }
func (e TimeoutFiredEvent) Timestamp() int64 { return e.Time }

// SimulationCompletedEvent is emitted once when every frame has been
// acknowledged. Stats is a snapshot of the final counters.
type SimulationCompletedEvent struct {
	Time  int64
	Stats Statistics
}

func (e SimulationCompletedEvent) Kind() EventKind { return KindSimulationCompleted }
func (e SimulationCompletedEvent) Timestamp() int64 { return e.Time }

// SimulationAbortedEvent is emitted once when the retransmission cap is
// exceeded for Seq. The run terminates with a failure outcome.
type SimulationAbortedEvent struct {
	Time  int64
	Seq   int
	Stats Statistics
}

func (e SimulationAbortedEvent) Kind() EventKind { return KindSimulationAborted }
func (e SimulationAbortedEvent) Timestamp() int64 { return e.Time }
