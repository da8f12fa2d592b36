// Package sim provides the discrete-event Stop-and-Wait ARQ engine for linksim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frame.go: the Frame type and its bit-level wire encoding
//   - engine.go: the state machine (Idle → AwaitingAck ⇄ Paused → Completed),
//     the control operations and the timer dispatch
//   - channel.go: the seeded loss/corruption model
//
// # Architecture
//
// The engine owns all mutable run state and advances only inside
// Advance/Run or a control operation; callers must deliver those from a
// single goroutine. Deferred work (retransmission timeouts, frame
// arrivals) sits on a heap of timers (timeline.go), each guarded by a
// generation counter so that pause, reset and acknowledgment acceptance
// cancel superseded callbacks without racing them.
//
// Observable behavior is a typed event stream (event.go) delivered to
// subscribed listeners in emission order; the cmd and tui packages are
// pure consumers of that stream plus read-only statistics snapshots.
//
// Frames are encoded as 2 sequence bits, 8 bits per payload byte, and a
// CRC remainder (crc.go). Channel corruption flips one bit of the
// encoded frame, so a corrupted frame is discovered by the receiver's
// CRC check (receiver.go) rather than declared by the channel.
//
// Randomness is partitioned per subsystem and derived from one master
// seed (rng.go): identical seed and config reproduce a run bit for bit.
package sim
