// Models the receiving node: CRC validation, in-order delivery and
// duplicate detection. With a single outstanding frame the receiver
// never buffers out-of-order data; a frame either matches the expected
// sequence number or is a duplicate of an already-delivered one.

package sim

import "github.com/sirupsen/logrus"

// Receiver tracks the next frame the receiving node expects and the
// payload it has delivered upward so far.
type Receiver struct {
	poly      Bits
	expected  int    // absolute sequence number of the next in-order frame
	delivered []byte // payload handed to the network layer, in order
}

// NewReceiver creates a receiver validating frames against poly.
func NewReceiver(poly Bits) *Receiver {
	return &Receiver{poly: poly}
}

// ReceiveResult describes what the receiver did with an arriving frame.
type ReceiveResult int

const (
	// ReceiveDelivered means the frame was in order: its payload was
	// delivered and an acknowledgment is owed.
	ReceiveDelivered ReceiveResult = iota
	// ReceiveDuplicate means the frame repeats an already-delivered
	// sequence number; the payload is discarded but the previous
	// acknowledgment is repeated.
	ReceiveDuplicate
	// ReceiveCorrupt means the CRC check failed and the frame is
	// discarded silently. No acknowledgment is produced.
	ReceiveCorrupt
)

// Receive processes the bits of one arriving frame. ackSeq is the wire
// sequence number (mod 4) being acknowledged; it is meaningful only when
// the result is ReceiveDelivered or ReceiveDuplicate.
func (r *Receiver) Receive(bits Bits) (ackSeq int, result ReceiveResult) {
	seq, payload, err := DecodeFrame(bits, r.poly)
	if err != nil {
		logrus.Debugf("receiver: discarding frame: %v", err)
		return -1, ReceiveCorrupt
	}

	if seq == r.expected%seqModulus {
		r.delivered = append(r.delivered, payload...)
		ack := seq
		r.expected++
		logrus.Debugf("receiver: frame %d in order, delivering %q", seq, payload)
		return ack, ReceiveDelivered
	}

	// Stop-and-Wait: anything else is a retransmission of the frame we
	// already delivered. Re-acknowledge it so the sender can advance.
	logrus.Debugf("receiver: duplicate frame %d, re-sending ACK", seq)
	return seq, ReceiveDuplicate
}

// Expected returns the absolute sequence number of the next in-order frame.
func (r *Receiver) Expected() int {
	return r.expected
}

// Delivered returns a copy of the payload delivered in order so far.
func (r *Receiver) Delivered() []byte {
	out := make([]byte, len(r.delivered))
	copy(out, r.delivered)
	return out
}

// Reset discards all receiver state for a fresh run.
func (r *Receiver) Reset() {
	r.expected = 0
	r.delivered = nil
}
