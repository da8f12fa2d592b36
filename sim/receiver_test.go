package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiver_InOrderDelivery(t *testing.T) {
	r := NewReceiver(DefaultPolynomial)

	for seq, payload := range []string{"a", "b", "c"} {
		bits := EncodeFrame(Frame{Seq: seq, Payload: []byte(payload), Attempt: 1}, DefaultPolynomial)
		ack, result := r.Receive(bits)

		require.Equal(t, ReceiveDelivered, result)
		assert.Equal(t, seq%4, ack)
	}
	assert.Equal(t, []byte("abc"), r.Delivered())
	assert.Equal(t, 3, r.Expected())
}

func TestReceiver_DuplicateIsReAckedButNotRedelivered(t *testing.T) {
	r := NewReceiver(DefaultPolynomial)
	bits := EncodeFrame(Frame{Seq: 0, Payload: []byte("a"), Attempt: 1}, DefaultPolynomial)

	_, first := r.Receive(bits)
	require.Equal(t, ReceiveDelivered, first)

	// Retransmission of the same frame arrives again.
	ack, result := r.Receive(bits)

	assert.Equal(t, ReceiveDuplicate, result)
	assert.Equal(t, 0, ack, "duplicate must be re-acknowledged")
	assert.Equal(t, []byte("a"), r.Delivered(), "payload must not be delivered twice")
	assert.Equal(t, 1, r.Expected())
}

func TestReceiver_CorruptFrameDiscardedSilently(t *testing.T) {
	r := NewReceiver(DefaultPolynomial)
	bits := EncodeFrame(Frame{Seq: 0, Payload: []byte("a"), Attempt: 1}, DefaultPolynomial)
	bits[5] ^= 1

	ack, result := r.Receive(bits)

	assert.Equal(t, ReceiveCorrupt, result)
	assert.Equal(t, -1, ack)
	assert.Empty(t, r.Delivered())
	assert.Equal(t, 0, r.Expected())
}

func TestReceiver_Reset(t *testing.T) {
	r := NewReceiver(DefaultPolynomial)
	r.Receive(EncodeFrame(Frame{Seq: 0, Payload: []byte("a"), Attempt: 1}, DefaultPolynomial))

	r.Reset()

	assert.Equal(t, 0, r.Expected())
	assert.Empty(t, r.Delivered())
}
