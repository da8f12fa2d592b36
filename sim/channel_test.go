package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBits() Bits {
	return EncodeFrame(Frame{Seq: 0, Payload: []byte("x"), Attempt: 1}, DefaultPolynomial)
}

func TestChannel_AlwaysDelivers(t *testing.T) {
	ch := NewChannel(0, 0, NewPartitionedRNG(NewSimulationKey(1)))

	for i := 0; i < 50; i++ {
		arrived, outcome, flipped := ch.Transmit(testBits())
		assert.Equal(t, Delivered, outcome)
		assert.Equal(t, testBits(), arrived)
		assert.Equal(t, -1, flipped)
	}
}

func TestChannel_AlwaysDrops(t *testing.T) {
	ch := NewChannel(1, 0, NewPartitionedRNG(NewSimulationKey(1)))

	for i := 0; i < 50; i++ {
		arrived, outcome, _ := ch.Transmit(testBits())
		assert.Equal(t, Dropped, outcome)
		assert.Nil(t, arrived)
	}
}

func TestChannel_AlwaysCorrupts_FlipsExactlyOneBit(t *testing.T) {
	ch := NewChannel(0, 1, NewPartitionedRNG(NewSimulationKey(1)))

	for i := 0; i < 50; i++ {
		sent := testBits()
		arrived, outcome, flipped := ch.Transmit(sent)
		require.Equal(t, Corrupted, outcome)
		require.GreaterOrEqual(t, flipped, 0)
		require.Less(t, flipped, len(sent))

		diffs := 0
		for j := range sent {
			if sent[j] != arrived[j] {
				diffs++
				assert.Equal(t, flipped, j)
			}
		}
		assert.Equal(t, 1, diffs)
		// a one-bit flip must never pass the CRC check
		assert.False(t, CheckCRC(arrived, DefaultPolynomial))
	}
}

func TestChannel_CorruptionLeavesInputIntact(t *testing.T) {
	ch := NewChannel(0, 1, NewPartitionedRNG(NewSimulationKey(1)))
	sent := testBits()

	ch.Transmit(sent)

	assert.Equal(t, testBits(), sent, "Transmit must not mutate the caller's bits")
}

func TestChannel_DeterministicOutcomes(t *testing.T) {
	// Two channels with the same seed see the same fate sequence.
	chA := NewChannel(0.4, 0.3, NewPartitionedRNG(NewSimulationKey(99)))
	chB := NewChannel(0.4, 0.3, NewPartitionedRNG(NewSimulationKey(99)))

	for i := 0; i < 100; i++ {
		_, a, _ := chA.Transmit(testBits())
		_, b, _ := chB.Transmit(testBits())
		require.Equal(t, a, b, "outcome %d diverged", i)
	}
}
