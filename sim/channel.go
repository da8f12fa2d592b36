// Models the unreliable link between sender and receiver. A single
// random draw per transmission decides the outcome, so identical seeds
// reproduce identical loss patterns.

package sim

// Outcome is the fate of one frame transmission across the channel.
type Outcome int

const (
	// Delivered means the frame arrives intact.
	Delivered Outcome = iota
	// Dropped means the frame is lost in transit and never arrives.
	Dropped
	// Corrupted means the frame arrives with exactly one flipped bit.
	Corrupted
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Dropped:
		return "dropped"
	case Corrupted:
		return "corrupted"
	default:
		return "unknown"
	}
}

// Channel is the pseudo-random loss model. Per transmission it draws a
// single uniform value u from the channel subsystem RNG:
//
//	u <  loss           -> Dropped
//	u <  loss + corrupt -> Corrupted (one bit flipped)
//	otherwise           -> Delivered
type Channel struct {
	loss    float64
	corrupt float64
	rng     *PartitionedRNG
}

// NewChannel creates a channel with the given loss and corruption
// probabilities. Probabilities are assumed validated by Config.Validate.
func NewChannel(loss, corrupt float64, rng *PartitionedRNG) *Channel {
	return &Channel{loss: loss, corrupt: corrupt, rng: rng}
}

// Transmit passes an encoded frame through the channel and returns the
// bits as they arrive plus the outcome. For Dropped the returned bits
// are nil. For Corrupted the flipped bit index is returned so the event
// stream can report it.
func (c *Channel) Transmit(encoded Bits) (arrived Bits, outcome Outcome, flippedBit int) {
	u := c.rng.ForSubsystem(SubsystemChannel).Float64()
	switch {
	case u < c.loss:
		return nil, Dropped, -1
	case u < c.loss+c.corrupt:
		flippedBit = c.rng.ForSubsystem(SubsystemCorruption).Intn(len(encoded))
		arrived = encoded.Clone()
		arrived[flippedBit] ^= 1
		return arrived, Corrupted, flippedBit
	default:
		return encoded.Clone(), Delivered, -1
	}
}
