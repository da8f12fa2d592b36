package sim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds surfaced by the engine. Both are recoverable: a caller can
// correct its Config and construct again, or call Reset and retry.
var (
	// ErrInvalidConfig is returned by NewEngine when the supplied Config
	// fails validation. No engine is produced.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrInvalidTransition is returned by control operations invoked in a
	// state that forbids them. The engine state is left untouched.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// DefaultMaxAttempts caps timeout-driven retransmissions of a single
// sequence number before the run is aborted.
const DefaultMaxAttempts = 3

// DefaultAckDelayTicks is the simulated round trip between sending a
// frame and the matching acknowledgment arriving back at the sender.
const DefaultAckDelayTicks = 300

// Config holds the parameters of one simulation run.
// It is supplied at construction and immutable for the lifetime of the
// engine; Reset reuses it for the next run.
type Config struct {
	LossProbability       float64 // chance a sent frame never arrives, in [0,1]
	CorruptionProbability float64 // chance a sent frame arrives with a flipped bit, in [0,1]
	TimeoutTicks          int64   // retransmission timeout, ticks (> 0)
	AckDelayTicks         int64   // simulated transit delay for frame + ACK, ticks (> 0)
	TotalFrames           int     // number of frames to deliver (> 0); ignored when Message is set
	MaxAttempts           int     // retransmission cap per frame; 0 means DefaultMaxAttempts
	Message               string  // optional payload, chunked one byte per frame
	Seed                  int64   // master seed for the channel RNG
	Polynomial            string  // CRC divisor bits; empty means "1011"
}

// withDefaults fills the optional fields a caller may leave zero-valued.
func (c Config) withDefaults() Config {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.AckDelayTicks == 0 {
		c.AckDelayTicks = DefaultAckDelayTicks
	}
	if c.Polynomial == "" {
		c.Polynomial = DefaultPolynomial.String()
	}
	if c.Message != "" {
		c.TotalFrames = len(c.Message)
	}
	return c
}

// Validate checks the run parameters. Every violation is reported
// wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	if c.LossProbability < 0 || c.LossProbability > 1 {
		return errors.Wrapf(ErrInvalidConfig, "loss probability %v outside [0,1]", c.LossProbability)
	}
	if c.CorruptionProbability < 0 || c.CorruptionProbability > 1 {
		return errors.Wrapf(ErrInvalidConfig, "corruption probability %v outside [0,1]", c.CorruptionProbability)
	}
	if c.LossProbability+c.CorruptionProbability > 1 {
		return errors.Wrapf(ErrInvalidConfig, "loss+corruption probability %v exceeds 1",
			c.LossProbability+c.CorruptionProbability)
	}
	if c.TimeoutTicks <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "timeout %d must be positive", c.TimeoutTicks)
	}
	if c.AckDelayTicks < 0 {
		return errors.Wrapf(ErrInvalidConfig, "ack delay %d must not be negative", c.AckDelayTicks)
	}
	if c.TotalFrames <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "total frames %d must be positive", c.TotalFrames)
	}
	if c.MaxAttempts < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max attempts %d must not be negative", c.MaxAttempts)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("config{loss=%.2f corrupt=%.2f timeout=%d ackDelay=%d frames=%d maxAttempts=%d seed=%d}",
		c.LossProbability, c.CorruptionProbability, c.TimeoutTicks, c.AckDelayTicks,
		c.TotalFrames, c.MaxAttempts, c.Seed)
}
