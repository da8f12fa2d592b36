// Defines the Frame struct that models a single link-layer frame in the
// simulation, together with its wire encoding:
//
//	[sequence number (2 bits)] [payload (8 bits per byte)] [CRC remainder]
//
// The sequence number travels modulo 4; the engine tracks the absolute
// sequence number separately.

package sim

import (
	"fmt"

	"github.com/pkg/errors"
)

// seqBits is the width of the on-the-wire sequence number field.
const seqBits = 2

// seqModulus is the wrap-around point implied by seqBits.
const seqModulus = 1 << seqBits

// Frame models one unit of link-layer data in flight.
// A frame is immutable once sent except for Attempt, which increments
// on every timeout-driven retransmission of the same sequence number.
type Frame struct {
	Seq     int    // absolute sequence number, starts at 0
	Payload []byte // opaque payload carried by this frame
	Attempt int    // transmission attempt, starts at 1
}

func (f Frame) String() string {
	return fmt.Sprintf("frame{seq=%d attempt=%d payload=%q}", f.Seq, f.Attempt, f.Payload)
}

// EncodeFrame produces the bit-level representation of a frame:
// 2 sequence bits (Seq mod 4), the payload bits, and the CRC remainder
// computed over both under poly.
func EncodeFrame(f Frame, poly Bits) Bits {
	seq := f.Seq % seqModulus
	out := make(Bits, 0, seqBits+len(f.Payload)*8+len(poly)-1)
	for shift := seqBits - 1; shift >= 0; shift-- {
		out = append(out, byte(seq>>shift)&1)
	}
	out = append(out, BitsFromBytes(f.Payload)...)
	out = append(out, GenerateCRC(out, poly)...)
	return out
}

// DecodeFrame validates the CRC and extracts the wire sequence number
// (mod 4) and payload. A failed CRC check or a truncated frame yields an
// error; the receiver discards such frames silently.
func DecodeFrame(bits Bits, poly Bits) (seq int, payload []byte, err error) {
	crcLen := len(poly) - 1
	if len(bits) < seqBits+crcLen {
		return 0, nil, errors.Errorf("frame too short: %d bits", len(bits))
	}
	if !CheckCRC(bits, poly) {
		return 0, nil, errors.New("crc check failed")
	}
	for i := 0; i < seqBits; i++ {
		seq = seq<<1 | int(bits[i])
	}
	payload = BytesFromBits(bits[seqBits : len(bits)-crcLen])
	return seq, payload, nil
}
