// Implements the CRC used for frame integrity checking.
// The divisor polynomial is expressed as a bit sequence (default 1011,
// i.e. x^3 + x + 1), and the checksum is the remainder of modulo-2
// division of the payload bits by the polynomial.

package sim

import "strings"

// Bits is a sequence of individual bit values (each element is 0 or 1).
// Frames travel across the simulated channel in this form so that a
// single flipped bit is observable by the receiver's CRC check.
type Bits []byte

// DefaultPolynomial is the CRC divisor x^3 + x + 1.
var DefaultPolynomial = Bits{1, 0, 1, 1}

// String renders the bits as a compact "0101..." string for logs.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// Clone returns an independent copy of the bit sequence.
func (b Bits) Clone() Bits {
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// ParseBits converts a "0101..." string into a Bits value.
// Any rune other than '1' is treated as 0.
func ParseBits(s string) Bits {
	out := make(Bits, 0, len(s))
	for _, r := range s {
		if r == '1' {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// BitsFromBytes expands data into its bit representation, most
// significant bit first (8 bits per byte).
func BitsFromBytes(data []byte) Bits {
	out := make(Bits, 0, len(data)*8)
	for _, by := range data {
		for shift := 7; shift >= 0; shift-- {
			out = append(out, (by>>shift)&1)
		}
	}
	return out
}

// BytesFromBits packs bits (MSB first) back into bytes. Trailing bits
// that do not fill a whole byte are discarded.
func BytesFromBits(bits Bits) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var by byte
		for j := 0; j < 8; j++ {
			by = by<<1 | bits[i+j]
		}
		out = append(out, by)
	}
	return out
}

// GenerateCRC computes the CRC remainder for data under the given
// polynomial. The remainder has len(poly)-1 bits and is appended to the
// payload bits when a frame is encoded.
func GenerateCRC(data, poly Bits) Bits {
	n := len(poly)
	// data followed by n-1 zero bits, then modulo-2 long division
	work := make(Bits, len(data)+n-1)
	copy(work, data)

	for i := 0; i < len(data); i++ {
		if work[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			work[i+j] ^= poly[j]
		}
	}
	return work[len(data):]
}

// CheckCRC verifies a frame whose trailing len(poly)-1 bits are a CRC
// produced by GenerateCRC. Returns true when no error is detected.
func CheckCRC(frame, poly Bits) bool {
	n := len(poly)
	if len(frame) < n {
		return false
	}
	work := frame.Clone()
	for i := 0; i <= len(work)-n; i++ {
		if work[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			work[i+j] ^= poly[j]
		}
	}
	for _, bit := range work[len(work)-(n-1):] {
		if bit != 0 {
			return false
		}
	}
	return true
}
