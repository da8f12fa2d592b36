// Tracks run-wide transmission statistics for final reporting.

package sim

import "fmt"

// Statistics aggregates counters about a simulation run. Counters only
// ever increase while a run is in progress; Reset zeroes them.
type Statistics struct {
	FramesSent      int // transmissions, including retransmissions
	AcksReceived    int // acknowledgments accepted by the sender
	Timeouts        int // retransmission timeouts that fired
	FramesDropped   int // frames lost in transit
	FramesCorrupted int // frames that arrived with a failed CRC check
	FramesDelivered int // frames accepted in order by the receiver
}

// Print displays aggregated statistics at the end of a run.
func (s Statistics) Print(clock int64) {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Frames Sent          : %d\n", s.FramesSent)
	fmt.Printf("ACKs Received        : %d\n", s.AcksReceived)
	fmt.Printf("Timeouts             : %d\n", s.Timeouts)
	fmt.Printf("Frames Dropped       : %d\n", s.FramesDropped)
	fmt.Printf("Frames Corrupted     : %d\n", s.FramesCorrupted)
	fmt.Printf("Frames Delivered     : %d\n", s.FramesDelivered)
	if s.FramesSent > 0 {
		fmt.Printf("Delivery Ratio       : %.2f\n", float64(s.FramesDelivered)/float64(s.FramesSent))
	}
	fmt.Printf("Simulated Ticks      : %d\n", clock)
}
