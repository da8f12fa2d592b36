// sim/timeline.go
//
// The engine's internal notion of deferred work: retransmission timeouts
// and frame arrivals are timers on a heap ordered by firing time. Every
// timer captures the engine's generation counter when scheduled; a timer
// whose generation no longer matches fires as a no-op. That guard is how
// pause, reset and acknowledgment acceptance cancel superseded work.

package sim

// timerKind discriminates the deferred callbacks the engine schedules.
type timerKind int

const (
	// timerTimeout is the retransmission timeout for the frame in flight.
	timerTimeout timerKind = iota
	// timerArrival is the arrival of a transmitted frame at the receiver
	// (and, for an accepted frame, of the acknowledgment back at the
	// sender; the return leg is modeled as reliable).
	timerArrival
)

// timer is one scheduled callback.
type timer struct {
	at         int64  // absolute firing time in ticks
	gen        uint64 // engine generation captured at scheduling time
	kind       timerKind
	seq        int  // absolute sequence number the timer belongs to
	bits       Bits // arrived frame bits (timerArrival only)
	flippedBit int  // corrupted bit index, -1 when intact (timerArrival only)
}

// timerQueue implements heap.Interface and orders timers by firing time.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type timerQueue []*timer

func (tq timerQueue) Len() int           { return len(tq) }
func (tq timerQueue) Less(i, j int) bool { return tq[i].at < tq[j].at }
func (tq timerQueue) Swap(i, j int)      { tq[i], tq[j] = tq[j], tq[i] }

func (tq *timerQueue) Push(x any) {
	*tq = append(*tq, x.(*timer))
}

func (tq *timerQueue) Pop() any {
	old := *tq
	n := len(old)
	item := old[n-1]
	*tq = old[0 : n-1]
	return item
}
