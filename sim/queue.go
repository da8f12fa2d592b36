// Implements the SendQueue, which holds the payload chunks waiting for
// transmission. Chunks are enqueued when the engine starts and dequeued
// one at a time as the preceding frame is acknowledged.

package sim

import (
	"fmt"
	"strings"
)

// SendQueue represents the FIFO buffer of payloads the sender still has
// to deliver. In the simulation this models the network-layer data
// handed down to the link layer before the run begins.
type SendQueue struct {
	queue [][]byte
}

// Enqueue adds a payload chunk to the back of the send queue.
func (sq *SendQueue) Enqueue(payload []byte) {
	sq.queue = append(sq.queue, payload)
}

// Dequeue removes and returns the payload at the front of the queue.
// Returns nil if the queue is empty.
func (sq *SendQueue) Dequeue() []byte {
	if len(sq.queue) == 0 {
		return nil
	}
	payload := sq.queue[0]
	sq.queue = sq.queue[1:]
	return payload
}

// Len returns the number of payloads still waiting to be sent.
func (sq *SendQueue) Len() int {
	return len(sq.queue)
}

func (sq *SendQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range sq.queue {
		sb.WriteString(fmt.Sprintf("%q", val))
		if i < len(sq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
