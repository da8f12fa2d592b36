package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	TotalEvents         int            `json:"total_events"`
	ByKind              map[string]int `json:"by_kind"`
	Sent                int            `json:"sent"`
	Delivered           int            `json:"delivered"`
	Retransmissions     int            `json:"retransmissions"`
	RetransmissionRatio float64        `json:"retransmission_ratio"`
	DeliveryRatio       float64        `json:"delivery_ratio"`
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		ByKind: make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalEvents = len(rt.Records)
	for _, r := range rt.Records {
		summary.ByKind[r.Kind]++
		if r.Kind == "frame_sent" {
			summary.Sent++
			if r.Attempt > 1 {
				summary.Retransmissions++
			}
		}
		if r.Kind == "frame_delivered" {
			summary.Delivered++
		}
	}

	if summary.Sent > 0 {
		summary.RetransmissionRatio = float64(summary.Retransmissions) / float64(summary.Sent)
		summary.DeliveryRatio = float64(summary.Delivered) / float64(summary.Sent)
	}

	return summary
}
