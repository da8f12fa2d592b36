// Package trace provides transmission-record collection for run analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// TransmissionRecord captures one engine event of a simulation run.
type TransmissionRecord struct {
	Clock   int64  `json:"clock"`
	Kind    string `json:"kind"`
	Seq     int    `json:"seq"`
	Attempt int    `json:"attempt,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
