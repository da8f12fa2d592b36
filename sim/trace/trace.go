package trace

import (
	"encoding/json"
	"os"
)

// Level controls the verbosity of transmission tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvents captures every engine event as a TransmissionRecord.
	LevelEvents Level = "events"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEvents: true,
	"":          true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// RunTrace collects transmission records during a simulation run.
type RunTrace struct {
	Config  Config
	Records []TransmissionRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(config Config) *RunTrace {
	return &RunTrace{
		Config:  config,
		Records: make([]TransmissionRecord, 0),
	}
}

// Enabled reports whether records are being collected.
func (rt *RunTrace) Enabled() bool {
	return rt.Config.Level == LevelEvents
}

// Record appends a transmission record. No-op when tracing is disabled.
func (rt *RunTrace) Record(record TransmissionRecord) {
	if !rt.Enabled() {
		return
	}
	rt.Records = append(rt.Records, record)
}

// WriteJSON marshals the collected records (with their summary) to path.
func (rt *RunTrace) WriteJSON(path string) error {
	out := struct {
		Summary *Summary             `json:"summary"`
		Records []TransmissionRecord `json:"records"`
	}{
		Summary: Summarize(rt),
		Records: rt.Records,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
