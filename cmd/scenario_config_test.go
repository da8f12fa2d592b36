package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/linksim/linksim/sim"
)

const testScenarios = `
scenarios:
  lossy:
    loss_probability: 0.3
    corruption_probability: 0.1
    timeout_ticks: 800
    ack_delay_ticks: 250
    total_frames: 7
    max_attempts: 5
  short-message:
    timeout_ticks: 500
    message: "Hi"
`

func writeScenarioFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScenarios), 0o644))
	return path
}

func TestGetScenarioConfig_KnownPreset(t *testing.T) {
	path := writeScenarioFile(t)

	cfg := GetScenarioConfig(path, "lossy", 42)

	require.NotNil(t, cfg)
	assert.Equal(t, 0.3, cfg.LossProbability)
	assert.Equal(t, 0.1, cfg.CorruptionProbability)
	assert.Equal(t, int64(800), cfg.TimeoutTicks)
	assert.Equal(t, int64(250), cfg.AckDelayTicks)
	assert.Equal(t, 7, cfg.TotalFrames)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestGetScenarioConfig_MessagePreset(t *testing.T) {
	path := writeScenarioFile(t)

	cfg := GetScenarioConfig(path, "short-message", 1)

	require.NotNil(t, cfg)
	assert.Equal(t, "Hi", cfg.Message)
}

func TestGetScenarioConfig_UnknownPreset(t *testing.T) {
	path := writeScenarioFile(t)

	assert.Nil(t, GetScenarioConfig(path, "does-not-exist", 1))
}

func TestGetScenarioConfig_PresetsValidate(t *testing.T) {
	// Every preset in the repository's scenarios.yaml must construct a
	// valid engine config once defaults are applied.
	repoFile := filepath.Join("..", "scenarios.yaml")
	if _, err := os.Stat(repoFile); err != nil {
		t.Skip("repository scenarios.yaml not present")
	}

	for _, name := range []string{"lossless", "lossy", "noisy", "dead-link"} {
		cfg := GetScenarioConfig(repoFile, name, 42)
		require.NotNil(t, cfg, "preset %s missing", name)
		_, err := sim.NewEngine(*cfg)
		assert.NoError(t, err, "preset %s invalid", name)
	}
}
