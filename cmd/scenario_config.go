package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/linksim/linksim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	LossProbability       float64 `yaml:"loss_probability"`
	CorruptionProbability float64 `yaml:"corruption_probability"`
	TimeoutTicks          int64   `yaml:"timeout_ticks"`
	AckDelayTicks         int64   `yaml:"ack_delay_ticks"`
	TotalFrames           int     `yaml:"total_frames"`
	MaxAttempts           int     `yaml:"max_attempts"`
	Message               string  `yaml:"message"`
}

// GetScenarioConfig loads a named scenario preset from a YAML file and
// converts it to a simulation config. Returns nil when the preset does
// not exist.
func GetScenarioConfig(scenarioFilePath string, scenarioName string, seed int64) *sim.Config {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		logrus.Fatalf("unable to read scenario file %s: %v", scenarioFilePath, err)
	}

	// Parse YAML
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("unable to parse scenario file %s: %v", scenarioFilePath, err)
	}

	if scn, scenarioExists := cfg.Scenarios[scenarioName]; scenarioExists {
		logrus.Infof("Using preset scenario %v\n", scenarioName)
		return &sim.Config{
			LossProbability:       scn.LossProbability,
			CorruptionProbability: scn.CorruptionProbability,
			TimeoutTicks:          scn.TimeoutTicks,
			AckDelayTicks:         scn.AckDelayTicks,
			TotalFrames:           scn.TotalFrames,
			MaxAttempts:           scn.MaxAttempts,
			Message:               scn.Message,
			Seed:                  seed,
		}
	}
	return nil
}
