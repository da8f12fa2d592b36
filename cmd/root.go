package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/linksim/linksim/sim"
	"github.com/linksim/linksim/sim/trace"
	"github.com/linksim/linksim/tui"
)

var (
	// CLI flags for the run configuration
	seed                  int64   // Seed for the channel RNG
	logLevel              string  // Log verbosity level
	lossProbability       float64 // Chance a sent frame is lost in transit
	corruptionProbability float64 // Chance a sent frame arrives with a flipped bit
	timeoutTicks          int64   // Retransmission timeout (in ticks)
	ackDelayTicks         int64   // Simulated frame + ACK transit delay (in ticks)
	totalFrames           int     // Number of frames to deliver
	maxAttempts           int     // Retransmission cap per frame
	message               string  // Payload to send, one byte per frame

	// CLI flags for scenario presets and trace output
	scenarioFile string // YAML file with scenario presets
	scenario     string // Preset name inside the scenario file
	traceOutput  string // Path for the JSON transmission trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "linksim",
	Short: "Discrete-event simulator for link-layer Stop-and-Wait ARQ",
}

// buildConfig assembles the simulation config from flags, letting a
// named scenario preset override the channel parameters.
func buildConfig() sim.Config {
	cfg := sim.Config{
		LossProbability:       lossProbability,
		CorruptionProbability: corruptionProbability,
		TimeoutTicks:          timeoutTicks,
		AckDelayTicks:         ackDelayTicks,
		TotalFrames:           totalFrames,
		MaxAttempts:           maxAttempts,
		Message:               message,
		Seed:                  seed,
	}
	if scenario != "" {
		if preset := GetScenarioConfig(scenarioFile, scenario, seed); preset != nil {
			cfg = *preset
		} else {
			logrus.Fatalf("Scenario %q not found in %s", scenario, scenarioFile)
		}
	}
	return cfg
}

// recordEvent bridges an engine event into a transmission record.
func recordEvent(rt *trace.RunTrace, ev sim.Event) {
	record := trace.TransmissionRecord{Clock: ev.Timestamp(), Kind: string(ev.Kind())}
	switch ev := ev.(type) {
	case sim.FrameSentEvent:
		record.Seq = ev.Frame.Seq
		record.Attempt = ev.Frame.Attempt
	case sim.FrameDroppedEvent:
		record.Seq = ev.Frame.Seq
		record.Attempt = ev.Frame.Attempt
	case sim.FrameCorruptedEvent:
		record.Seq = ev.Frame.Seq
		record.Attempt = ev.Frame.Attempt
	case sim.FrameDeliveredEvent:
		record.Seq = ev.Frame.Seq
		record.Attempt = ev.Frame.Attempt
		record.Detail = string(ev.Payload)
	case sim.FrameAckedEvent:
		record.Seq = ev.Seq
	case sim.TimeoutFiredEvent:
		record.Seq = ev.Seq
		record.Attempt = ev.Attempt
	case sim.SimulationAbortedEvent:
		record.Seq = ev.Seq
		record.Detail = "retransmission limit exceeded"
	}
	rt.Record(record)
}

// logEvent mirrors the engine event stream onto the logger, the
// headless counterpart of the TUI's log panel.
func logEvent(ev sim.Event) {
	switch ev := ev.(type) {
	case sim.FrameSentEvent:
		logrus.Infof("[tick %07d] >> sent %s", ev.Time, ev.Frame)
	case sim.FrameDroppedEvent:
		logrus.Warnf("[tick %07d] !! frame %d lost in transit (attempt %d)", ev.Time, ev.Frame.Seq, ev.Frame.Attempt)
	case sim.FrameCorruptedEvent:
		logrus.Warnf("[tick %07d] !! frame %d corrupted at bit %d, receiver discards", ev.Time, ev.Frame.Seq, ev.FlippedBit)
	case sim.FrameDeliveredEvent:
		logrus.Infof("[tick %07d] << frame %d delivered: %q", ev.Time, ev.Frame.Seq, ev.Payload)
	case sim.FrameAckedEvent:
		logrus.Infof("[tick %07d] << ACK %d accepted", ev.Time, ev.Seq)
	case sim.TimeoutFiredEvent:
		logrus.Warnf("[tick %07d] !! timeout for frame %d (attempt %d)", ev.Time, ev.Seq, ev.Attempt)
	case sim.SimulationCompletedEvent:
		logrus.Infof("[tick %07d] all frames acknowledged", ev.Time)
	case sim.SimulationAbortedEvent:
		logrus.Errorf("[tick %07d] aborted: frame %d exceeded the retransmission limit", ev.Time, ev.Seq)
	}
}

// runCmd executes a headless simulation on the virtual clock
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ARQ simulation to completion",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig()
		logrus.Infof("Starting simulation: %s", cfg)

		engine, err := sim.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("unable to construct engine: %v", err)
		}

		traceLevel := trace.LevelNone
		if traceOutput != "" {
			traceLevel = trace.LevelEvents
		}
		rt := trace.NewRunTrace(trace.Config{Level: traceLevel})
		engine.Subscribe(logEvent)
		engine.Subscribe(func(ev sim.Event) { recordEvent(rt, ev) })

		if err := engine.Start(); err != nil {
			logrus.Fatalf("unable to start simulation: %v", err)
		}
		if err := engine.Run(); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		engine.Stats().Print(engine.Clock())
		if engine.Aborted() {
			logrus.Warn("Simulation aborted.")
		} else {
			logrus.Info("Simulation complete.")
		}

		if traceOutput != "" {
			if err := rt.WriteJSON(traceOutput); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
			logrus.Infof("Trace written to %s", traceOutput)
		}
	},
}

// watchCmd launches the interactive terminal visualization
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the ARQ simulation in an interactive terminal UI",
	Run: func(cmd *cobra.Command, args []string) {
		// The TUI owns the terminal; keep logrus quiet underneath it.
		logrus.SetLevel(logrus.ErrorLevel)

		cfg := buildConfig()
		if err := tui.Run(cfg); err != nil {
			logrus.Fatalf("tui: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, cmd := range []*cobra.Command{runCmd, watchCmd} {
		cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the channel RNG")
		cmd.Flags().Float64Var(&lossProbability, "loss-probability", 0.1, "Chance a sent frame is lost in transit")
		cmd.Flags().Float64Var(&corruptionProbability, "corruption-probability", 0.1, "Chance a sent frame arrives with a flipped bit")
		cmd.Flags().Int64Var(&timeoutTicks, "timeout-ticks", 1000, "Retransmission timeout (in ticks)")
		cmd.Flags().Int64Var(&ackDelayTicks, "ack-delay-ticks", sim.DefaultAckDelayTicks, "Frame + ACK transit delay (in ticks)")
		cmd.Flags().IntVar(&totalFrames, "total-frames", 5, "Number of frames to deliver")
		cmd.Flags().IntVar(&maxAttempts, "max-attempts", sim.DefaultMaxAttempts, "Retransmission cap per frame")
		cmd.Flags().StringVar(&message, "message", "", "Payload to send, one byte per frame (overrides --total-frames)")
		cmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with scenario presets")
		cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario preset name (overrides channel flags)")
	}

	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceOutput, "trace-output", "", "Path for the JSON transmission trace")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
}
