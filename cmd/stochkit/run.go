package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zefrenchwan/stochkit.git/scenario"
	"github.com/zefrenchwan/stochkit.git/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.ExactArgs(1),
	Short: "Run a scenario to its configured step budget",
	Long:  `run loads a scenario YAML file, builds the system and algorithm it describes, and drives Advance in a loop until the step budget is spent.`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().String("format", "text", "log format: text or json")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")

	logger := telemetry.NewLogger(telemetry.LoggerConfig{
		Verbose: verbose,
		Format:  telemetry.LogFormat(format),
		Output:  os.Stdout,
	})
	metrics := telemetry.NewMetrics()

	logger.Info("stochkit starting", "version", version, "scenario", path)

	parsed, built, err := loadAndBuild(path, logger)
	if err != nil {
		return err
	}

	logger.Info("system assembled", "processes", built.System.ProcessCount(), "algorithm", parsed.Spec.Algorithm)

	for step := 0; step < parsed.Spec.Steps; step++ {
		started := time.Now()
		event, err := built.Algorithm.Advance(built.Random)
		metrics.StepLatency.WithLabelValues(parsed.Spec.Algorithm).Observe(time.Since(started).Seconds())
		if err != nil {
			logger.Error("simulation aborted", "step", step, "error", err.Error())
			return fmt.Errorf("advancing step %d: %w", step, err)
		}

		metrics.EventsTotal.Inc()
		metrics.SimulatedEnd.Set(float64(event.Time()))
	}

	logger.Info("run complete",
		"events", built.System.EventCount(),
		"simulated_time", float64(built.System.LastEventTime()))
	return nil
}

// loadAndBuild parses, validates, and builds a scenario, surfacing validator
// warnings through logger without treating them as fatal.
func loadAndBuild(path string, logger *telemetry.Logger) (*scenario.File, *scenario.Built, error) {
	parser := scenario.NewParser()
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	validator := scenario.NewValidator()
	if err := validator.Validate(file); err != nil {
		return nil, nil, fmt.Errorf("scenario failed validation:\n%s", validator.Report())
	}
	if validator.HasWarnings() {
		logger.Info("scenario has warnings", "report", validator.Report())
	}

	built, err := scenario.Build(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build system: %w", err)
	}
	return file, built, nil
}
