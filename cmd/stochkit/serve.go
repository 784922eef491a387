package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zefrenchwan/stochkit.git/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Args:  cobra.ExactArgs(1),
	Short: "Run a scenario while exposing a /metrics endpoint",
	Long: `serve behaves like run, except the simulation loop runs on the driving
goroutine while an HTTP server exposes /metrics on its own goroutine. The only
state shared between them is the set of prometheus collectors, which are safe
for concurrent use by construction.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":9090", "address to serve /metrics on")
}

func runServe(cmd *cobra.Command, args []string) error {
	path := args[0]
	addr, _ := cmd.Flags().GetString("addr")

	logger := telemetry.NewLogger(telemetry.LoggerConfig{Verbose: verbose, Format: telemetry.LogFormatText, Output: os.Stdout})
	metrics := telemetry.NewMetrics()

	parsed, built, err := loadAndBuild(path, logger)
	if err != nil {
		return err
	}

	server := &http.Server{Addr: addr, Handler: metrics.Handler()}
	serverErrs := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- err
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	for step := 0; step < parsed.Spec.Steps; step++ {
		select {
		case err := <-serverErrs:
			return fmt.Errorf("metrics server failed: %w", err)
		default:
		}

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

	logger.Info("run complete", "events", built.System.EventCount())
	return nil
}
