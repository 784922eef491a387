package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zefrenchwan/stochkit.git/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.ExactArgs(1),
	Short: "Parse and semantically check a scenario file without running it",
	Long: `validate loads a scenario YAML file and reports any contract violation the
engine would have raised at Build time, without actually running a simulation.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	parser := scenario.NewParser()
	file, err := parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse scenario: %w", err)
	}

	validator := scenario.NewValidator()
	if err := validator.Validate(file); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), validator.Report())
		return err
	}

	if validator.HasWarnings() {
		fmt.Fprint(cmd.OutOrStdout(), validator.Report())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "scenario %q is valid: %d agents, %d processes, %d links\n",
		file.Metadata.Name, len(file.Spec.Agents), len(file.Spec.Processes), len(file.Spec.Links))
	return nil
}
