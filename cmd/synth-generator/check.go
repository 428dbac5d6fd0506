package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [synth.yaml]",
	Short: "Report diagnostics without writing artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-summary", false, "do not print the summary table")
	checkCmd.Flags().Bool("warnings-as-errors", false, "fail when any request reports a warning")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, true)
	if err != nil {
		return err
	}

	noSummary, err := cmd.Flags().GetBool("no-summary")
	if err != nil {
		return fmt.Errorf("failed to get no-summary flag: %w", err)
	}

	strict, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}

	results, err := s.runner().Run(cmd.Context(), s.requests)
	if err != nil {
		return err
	}

	printResults(cmd.ErrOrStderr(), results)

	if !noSummary {
		printSummary(cmd.OutOrStdout(), results, s.color)
	}

	failed := 0

	for i := range results {
		if !results[i].OK() || (strict && len(results[i].Diagnostics.Warnings()) > 0) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed: %w", failed, len(results), errFailed)
	}

	return nil
}
