package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"synth-generator/internal/analyze"
	"synth-generator/internal/oracle"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [packages...]",
	Short: "Analyze Go packages and write an oracle snapshot",
	Long: `Load the given package patterns (default: [generate].packages) and write their
contracts, fragments and scope names to a msgpack snapshot file.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringP("output", "o", "oracle.snapshot", "snapshot file to write")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, nil, false)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = s.cfg.Generate.Packages
	}

	if len(patterns) == 0 {
		return errors.New("no packages given and [generate].packages is empty")
	}

	a := analyze.NewAnalyzer()
	a.Dir = s.cfg.Root

	snap, err := a.LoadPackages(patterns...)
	if err != nil {
		return err
	}

	if err := oracle.SaveSnapshot(output, snap); err != nil {
		return err
	}

	s.logger.Info("snapshot written", "path", output,
		"contracts", len(snap.Contracts), "hosts", len(snap.Hosts), "scopes", len(snap.Scopes))

	return nil
}
