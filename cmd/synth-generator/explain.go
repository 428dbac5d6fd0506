package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/match"
	"synth-generator/internal/plan"
)

var explainCmd = &cobra.Command{
	Use:   "explain <request> [synth.yaml]",
	Short: "Dump the resolved plan of one request",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runExplain,
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args[1:], true)
	if err != nil {
		return err
	}

	for _, req := range s.requests {
		if req.Name != args[0] {
			continue
		}

		diags := &diagnostic.Diagnostics{}
		rep := diagnostic.NewReporter(diags, req.Pattern.Family(), req.Name)
		p := plan.NewResolver(s.oracle, req, rep).Resolve()

		dumper.Fdump(cmd.OutOrStdout(), p)
		printDiagnostics(cmd.ErrOrStderr(), diags.Items)

		return nil
	}

	names := make([]string, len(s.requests))
	for i, r := range s.requests {
		names[i] = r.Name
	}

	if suggestions := match.Suggest(args[0], names, match.MaxSuggestions); len(suggestions) > 0 {
		return fmt.Errorf("no request named %q (did you mean %q?)", args[0], suggestions[0])
	}

	return fmt.Errorf("no request named %q", args[0])
}
