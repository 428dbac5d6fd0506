// Package main provides the CLI entrypoint for synth-generator.
//
// synth-generator synthesizes Go types implementing a contract by
// forwarding to user-declared mapping fragments:
//   - gen: synthesize and write artifacts
//   - check: report diagnostics and a per-request summary
//   - snapshot: analyze Go packages into an oracle snapshot file
//   - explain: dump the resolved plan of one request
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "synth-generator",
	Short:        "Declarative adapter, decorator and facade synthesis for Go",
	Long:         `synth-generator binds contract members to mapping fragments and emits the forwarding type`,
	SilenceUsage: true,
}

// init registers subcommands and persistent flags.
func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(explainCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to synth.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel requests (0=config or auto)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every request")
}

// main executes the root command. Any error exits with status 1.
func main() {
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
