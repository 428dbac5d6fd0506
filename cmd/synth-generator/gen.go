package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"synth-generator/internal/gen"
	"synth-generator/internal/synth"
)

var genCmd = &cobra.Command{
	Use:   "gen [synth.yaml]",
	Short: "Synthesize types and write their artifacts",
	Long: `Run every request of the synthesis file and write one artifact per request
that reported no error. Requests that fail do not prevent the others from being written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringP("out", "o", "", "output directory (default: [generate].out)")
	genCmd.Flags().Bool("dry-run", false, "print artifacts instead of writing them")
	genCmd.Flags().Bool("prune", false, "remove synthesized files no request produced")
}

func runGen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args, true)
	if err != nil {
		return err
	}

	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	if outDir == "" {
		outDir = s.cfg.Path(s.cfg.Generate.Out)
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	prune, err := cmd.Flags().GetBool("prune")
	if err != nil {
		return fmt.Errorf("failed to get prune flag: %w", err)
	}

	prune = prune || s.cfg.Generate.Prune

	runner := s.runner()
	runner.DebugDir = outDir

	results, err := runner.Run(cmd.Context(), s.requests)
	if err != nil {
		return err
	}

	printResults(cmd.ErrOrStderr(), results)

	files, failed := collectArtifacts(results)

	dups := synth.DuplicateKeys(results)
	for _, key := range sortedKeys(dups) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: artifact %s is produced by requests %s\n",
			errorColor.Sprint("error"), key, strings.Join(dups[key], ", "))
	}

	files = dropKeys(files, dups)

	if dryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// ==> %s\n%s\n", f.Filename, f.Content)
		}
	} else {
		if err := gen.WriteFiles(files, outDir); err != nil {
			return err
		}

		if err := handleStale(s, outDir, files, prune && failed == 0 && len(dups) == 0); err != nil {
			return err
		}
	}

	s.logger.Info("generation finished", "requests", len(results), "written", len(files), "failed", failed)

	if failed > 0 || len(dups) > 0 {
		return fmt.Errorf("%d of %d requests failed: %w", failed, len(results), errFailed)
	}

	return nil
}

func collectArtifacts(results []synth.Result) (files []gen.GeneratedFile, failed int) {
	for i := range results {
		r := &results[i]
		if !r.OK() {
			failed++
			continue
		}

		files = append(files, gen.GeneratedFile{Filename: r.Artifact.Key, Content: r.Artifact.Text})
	}

	return files, failed
}

func dropKeys(files []gen.GeneratedFile, keys map[string][]string) []gen.GeneratedFile {
	if len(keys) == 0 {
		return files
	}

	out := files[:0:0]

	for _, f := range files {
		if _, dup := keys[f.Filename]; !dup {
			out = append(out, f)
		}
	}

	return out
}

// handleStale removes, or only reports, synthesized files no request
// produced. Pruning is skipped when any request failed, since its
// previous artifact would be lost.
func handleStale(s *session, outDir string, files []gen.GeneratedFile, prune bool) error {
	stale, err := gen.StaleFiles(outDir, files)
	if err != nil {
		return err
	}

	for _, path := range stale {
		if !prune {
			s.logger.Warn("stale synthesized file", "path", path)
			continue
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing stale file: %w", err)
		}

		s.logger.Info("removed stale synthesized file", "path", path)
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
