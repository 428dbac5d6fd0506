package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synth-generator/internal/analyze"
	"synth-generator/internal/config"
	"synth-generator/internal/mapping"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
	"synth-generator/internal/synth"
)

// session is everything a command needs to run requests.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	color    bool
	jobs     int
	file     *mapping.SynthesisFile
	oracle   oracle.Chain
	requests []plan.Request
}

// errFailed is returned after diagnostics explaining the failure were printed.
var errFailed = errors.New("synthesis failed")

// newSession loads the configuration and, when loadFile is set, the
// synthesis file (args[0] or the configured one) and its oracles.
func newSession(cmd *cobra.Command, args []string, loadFile bool) (*session, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(".")
	}

	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}

	if err := s.applyFlags(cmd); err != nil {
		return nil, err
	}

	if !loadFile {
		return s, nil
	}

	path := cfg.Path(cfg.Generate.File)
	if len(args) > 0 {
		path = args[0]
	}

	if err := s.loadFile(cmd.ErrOrStderr(), path); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	switch colorFlag {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return fmt.Errorf("unknown --color value %q (expected auto|on|off)", colorFlag)
	}

	color.NoColor = !s.color

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	level, err := s.cfg.LogLevel()
	if err != nil {
		return err
	}

	if verbose {
		level = slog.LevelDebug
	}

	s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	s.jobs, err = flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	if s.jobs <= 0 {
		s.jobs = s.cfg.Generate.Jobs
	}

	return nil
}

// loadFile parses and validates the synthesis file, then assembles the
// oracle chain: inline declarations first, then analyzed packages, then
// snapshot files.
func (s *session) loadFile(w io.Writer, path string) error {
	file, err := mapping.LoadFile(path)
	if err != nil {
		return err
	}

	if diags := mapping.Validate(file); diags.Len() > 0 {
		printDiagnostics(w, diags.Items)

		if diags.HasErrors() {
			return fmt.Errorf("%s: %w", path, errFailed)
		}
	}

	s.file = file

	if file.HasDeclarations() {
		snap, err := file.BuildSnapshot()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		s.oracle = append(s.oracle, snap)
	}

	if len(s.cfg.Generate.Packages) > 0 {
		a := analyze.NewAnalyzer()
		a.Dir = s.cfg.Root

		snap, err := a.LoadPackages(s.cfg.Generate.Packages...)
		if err != nil {
			return err
		}

		s.logger.Debug("analyzed packages", "patterns", s.cfg.Generate.Packages,
			"contracts", len(snap.Contracts), "hosts", len(snap.Hosts))
		s.oracle = append(s.oracle, snap)
	}

	for _, p := range s.cfg.Generate.Snapshots {
		snap, err := oracle.LoadSnapshot(s.cfg.Path(p))
		if err != nil {
			return err
		}

		s.oracle = append(s.oracle, snap)
	}

	s.requests, err = file.BuildRequests(s.cfg.Defaults())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (s *session) runner() *synth.Runner {
	return &synth.Runner{
		Oracle: s.oracle,
		Jobs:   s.jobs,
		Logger: s.logger,
	}
}
