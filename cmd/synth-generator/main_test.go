package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/plan"
	"synth-generator/internal/synth"
)

const projectYAML = `
version: "1"
requests:
  - name: clock
    policy: stub
    contract: clock.Clock
    host: example.com/legacy
    scope: example.com/out
    type: ClockAdapter
    receiver: "*legacy.Clock"
  - name: broken
    contract: clock.Clock
    host: example.com/legacy
    type: BrokenAdapter
    receiver: "*legacy.Clock"
packages:
  clock: example.com/clock
  time: time
contracts:
  - name: clock.Clock
    members:
      - name: Now
        result: time.Time
      - name: Zone
        result: string
hosts:
  - name: example.com/legacy
    fragments:
      - name: CurrentTime
        target: Now
        params: [{c: "*legacy.Clock"}]
        result: time.Time
scopes:
  - name: example.com/out
`

func setupProject(t *testing.T) (dir, configPath string) {
	t.Helper()

	dir = t.TempDir()
	configPath = filepath.Join(dir, "synth.toml")

	require.NoError(t, os.WriteFile(configPath, []byte("[generate]\nfile = \"synth.yaml\"\nout = \"gen\"\npackage = \"out\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "synth.yaml"), []byte(projectYAML), 0o644))

	return dir, configPath
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--color", "off", "--jobs", "2"}, args...))

	err = rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestGen_WritesSuccessfulRequests(t *testing.T) {
	dir, cfg := setupProject(t)

	stale := filepath.Join(dir, "gen", "old_thing_adapter.synth.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("package out\n"), 0o644))

	_, stderr, err := execute(t, "--config", cfg, "gen", "--dry-run=false", "--prune=false", "--out", "")
	require.ErrorIs(t, err, errFailed)

	assert.Contains(t, stderr, "[broken] Zone: [ADP002] no fragment implements Zone()")

	content, err := os.ReadFile(filepath.Join(dir, "gen", "legacy_clock_adapter.synth.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package out")
	assert.Contains(t, string(content), `panic("ClockAdapter.Zone not implemented")`)

	assert.FileExists(t, stale, "nothing is pruned while a request fails")
}

func TestGen_DryRun(t *testing.T) {
	_, cfg := setupProject(t)

	stdout, _, err := execute(t, "--config", cfg, "gen", "--dry-run", "--prune=false", "--out", "")
	require.Error(t, err)
	assert.Contains(t, stdout, "// ==> legacy_clock_adapter.synth.go")
}

func TestCheck_Summary(t *testing.T) {
	_, cfg := setupProject(t)

	stdout, _, err := execute(t, "--config", cfg, "check", "--no-summary=false", "--warnings-as-errors=false")
	require.ErrorIs(t, err, errFailed)

	assert.Contains(t, stdout, "REQUEST")
	assert.Contains(t, stdout, "legacy_clock_adapter.synth.go")
	assert.Contains(t, stdout, "2 requests, 1 failed")
}

func TestExplain_UnknownRequest(t *testing.T) {
	_, cfg := setupProject(t)

	_, _, err := execute(t, "--config", cfg, "explain", "clok")
	assert.ErrorContains(t, err, `did you mean "clock"?`)

	stdout, _, err := execute(t, "--config", cfg, "explain", "clock")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TypeName: (string) (len=12) \"ClockAdapter\"")
}

func TestSnapshot_NoPackages(t *testing.T) {
	dir, cfg := setupProject(t)

	_, _, err := execute(t, "--config", cfg, "snapshot", "--output", filepath.Join(dir, "oracle.snapshot"))
	assert.ErrorContains(t, err, "[generate].packages is empty")
	assert.NoFileExists(t, filepath.Join(dir, "oracle.snapshot"))
}

func TestDropKeys(t *testing.T) {
	results := []synth.Result{
		{Request: plan.Request{Name: "a"}, Artifact: &synth.Artifact{Key: "x.synth.go"}},
		{Request: plan.Request{Name: "b"}, Artifact: &synth.Artifact{Key: "x.synth.go"}},
		{Request: plan.Request{Name: "c"}, Artifact: &synth.Artifact{Key: "y.synth.go"}},
		{Request: plan.Request{Name: "d"}, Diagnostics: diagnostic.Diagnostics{Items: []diagnostic.Diagnostic{
			{Severity: diagnostic.DiagnosticError},
		}}},
	}

	files, failed := collectArtifacts(results)
	assert.Equal(t, 1, failed)
	require.Len(t, files, 3)

	kept := dropKeys(files, synth.DuplicateKeys(results))
	require.Len(t, kept, 1)
	assert.Equal(t, "y.synth.go", kept[0].Filename)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "legacy_...", truncate("legacy_clock_adapter", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
