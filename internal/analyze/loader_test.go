package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
	"synth-generator/internal/synth"
)

const (
	clockPkg   = "synth-generator/examples/clock"
	legacyPkg  = "synth-generator/examples/legacy"
	outPkg     = "synth-generator/examples/out"
	loaderPkg  = "synth-generator/examples/loader"
	partialPkg = "synth-generator/examples/partial"
)

func load(t *testing.T) *oracle.Snapshot {
	t.Helper()

	s, err := NewAnalyzer().LoadPackages(clockPkg, legacyPkg, outPkg, loaderPkg)
	require.NoError(t, err)

	return s
}

func TestAnalyzer_Contracts(t *testing.T) {
	s := load(t)

	clock := s.Contracts[clockPkg+".Clock"]
	require.NotNil(t, clock)
	assert.Equal(t, "clock.Clock", clock.Type)
	assert.Equal(t, clockPkg, clock.Scope)
	assert.Equal(t, []string{clockPkg + ".Zoner", clockPkg + ".Sleeper"}, clock.Extends)
	assert.Equal(t, []model.ContractMember{{
		Name:   "Since",
		Params: []model.Parameter{{Name: "t", Type: "time.Time"}},
		Result: "time.Duration",
	}}, clock.Members)

	fetcher := s.Contracts[clockPkg+".Fetcher"]
	require.NotNil(t, fetcher)
	require.Len(t, fetcher.Members, 2)
	assert.Equal(t, model.ContractMember{
		Name:   "Fetch",
		Params: []model.Parameter{{Name: "keys", Type: "string", IsParamsArray: true}},
		Result: "int",
		Async:  model.AsyncTask,
	}, fetcher.Members[0])
	assert.Equal(t, "bool", fetcher.Members[1].Result)
	assert.Equal(t, model.AsyncValueTask, fetcher.Members[1].Async)

	assert.True(t, s.Contracts[clockPkg+".Set"].IsGeneric)

	discovered, err := s.DiscoverContracts(clockPkg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		clockPkg + ".Base", clockPkg + ".Clock", clockPkg + ".Fetcher",
		clockPkg + ".Set", clockPkg + ".Sleeper", clockPkg + ".Zoner",
	}, discovered)
}

func TestAnalyzer_DiamondMembers(t *testing.T) {
	s := load(t)

	g, err := s.ResolveContract(clockPkg + ".Clock")
	require.NoError(t, err)

	diags := &diagnostic.Diagnostics{}
	members := plan.ResolveMembers(g, diagnostic.NewReporter(diags, diagnostic.FamilyAdapter, "t"))
	assert.Empty(t, diags.Items)

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}

	assert.Equal(t, []string{"Now", "Since", "Sleep", "Zone"}, names)
}

func TestAnalyzer_Fragments(t *testing.T) {
	s := load(t)

	cands, err := s.ResolveCandidates(legacyPkg)
	require.NoError(t, err)

	type frag struct {
		Name, Target string
		Marked       bool
	}

	var got []frag
	for _, c := range cands {
		got = append(got, frag{c.Name, c.ExplicitTarget, c.Marked})
	}

	assert.Equal(t, []frag{
		{"CurrentTime", "Now", true},
		{"Since", "", true},
		{"Pause", "Sleep", true},
		{"ZoneName", "Zone", true},
		{"location", "", false},
		{"helper", "", false},
	}, got)

	current := cands[0]
	assert.Equal(t, "legacy", current.Host)
	assert.True(t, current.IsStatic)
	assert.Equal(t, []model.Parameter{{Name: "c", Type: "*legacy.Clock"}}, current.Params)
	assert.Equal(t, "time.Time", current.Result)

	loader, err := s.ResolveCandidates(loaderPkg)
	require.NoError(t, err)
	require.Len(t, loader, 4)

	assert.Equal(t, model.AsyncValueTask, loader[0].Async)
	assert.Equal(t, "int", loader[0].Result)
	assert.True(t, loader[0].Params[1].IsParamsArray)
	assert.False(t, loader[2].IsStatic, "methods are instance fragments")
	assert.True(t, loader[3].IsGeneric)
}

func TestAnalyzer_ScopeExcludesSynthesizedFiles(t *testing.T) {
	s := load(t)

	names, err := s.LookupVisibleNames(outPkg)
	require.NoError(t, err)

	assert.Equal(t, oracle.NameSet{"Existing": oracle.DeclType, "Run": oracle.DeclFunc}, names)
}

func TestAnalyzer_Packages(t *testing.T) {
	s := load(t)

	for q, want := range map[string]string{
		"clock":  clockPkg,
		"legacy": legacyPkg,
		"out":    outPkg,
		"time":   "time",
	} {
		got, err := s.ResolvePackage(q)
		require.NoError(t, err, q)
		assert.Equal(t, want, got, q)
	}
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("synth-generator/examples/does-not-exist")
	assert.Error(t, err)
}

func TestAnalyzer_EndToEnd(t *testing.T) {
	s := load(t)

	res := synth.Synthesize(s, plan.Request{
		Name: "clock", Pattern: plan.PatternAdapter, Policy: plan.PolicyError,
		Contract: clockPkg + ".Clock", Host: legacyPkg, Scope: outPkg,
		TypeName: "LegacyClock", Receiver: "*legacy.Clock", Package: "out",
	})
	require.True(t, res.OK(), "%v", res.Diagnostics.Items)

	assert.Equal(t, "legacy_legacy_clock.synth.go", res.Artifact.Key)

	code := string(res.Artifact.Text)
	assert.Contains(t, code, "var _ clock.Clock = (*LegacyClock)(nil)")
	assert.Contains(t, code, "return legacy.CurrentTime(l.adaptee)")
	assert.Contains(t, code, "return legacy.Since(l.adaptee, t)")
	assert.Contains(t, code, "legacy.Pause(l.adaptee, d)")
	assert.Contains(t, code, "return legacy.ZoneName(l.adaptee)")

	// The previously synthesized ClockAdapter does not block its regeneration.
	res = synth.Synthesize(s, plan.Request{
		Name: "again", Pattern: plan.PatternAdapter, Contract: clockPkg + ".Clock", Host: legacyPkg,
		Scope: outPkg, TypeName: "ClockAdapter", Receiver: "*legacy.Clock", Package: "out",
	})
	assert.True(t, res.OK(), "%v", res.Diagnostics.Items)
}

// The checked-in stub adapter in examples/out is exercised by that package's
// tests; it must stay identical to what the generator emits.
func TestAnalyzer_StubArtifactUpToDate(t *testing.T) {
	s, err := NewAnalyzer().LoadPackages(clockPkg, partialPkg, outPkg)
	require.NoError(t, err)

	res := synth.Synthesize(s, plan.Request{
		Name: "fixed", Pattern: plan.PatternAdapter, Policy: plan.PolicyThrowingStub,
		Contract: clockPkg + ".Zoner", Host: partialPkg, Scope: outPkg,
		TypeName: "FixedClock", Receiver: "*partial.Fixed", Package: "out",
	})
	require.True(t, res.OK(), "%v", res.Diagnostics.Items)
	require.Equal(t, "partial_fixed_clock.synth.go", res.Artifact.Key)

	want, err := os.ReadFile(filepath.Join("..", "..", "examples", "out", res.Artifact.Key))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(res.Artifact.Text))
}
