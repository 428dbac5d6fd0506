package synth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
)

func snapshot(withZone bool) *oracle.Snapshot {
	s := oracle.NewSnapshot()
	s.AddContract(&oracle.ContractDecl{
		Name: "clock.Clock",
		Members: []model.ContractMember{
			{Name: "Now", Result: "time.Time"},
			{Name: "Zone", Result: "string"},
		},
	})

	recv := model.Parameter{Name: "c", Type: "*legacy.Clock"}
	cands := []model.MappingCandidate{
		{Host: "legacy", Name: "CurrentTime", ExplicitTarget: "Now", Result: "time.Time",
			Params: []model.Parameter{recv}, IsStatic: true, Marked: true},
	}

	if withZone {
		cands = append(cands, model.MappingCandidate{Host: "legacy", Name: "Zone", Result: "string",
			Params: []model.Parameter{recv}, IsStatic: true, Marked: true, Ordinal: 1})
	}

	s.AddHost("example.com/legacy", cands...)
	s.AddScope("example.com/out", oracle.NameSet{"Existing": oracle.DeclType})
	s.AddPackage("clock", "example.com/clock")
	s.AddPackage("legacy", "example.com/legacy")
	s.AddPackage("time", "time")

	return s
}

func request(name string, policy plan.Policy) plan.Request {
	return plan.Request{
		Name: name, Pattern: plan.PatternAdapter, Policy: policy,
		Contract: "clock.Clock", Host: "example.com/legacy", Scope: "example.com/out",
		TypeName: "ClockAdapter", Receiver: "*legacy.Clock", Package: "out",
	}
}

func codes(d diagnostic.Diagnostics) []string {
	out := make([]string, len(d.Items))
	for i, item := range d.Items {
		out[i] = item.Code
	}

	return out
}

func TestSynthesize_FullyBound(t *testing.T) {
	res := Synthesize(snapshot(true), request("clock", plan.PolicyError))

	require.True(t, res.OK(), "%v", res.Diagnostics.Items)
	assert.Equal(t, "legacy_clock_adapter.synth.go", res.Artifact.Key)
	assert.Contains(t, string(res.Artifact.Text), "return legacy.Zone(c.adaptee)")
	assert.Empty(t, res.Diagnostics.Items)
}

func TestSynthesize_MissingMemberPolicy(t *testing.T) {
	res := Synthesize(snapshot(false), request("clock", plan.PolicyError))
	assert.Nil(t, res.Artifact)
	assert.Equal(t, []string{"ADP002"}, codes(res.Diagnostics))
	assert.Equal(t, "Zone", res.Diagnostics.Items[0].Subject)

	res = Synthesize(snapshot(false), request("clock", plan.PolicyThrowingStub))
	require.True(t, res.OK(), "%v", res.Diagnostics.Items)
	assert.Contains(t, string(res.Artifact.Text), `panic("ClockAdapter.Zone not implemented")`)
}

func TestSynthesize_NameConflictBlocksEmission(t *testing.T) {
	s := snapshot(true)
	s.AddScope("example.com/out", oracle.NameSet{"ClockAdapter": oracle.DeclType})

	res := Synthesize(s, request("clock", plan.PolicyError))

	assert.Nil(t, res.Artifact)
	assert.Equal(t, []string{"ADP007"}, codes(res.Diagnostics))
	assert.Equal(t, "ClockAdapter", res.Diagnostics.Items[0].Subject)
	assert.NotEmpty(t, res.Plan.Bindings)
}

func TestSynthesize_Deterministic(t *testing.T) {
	first := Synthesize(snapshot(false), request("clock", plan.PolicyThrowingStub))
	require.True(t, first.OK())

	for range 10 {
		again := Synthesize(snapshot(false), request("clock", plan.PolicyThrowingStub))
		assert.Equal(t, first.Artifact, again.Artifact)
		assert.Equal(t, first.Diagnostics, again.Diagnostics)
	}
}

func TestRunner_ParallelMatchesSequential(t *testing.T) {
	o := snapshot(false)

	var reqs []plan.Request
	for i := range 16 {
		policy := plan.PolicyError
		if i%2 == 0 {
			policy = plan.PolicyThrowingStub
		}

		reqs = append(reqs, request(fmt.Sprintf("r%02d", i), policy))
	}

	r := &Runner{Oracle: o, Jobs: 4}

	results, err := r.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, res := range results {
		want := Synthesize(o, reqs[i])

		assert.Equal(t, reqs[i].Name, res.Request.Name)
		assert.Equal(t, want.Artifact, res.Artifact)
		assert.Equal(t, want.Diagnostics, res.Diagnostics)
		assert.Equal(t, i%2 == 0, res.OK())
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Oracle: snapshot(true), Jobs: 1}

	_, err := r.Run(ctx, []plan.Request{request("a", plan.PolicyError), request("b", plan.PolicyError)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDuplicateKeys(t *testing.T) {
	o := snapshot(true)

	r := &Runner{Oracle: o}
	results, err := r.Run(context.Background(), []plan.Request{
		request("a", plan.PolicyError),
		request("b", plan.PolicyError),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"legacy_clock_adapter.synth.go": {"a", "b"}}, DuplicateKeys(results))
	assert.Empty(t, DuplicateKeys(results[:1]))

	renamed := request("c", plan.PolicyError)
	renamed.TypeName = "UTCClock"

	results, err = r.Run(context.Background(), []plan.Request{request("a", plan.PolicyError), renamed})
	require.NoError(t, err)
	require.True(t, results[1].OK(), "%v", results[1].Diagnostics.Items)
	assert.Equal(t, "legacy_utc_clock.synth.go", results[1].Artifact.Key)
	assert.Empty(t, DuplicateKeys(results))
}
