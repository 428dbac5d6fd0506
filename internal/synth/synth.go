package synth

import (
	"synth-generator/internal/diagnostic"
	"synth-generator/internal/gen"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
)

// Artifact is the emitted source of one request.
type Artifact struct {
	Key  string // File name, stable across runs
	Text []byte
}

// Result is the outcome of one request. Artifact is nil whenever
// Diagnostics holds an error.
type Result struct {
	Request     plan.Request
	Diagnostics diagnostic.Diagnostics
	Artifact    *Artifact
	Plan        *plan.ResolvedPlan
	// Err is set when emission failed on a plan that passed the gate.
	Err error
}

// OK reports whether the request produced an artifact.
func (r *Result) OK() bool {
	return r.Artifact != nil && r.Err == nil
}

// Synthesize resolves req against o and, if no error was reported, emits
// its artifact. It never mutates o and shares no state between calls.
func Synthesize(o oracle.Oracle, req plan.Request) Result {
	res := Result{Request: req}

	rep := diagnostic.NewReporter(&res.Diagnostics, req.Pattern.Family(), req.Name)
	res.Plan = plan.NewResolver(o, req, rep).Resolve()

	if res.Diagnostics.HasErrors() {
		return res
	}

	file, err := gen.NewGenerator(gen.GeneratorConfig{}).Generate(res.Plan)
	if err != nil {
		res.Err = err
		return res
	}

	res.Artifact = &Artifact{Key: file.Filename, Text: file.Content}

	return res
}
