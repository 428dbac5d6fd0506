package synth

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"synth-generator/internal/gen"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
)

// Runner synthesizes batches of requests in parallel.
type Runner struct {
	Oracle oracle.Oracle
	// Jobs bounds the number of concurrent requests; <= 0 means GOMAXPROCS.
	Jobs int
	// DebugDir receives unformatted sources of failed emissions.
	DebugDir string
	Logger   *slog.Logger
}

// Run synthesizes every request and returns the results in request order.
// A request's diagnostics never affect another request; the only error
// returned is the context's.
func (r *Runner) Run(ctx context.Context, reqs []plan.Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(reqs)))

	for i, req := range reqs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			log := logger.With("request", req.Name, "pattern", req.Pattern.String())
			log.Debug("synthesizing", "host", req.Host, "contract", req.Contract)

			results[i] = r.synthesize(req)
			res := &results[i]

			switch {
			case res.Err != nil:
				log.Error("emission failed", "err", res.Err)
			case res.Artifact != nil:
				log.Info("synthesized", "artifact", res.Artifact.Key,
					"warnings", len(res.Diagnostics.Warnings()))
			default:
				log.Warn("not synthesized",
					"errors", len(res.Diagnostics.Errors()),
					"warnings", len(res.Diagnostics.Warnings()))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("synthesis interrupted: %w", err)
	}

	return results, nil
}

func (r *Runner) synthesize(req plan.Request) Result {
	res := Synthesize(r.Oracle, req)
	if res.Err != nil && r.DebugDir != "" && res.Plan != nil {
		// Re-emit with the debug directory set to keep the unformatted source.
		_, _ = gen.NewGenerator(gen.GeneratorConfig{DebugDir: r.DebugDir}).Generate(res.Plan)
	}

	return res
}

// DuplicateKeys returns artifact keys produced by more than one result,
// mapped to the names of the requests producing them.
func DuplicateKeys(results []Result) map[string][]string {
	byKey := make(map[string][]string)

	for i := range results {
		if a := results[i].Artifact; a != nil {
			byKey[a.Key] = append(byKey[a.Key], results[i].Request.Name)
		}
	}

	for k, names := range byKey {
		if len(names) < 2 {
			delete(byKey, k)
		}
	}

	return byKey
}
