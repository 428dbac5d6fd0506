// Package synth runs the synthesis pipeline for one or many requests.
//
// Synthesize is the pure engine: plan resolution followed by the single
// emission gate. Runner fans a batch of requests out over a bounded pool
// of goroutines and collects the results in request order.
package synth
