// Package model defines the per-request data model of the synthesis engine:
// contract members, mapping candidates and the bindings between them.
//
// All values are created fresh for one synthesis request and discarded
// afterwards. Types are carried as Go type strings and compared by identity;
// the engine performs no type inference of its own.
//
// Async shapes are rendered in Go as follows:
//   - AsyncNone: T (no result for void)
//   - AsyncTask: <-chan T (<-chan struct{} for void)
//   - AsyncValueTask: func() T (func() for void)
package model
