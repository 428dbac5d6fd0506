// Package gen emits the synthesized type of a resolved plan.
//
// Generation uses text/template + go/format. The output is a pure
// function of the plan: members appear in resolver order, imports in path
// order, and the file name (the artifact key) depends only on the
// request's host and type name.
//
// Emitted shapes:
//   - Adapter: struct with an adaptee field, passed first to each fragment
//   - Decorator: struct embedding the inner value, passed first to each fragment
//   - Facade: empty struct with a shared Default instance
//
// Result glue between fragment and member shapes (T, <-chan T, func() T)
// follows the adaptation chosen during binding; unbound members under the
// stub policy panic when called.
package gen
