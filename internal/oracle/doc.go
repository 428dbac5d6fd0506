// Package oracle defines the Declaration Oracle consumed by the synthesis
// engine, and an immutable in-memory implementation (Snapshot).
//
// The engine never talks to a compiler directly: contracts arrive as an
// inheritance graph stored in an arena (nodes addressed by NodeID, parents
// by index), candidates arrive as flat lists, and scopes as name sets.
//
// Snapshots can be frozen to msgpack files so that an analysis of Go
// packages can be replayed byte-for-byte later.
package oracle
