// Package analyze answers oracle queries from Go source.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build an
// oracle.Snapshot from loaded packages:
//   - Interfaces become contracts, keyed "import/path.Name"; embedded
//     interfaces become bases
//   - Functions whose doc comment carries the //synth:map directive become
//     marked fragments of their package
//   - Package-level names become the package's visible scope, excluding
//     declarations in previously synthesized files
//
// Type expressions are written with package-name qualifiers ("time.Time");
// every qualifier used is recorded with its import path.
package analyze
