// Package plan turns a synthesis Request into a ResolvedPlan consumed by
// code generation.
//
// Resolution pipeline:
//  1. Check the request shape (type name, package, host, contract, receiver)
//  2. Resolve the contract graph → deduplicated, ordered members
//     (host-first mode derives members from fragments instead; auto-target
//     mode discovers the contract first)
//  3. Collect marked fragments, stripping the receiver parameter
//  4. Bind members to fragments (see package match)
//  5. Apply the missing-member policy to unbound members
//  6. Compute imports and introduced names, and check them for conflicts
//
// All findings go to one diagnostic.Reporter. The plan never decides
// whether to emit; that gate belongs to the caller.
package plan
