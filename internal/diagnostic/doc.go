// Package diagnostic provides the structured findings accumulated while a
// synthesis request is resolved, and the emission gate that consults them.
//
// Key capabilities:
//   - One ordered list per request, appended to by every pipeline stage
//   - Stable codes partitioned by generator family (e.g. "ADP002")
//   - "Did you mean" suggestions attached to binding findings
//   - A single gate: emission proceeds iff no error-severity finding exists
package diagnostic
