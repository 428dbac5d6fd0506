// Package match binds contract members to mapping candidates.
//
// Key functions:
//   - ValidateSignature: proves a candidate can serve a member (arity,
//     parameter types, parameter modes, result and async shape)
//   - Bind: applies the explicit > by-name > by-signature precedence,
//     consuming each candidate at most once
//   - Suggest: ranks near-miss names for "did you mean" hints
package match
