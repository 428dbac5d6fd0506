package match

import (
	"fmt"

	"synth-generator/internal/common"
	"synth-generator/internal/model"
)

// Aspect names the part of a signature that failed validation.
type Aspect int

const (
	AspectNone Aspect = iota
	AspectArity
	AspectParamType
	AspectParamMode
	AspectVariadic
	AspectResult
)

// String returns a human-readable aspect name.
func (a Aspect) String() string {
	switch a {
	case AspectNone:
		return "none"
	case AspectArity:
		return "arity"
	case AspectParamType:
		return "parameter type"
	case AspectParamMode:
		return "ref kind"
	case AspectVariadic:
		return "variadic"
	case AspectResult:
		return "result"
	default:
		return common.UnknownStr
	}
}

// Verdict is the outcome of validating one candidate against one member.
type Verdict struct {
	OK     bool
	Aspect Aspect           // First violated aspect (AspectNone when OK)
	Detail string           // Human-readable description of the violation
	Adapt  model.Adaptation // Async glue to insert when OK
}

// IsRefKind reports whether the failure is a parameter-mode mismatch.
func (v Verdict) IsRefKind() bool {
	return v.Aspect == AspectParamMode
}

// ValidateSignature checks, in order and failing fast, that cand can
// serve member: arity, parameter types, parameter modes, variadic shape,
// then result type within the async-shape equivalence class.
//
// The candidate's receiver (if the collector stripped one) does not count
// towards its arity. Parameter types must be identical; no widening. A
// ref or out parameter is spelled as a pointer, so a by-value *T against a
// ref T fails on its mode rather than its type.
//
// A synchronous member only accepts a synchronous result; the async shapes
// are interchangeable among asynchronous members.
func ValidateSignature(member *model.ContractMember, cand *model.MappingCandidate) Verdict {
	if member.Arity() != cand.Arity() {
		return fail(AspectArity, "contract member takes %d parameter(s), fragment takes %d",
			member.Arity(), cand.Arity())
	}

	for i := range member.Params {
		mp, cp := member.Params[i], cand.Params[i]
		if mp.Type != cp.Type && goType(mp) != goType(cp) {
			return fail(AspectParamType, "parameter %d: contract type %s differs from fragment type %s",
				i+1, mp.Type, cp.Type)
		}
	}

	for i := range member.Params {
		mp, cp := member.Params[i], cand.Params[i]
		if mp.Mode != cp.Mode {
			return fail(AspectParamMode, "parameter %d: ref kind mismatch: contract passes %s, fragment passes %s",
				i+1, describeMode(mp.Mode), describeMode(cp.Mode))
		}
	}

	for i := range member.Params {
		mp, cp := member.Params[i], cand.Params[i]
		if mp.IsParamsArray != cp.IsParamsArray {
			return fail(AspectVariadic, "parameter %d: contract variadic=%t, fragment variadic=%t",
				i+1, mp.IsParamsArray, cp.IsParamsArray)
		}
	}

	if member.Result != cand.Result {
		return fail(AspectResult, "contract returns %s, fragment returns %s",
			describeResult(member.Result, member.Async), describeResult(cand.Result, cand.Async))
	}

	if !member.Async.IsAsync() && cand.Async.IsAsync() {
		return fail(AspectResult, "synchronous contract member returns %s, fragment returns %s",
			describeResult(member.Result, member.Async), describeResult(cand.Result, cand.Async))
	}

	return Verdict{OK: true, Adapt: ChooseAdaptation(member.Async, cand.Async)}
}

// ChooseAdaptation picks the glue that turns a candidate result shape into
// the member's asynchronous result shape. A synchronous member never needs
// glue: it only accepts a synchronous fragment.
func ChooseAdaptation(member, cand model.AsyncShape) model.Adaptation {
	switch {
	case member == cand || !member.IsAsync():
		return model.AdaptNone
	case !cand.IsAsync():
		return model.AdaptWrap
	default:
		return model.AdaptRewrap
	}
}

// goType is the parameter type as Go spells it.
func goType(p model.Parameter) string {
	if p.Mode == model.ParamRef || p.Mode == model.ParamOut {
		return "*" + p.Type
	}

	return p.Type
}

func fail(aspect Aspect, format string, args ...any) Verdict {
	return Verdict{Aspect: aspect, Detail: fmt.Sprintf(format, args...)}
}

func describeMode(m model.ParamMode) string {
	if m == model.ParamByValue {
		return "by value"
	}

	return "by " + m.String()
}

func describeResult(result string, async model.AsyncShape) string {
	r := model.FormatResult(result, async)
	if r == "" {
		return "nothing"
	}

	return r
}
