package model

import (
	"strings"
)

// Parameter describes one parameter of a member or candidate.
type Parameter struct {
	Name          string    // Parameter name (may be empty)
	Type          string    // Underlying type, without mode decoration
	Mode          ParamMode // Passing mode
	HasDefault    bool      // Declared with a default value
	IsParamsArray bool      // Variadic (...T); Type is the element type
}

// ContractMember is one abstract member a synthesized type must satisfy.
// It is immutable once resolved.
type ContractMember struct {
	Kind      MemberKind
	Name      string
	Params    []Parameter
	Result    string     // Unwrapped result type, "" for void
	Async     AsyncShape // How Result is delivered
	IsStatic  bool
	IsGeneric bool
	Access    Accessibility
	Declaring string // Contract that declared the member (informational)
	Ordinal   int    // Discovery ordinal assigned by the contract resolver
}

// MemberKey is the deduplication identity of a contract member:
// name, parameter types and parameter modes. The declaring contract is
// deliberately not part of it.
type MemberKey string

// Key returns the deduplication identity of the member.
func (m *ContractMember) Key() MemberKey {
	var sb strings.Builder

	sb.WriteString(m.Name)
	sb.WriteByte('(')

	for i, p := range m.Params {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(p.Mode.String())
		sb.WriteByte(' ')

		if p.IsParamsArray {
			sb.WriteString("...")
		}

		sb.WriteString(p.Type)
	}

	sb.WriteByte(')')

	return MemberKey(sb.String())
}

// Arity returns the number of parameters.
func (m *ContractMember) Arity() int {
	return len(m.Params)
}

// IsVoid reports whether the member produces no value.
func (m *ContractMember) IsVoid() bool {
	return m.Result == ""
}

// Signature renders the member as a Go method signature, e.g.
// "Now(zone string) <-chan time.Time".
func (m *ContractMember) Signature() string {
	return m.Name + "(" + FormatParams(m.Params) + ")" + resultSuffix(m.Result, m.Async)
}

// MappingCandidate is a user-declared fragment eligible to satisfy one
// contract member.
type MappingCandidate struct {
	Host           string      // Declaring host (package path or declared host name)
	Name           string      // Fragment function name
	Receiver       *Parameter  // Injected receiver, set by the collector when the pattern prepends one
	Params         []Parameter // Parameters (receiver excluded once collected)
	Result         string      // Unwrapped result type, "" for void
	Async          AsyncShape
	ExplicitTarget string // Contract member name this fragment declares, if any
	IsStatic       bool   // Invokable without a receiver
	IsGeneric      bool   // Declares type parameters
	Marked         bool   // Explicitly marked as a mapping fragment
	Ordinal        int    // Declaration order within its host
}

// ID returns the qualified fragment name "host.Name".
func (c *MappingCandidate) ID() string {
	if c.Host == "" {
		return c.Name
	}

	return c.Host + "." + c.Name
}

// HasExplicitTarget reports whether the fragment names its target member.
func (c *MappingCandidate) HasExplicitTarget() bool {
	return c.ExplicitTarget != ""
}

// Arity returns the number of parameters excluding any receiver.
func (c *MappingCandidate) Arity() int {
	return len(c.Params)
}

// Signature renders the fragment as a Go function signature.
func (c *MappingCandidate) Signature() string {
	params := c.Params
	if c.Receiver != nil {
		params = append([]Parameter{*c.Receiver}, params...)
	}

	return c.Name + "(" + FormatParams(params) + ")" + resultSuffix(c.Result, c.Async)
}

// Binding pairs one contract member with one candidate.
type Binding struct {
	Member    ContractMember
	Candidate MappingCandidate
	Kind      BindingKind
	Adapt     Adaptation // Async glue chosen during validation
}

// Stub is a contract member emitted with a body that always fails.
type Stub struct {
	Member ContractMember
}

// FormatParamType renders a parameter type with its mode decoration:
// ref and out become pointers, variadic parameters get the "..." prefix.
func FormatParamType(p Parameter) string {
	t := p.Type
	if p.Mode == ParamRef || p.Mode == ParamOut {
		t = "*" + t
	}

	if p.IsParamsArray {
		t = "..." + t
	}

	return t
}

// FormatParams renders a parameter list. Unnamed parameters are rendered
// by type only.
func FormatParams(params []Parameter) string {
	parts := make([]string, 0, len(params))

	for _, p := range params {
		if p.Name != "" {
			parts = append(parts, p.Name+" "+FormatParamType(p))
		} else {
			parts = append(parts, FormatParamType(p))
		}
	}

	return strings.Join(parts, ", ")
}

// FormatResult renders an unwrapped result type in its async shape.
// Returns "" for a synchronous void result.
func FormatResult(result string, async AsyncShape) string {
	switch async {
	case AsyncTask:
		if result == "" {
			return "<-chan struct{}"
		}

		return "<-chan " + result
	case AsyncValueTask:
		if result == "" {
			return "func()"
		}

		return "func() " + result
	default:
		return result
	}
}

// ParseResult splits a Go result type into its unwrapped type and async
// shape. It is the inverse of FormatResult:
//
//	"<-chan T"        -> (T, AsyncTask)
//	"<-chan struct{}" -> ("", AsyncTask)
//	"func() T"        -> (T, AsyncValueTask)
//	"func()"          -> ("", AsyncValueTask)
//	"T"               -> (T, AsyncNone)
func ParseResult(s string) (string, AsyncShape) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "<-chan "):
		inner := strings.TrimSpace(strings.TrimPrefix(s, "<-chan "))
		if inner == "struct{}" {
			return "", AsyncTask
		}

		return inner, AsyncTask
	case s == "func()":
		return "", AsyncValueTask
	case strings.HasPrefix(s, "func() "):
		inner := strings.TrimSpace(strings.TrimPrefix(s, "func() "))
		// func() (A, B) stays a plain result: only single-value thunks are value tasks.
		if strings.HasPrefix(inner, "(") {
			return s, AsyncNone
		}

		return inner, AsyncValueTask
	default:
		return s, AsyncNone
	}
}

func resultSuffix(result string, async AsyncShape) string {
	r := FormatResult(result, async)
	if r == "" {
		return ""
	}

	return " " + r
}
