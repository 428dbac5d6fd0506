package plan

import (
	"fmt"
	"strings"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

//go:generate go tool stringer -type=Pattern -linecomment -output=pattern_string.go
//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go
//go:generate go tool stringer -type=Policy -linecomment -output=policy_string.go

// Pattern selects the generator family and the shape of the synthesized type.
type Pattern int

const (
	// PatternAdapter wraps an adaptee value; fragments take it as first parameter.
	PatternAdapter Pattern = iota // adapter
	// PatternDecorator embeds an inner contract value; fragments take it as first parameter.
	PatternDecorator // decorator
	// PatternFacade has no state; fragments are called with the member's parameters only.
	PatternFacade // facade
)

// Family returns the diagnostic code family of the pattern.
func (p Pattern) Family() diagnostic.Family {
	switch p {
	case PatternDecorator:
		return diagnostic.FamilyDecorator
	case PatternFacade:
		return diagnostic.FamilyFacade
	default:
		return diagnostic.FamilyAdapter
	}
}

// NeedsReceiver reports whether fragments receive the wrapped value as
// their first parameter.
func (p Pattern) NeedsReceiver() bool {
	return p != PatternFacade
}

// Mode selects where the member set comes from.
type Mode int

const (
	// ModeContractFirst resolves the named contract.
	ModeContractFirst Mode = iota // contract_first
	// ModeHostFirst derives one member per marked fragment.
	ModeHostFirst // host_first
	// ModeAutoTarget picks the unique contract in scope that covers every
	// explicit target of the host's fragments.
	ModeAutoTarget // auto_target
)

// Policy decides what happens to contract members left unbound.
type Policy int

const (
	PolicyError        Policy = iota // error
	PolicyThrowingStub               // stub
	PolicyIgnore                     // ignore
)

// ParsePattern parses a pattern name.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adapter":
		return PatternAdapter, nil
	case "decorator":
		return PatternDecorator, nil
	case "facade":
		return PatternFacade, nil
	default:
		return PatternAdapter, fmt.Errorf("unknown pattern %q", s)
	}
}

// ParseMode parses a composition mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "contract_first", "contract-first", "contract":
		return ModeContractFirst, nil
	case "host_first", "host-first", "host":
		return ModeHostFirst, nil
	case "auto_target", "auto-target", "auto":
		return ModeAutoTarget, nil
	default:
		return ModeContractFirst, fmt.Errorf("unknown mode %q", s)
	}
}

// ParsePolicy parses a missing-member policy name.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error", "fail":
		return PolicyError, nil
	case "stub", "throwing_stub", "throw":
		return PolicyThrowingStub, nil
	case "ignore", "skip":
		return PolicyIgnore, nil
	default:
		return PolicyError, fmt.Errorf("unknown policy %q", s)
	}
}

// Request is one synthesis request: one contract and one fragment host.
type Request struct {
	// Name identifies the request in diagnostics.
	Name    string
	Pattern Pattern
	Mode    Mode
	Policy  Policy
	// Contract is the contract reference (empty in host-first and auto-target modes).
	Contract string
	// Host is the reference of the host declaring the fragments.
	Host string
	// Scope is the reference of the scope the type is synthesized into.
	Scope string
	// TypeName is the name of the synthesized type.
	TypeName string
	// Receiver is the adaptee type expression (Adapter), or the inner type
	// in host-first Decorator requests.
	Receiver string
	// Package is the package clause of the emitted file.
	Package string
}

// ResolvedPlan is everything the emitter needs for one request, plus the
// intermediate results kept for explain output.
type ResolvedPlan struct {
	Request Request
	// Contract is the resolved contract reference ("" in host-first mode).
	Contract string
	// ContractType is the type expression naming the contract.
	ContractType string
	// ReceiverType is the type of the first fragment parameter ("" for Facade).
	ReceiverType string
	// Members in emission order.
	Members    []model.ContractMember
	Candidates []model.MappingCandidate
	Bindings   []model.Binding
	Stubs      []model.Stub
	Omitted    []model.ContractMember
	Unused     []model.MappingCandidate
	// Introduced lists every identifier the emitter will declare.
	Introduced []IntroducedName
	// Imports required by the emitted file, sorted by path.
	Imports []Import
	// Local is the qualifier of the output package, stripped from type expressions.
	Local string
}

// IntroducedName is one identifier the emitter declares.
type IntroducedName struct {
	Name string
	Kind oracle.DeclKind
	Role string // "type", "constructor", "field", "singleton", "import"
}

// Import is one import spec of the emitted file.
type Import struct {
	Alias string // Set when the qualifier differs from the last path element
	Path  string
}

// Binding returns the binding of the member with the given key, if any.
func (p *ResolvedPlan) Binding(key model.MemberKey) (*model.Binding, bool) {
	for i := range p.Bindings {
		if p.Bindings[i].Member.Key() == key {
			return &p.Bindings[i], true
		}
	}

	return nil, false
}

// IsStub reports whether the member with the given key is emitted as a stub.
func (p *ResolvedPlan) IsStub(key model.MemberKey) bool {
	for i := range p.Stubs {
		if p.Stubs[i].Member.Key() == key {
			return true
		}
	}

	return false
}
