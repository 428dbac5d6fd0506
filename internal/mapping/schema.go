package mapping

import (
	"slices"
)

// SynthesisFile is the root of a YAML synthesis file: the requests to
// run and, optionally, inline declarations answering oracle queries.
type SynthesisFile struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Requests lists the types to synthesize.
	Requests []RequestDef `yaml:"requests"`

	// Packages maps package qualifiers to import paths.
	Packages map[string]string `yaml:"packages,omitempty"`

	// Contracts declares contracts inline.
	Contracts []ContractDef `yaml:"contracts,omitempty"`

	// Hosts declares fragment hosts inline.
	Hosts []HostDef `yaml:"hosts,omitempty"`

	// Scopes declares the names visible in output scopes.
	Scopes []ScopeDef `yaml:"scopes,omitempty"`
}

// RequestDef is one synthesis request as written in the file.
type RequestDef struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern,omitempty"`
	Mode     string `yaml:"mode,omitempty"`
	Policy   string `yaml:"policy,omitempty"`
	Contract string `yaml:"contract,omitempty"`
	Host     string `yaml:"host"`
	Scope    string `yaml:"scope,omitempty"`
	Type     string `yaml:"type"`
	Receiver string `yaml:"receiver,omitempty"`
	Package  string `yaml:"package,omitempty"`
}

// ContractDef declares one contract and its direct bases.
type ContractDef struct {
	Name    string        `yaml:"name"`
	Type    string        `yaml:"type,omitempty"`
	Scope   string        `yaml:"scope,omitempty"`
	Extends StringOrArray `yaml:"extends,omitempty"`
	Generic bool          `yaml:"generic,omitempty"`
	Members []MemberDef   `yaml:"members,omitempty"`
}

// MemberDef declares one contract member.
//
// Result is written as a Go result type; "<-chan T" and "func() T" are
// read as asynchronous results of T.
type MemberDef struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind,omitempty"`
	Params  ParamList `yaml:"params,omitempty"`
	Result  string    `yaml:"result,omitempty"`
	Static  bool      `yaml:"static,omitempty"`
	Generic bool      `yaml:"generic,omitempty"`
	Access  string    `yaml:"access,omitempty"`
}

// HostDef declares the fragments of one host.
type HostDef struct {
	// Name is the host reference used by requests (e.g. an import path).
	Name string `yaml:"name"`
	// Qualifier is the name fragments are called through; defaults to the
	// last element of Name.
	Qualifier string        `yaml:"qualifier,omitempty"`
	Fragments []FragmentDef `yaml:"fragments"`
}

// FragmentDef declares one function of a host.
type FragmentDef struct {
	Name   string    `yaml:"name"`
	Target string    `yaml:"target,omitempty"`
	Params ParamList `yaml:"params,omitempty"`
	Result string    `yaml:"result,omitempty"`
	// Instance marks a method; methods cannot be forwarded to.
	Instance bool `yaml:"instance,omitempty"`
	Generic  bool `yaml:"generic,omitempty"`
	// Marked defaults to true; set it to false to declare a helper that is
	// not a mapping fragment.
	Marked *bool `yaml:"marked,omitempty"`
}

// IsMarked reports whether the fragment takes part in binding.
func (f *FragmentDef) IsMarked() bool {
	return f.Marked == nil || *f.Marked
}

// ScopeDef declares the names visible in one output scope.
type ScopeDef struct {
	Name string `yaml:"name"`
	// Names maps each visible name to its declaration kind ("type",
	// "func", "var", "const", ...).
	Names map[string]string `yaml:"names,omitempty"`
}

// ParamDef declares one parameter.
type ParamDef struct {
	Name     string `yaml:"name,omitempty"`
	Type     string `yaml:"type"`
	Mode     string `yaml:"mode,omitempty"`
	Variadic bool   `yaml:"variadic,omitempty"`
	Default  bool   `yaml:"default,omitempty"`
}

// ParamList is a parameter list that can be unmarshaled from:
//   - Types only: [string, int]
//   - Name/type pairs: [{s: string}, {n: int}]
//   - Full objects: [{name: buf, type: "[]byte", mode: ref}]
//
// A type written as "...T" declares a variadic parameter of T.
type ParamList []ParamDef

// StringOrArray accepts either a single string or an array of strings.
type StringOrArray []string

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
