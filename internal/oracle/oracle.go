package oracle

import (
	"errors"
	"fmt"
	"sort"

	"synth-generator/internal/common"
	"synth-generator/internal/model"
)

// ErrNotFound is returned (wrapped) when a reference is unknown to an oracle.
var ErrNotFound = errors.New("not found")

// Oracle answers the declaration queries the engine needs. Implementations
// must be side-effect free and deterministic for a given snapshot.
type Oracle interface {
	// ResolveContract returns the inheritance graph rooted at the contract.
	ResolveContract(ref string) (*Graph, error)
	// ResolveCandidates returns every fragment declared by the host,
	// marked or not, in declaration order.
	ResolveCandidates(host string) ([]model.MappingCandidate, error)
	// LookupVisibleNames returns the names visible at the synthesis site.
	LookupVisibleNames(scope string) (NameSet, error)
	// DiscoverContracts lists the contracts declared in scope, sorted.
	DiscoverContracts(scope string) ([]string, error)
	// ResolvePackage maps a package qualifier used in type expressions
	// (e.g. "time" in "time.Time") to its import path.
	ResolvePackage(qualifier string) (string, error)
}

// DeclKind is the kind of declaration owning a visible name.
type DeclKind int

const (
	DeclType DeclKind = iota
	DeclFunc
	DeclVar
	DeclConst
	DeclMethod
	DeclField
	DeclPackage
)

// String returns a human-readable declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclType:
		return "type"
	case DeclFunc:
		return "func"
	case DeclVar:
		return "var"
	case DeclConst:
		return "const"
	case DeclMethod:
		return "method"
	case DeclField:
		return "field"
	case DeclPackage:
		return "package"
	default:
		return common.UnknownStr
	}
}

// ParseDeclKind parses a declaration kind name as printed by String.
func ParseDeclKind(s string) (DeclKind, error) {
	for k := DeclType; k <= DeclPackage; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return DeclType, fmt.Errorf("unknown declaration kind %q", s)
}

// NameSet maps each visible name to the kind of declaration owning it.
type NameSet map[string]DeclKind

// Has reports whether name is visible.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the visible names sorted.
func (s NameSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Chain consults oracles in order; the first answer that is not
// ErrNotFound wins.
type Chain []Oracle

// ResolveContract implements Oracle.
func (c Chain) ResolveContract(ref string) (*Graph, error) {
	return first(c, func(o Oracle) (*Graph, error) { return o.ResolveContract(ref) })
}

// ResolveCandidates implements Oracle.
func (c Chain) ResolveCandidates(host string) ([]model.MappingCandidate, error) {
	return first(c, func(o Oracle) ([]model.MappingCandidate, error) { return o.ResolveCandidates(host) })
}

// LookupVisibleNames implements Oracle.
func (c Chain) LookupVisibleNames(scope string) (NameSet, error) {
	return first(c, func(o Oracle) (NameSet, error) { return o.LookupVisibleNames(scope) })
}

// DiscoverContracts implements Oracle.
func (c Chain) DiscoverContracts(scope string) ([]string, error) {
	return first(c, func(o Oracle) ([]string, error) { return o.DiscoverContracts(scope) })
}

// ResolvePackage implements Oracle.
func (c Chain) ResolvePackage(qualifier string) (string, error) {
	return first(c, func(o Oracle) (string, error) { return o.ResolvePackage(qualifier) })
}

func first[T any](c Chain, fn func(Oracle) (T, error)) (T, error) {
	var zero T

	lastErr := error(ErrNotFound)

	for _, o := range c {
		v, err := fn(o)
		if err == nil {
			return v, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return zero, err
		}

		lastErr = err
	}

	return zero, lastErr
}
