package oracle

import (
	"fmt"
	"slices"
	"sort"

	"synth-generator/internal/model"
)

// ContractDecl declares one contract and its direct bases.
type ContractDecl struct {
	Name      string
	Type      string   // Type expression at use sites; defaults to Name
	Scope     string   // Scope the contract is declared in (for discovery)
	Extends   []string // Direct bases, in declaration order
	Members   []model.ContractMember
	IsGeneric bool
}

// Snapshot is an immutable, in-memory Oracle.
type Snapshot struct {
	Contracts map[string]*ContractDecl
	Hosts     map[string][]model.MappingCandidate
	Scopes    map[string]NameSet
	Packages  map[string]string // qualifier -> import path
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Contracts: make(map[string]*ContractDecl),
		Hosts:     make(map[string][]model.MappingCandidate),
		Scopes:    make(map[string]NameSet),
		Packages:  make(map[string]string),
	}
}

// AddContract registers a contract declaration.
func (s *Snapshot) AddContract(decl *ContractDecl) {
	s.Contracts[decl.Name] = decl
}

// AddHost registers the fragments declared by a host.
func (s *Snapshot) AddHost(host string, candidates ...model.MappingCandidate) {
	s.Hosts[host] = append(s.Hosts[host], candidates...)
}

// AddScope registers names visible in a scope.
func (s *Snapshot) AddScope(scope string, names NameSet) {
	existing, ok := s.Scopes[scope]
	if !ok {
		existing = make(NameSet, len(names))
		s.Scopes[scope] = existing
	}

	for n, k := range names {
		existing[n] = k
	}
}

// AddPackage registers the import path behind a package qualifier. The
// first registration of a qualifier wins.
func (s *Snapshot) AddPackage(qualifier, path string) {
	if _, ok := s.Packages[qualifier]; !ok {
		s.Packages[qualifier] = path
	}
}

// ResolveContract builds the arena graph by breadth-first expansion of
// Extends. Each contract gets exactly one node.
func (s *Snapshot) ResolveContract(ref string) (*Graph, error) {
	root, ok := s.Contracts[ref]
	if !ok {
		return nil, fmt.Errorf("contract %q: %w", ref, ErrNotFound)
	}

	g := NewGraph(root.Name)
	g.Nodes[0].Type = root.typeExpr()
	g.Nodes[0].Members = slices.Clone(root.Members)
	g.Nodes[0].IsGeneric = root.IsGeneric

	ids := map[string]NodeID{root.Name: 0}
	queue := []string{root.Name}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		decl := s.Contracts[name]
		for _, base := range decl.Extends {
			baseDecl, ok := s.Contracts[base]
			if !ok {
				return nil, fmt.Errorf("contract %q extends %q: %w", name, base, ErrNotFound)
			}

			id, seen := ids[base]
			if !seen {
				var err error

				id, err = g.Add(baseDecl.Name, slices.Clone(baseDecl.Members)...)
				if err != nil {
					return nil, err
				}

				g.Nodes[id].Type = baseDecl.typeExpr()
				g.Nodes[id].IsGeneric = baseDecl.IsGeneric
				ids[base] = id
				queue = append(queue, base)
			}

			if err := g.Link(ids[name], id); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ResolveCandidates implements Oracle.
func (s *Snapshot) ResolveCandidates(host string) ([]model.MappingCandidate, error) {
	cands, ok := s.Hosts[host]
	if !ok {
		return nil, fmt.Errorf("host %q: %w", host, ErrNotFound)
	}

	return slices.Clone(cands), nil
}

// LookupVisibleNames implements Oracle.
func (s *Snapshot) LookupVisibleNames(scope string) (NameSet, error) {
	names, ok := s.Scopes[scope]
	if !ok {
		return nil, fmt.Errorf("scope %q: %w", scope, ErrNotFound)
	}

	out := make(NameSet, len(names))
	for n, k := range names {
		out[n] = k
	}

	return out, nil
}

// DiscoverContracts implements Oracle.
func (s *Snapshot) DiscoverContracts(scope string) ([]string, error) {
	var names []string

	for name, decl := range s.Contracts {
		if decl.Scope == scope {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		if _, ok := s.Scopes[scope]; !ok {
			return nil, fmt.Errorf("scope %q: %w", scope, ErrNotFound)
		}
	}

	sort.Strings(names)

	return names, nil
}

// ResolvePackage implements Oracle.
func (s *Snapshot) ResolvePackage(qualifier string) (string, error) {
	path, ok := s.Packages[qualifier]
	if !ok {
		return "", fmt.Errorf("package qualifier %q: %w", qualifier, ErrNotFound)
	}

	return path, nil
}

func (d *ContractDecl) typeExpr() string {
	if d.Type != "" {
		return d.Type
	}

	return d.Name
}
