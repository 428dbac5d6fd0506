package mapping

import (
	"fmt"
	"sort"

	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
	"synth-generator/internal/plan"
)

// Defaults supplies request fields the file leaves empty.
type Defaults struct {
	Package string
	Policy  string
	Pattern string
}

// BuildRequests converts the file's requests into pipeline requests.
// The file must have passed Validate.
func (sf *SynthesisFile) BuildRequests(def Defaults) ([]plan.Request, error) {
	reqs := make([]plan.Request, 0, len(sf.Requests))

	for i := range sf.Requests {
		r := &sf.Requests[i]

		pattern, err := plan.ParsePattern(firstNonEmpty(r.Pattern, def.Pattern))
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.Name, err)
		}

		mode, err := plan.ParseMode(r.Mode)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.Name, err)
		}

		policy, err := plan.ParsePolicy(firstNonEmpty(r.Policy, def.Policy))
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.Name, err)
		}

		reqs = append(reqs, plan.Request{
			Name:     r.Name,
			Pattern:  pattern,
			Mode:     mode,
			Policy:   policy,
			Contract: r.Contract,
			Host:     r.Host,
			Scope:    r.Scope,
			TypeName: r.Type,
			Receiver: r.Receiver,
			Package:  firstNonEmpty(r.Package, def.Package),
		})
	}

	return reqs, nil
}

// HasDeclarations reports whether the file declares anything an oracle
// can answer from.
func (sf *SynthesisFile) HasDeclarations() bool {
	return len(sf.Contracts) > 0 || len(sf.Hosts) > 0 || len(sf.Scopes) > 0 || len(sf.Packages) > 0
}

// BuildSnapshot converts the inline declarations into an oracle snapshot.
// The file must have passed Validate.
func (sf *SynthesisFile) BuildSnapshot() (*oracle.Snapshot, error) {
	s := oracle.NewSnapshot()

	for _, q := range sortedKeys(sf.Packages) {
		s.AddPackage(q, sf.Packages[q])
	}

	for i := range sf.Contracts {
		c := &sf.Contracts[i]

		decl := &oracle.ContractDecl{
			Name:      c.Name,
			Type:      c.Type,
			Scope:     c.Scope,
			Extends:   append([]string(nil), c.Extends...),
			IsGeneric: c.Generic,
		}

		for j := range c.Members {
			m, err := c.Members[j].toModel()
			if err != nil {
				return nil, fmt.Errorf("contract %s: %w", c.Name, err)
			}

			decl.Members = append(decl.Members, m)
		}

		s.AddContract(decl)
	}

	for i := range sf.Hosts {
		h := &sf.Hosts[i]

		cands := make([]model.MappingCandidate, 0, len(h.Fragments))

		for j := range h.Fragments {
			c, err := h.Fragments[j].toModel(h.Qualifier, j)
			if err != nil {
				return nil, fmt.Errorf("host %s: %w", h.Name, err)
			}

			cands = append(cands, c)
		}

		s.AddHost(h.Name, cands...)

		if _, ok := sf.Packages[h.Qualifier]; !ok {
			s.AddPackage(h.Qualifier, h.Name)
		}
	}

	for i := range sf.Scopes {
		sc := &sf.Scopes[i]

		names := make(oracle.NameSet, len(sc.Names))
		for n, k := range sc.Names {
			kind, err := oracle.ParseDeclKind(k)
			if err != nil {
				return nil, fmt.Errorf("scope %s: %w", sc.Name, err)
			}

			names[n] = kind
		}

		s.AddScope(sc.Name, names)
	}

	return s, nil
}

func (m *MemberDef) toModel() (model.ContractMember, error) {
	kind, err := model.ParseMemberKind(m.Kind)
	if err != nil {
		return model.ContractMember{}, err
	}

	params, err := m.Params.toModel()
	if err != nil {
		return model.ContractMember{}, fmt.Errorf("member %s: %w", m.Name, err)
	}

	result, async := model.ParseResult(m.Result)

	access := model.AccessPublic
	if m.Access == "internal" {
		access = model.AccessInternal
	}

	return model.ContractMember{
		Kind:      kind,
		Name:      m.Name,
		Params:    params,
		Result:    result,
		Async:     async,
		IsStatic:  m.Static,
		IsGeneric: m.Generic,
		Access:    access,
	}, nil
}

func (f *FragmentDef) toModel(qualifier string, ordinal int) (model.MappingCandidate, error) {
	params, err := f.Params.toModel()
	if err != nil {
		return model.MappingCandidate{}, fmt.Errorf("fragment %s: %w", f.Name, err)
	}

	result, async := model.ParseResult(f.Result)

	return model.MappingCandidate{
		Host:           qualifier,
		Name:           f.Name,
		Params:         params,
		Result:         result,
		Async:          async,
		ExplicitTarget: f.Target,
		IsStatic:       !f.Instance,
		IsGeneric:      f.Generic,
		Marked:         f.IsMarked(),
		Ordinal:        ordinal,
	}, nil
}

func (p ParamList) toModel() ([]model.Parameter, error) {
	if len(p) == 0 {
		return nil, nil
	}

	out := make([]model.Parameter, len(p))

	for i, def := range p {
		mode, err := model.ParseParamMode(def.Mode)
		if err != nil {
			return nil, err
		}

		out[i] = model.Parameter{
			Name:          def.Name,
			Type:          def.Type,
			Mode:          mode,
			HasDefault:    def.Default,
			IsParamsArray: def.Variadic,
		}
	}

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
