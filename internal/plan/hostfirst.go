package plan

import (
	"go/token"
	"slices"
	"sort"
	"strings"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
)

// HostMembers derives the member set from the fragments themselves: each
// fragment defines the member named by its explicit target, or by its own
// name. Bindings follow by construction. Two fragments defining the same
// member name are a duplicate mapping and define nothing.
func HostMembers(cands []model.MappingCandidate, rep *diagnostic.Reporter) ([]model.ContractMember, []model.Binding) {
	byName := make(map[string][]int)

	var order []string

	for i := range cands {
		name := memberName(&cands[i])
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}

		byName[name] = append(byName[name], i)
	}

	sort.Strings(order)

	var (
		members  []model.ContractMember
		bindings []model.Binding
	)

	for _, name := range order {
		idx := byName[name]
		if len(idx) > 1 {
			ids := make([]string, len(idx))
			for i, ci := range idx {
				ids[i] = cands[ci].ID()
			}

			rep.Errorf(diagnostic.KindDuplicateMapping, name,
				"member %s is defined by %d fragments: %s", name, len(idx), strings.Join(ids, ", "))

			continue
		}

		c := cands[idx[0]]
		m := model.ContractMember{
			Kind:      model.MemberMethod,
			Name:      name,
			Params:    slices.Clone(c.Params),
			Result:    c.Result,
			Async:     c.Async,
			Declaring: c.Host,
			Ordinal:   len(members),
		}

		if !token.IsExported(name) {
			m.Access = model.AccessInternal
			rep.Warnf(diagnostic.KindUnexportedMember, name,
				"member %s derived from fragment %s is unexported", m.Signature(), c.ID())
		}

		kind := model.BindByName
		if c.HasExplicitTarget() {
			kind = model.BindExplicit
		}

		members = append(members, m)
		bindings = append(bindings, model.Binding{Member: m, Candidate: c, Kind: kind, Adapt: model.AdaptNone})
	}

	return members, bindings
}

func memberName(c *model.MappingCandidate) string {
	if c.HasExplicitTarget() {
		return c.ExplicitTarget
	}

	return c.Name
}
