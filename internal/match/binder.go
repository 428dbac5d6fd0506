package match

import (
	"strings"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
)

// MaxSuggestions is the number of "did you mean" names attached to a
// target-not-found finding.
const MaxSuggestions = 3

// BindResult is the outcome of binding one contract against one candidate set.
type BindResult struct {
	// Bindings in member order. Each member and each candidate appears at most once.
	Bindings []model.Binding
	// Unbound members, in member order.
	Unbound []model.ContractMember
	// Unused non-explicit candidates, in candidate order.
	Unused []model.MappingCandidate
}

// Bound reports whether the member with the given key received a binding.
func (r *BindResult) Bound(key model.MemberKey) bool {
	for i := range r.Bindings {
		if r.Bindings[i].Member.Key() == key {
			return true
		}
	}

	return false
}

// binder holds the per-request binding state.
type binder struct {
	members     []model.ContractMember
	cands       []model.MappingCandidate
	consumed    []bool
	memberNames map[string]int // name -> number of members with that name
	rep         *diagnostic.Reporter
}

// Bind matches each member (in the given order) to at most one candidate:
//  1. Explicit: the unique candidate whose explicit target is the member's name.
//  2. By name: the unique non-explicit candidate with the member's name and arity.
//  3. By signature: the unique non-explicit candidate, named after no member,
//     whose signature validates.
//
// Ties at any level are reported as duplicate mappings and leave the member
// unbound. A candidate found at levels 1 or 2 that fails validation is
// reported and also leaves the member unbound; weaker levels are not tried.
func Bind(
	members []model.ContractMember,
	cands []model.MappingCandidate,
	rep *diagnostic.Reporter,
) *BindResult {
	b := &binder{
		members:     members,
		cands:       cands,
		consumed:    make([]bool, len(cands)),
		memberNames: make(map[string]int, len(members)),
		rep:         rep,
	}

	for i := range members {
		b.memberNames[members[i].Name]++
	}

	result := &BindResult{}
	explicitlyBound := make(map[model.MemberKey]bool)

	for i := range members {
		m := &members[i]

		binding, explicit := b.bindMember(m)
		if binding == nil {
			result.Unbound = append(result.Unbound, *m)
			continue
		}

		if explicit {
			explicitlyBound[m.Key()] = true
		}

		result.Bindings = append(result.Bindings, *binding)
	}

	b.reportUnknownTargets()
	b.reportUnmatchedOverloads()
	result.Unused = b.reportUnused(explicitlyBound)

	return result
}

// bindMember tries the three precedence levels for one member.
func (b *binder) bindMember(m *model.ContractMember) (*model.Binding, bool) {
	if idx, found := b.explicit(m); found {
		if idx < 0 {
			return nil, true
		}

		return b.validateAndBind(m, idx, model.BindExplicit), true
	}

	if idx, found := b.byName(m); found {
		if idx < 0 {
			return nil, false
		}

		return b.validateAndBind(m, idx, model.BindByName), false
	}

	return b.bySignature(m), false
}

// explicit returns the index of the unique explicit candidate for m.
// found is false when no candidate targets m; idx is -1 on ambiguity.
func (b *binder) explicit(m *model.ContractMember) (idx int, found bool) {
	var hits []int

	for i := range b.cands {
		c := &b.cands[i]
		if b.consumed[i] || c.ExplicitTarget != m.Name {
			continue
		}

		// Overloaded names: only fragments shaped for this overload apply.
		if b.memberNames[m.Name] > 1 && !ValidateSignature(m, c).OK {
			continue
		}

		hits = append(hits, i)
	}

	return b.unique(m, hits, "explicit")
}

// byName returns the unique non-explicit candidate sharing m's name and arity.
func (b *binder) byName(m *model.ContractMember) (idx int, found bool) {
	var hits []int

	for i := range b.cands {
		c := &b.cands[i]
		if b.consumed[i] || c.HasExplicitTarget() {
			continue
		}

		if c.Name == m.Name && c.Arity() == m.Arity() {
			hits = append(hits, i)
		}
	}

	return b.unique(m, hits, "same-name")
}

// bySignature binds the unique unnamed candidate that validates against m.
func (b *binder) bySignature(m *model.ContractMember) *model.Binding {
	var (
		hits     []int
		verdicts []Verdict
	)

	for i := range b.cands {
		c := &b.cands[i]
		if b.consumed[i] || c.HasExplicitTarget() || b.memberNames[c.Name] > 0 {
			continue
		}

		if v := ValidateSignature(m, c); v.OK {
			hits = append(hits, i)
			verdicts = append(verdicts, v)
		}
	}

	idx, found := b.unique(m, hits, "signature-compatible")
	if !found || idx < 0 {
		return nil
	}

	return b.bind(m, idx, model.BindBySignature, verdicts[0])
}

// unique reduces hits to a single index, reporting ties as duplicates.
func (b *binder) unique(m *model.ContractMember, hits []int, level string) (int, bool) {
	switch len(hits) {
	case 0:
		return 0, false
	case 1:
		return hits[0], true
	default:
		ids := make([]string, len(hits))
		for i, h := range hits {
			ids[i] = b.cands[h].ID()
		}

		b.rep.Errorf(diagnostic.KindDuplicateMapping, m.Name,
			"member %s has %d %s mappings: %s", m.Signature(), len(hits), level, strings.Join(ids, ", "))

		return -1, true
	}
}

func (b *binder) validateAndBind(m *model.ContractMember, idx int, kind model.BindingKind) *model.Binding {
	c := &b.cands[idx]

	v := ValidateSignature(m, c)
	if !v.OK {
		k := diagnostic.KindSignatureMismatch
		if v.IsRefKind() {
			k = diagnostic.KindRefKindMismatch
		}

		b.rep.Errorf(k, m.Name, "fragment %s cannot implement %s: %s", c.ID(), m.Signature(), v.Detail)

		return nil
	}

	return b.bind(m, idx, kind, v)
}

func (b *binder) bind(m *model.ContractMember, idx int, kind model.BindingKind, v Verdict) *model.Binding {
	b.consumed[idx] = true

	return &model.Binding{
		Member:    *m,
		Candidate: b.cands[idx],
		Kind:      kind,
		Adapt:     v.Adapt,
	}
}

// reportUnknownTargets flags explicit candidates naming no contract member.
func (b *binder) reportUnknownTargets() {
	names := make([]string, 0, len(b.members))
	for i := range b.members {
		names = append(names, b.members[i].Name)
	}

	for i := range b.cands {
		c := &b.cands[i]
		if !c.HasExplicitTarget() || b.memberNames[c.ExplicitTarget] > 0 {
			continue
		}

		b.rep.ErrorSuggest(diagnostic.KindTargetNotFound, c.ExplicitTarget,
			Suggest(c.ExplicitTarget, names, MaxSuggestions),
			"fragment %s targets %q, which is not a member of the contract", c.ID(), c.ExplicitTarget)
	}
}

// reportUnmatchedOverloads flags explicit candidates targeting an
// overloaded name whose signature fits none of its overloads. Such a
// candidate is never offered to any member, so nothing else reports it.
func (b *binder) reportUnmatchedOverloads() {
	for i := range b.cands {
		c := &b.cands[i]
		if b.consumed[i] || !c.HasExplicitTarget() || b.memberNames[c.ExplicitTarget] < 2 {
			continue
		}

		var sigs []string

		fits := false

		for j := range b.members {
			m := &b.members[j]
			if m.Name != c.ExplicitTarget {
				continue
			}

			sigs = append(sigs, m.Signature())

			if ValidateSignature(m, c).OK {
				fits = true
				break
			}
		}

		if fits {
			continue
		}

		b.rep.Errorf(diagnostic.KindSignatureMismatch, c.ExplicitTarget,
			"fragment %s cannot implement any overload of %s (%s)",
			c.ID(), c.ExplicitTarget, strings.Join(sigs, "; "))
	}
}

// reportUnused warns about non-explicit candidates nothing consumed. A
// candidate that would have served a member already bound explicitly is
// reported as shadowed instead.
func (b *binder) reportUnused(explicitlyBound map[model.MemberKey]bool) []model.MappingCandidate {
	var unused []model.MappingCandidate

	for i := range b.cands {
		c := &b.cands[i]
		if b.consumed[i] || c.HasExplicitTarget() {
			continue
		}

		unused = append(unused, *c)

		if shadow := b.shadowedBy(c, explicitlyBound); shadow != nil {
			b.rep.Warnf(diagnostic.KindShadowedCandidate, c.ID(),
				"fragment %s also matches %s, which is bound explicitly; the explicit mapping wins",
				c.ID(), shadow.Signature())

			continue
		}

		b.rep.Warnf(diagnostic.KindUnusedFragment, c.ID(), "fragment %s is not bound to any member", c.ID())
	}

	return unused
}

func (b *binder) shadowedBy(c *model.MappingCandidate, explicitlyBound map[model.MemberKey]bool) *model.ContractMember {
	for i := range b.members {
		m := &b.members[i]
		if !explicitlyBound[m.Key()] {
			continue
		}

		if c.Name != m.Name && b.memberNames[c.Name] > 0 {
			continue
		}

		if ValidateSignature(m, c).OK {
			return m
		}
	}

	return nil
}
