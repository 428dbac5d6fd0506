package plan

import (
	"sort"
	"strings"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

// DiscoverContract finds the unique contract in scope whose member names
// include every explicit target of the marked fragments. It returns "" and
// reports AmbiguousContract when there is no such contract or more than one.
func DiscoverContract(
	o oracle.Oracle,
	scope string,
	raw []model.MappingCandidate,
	rep *diagnostic.Reporter,
) string {
	targets := explicitTargets(raw)

	contracts, err := o.DiscoverContracts(scope)
	if err != nil {
		rep.Errorf(diagnostic.KindOracleFailure, scope, "listing contracts in %s: %v", scope, err)
		return ""
	}

	var matches []string

	for _, ref := range contracts {
		g, err := o.ResolveContract(ref)
		if err != nil {
			continue
		}

		// Findings about candidate contracts are not findings about this request.
		scratch := diagnostic.NewReporter(&diagnostic.Diagnostics{}, rep.Family(), "")
		if coversAll(ResolveMembers(g, scratch), targets) {
			matches = append(matches, ref)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0]
	case 0:
		rep.Errorf(diagnostic.KindAmbiguousContract, scope,
			"no contract in %s declares all targeted members [%s]", scope, strings.Join(targets, ", "))
	default:
		rep.Errorf(diagnostic.KindAmbiguousContract, scope,
			"%d contracts in %s declare all targeted members [%s]: %s; name the contract explicitly",
			len(matches), scope, strings.Join(targets, ", "), strings.Join(matches, ", "))
	}

	return ""
}

func explicitTargets(raw []model.MappingCandidate) []string {
	seen := make(map[string]bool)

	var out []string

	for i := range raw {
		c := &raw[i]
		if c.Marked && c.HasExplicitTarget() && !seen[c.ExplicitTarget] {
			seen[c.ExplicitTarget] = true
			out = append(out, c.ExplicitTarget)
		}
	}

	sort.Strings(out)

	return out
}

func coversAll(members []model.ContractMember, targets []string) bool {
	names := make(map[string]bool, len(members))
	for i := range members {
		names[members[i].Name] = true
	}

	for _, t := range targets {
		if !names[t] {
			return false
		}
	}

	return true
}
