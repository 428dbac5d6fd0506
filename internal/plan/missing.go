package plan

import (
	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
)

// ApplyPolicy decides the fate of every unbound member at once.
//
// Ignore is only honoured for decorators: the embedded inner value keeps
// the contract satisfied for the omitted members. Any other pattern
// reports PolicyNotSupported and falls back to Error.
func ApplyPolicy(
	unbound []model.ContractMember,
	policy Policy,
	pattern Pattern,
	rep *diagnostic.Reporter,
) (stubs []model.Stub, omitted []model.ContractMember) {
	if policy == PolicyIgnore && pattern != PatternDecorator {
		rep.Errorf(diagnostic.KindPolicyNotSupported, pattern.String(),
			"policy %s requires the decorator pattern; %s types must implement every member", policy, pattern)

		policy = PolicyError
	}

	for _, m := range unbound {
		switch policy {
		case PolicyThrowingStub:
			stubs = append(stubs, model.Stub{Member: m})
		case PolicyIgnore:
			omitted = append(omitted, m)
		default:
			rep.Errorf(diagnostic.KindMissingMapping, m.Name, "no fragment implements %s", m.Signature())
		}
	}

	return stubs, omitted
}
