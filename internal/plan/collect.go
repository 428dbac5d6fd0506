package plan

import (
	"slices"
	"sort"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
)

// Collect filters a host's declarations down to the mapping candidates of
// one request. Unmarked declarations are ignored. Instance and generic
// fragments are rejected. When receiverType is set, the first parameter
// must be of that type; it is moved into Candidate.Receiver so arity
// comparisons see only the forwarded parameters.
//
// The result is sorted by (Host, Name), then declaration order.
func Collect(raw []model.MappingCandidate, receiverType string, rep *diagnostic.Reporter) []model.MappingCandidate {
	var out []model.MappingCandidate

	for _, c := range raw {
		if !c.Marked {
			continue
		}

		if !c.IsStatic {
			rep.Errorf(diagnostic.KindInstanceFragment, c.ID(),
				"fragment %s has a receiver; mapping fragments must be package-level functions", c.ID())

			continue
		}

		if c.IsGeneric {
			rep.Errorf(diagnostic.KindUnsupportedMember, c.ID(),
				"fragment %s declares type parameters; generic fragments cannot be forwarded to", c.ID())

			continue
		}

		c.Params = slices.Clone(c.Params)

		if receiverType != "" {
			if len(c.Params) == 0 || model.FormatParamType(c.Params[0]) != receiverType {
				rep.Errorf(diagnostic.KindMissingReceiver, c.ID(),
					"fragment %s must take %s as its first parameter", c.Signature(), receiverType)

				continue
			}

			recv := c.Params[0]
			c.Receiver = &recv
			c.Params = c.Params[1:]
		}

		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Host != out[j].Host {
			return out[i].Host < out[j].Host
		}

		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}

		return out[i].Ordinal < out[j].Ordinal
	})

	return out
}
