package plan

import (
	"sort"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

// ResolveMembers flattens a contract graph into its deduplicated, ordered
// member list.
//
// Nodes are visited breadth-first from the root, each once. A member whose
// key was already seen is dropped, so the copy nearest to the root wins.
// Static members are excluded. The result is sorted by (Name, Ordinal),
// where Ordinal is the discovery order of the walk.
func ResolveMembers(g *oracle.Graph, rep *diagnostic.Reporter) []model.ContractMember {
	root := g.Root()
	if root == nil {
		return nil
	}

	var (
		members []model.ContractMember
		ordinal int
	)

	seen := make(map[model.MemberKey]bool)
	visited := make([]bool, g.Len())
	visited[0] = true
	queue := []oracle.NodeID{0}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := g.Node(id)
		if node.IsGeneric {
			rep.Errorf(diagnostic.KindUnsupportedMember, node.Name,
				"contract %s declares type parameters; generic contracts cannot be synthesized", node.Name)
		}

		for _, m := range node.Members {
			if m.IsStatic {
				continue
			}

			key := m.Key()
			if seen[key] {
				continue
			}

			seen[key] = true

			if !supported(&m, node.Name, rep) {
				continue
			}

			m.Ordinal = ordinal
			if m.Declaring == "" {
				m.Declaring = node.Name
			}

			ordinal++

			if m.Access == model.AccessInternal {
				rep.Warnf(diagnostic.KindUnexportedMember, m.Name,
					"member %s of %s is unexported and can only be satisfied inside its declaring package",
					m.Signature(), node.Name)
			}

			members = append(members, m)
		}

		for _, parent := range node.Parents {
			if int(parent) < len(visited) && !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}

		return members[i].Ordinal < members[j].Ordinal
	})

	if len(members) == 0 {
		rep.Warnf(diagnostic.KindEmptyContract, root.Name, "contract %s has no members to bind", root.Name)
	}

	return members
}

// supported reports member kinds the emitter can forward.
func supported(m *model.ContractMember, contract string, rep *diagnostic.Reporter) bool {
	switch {
	case m.Kind == model.MemberIndexer:
		rep.Errorf(diagnostic.KindUnsupportedMember, m.Name, "indexer %s of %s cannot be forwarded", m.Name, contract)
		return false
	case m.IsGeneric:
		rep.Errorf(diagnostic.KindUnsupportedMember, m.Name,
			"generic member %s of %s cannot be forwarded", m.Signature(), contract)

		return false
	default:
		return true
	}
}
