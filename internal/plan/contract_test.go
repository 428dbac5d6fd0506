package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synth-generator/internal/diagnostic"
	"synth-generator/internal/model"
	"synth-generator/internal/oracle"
)

func TestResolveMembers_DiamondDedup(t *testing.T) {
	g, err := clockSnapshot().ResolveContract("clock.Clock")
	require.NoError(t, err)

	diags, rep := newRep()
	members := ResolveMembers(g, rep)

	require.Empty(t, diags.Items)
	assert.Equal(t, []string{"Now", "Since", "Sleep", "Zone"}, nameList(members))

	// Now is reachable through Zoner and Sleeper but resolved once, from Base.
	assert.Equal(t, "clock.Base", members[0].Declaring)
	assert.Equal(t, 3, members[0].Ordinal)
	assert.Equal(t, 0, members[1].Ordinal)
}

func TestResolveMembers_FirstSeenWins(t *testing.T) {
	g := oracle.NewGraph("Child")
	g.Nodes[0].Members = []model.ContractMember{{Name: "Get", Result: "int", Declaring: "Child"}}

	base, err := g.Add("Base", model.ContractMember{Name: "Get", Result: "int", Declaring: "Base"})
	require.NoError(t, err)
	require.NoError(t, g.Link(0, base))

	_, rep := newRep()
	members := ResolveMembers(g, rep)

	require.Len(t, members, 1)
	assert.Equal(t, "Child", members[0].Declaring)
}

func TestResolveMembers_SortIsStableByOrdinal(t *testing.T) {
	g := oracle.NewGraph("Fmt")
	g.Nodes[0].Members = []model.ContractMember{
		{Name: "Print", Params: []model.Parameter{p("string")}},
		{Name: "Flush"},
		{Name: "Print", Params: []model.Parameter{p("int")}},
	}

	_, rep := newRep()
	members := ResolveMembers(g, rep)

	require.Len(t, members, 3)
	assert.Equal(t, "Flush", members[0].Name)
	assert.Equal(t, "string", members[1].Params[0].Type)
	assert.Equal(t, "int", members[2].Params[0].Type)
}

func TestResolveMembers_Exclusions(t *testing.T) {
	g := oracle.NewGraph("Repo")
	g.Nodes[0].Members = []model.ContractMember{
		{Name: "Create", IsStatic: true},
		{Name: "Item", Kind: model.MemberIndexer, Params: []model.Parameter{p("int")}, Result: "string"},
		{Name: "Map", IsGeneric: true},
		{Name: "reset", Access: model.AccessInternal},
		{Name: "Len", Result: "int"},
	}

	diags, rep := newRep()
	members := ResolveMembers(g, rep)

	assert.Equal(t, []string{"Len", "reset"}, nameList(members))
	assert.Len(t, diags.OfKind(diagnostic.KindUnsupportedMember), 2)

	warns := diags.OfKind(diagnostic.KindUnexportedMember)
	require.Len(t, warns, 1)
	assert.Equal(t, diagnostic.DiagnosticWarning, warns[0].Severity)
}

func TestResolveMembers_EmptyAndGeneric(t *testing.T) {
	g := oracle.NewGraph("Marker")
	g.Nodes[0].IsGeneric = true

	diags, rep := newRep()
	members := ResolveMembers(g, rep)

	assert.Empty(t, members)
	assert.Len(t, diags.OfKind(diagnostic.KindUnsupportedMember), 1)

	empty := diags.OfKind(diagnostic.KindEmptyContract)
	require.Len(t, empty, 1)
	assert.Equal(t, diagnostic.DiagnosticWarning, empty[0].Severity)
	assert.Equal(t, "ADP011", empty[0].Code)
}

func TestResolveMembers_Cycle(t *testing.T) {
	s := oracle.NewSnapshot()
	s.AddContract(&oracle.ContractDecl{Name: "A", Extends: []string{"B"},
		Members: []model.ContractMember{{Name: "A"}}})
	s.AddContract(&oracle.ContractDecl{Name: "B", Extends: []string{"A"},
		Members: []model.ContractMember{{Name: "B"}}})

	g, err := s.ResolveContract("A")
	require.NoError(t, err)

	_, rep := newRep()
	assert.Equal(t, []string{"A", "B"}, nameList(ResolveMembers(g, rep)))
}
