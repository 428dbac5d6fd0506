package oracle

import (
	"fmt"

	"fortio.org/safecast"

	"synth-generator/internal/model"
)

// NodeID addresses a node in a Graph arena.
type NodeID uint32

// Node is one contract in an inheritance graph.
type Node struct {
	Name      string
	Type      string                 // Type expression naming the contract at a use site
	Parents   []NodeID               // Direct bases, in declaration order
	Members   []model.ContractMember // Members declared at this level
	IsGeneric bool                   // Contract declares type parameters
}

// Graph is a contract's inheritance graph. The contract itself is the
// root at index 0; each contract reachable from it appears exactly once,
// even when reachable through several paths.
type Graph struct {
	Nodes []Node
}

// NewGraph creates a graph whose root node is the named contract.
func NewGraph(root string) *Graph {
	return &Graph{Nodes: []Node{{Name: root}}}
}

// Add appends a node and returns its id.
func (g *Graph) Add(name string, members ...model.ContractMember) (NodeID, error) {
	id, err := safecast.Conv[uint32](len(g.Nodes))
	if err != nil {
		return 0, fmt.Errorf("contract graph too large: %w", err)
	}

	g.Nodes = append(g.Nodes, Node{Name: name, Members: members})

	return NodeID(id), nil
}

// Link records parent as a direct base of child.
func (g *Graph) Link(child, parent NodeID) error {
	if !g.valid(child) || !g.valid(parent) {
		return fmt.Errorf("link %d -> %d out of range (%d nodes)", child, parent, len(g.Nodes))
	}

	g.Nodes[child].Parents = append(g.Nodes[child].Parents, parent)

	return nil
}

// Root returns the contract node, or nil for an empty graph.
func (g *Graph) Root() *Node {
	if g == nil || len(g.Nodes) == 0 {
		return nil
	}

	return &g.Nodes[0]
}

// Node returns the node with the given id, or nil when out of range.
func (g *Graph) Node(id NodeID) *Node {
	if !g.valid(id) {
		return nil
	}

	return &g.Nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

func (g *Graph) valid(id NodeID) bool {
	return g != nil && int(id) < len(g.Nodes)
}
