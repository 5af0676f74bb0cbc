package gametree

import (
	"fmt"
	"strings"
)

// String renders the node's board followed by, per edge, the child's board
// and its cached outcome probabilities. Rendering is one level deep; it is a
// diagnostic view, not a dump of the whole tree.
func (n *Node) String() string {
	parts := make([]string, 0, len(n.edges))
	for _, edge := range n.edges {
		parts = append(parts, fmt.Sprintf("%s\nO wins: %v\nX wins: %v\nTies: %v",
			edge.Child.board, edge.OWins, edge.XWins, edge.Ties))
	}
	return fmt.Sprintf("Current State:\n%s\n\n%s", n.board, strings.Join(parts, "\n\n"))
}
