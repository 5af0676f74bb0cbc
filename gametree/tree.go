// Package gametree materializes the complete tree of play-outs reachable
// from a board and aggregates, per node, how likely each outcome is when
// both players pick uniformly at random among their legal moves.
package gametree

import "tictactoe/game"

// Node owns a snapshot of a board and one edge per legal move. A node is a
// leaf exactly when its board is terminal.
type Node struct {
	board *game.Board
	edges []Edge
}

// Edge owns one child subtree together with the child's outcome
// probabilities, cached at construction so later queries stay O(1).
type Edge struct {
	Child *Node
	XWins float64
	OWins float64
	Ties  float64
}

// Build constructs the full tree below board. The board itself is copied;
// the caller keeps ownership of its value.
func Build(board *game.Board) *Node {
	node := &Node{board: board.Copy()}
	if board.Finished() {
		return node
	}

	successors := board.Successors()
	if len(successors) == 0 {
		panic("unfinished board has no successors")
	}

	node.edges = make([]Edge, 0, len(successors))
	for _, successor := range successors {
		child := Build(successor)
		node.edges = append(node.edges, Edge{
			Child: child,
			XWins: child.Probability(game.XWins),
			OWins: child.Probability(game.OWins),
			Ties:  child.Probability(game.Tie),
		})
	}
	return node
}

// Board returns the node's board snapshot.
func (n *Node) Board() *game.Board {
	return n.board
}

// Edges returns the node's child edges in move-generation order.
func (n *Node) Edges() []Edge {
	return n.edges
}

// Leaf reports whether the node's board is terminal.
func (n *Node) Leaf() bool {
	return len(n.edges) == 0
}

// Probability returns how likely the given outcome is under uniform random
// play from this node: 1 or 0 at a leaf, otherwise the mean of the cached
// per-edge values, since every legal move is equally likely.
func (n *Node) Probability(outcome game.Outcome) float64 {
	if n.Leaf() {
		if n.board.Outcome() == outcome {
			return 1.0
		}
		return 0.0
	}

	var sum float64
	for _, edge := range n.edges {
		switch outcome {
		case game.XWins:
			sum += edge.XWins
		case game.OWins:
			sum += edge.OWins
		case game.Tie:
			sum += edge.Ties
		}
	}
	return sum / float64(len(n.edges))
}
