package metrics

import (
	"tictactoe/game"
	"tictactoe/gametree"
)

// TreeMetric summarizes the shape of a built game tree.
type TreeMetric struct {
	Nodes      int
	Leaves     int
	XWinLeaves int
	OWinLeaves int
	TieLeaves  int
	MaxDepth   int
}

// Measure walks the whole tree under root and tallies its nodes, leaves per
// outcome and maximum depth.
func Measure(root *gametree.Node) TreeMetric {
	var metric TreeMetric
	walk(root, 0, &metric)
	return metric
}

func walk(node *gametree.Node, depth int, metric *TreeMetric) {
	metric.Nodes++
	if depth > metric.MaxDepth {
		metric.MaxDepth = depth
	}

	if node.Leaf() {
		metric.Leaves++
		switch node.Board().Outcome() {
		case game.XWins:
			metric.XWinLeaves++
		case game.OWins:
			metric.OWinLeaves++
		case game.Tie:
			metric.TieLeaves++
		}
		return
	}

	for _, edge := range node.Edges() {
		walk(edge.Child, depth+1, metric)
	}
}
