package game

import "strings"

// String renders the grid row by row with "|" between cells and "-----"
// between rows, followed by a winner line.
func (b *Board) String() string {
	rows := make([]string, 0, Size)
	for row := 0; row < Size; row++ {
		cells := make([]string, 0, Size)
		for col := 0; col < Size; col++ {
			cells = append(cells, b.cells[row][col].String())
		}
		rows = append(rows, strings.Join(cells, "|"))
	}
	return strings.Join(rows, "\n-----\n") + "\nWinner: " + b.outcome.String()
}
