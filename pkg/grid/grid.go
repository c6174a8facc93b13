package grid

// GetGridCoords maps a linear index into (column, row) coordinates for a
// table with the given number of columns.
func GetGridCoords(index, cols int) (int, int) {
	return index % cols, index / cols
}

// CellOrigin returns the top-left pixel of the cell holding index, given
// the cell dimensions in pixels.
func CellOrigin(index, cols, cellWidth, cellHeight int) (int, int) {
	x, y := GetGridCoords(index, cols)
	return x * cellWidth, y * cellHeight
}
