package board

import "fmt"

// CellAt converts a linear board index in [0, Size*Size) to (row, col)
// coordinates, row-major. Indices outside that range fail with
// ErrOutOfRange.
func CellAt(pos int) (row, col int, err error) {
	if pos < 0 || pos >= Size*Size {
		return 0, 0, fmt.Errorf("%w: linear index %d", ErrOutOfRange, pos)
	}
	return pos / Size, pos % Size, nil
}

// addTile writes a 2 at the given linear position if that cell is
// empty and reports whether the insertion happened. Callers guarantee
// pos is in range.
func (b *Board) addTile(pos int) bool {
	row, col := pos/Size, pos%Size
	if b.cells[row][col] != 0 {
		return false
	}
	b.cells[row][col] = 2
	return true
}

// addTwoRandomTiles places up to two tiles of value 2 at independent
// uniformly random empty positions. A draw that lands on an occupied
// cell is retried without advancing, so both tiles land whenever two
// empty cells exist; with one or zero empty cells, fewer are placed.
// The loop terminates because every successful insertion strictly
// shrinks the set of empty cells.
func (b *Board) addTwoRandomTiles() {
	for i := 0; i < 2; i++ {
		if !b.hasSpace() {
			continue
		}
		if !b.addTile(b.rng.Intn(Size * Size)) {
			i--
		}
	}
}
