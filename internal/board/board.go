// Package board implements the 2048 board engine: a fixed 4x4 tile
// matrix with directional shift/merge moves, score tracking, random
// tile insertion and loss detection. The package contains game rules
// only; rendering, input and persistence live elsewhere.
//
// The engine provides no internal synchronization. Callers that drive
// it from more than one goroutine must serialize every mutating call
// and every read taken concurrently with a mutation.
package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// Size is the board dimension. The rules fix a 4x4 grid.
const Size = 4

// Direction represents a shift direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

var (
	// ErrOutOfRange reports a coordinate or linear index outside the
	// board. Always a caller bug, never a runtime condition.
	ErrOutOfRange = errors.New("board: position out of range")

	// ErrInvalidDirection reports a direction value outside the four
	// defined constants.
	ErrInvalidDirection = errors.New("board: invalid direction")
)

// Board owns the tile matrix and the accumulated score. Cells hold 0
// for empty or a power of two starting at 2. Create instances with New.
type Board struct {
	cells [Size][Size]int
	score int
	rng   *rand.Rand
}

// New creates a board with two random tiles of value 2 placed and the
// score at zero. The generator must be non-nil; it is owned by the
// board afterwards, which makes seeded games fully reproducible.
func New(rng *rand.Rand) *Board {
	b := &Board{rng: rng}
	b.addTwoRandomTiles()
	return b
}

// Value returns the tile value at (row, col), 0 meaning empty.
// Coordinates outside [0, Size) fail with ErrOutOfRange.
func (b *Board) Value(row, col int) (int, error) {
	if !inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, row, col)
	}
	return b.cells[row][col], nil
}

// Score returns the accumulated score. It only grows within a game:
// each merge adds exactly the value of the tile it produced.
func (b *Board) Score() int {
	return b.score
}

// Tiles returns a copy of the tile matrix. The board's own matrix is
// never exposed, so callers cannot mutate engine state through it.
func (b *Board) Tiles() [Size][Size]int {
	return b.cells
}

// MaxTile returns the largest tile value on the board.
func (b *Board) MaxTile() int {
	max := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] > max {
				max = b.cells[r][c]
			}
		}
	}
	return max
}

// GameOver reports whether no move remains: the board is full and no
// cell has an equal cardinal neighbor.
func (b *Board) GameOver() bool {
	if b.hasSpace() {
		return false
	}
	for r := range Size {
		for c := range Size {
			v := b.cells[r][c]
			if b.canMerge(r+1, c, v) || b.canMerge(r-1, c, v) ||
				b.canMerge(r, c+1, v) || b.canMerge(r, c-1, v) {
				return false
			}
		}
	}
	return true
}

// Reset clears every cell, zeroes the score and places two fresh
// tiles. The generator is kept, so a seeded board stays deterministic
// across resets.
func (b *Board) Reset() {
	b.cells = [Size][Size]int{}
	b.score = 0
	b.addTwoRandomTiles()
}

// inBounds reports whether (row, col) addresses a cell on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// isEmpty reports whether (row, col) is an in-bounds empty cell.
// Out-of-bounds positions count as occupied; the shift walk relies on
// that sentinel to stop at the board edge.
func (b *Board) isEmpty(row, col int) bool {
	return inBounds(row, col) && b.cells[row][col] == 0
}

// canMerge reports whether (row, col) is in bounds and holds exactly
// value. Out-of-bounds positions never merge.
func (b *Board) canMerge(row, col, value int) bool {
	return inBounds(row, col) && b.cells[row][col] == value
}

// hasSpace reports whether at least one cell is empty.
func (b *Board) hasSpace() bool {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == 0 {
				return true
			}
		}
	}
	return false
}
