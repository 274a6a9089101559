package board

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestBoard(seed int64) *Board {
	return New(rand.New(rand.NewSource(seed)))
}

func countNonEmpty(cells [Size][Size]int) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewPlacesTwoTiles(t *testing.T) {
	b := newTestBoard(1)

	twos := 0
	for r := range Size {
		for c := range Size {
			v, err := b.Value(r, c)
			if err != nil {
				t.Fatalf("Value(%d, %d) failed: %v", r, c, err)
			}
			switch v {
			case 0:
			case 2:
				twos++
			default:
				t.Errorf("fresh board has tile %d at (%d, %d), want only 0 or 2", v, r, c)
			}
		}
	}

	if twos != 2 {
		t.Errorf("fresh board has %d tiles, want 2", twos)
	}
	if b.Score() != 0 {
		t.Errorf("fresh board score = %d, want 0", b.Score())
	}
}

func TestNewDeterministicWithSeed(t *testing.T) {
	b1 := newTestBoard(12345)
	b2 := newTestBoard(12345)

	if b1.Tiles() != b2.Tiles() {
		t.Errorf("same seed produced different boards:\n%v\nvs\n%v", b1.Tiles(), b2.Tiles())
	}
}

func TestValueOutOfRange(t *testing.T) {
	b := newTestBoard(1)

	tests := []struct{ row, col int }{
		{-1, 0},
		{Size, 0},
		{0, Size},
		{0, -1},
		{Size, Size},
	}

	for _, tt := range tests {
		if _, err := b.Value(tt.row, tt.col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Value(%d, %d) error = %v, want ErrOutOfRange", tt.row, tt.col, err)
		}
	}
}

func TestCellAt(t *testing.T) {
	row, col, err := CellAt(0)
	if err != nil || row != 0 || col != 0 {
		t.Errorf("CellAt(0) = (%d, %d, %v), want (0, 0, nil)", row, col, err)
	}

	row, col, err = CellAt(Size*Size - 1)
	if err != nil || row != Size-1 || col != Size-1 {
		t.Errorf("CellAt(15) = (%d, %d, %v), want (3, 3, nil)", row, col, err)
	}

	row, col, err = CellAt(7)
	if err != nil || row != 1 || col != 3 {
		t.Errorf("CellAt(7) = (%d, %d, %v), want (1, 3, nil)", row, col, err)
	}

	for _, pos := range []int{-1, Size * Size, 100} {
		if _, _, err := CellAt(pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CellAt(%d) error = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestResetClearsBoardAndScore(t *testing.T) {
	b := newTestBoard(7)
	b.cells = [Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	b.score = 500

	b.Reset()

	if b.Score() != 0 {
		t.Errorf("score after Reset = %d, want 0", b.Score())
	}
	if got := countNonEmpty(b.Tiles()); got != 2 {
		t.Errorf("tiles after Reset = %d, want 2", got)
	}

	// A second Reset yields the same structure: two 2-tiles, score 0.
	b.Reset()
	if b.Score() != 0 || countNonEmpty(b.Tiles()) != 2 {
		t.Errorf("double Reset broke invariants: score=%d tiles=%d", b.Score(), countNonEmpty(b.Tiles()))
	}
	for r := range Size {
		for c := range Size {
			if v := b.cells[r][c]; v != 0 && v != 2 {
				t.Errorf("tile %d at (%d, %d) after Reset, want 0 or 2", v, r, c)
			}
		}
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	b := newTestBoard(1)

	tiles := b.Tiles()
	tiles[0][0] = 4096

	if b.cells[0][0] == 4096 {
		t.Error("mutating the Tiles() result reached engine state")
	}
}

func TestGameOver(t *testing.T) {
	b := newTestBoard(1)

	// Full board, no equal neighbors anywhere.
	b.cells = [Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	if !b.GameOver() {
		t.Error("full board with no adjacent pair should be game over")
	}

	// Same board with one horizontal pair.
	b.cells[0][1] = 2
	if b.GameOver() {
		t.Error("board with a mergeable pair should not be game over")
	}

	// Same board with one vertical pair.
	b.cells[0][1] = 4
	b.cells[1][0] = 2
	if b.GameOver() {
		t.Error("board with a vertical mergeable pair should not be game over")
	}

	// Any empty cell means the game continues regardless of adjacency.
	b.cells[1][0] = 32
	b.cells[2][2] = 0
	if b.GameOver() {
		t.Error("board with an empty cell should not be game over")
	}
}

func TestMaxTile(t *testing.T) {
	b := newTestBoard(1)
	b.cells = [Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 1024, 256},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if got := b.MaxTile(); got != 1024 {
		t.Errorf("MaxTile() = %d, want 1024", got)
	}
}

func TestValuesArePowersOfTwo(t *testing.T) {
	b := newTestBoard(99)

	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 50; i++ {
		if err := b.Shift(dirs[i%len(dirs)]); err != nil {
			t.Fatalf("Shift failed: %v", err)
		}
	}

	for r := range Size {
		for c := range Size {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				t.Errorf("tile %d at (%d, %d) is not a power of two", v, r, c)
			}
		}
	}
}
