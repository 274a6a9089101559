package board

import (
	"errors"
	"testing"
)

// shiftNoSpawn runs a directional pass without the trailing tile
// insertion, so tests can assert exact cell contents.
func shiftNoSpawn(t *testing.T, b *Board, dir Direction) {
	t.Helper()
	if err := b.shiftTiles(dir); err != nil {
		t.Fatalf("shift %v failed: %v", dir, err)
	}
}

func TestShiftLeftCompactAndMerge(t *testing.T) {
	tests := []struct {
		name  string
		in    [Size][Size]int
		want  [Size][Size]int
		score int
	}{
		{
			name: "simple merge",
			in: [Size][Size]int{
				{2, 2, 0, 0},
			},
			want: [Size][Size]int{
				{4, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "merge across gap",
			in: [Size][Size]int{
				{2, 0, 0, 2},
			},
			want: [Size][Size]int{
				{4, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "two pairs merge independently",
			in: [Size][Size]int{
				{2, 2, 2, 2},
			},
			want: [Size][Size]int{
				{4, 4, 0, 0},
			},
			score: 8,
		},
		{
			name: "one merge per settled tile",
			in: [Size][Size]int{
				{4, 4, 4, 4},
			},
			want: [Size][Size]int{
				{8, 8, 0, 0},
			},
			score: 16,
		},
		{
			name: "no merge possible",
			in: [Size][Size]int{
				{2, 4, 8, 16},
			},
			want: [Size][Size]int{
				{2, 4, 8, 16},
			},
			score: 0,
		},
		{
			name: "single tile slides home",
			in: [Size][Size]int{
				{0, 0, 4, 0},
			},
			want: [Size][Size]int{
				{4, 0, 0, 0},
			},
			score: 0,
		},
		{
			name:  "empty board",
			in:    [Size][Size]int{},
			want:  [Size][Size]int{},
			score: 0,
		},
		{
			name: "merge then blocked remainder",
			in: [Size][Size]int{
				{2, 2, 2, 0},
			},
			want: [Size][Size]int{
				{4, 2, 0, 0},
			},
			score: 4,
		},
		{
			name: "all rows processed",
			in: [Size][Size]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{0, 0, 0, 2},
				{8, 4, 2, 2},
			},
			want: [Size][Size]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{2, 0, 0, 0},
				{8, 4, 4, 0},
			},
			score: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(1)
			b.cells = tt.in
			b.score = 0

			shiftNoSpawn(t, b, DirLeft)

			if b.cells != tt.want {
				t.Errorf("board after left shift:\n%v\nwant\n%v", b.cells, tt.want)
			}
			if b.score != tt.score {
				t.Errorf("score = %d, want %d", b.score, tt.score)
			}
		})
	}
}

func TestShiftDirectionSymmetry(t *testing.T) {
	in := [Size][Size]int{
		{2, 0, 0, 4},
		{2, 0, 0, 4},
		{0, 2, 2, 0},
		{0, 0, 0, 0},
	}

	tests := []struct {
		name  string
		dir   Direction
		want  [Size][Size]int
		score int
	}{
		{
			name: "up",
			dir:  DirUp,
			want: [Size][Size]int{
				{4, 2, 2, 8},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 12,
		},
		{
			name: "down",
			dir:  DirDown,
			want: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{4, 2, 2, 8},
			},
			score: 12,
		},
		{
			name: "left",
			dir:  DirLeft,
			want: [Size][Size]int{
				{2, 4, 0, 0},
				{2, 4, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4,
		},
		{
			name: "right",
			dir:  DirRight,
			want: [Size][Size]int{
				{0, 0, 2, 4},
				{0, 0, 2, 4},
				{0, 0, 0, 4},
				{0, 0, 0, 0},
			},
			score: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(1)
			b.cells = in
			b.score = 0

			shiftNoSpawn(t, b, tt.dir)

			if b.cells != tt.want {
				t.Errorf("board after %v shift:\n%v\nwant\n%v", tt.dir, b.cells, tt.want)
			}
			if b.score != tt.score {
				t.Errorf("score = %d, want %d", b.score, tt.score)
			}
		})
	}
}

// A later slot's compaction can land a tile next to one that already
// merged this move, and the sequential slot order then merges again.
// The column [0 2 2 4] shifted up collapses all the way to a single 8.
func TestShiftSequentialChainMerge(t *testing.T) {
	b := newTestBoard(1)
	b.cells = [Size][Size]int{
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
	}

	shiftNoSpawn(t, b, DirUp)

	want := [Size][Size]int{
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if b.cells != want {
		t.Errorf("chain merge result:\n%v\nwant\n%v", b.cells, want)
	}
	// 2+2 scores 4, then 4+4 scores 8.
	if b.score != 12 {
		t.Errorf("chain merge score = %d, want 12", b.score)
	}
}

func TestShiftSpawnsTwoTilesEvenWhenNothingMoves(t *testing.T) {
	b := newTestBoard(42)
	b.cells = [Size][Size]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	// Left shift cannot move already left-packed distinct tiles, but
	// the spawn still happens.
	if err := b.Shift(DirLeft); err != nil {
		t.Fatalf("Shift failed: %v", err)
	}

	if got := countNonEmpty(b.Tiles()); got != 4 {
		t.Errorf("tiles after no-op shift = %d, want 4", got)
	}
	if b.Score() != 0 {
		t.Errorf("score after no-op shift = %d, want 0", b.Score())
	}
}

func TestShiftScoreMonotonicAndTileDelta(t *testing.T) {
	b := newTestBoard(2024)

	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}
	for i := 0; i < 200 && !b.GameOver(); i++ {
		before := countNonEmpty(b.Tiles())
		scoreBefore := b.Score()

		if err := b.Shift(dirs[i%len(dirs)]); err != nil {
			t.Fatalf("Shift failed: %v", err)
		}

		if b.Score() < scoreBefore {
			t.Fatalf("score decreased from %d to %d", scoreBefore, b.Score())
		}
		// Merges only reduce the tile count; the spawn adds at most two.
		if delta := countNonEmpty(b.Tiles()) - before; delta > 2 {
			t.Fatalf("tile count grew by %d in one shift, want at most 2", delta)
		}
	}
}

func TestShiftFullBoardInsertsNothing(t *testing.T) {
	b := newTestBoard(1)
	full := [Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	}
	b.cells = full

	if err := b.Shift(DirLeft); err != nil {
		t.Fatalf("Shift failed: %v", err)
	}

	// Nothing can move or merge and there is no room to spawn.
	if b.cells != full {
		t.Errorf("locked board changed:\n%v\nwant\n%v", b.cells, full)
	}
}

func TestShiftInvalidDirection(t *testing.T) {
	b := newTestBoard(1)
	tiles := b.Tiles()

	if err := b.Shift(Direction(99)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Shift(99) error = %v, want ErrInvalidDirection", err)
	}
	if b.Tiles() != tiles {
		t.Error("failed shift mutated the board")
	}
}
