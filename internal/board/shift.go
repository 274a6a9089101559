package board

// shiftParams describes one direction as a target edge plus a step.
// dr/dc point from a slot toward the target edge; startCell maps a
// (slot, line) pair to the slot's board position. All four directions
// run the same walk with these parameters transposed.
type shiftParams struct {
	dr, dc    int
	startCell func(slot, line int) (row, col int)
}

var shiftTable = map[Direction]shiftParams{
	DirUp:    {dr: -1, dc: 0, startCell: func(s, l int) (int, int) { return s, l }},
	DirDown:  {dr: +1, dc: 0, startCell: func(s, l int) (int, int) { return Size - 1 - s, l }},
	DirLeft:  {dr: 0, dc: -1, startCell: func(s, l int) (int, int) { return l, s }},
	DirRight: {dr: 0, dc: +1, startCell: func(s, l int) (int, int) { return l, Size - 1 - s }},
}

// Shift moves every tile toward the direction's edge, merging equal
// adjacent pairs and adding each merged value to the score, then
// inserts two random tiles. The insertion happens unconditionally:
// a shift that moves nothing still spawns tiles, matching the
// original game's behavior.
//
// Slots are processed strictly in order from the target edge inward,
// and each slot's compaction and merge complete before the next slot
// starts. This sequential order is load-bearing: compaction for a
// later slot can expose a new adjacency next to an already-merged
// tile and merge into it again within the same call. Do not replace
// it with simultaneous per-line merge semantics.
//
// An unrecognized direction fails with ErrInvalidDirection and leaves
// the board untouched.
func (b *Board) Shift(dir Direction) error {
	if err := b.shiftTiles(dir); err != nil {
		return err
	}
	b.addTwoRandomTiles()
	return nil
}

// shiftTiles runs the directional pass without the trailing spawn.
func (b *Board) shiftTiles(dir Direction) error {
	p, ok := shiftTable[dir]
	if !ok {
		return ErrInvalidDirection
	}
	for slot := range Size {
		for line := range Size {
			b.shiftSlot(p, slot, line)
		}
	}
	return nil
}

// shiftSlot compacts and merges a single slot position. The tile at
// the slot walks toward the target edge through empty cells; when it
// settles against a non-empty cell (or the edge, via the out-of-bounds
// sentinel), an equal neighbor absorbs it for double the value.
func (b *Board) shiftSlot(p shiftParams, slot, line int) {
	r, c := p.startCell(slot, line)

	for b.isEmpty(r+p.dr, c+p.dc) {
		b.cells[r+p.dr][c+p.dc] = b.cells[r][c]
		b.cells[r][c] = 0
		r, c = r+p.dr, c+p.dc
	}

	// The settled cell holds 0 when the whole slot was empty; that can
	// never equal the non-empty blocking cell, so no guard is needed.
	if b.canMerge(r+p.dr, c+p.dc, b.cells[r][c]) {
		b.cells[r+p.dr][c+p.dc] *= 2
		b.score += b.cells[r+p.dr][c+p.dc]
		b.cells[r][c] = 0
	}
}
