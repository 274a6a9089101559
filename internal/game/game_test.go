package game

import (
	"strings"
	"testing"

	"github.com/owlgames/term2048/internal/board"
	"github.com/owlgames/term2048/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func countTiles(cells [board.Size][board.Size]int) int {
	n := 0
	for r := range board.Size {
		for c := range board.Size {
			if cells[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func TestResetStartsFresh(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("fresh game score = %d, want 0", snap.Score)
	}
	if got := countTiles(snap.Board); got != 2 {
		t.Errorf("fresh game has %d tiles, want 2", got)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("fresh game status = %s, want playing", snap.Status)
	}
}

func TestDeterministicSeed(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Snapshot().Board != g2.Snapshot().Board {
		t.Errorf("same seed produced different boards:\n%v\nvs\n%v",
			g1.Snapshot().Board, g2.Snapshot().Board)
	}

	// And identical move sequences stay identical.
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g1.Step(in)
	g2.Step(in)

	if g1.Snapshot() != g2.Snapshot() {
		t.Error("same seed and input diverged after one step")
	}
}

func TestMoveSpawnsEvenWithoutChange(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	before := countTiles(g.Snapshot().Board)

	// Whatever the board looks like, a move always runs the spawn.
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)

	after := countTiles(g.Snapshot().Board)
	if after < before {
		// Merges can reduce the count, but two tiles on a nearly
		// empty board cannot merge down below the starting count.
		t.Errorf("tile count dropped from %d to %d on first move", before, after)
	}
	if after == before && g.Snapshot().Score == 0 {
		t.Errorf("first move neither merged nor spawned: %v", g.Snapshot().Board)
	}
}

func TestOneMovePerTick(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.Step(in)

	// Only one direction may be applied: at most two tiles spawned.
	if got := countTiles(g.Snapshot().Board); got > 4 {
		t.Errorf("%d tiles after one tick with two held keys, want at most 4", got)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	before := g.Snapshot().Board

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Snapshot().Board != before {
		t.Error("moves should be ignored while paused")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestBestSurvivesReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	// Play until some score accumulates.
	dirs := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
	for i := 0; g.Score() == 0 && i < 100; i++ {
		in := core.NewInputFrame()
		in.Set(dirs[i%len(dirs)])
		g.Step(in)
	}
	if g.Score() == 0 {
		t.Fatal("no merge in 100 moves, unexpected for a 4x4 board")
	}

	best := g.Best()
	if best == 0 {
		t.Fatal("best score not tracked")
	}

	g.Reset(testConfig(99))
	if g.Score() != 0 {
		t.Errorf("score after Reset = %d, want 0", g.Score())
	}
	if g.Best() != best {
		t.Errorf("best after Reset = %d, want %d", g.Best(), best)
	}
}

func TestGameOverDetected(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Drive the game until it ends. Always spawning two tiles per move
	// fills a 4x4 board quickly, so this terminates well within bounds.
	dirs := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		in.Set(dirs[i%len(dirs)])
		g.Step(in)
	}

	if !g.State().GameOver {
		t.Fatal("game did not end after 5000 moves")
	}
	if g.Snapshot().Status != StatusGameOver {
		t.Errorf("status = %s, want game_over", g.Snapshot().Status)
	}

	// Further moves change nothing.
	cells := g.Snapshot().Board
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Snapshot().Board != cells {
		t.Error("moves after game over should be ignored")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	g := New()
	cfg := testConfig(5)
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("tiny screen should report paused state")
	}
	if g.Snapshot().Status != StatusPausedSmall {
		t.Errorf("status = %s, want paused_small_window", g.Snapshot().Status)
	}

	before := g.Snapshot().Board
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Snapshot().Board != before {
		t.Error("moves should be ignored while the screen is too small")
	}
}

func TestRenderShowsTilesAndHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"2 0 4 8", "Score: 0", "Best:", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}
