// Package game adapts the board engine to the tick-driven platform:
// input handling, pause/restart flow and screen rendering. All rules
// live in internal/board; this package never touches tile state
// directly.
package game

import (
	"math/rand"

	"github.com/owlgames/term2048/internal/board"
	"github.com/owlgames/term2048/internal/core"
)

// ID is the identifier used for CLI commands and score storage.
const ID = "2048"

// Game drives a single 2048 session over the board engine.
type Game struct {
	eng  *board.Board
	rng  *rand.Rand
	tick uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick

	best int // Highest score seen this session, survives restarts
}

// New creates a new game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.eng = board.New(g.rng)
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = g.eng.GameOver()
	g.paused = false
	g.moveProcessed = false

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board
// plus the HUD.
func (g *Game) checkScreenSize() {
	minW := board.Size*cellWidth + 1
	minH := board.Size*cellHeight + 1 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform through Reset.
		return core.StepResult{State: g.State()}
	}

	var dir board.Direction
	moved := false
	switch {
	case in.Has(core.ActionUp):
		dir = board.DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = board.DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = board.DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = board.DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove applies one directional shift. The shift runs even when
// it cannot move any tile: the original game spawns its two new tiles
// unconditionally, and that behavior is kept.
func (g *Game) processMove(dir board.Direction) {
	// The direction came from the closed Action mapping above, so the
	// engine cannot reject it.
	if err := g.eng.Shift(dir); err != nil {
		return
	}

	if s := g.eng.Score(); s > g.best {
		g.best = s
	}

	if g.eng.GameOver() {
		g.gameOver = true
	}
}

// Score returns the current accumulated score.
func (g *Game) Score() int {
	return g.eng.Score()
}

// Best returns the highest score reached this session.
func (g *Game) Best() int {
	return g.best
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
