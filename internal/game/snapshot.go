package game

import "github.com/owlgames/term2048/internal/board"

// Status represents the current game status.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusGameOver    Status = "game_over"
	StatusPaused      Status = "paused"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	Best    int
	Board   [board.Size][board.Size]int
	MaxTile int
	Status  Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.gameOver:
		status = StatusGameOver
	case g.paused:
		status = StatusPaused
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.eng.Score(),
		Best:    g.best,
		Board:   g.eng.Tiles(),
		MaxTile: g.eng.MaxTile(),
		Status:  status,
	}
}
