package game

import (
	"fmt"
	"strconv"

	"github.com/owlgames/term2048/internal/board"
	"github.com/owlgames/term2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including left border; fits 65536
	cellHeight = 2 // Height of each cell including top border
	hudHeight  = 3
)

// tileColor picks a display color for a tile value. Higher tiles get
// hotter colors.
func tileColor(value int) core.Color {
	switch {
	case value <= 2:
		return core.ColorWhite
	case value <= 4:
		return core.ColorBrightWhite
	case value <= 8:
		return core.ColorYellow
	case value <= 16:
		return core.ColorBrightYellow
	case value <= 32:
		return core.ColorOrange
	case value <= 64:
		return core.ColorBrightRed
	case value <= 256:
		return core.ColorBrightMagenta
	case value <= 1024:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightGreen
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := board.Size*cellWidth + 1  // +1 for right border
	boardH := board.Size*cellHeight + 1 // +1 for bottom border

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2 0 4 8"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.best)
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	maxStr := fmt.Sprintf("Max tile: %d", g.eng.MaxTile())
	maxX := boardX + (boardW-len(maxStr))/2
	dst.DrawText(maxX, 2, maxStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range board.Size + 1 {
		for x := range board.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == board.Size:
				corner = '┐'
			case y == board.Size && x == 0:
				corner = '└'
			case y == board.Size && x == board.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == board.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == board.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	tiles := g.eng.Tiles()
	for row := range board.Size {
		for col := range board.Size {
			val := tiles[row][col]
			if val == 0 {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay in a box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
