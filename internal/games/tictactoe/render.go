package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/arcade-engines/internal/core"
	"github.com/vovakirdan/arcade-engines/internal/minimax"
)

const cellW, cellH = 7, 3

// Render draws the board, the selection, the status line and the scoreboard.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()
	boardW, boardH := cellW*3+4, cellH*3+4
	ox := max((dst.Width()-boardW)/2, 0)
	oy := 2

	dst.DrawTextCentered(0, fmt.Sprintf("Tic-Tac-Toe  (%s)", m.mode))

	_, line, won := m.Winner()
	onLine := func(i int) bool {
		return won && (line[0] == i || line[1] == i || line[2] == i)
	}

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH))
	for i, mark := range m.board {
		cx := ox + 1 + (i%3)*(cellW+1)
		cy := oy + 1 + (i/3)*(cellH+1)
		if i%3 > 0 {
			for y := 0; y < cellH; y++ {
				dst.Set(cx-1, cy+y, '│')
			}
		}
		if i/3 > 0 {
			for x := 0; x < cellW; x++ {
				dst.Set(cx+x, cy-1, '─')
			}
		}

		c := core.ColorDefault
		switch mark {
		case minimax.X:
			c = core.ColorBlue
		case minimax.O:
			c = core.ColorRed
		}
		if onLine(i) {
			c = core.ColorGreen
		}
		if i == m.cursor && !m.Over() {
			dst.SetColor(cx+1, cy+1, '[', core.ColorYellow)
			dst.SetColor(cx+cellW-2, cy+1, ']', core.ColorYellow)
		}
		dst.SetColor(cx+cellW/2, cy+1, []rune(mark.String())[0], c)
	}

	status := fmt.Sprintf("%s to move", m.turn)
	switch {
	case m.draw:
		status = "Draw!"
	case won:
		status = fmt.Sprintf("%s wins!", m.winner)
	case m.ComputerToMove():
		status = "Computer is thinking..."
	}
	dst.DrawTextCentered(oy+boardH+1, status)
	dst.DrawTextCentered(oy+boardH+3, fmt.Sprintf("X: %d   O: %d   Draws: %d", m.scores.X, m.scores.O, m.scores.Draws))
}
