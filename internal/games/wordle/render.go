package wordle

import (
	"fmt"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

var keyboardRows = [...]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func markColor(m Mark) core.Color {
	switch m {
	case Hit:
		return core.ColorGreen
	case Present:
		return core.ColorYellow
	case Miss:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// Render draws the guess grid, the letter keyboard and the statistics.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	const tileW = 4
	gridW := Cols * tileW
	ox := max((dst.Width()-gridW)/2, 0)
	oy := 2

	dst.DrawTextCentered(0, "Wordle")
	for row := 0; row < Rows; row++ {
		y := oy + row*2
		var word string
		var marks []Mark
		switch {
		case row < len(g.guesses):
			word, marks = g.guesses[row], g.marks[row]
		case row == len(g.guesses) && !g.over:
			word = string(g.current)
		}
		for col := 0; col < Cols; col++ {
			x := ox + col*tileW
			letter := '_'
			if col < len(word) {
				letter = rune(word[col])
			}
			c := core.ColorDefault
			if marks != nil {
				c = markColor(marks[col])
			}
			dst.SetColor(x, y, '[', c)
			dst.SetColor(x+1, y, letter, c)
			dst.SetColor(x+2, y, ']', c)
		}
	}

	ky := oy + Rows*2 + 1
	for i, keys := range keyboardRows {
		kx := max((dst.Width()-len(keys)*2)/2, 0)
		for j, k := range keys {
			dst.SetColor(kx+j*2, ky+i, k, markColor(g.KeyState(k)))
		}
	}

	sy := ky + len(keyboardRows) + 1
	switch {
	case g.won:
		dst.DrawTextCentered(sy, fmt.Sprintf("Solved in %d!", len(g.guesses)))
	case g.over:
		dst.DrawTextCentered(sy, fmt.Sprintf("The word was %s", g.answer))
	}
	dst.DrawTextCentered(sy+2, fmt.Sprintf("Played: %d  Won: %d  Streak: %d  Win: %d%%",
		g.stats.Played, g.stats.Won, g.stats.Streak, g.WinRate()))
}
