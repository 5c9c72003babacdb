package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/solopong/game"
)

// Glyphs used for each kind of cell, from background to foreground.
const (
	glyphEmpty    = ' '
	glyphCenter   = ':'
	glyphPlayer   = '#'
	glyphOpponent = '#'
	glyphBall     = 'O'
)

// RGB colors for the ANSI output, matching the canvas page.
type rgb struct{ R, G, B uint8 }

var (
	playerColor   = rgb{0, 255, 0}
	opponentColor = rgb{255, 0, 0}
	ballColor     = rgb{255, 255, 255}
	centerColor   = rgb{136, 136, 136}
)

// rgbToAnsi converts an RGB color to an ANSI escape code for that color
func rgbToAnsi(c rgb) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

type cell struct {
	glyph rune
	color *rgb
}

// Options control the terminal rendering.
type Options struct {
	Cols  int  // characters per line, inside the border
	Rows  int  // lines, inside the border
	Color bool // wrap glyphs in ANSI color codes
}

// RenderToASCII draws a frame as text: a border, the dashed center line,
// both paddles, the ball and the score line.
func RenderToASCII(frame game.Frame, opts Options) string {
	snap := frame.Snapshot
	if opts.Cols <= 0 || opts.Rows <= 0 || snap.Field.Width <= 0 || snap.Field.Height <= 0 {
		return ""
	}
	grid := make([][]cell, opts.Rows)
	for r := range grid {
		grid[r] = make([]cell, opts.Cols)
		for c := range grid[r] {
			grid[r][c] = cell{glyph: glyphEmpty}
		}
	}

	sx := float64(opts.Cols) / snap.Field.Width
	sy := float64(opts.Rows) / snap.Field.Height

	centerCol := clampIndex(int(snap.Field.CenterX()*sx), opts.Cols)
	for r := 0; r < opts.Rows; r += 2 {
		grid[r][centerCol] = cell{glyph: glyphCenter, color: &centerColor}
	}

	fill := func(x, y, w, h float64, glyph rune, color *rgb) {
		c0 := clampIndex(int(math.Floor(x*sx)), opts.Cols)
		c1 := clampIndex(int(math.Ceil((x+w)*sx))-1, opts.Cols)
		r0 := clampIndex(int(math.Floor(y*sy)), opts.Rows)
		r1 := clampIndex(int(math.Ceil((y+h)*sy))-1, opts.Rows)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				grid[r][c] = cell{glyph: glyph, color: color}
			}
		}
	}
	fill(snap.Player.X, snap.Player.Y, snap.Player.Width, snap.Player.Height, glyphPlayer, &playerColor)
	fill(snap.Opponent.X, snap.Opponent.Y, snap.Opponent.Width, snap.Opponent.Height, glyphOpponent, &opponentColor)
	fill(snap.Ball.X, snap.Ball.Y, snap.Ball.Size, snap.Ball.Size, glyphBall, &ballColor)

	var ascii strings.Builder
	ascii.Grow((opts.Cols + 3) * (opts.Rows + 3))
	score := fmt.Sprintf(" %d : %d ", frame.Score.Player, frame.Score.Opponent)
	ascii.WriteString(centered(score, opts.Cols+2))
	ascii.WriteString("\n+" + strings.Repeat("-", opts.Cols) + "+\n")
	for _, row := range grid {
		ascii.WriteByte('|')
		for _, c := range row {
			if opts.Color && c.color != nil {
				ascii.WriteString(rgbToAnsi(*c.color) + string(c.glyph) + "\033[0m") // Reset color after each character
			} else {
				ascii.WriteRune(c.glyph)
			}
		}
		ascii.WriteString("|\n")
	}
	ascii.WriteString("+" + strings.Repeat("-", opts.Cols) + "+\n")
	return ascii.String()
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}
