package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield on a core.Screen. Each board cell is two
// characters wide so blocks look square in a terminal.
const (
	cellW      = 2
	wellW      = Cols*cellW + 2
	wellH      = Rows + 2
	previewW   = 4*cellW + 2 + 2
	previewH   = 4 + 2
	sidebarGap = 2
	sidebarW   = 14

	// MinScreenW and MinScreenH are the smallest screen the playfield fits.
	MinScreenW = wellW + sidebarGap + sidebarW
	MinScreenH = wellH + 1
)

// KeyHints names the keys shown in overlay messages.
type KeyHints struct {
	Start   string
	Pause   string
	Restart string
}

// DefaultKeyHints matches the default key bindings.
var DefaultKeyHints = KeyHints{Start: "Enter", Pause: "P", Restart: "R"}

func (h KeyHints) orDefault() KeyHints {
	if h.Start == "" {
		h.Start = DefaultKeyHints.Start
	}
	if h.Pause == "" {
		h.Pause = DefaultKeyHints.Pause
	}
	if h.Restart == "" {
		h.Restart = DefaultKeyHints.Restart
	}
	return h
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot(), g.hints)
}

// Render draws snap into dst: the well, the falling piece, the next-piece
// preview, score and lines, and a pause or game-over overlay naming the
// keys in hints. Empty hints fall back to DefaultKeyHints.
func Render(dst *core.Screen, snap Snapshot, hints KeyHints) {
	dst.Clear()
	hints = hints.orDefault()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := 1

	dst.DrawTextCentered(0, "T E T R I S")
	renderWell(dst, snap, ox, oy)
	renderSidebar(dst, snap, ox+wellW+sidebarGap, oy)

	switch {
	case snap.GameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d  Press %s to restart", snap.Score, hints.Restart))
	case snap.Paused:
		renderOverlay(dst, "PAUSED", fmt.Sprintf("Press %s to continue", hints.Pause))
	case snap.Current == nil:
		renderOverlay(dst, "TETRIS", fmt.Sprintf("Press %s to start", hints.Start))
	}
}

func renderWell(dst *core.Screen, snap Snapshot, ox, oy int) {
	dst.DrawBoxColored(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)

	for y, row := range snap.Board {
		for x, c := range row {
			if c == Empty {
				dst.SetColored(ox+1+x*cellW+1, oy+1+y, '.', core.ColorGray)
				continue
			}
			drawBlock(dst, ox+1+x*cellW, oy+1+y, c)
		}
	}

	if p := snap.Current; p != nil {
		for x, y := range p.Shape.Cells() {
			by := p.Y + y
			if by < 0 {
				continue
			}
			drawBlock(dst, ox+1+(p.X+x)*cellW, oy+1+by, p.Color)
		}
	}
}

func renderSidebar(dst *core.Screen, snap Snapshot, sx, sy int) {
	dst.DrawBoxColored(core.NewRect(sx, sy, previewW, previewH), core.ColorGray)
	dst.DrawText(sx+2, sy, " NEXT ")

	if p := snap.Next; p != nil {
		innerCols := (previewW - 2) / cellW
		innerRows := previewH - 2
		offX := (innerCols - p.Shape.Width()) / 2
		offY := (innerRows - p.Shape.Height()) / 2
		for x, y := range p.Shape.Cells() {
			drawBlock(dst, sx+1+(offX+x)*cellW, sy+1+offY+y, p.Color)
		}
	}

	y := sy + previewH + 1
	dst.DrawText(sx, y, "SCORE")
	dst.DrawTextColored(sx, y+1, fmt.Sprintf("%d", snap.Score), core.ColorBrightYellow)
	dst.DrawText(sx, y+3, "LINES")
	dst.DrawTextColored(sx, y+4, fmt.Sprintf("%d", snap.Lines), core.ColorBrightCyan)
	dst.DrawTextColored(sx, y+6, snap.Loop.String(), core.ColorGray)
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '[', c)
	dst.SetColored(x+1, y, ']', c)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
