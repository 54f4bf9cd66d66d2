package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	colorNormal   = tcell.NewRGBColor(255, 255, 255)
	colorFlagged  = tcell.NewRGBColor(255, 0, 0)
	colorRevealed = tcell.NewRGBColor(153, 153, 153)
	colorMine     = tcell.NewRGBColor(255, 153, 0)
	colorFlagging = tcell.NewRGBColor(255, 128, 128)

	styleScreen = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePopup  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleButton = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
)

// number colours, indexed by the mine count
var numberColors = [9]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorBlack,
	tcell.ColorGray,
}

// drawText prints text starting at x and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

func drawCentered(s tcell.Screen, r rect, y int, style tcell.Style, text string) {
	x := r.x + (r.w-runewidth.StringWidth(text))/2
	drawText(s, max(x, r.x), y, style, text)
}

func fill(s tcell.Screen, r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cellLook returns the background and label of a cell.
func (a *App) cellLook(cx, cy int) (tcell.Style, string) {
	state := a.game.View(cx, cy)
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack)

	switch {
	case state == mines.Unknown:
		if a.mouse.pendingFlag(cx, cy) {
			return style.Background(colorFlagging), ""
		}
		return style.Background(colorNormal), ""
	case state == mines.Flagged:
		if a.mouse.pendingFlag(cx, cy) {
			return style.Background(colorFlagging), ""
		}
		return style.Background(colorFlagged), "F"
	case state == mines.CorrectlyFlagged:
		return style.Background(colorFlagged), "M"
	case state == mines.FalselyFlagged:
		return style.Background(colorFlagged), "X"
	case state == mines.ExplodedMine:
		return style.Background(colorMine).Bold(true).Reverse(true), "M"
	case state == mines.UnflaggedMine:
		return style.Background(colorMine), "M"
	case state == 0:
		return style.Background(colorRevealed), ""
	default:
		return style.Background(colorRevealed).Foreground(numberColors[state]).Bold(true), state.String()
	}
}

func (a *App) drawBoard() {
	if a.layout.tooSmall {
		r := rect{w: a.layout.width, h: a.layout.statsY}
		drawCentered(a.screen, r, r.h/2, styleScreen,
			fmt.Sprintf("Terminal too small: a %dx%d board needs %dx%d",
				a.layout.size, a.layout.size, a.layout.size, a.layout.size+2))
		return
	}
	for cy := range a.layout.size {
		for cx := range a.layout.size {
			style, label := a.cellLook(cx, cy)
			r := a.layout.cellRect(cx, cy)
			fill(a.screen, r, style)
			if a.cursor.visible && a.cursor.x == cx && a.cursor.y == cy {
				style = style.Underline(true)
				if label == "" {
					label = "_"
				}
			}
			drawCentered(a.screen, r, r.y+r.h/2, style, label)
		}
	}
}

func (a *App) statsLine() string {
	return fmt.Sprintf(
		"Time: %d   Revealed: %d/%d   Flagged: %d/%d",
		int(a.game.Elapsed().Seconds()),
		a.game.RevealCount(), a.game.Safe(),
		a.game.FlagCount(), a.game.MineCount,
	)
}

func (a *App) drawStats() {
	y := a.layout.statsY
	x := drawText(a.screen, 1, y, styleScreen, a.statsLine())

	label := "[ New game ]"
	x += 3
	a.layout.newButton = rect{x: x, y: y, w: runewidth.StringWidth(label), h: 1}
	drawText(a.screen, x, y, styleButton, label)
}

func (a *App) drawPopup() {
	p := a.popup
	p.place(a.layout.width, a.layout.height)
	fill(a.screen, p.rect, stylePopup)

	drawText(a.screen, p.rect.x+2, p.rect.y, stylePopup.Bold(true), p.title)
	drawText(a.screen, p.rect.x+1, p.rect.y+1, stylePopup, strings.Repeat("─", max(0, p.rect.w-2)))

	for i, line := range p.lines {
		drawCentered(a.screen, p.rect, p.rect.y+2+i, stylePopup, line)
	}
	for _, b := range p.buttons {
		fill(a.screen, b.rect, styleButton)
		drawCentered(a.screen, b.rect, b.rect.y, styleButton, b.label)
	}
}

func (a *App) draw() {
	a.screen.Fill(' ', styleScreen)
	a.drawBoard()
	a.drawStats()
	if a.popup != nil {
		a.drawPopup()
	}
	a.screen.Show()
}
