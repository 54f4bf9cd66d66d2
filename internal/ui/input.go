package ui

import (
	"github.com/gdamore/tcell/v2"
)

// mouse tracks buttons across events: tcell reports the buttons held down,
// so presses and releases are derived from the previous state.
type mouse struct {
	buttons tcell.ButtonMask

	// cell under the primary button press
	left      cellRef
	newButton bool

	// screen position of a primary press while a popup is open
	down cellRef

	// cell waiting for the secondary button to be released to flip its
	// flag; over is false while the pointer has wandered off it
	flag cellRef
	over bool
}

type cellRef struct {
	x, y int
	ok   bool
}

func (m *mouse) pendingFlag(x, y int) bool {
	return m.flag.ok && m.over && m.flag.x == x && m.flag.y == y
}

func (m *mouse) reset() {
	*m = mouse{buttons: m.buttons}
}

type cursor struct {
	x, y    int
	visible bool
}

func (c *cursor) move(dx, dy, size int) {
	if !c.visible {
		c.visible = true
		return
	}
	c.x = min(max(c.x+dx, 0), size-1)
	c.y = min(max(c.y+dy, 0), size-1)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ a.mouse.buttons
	released := a.mouse.buttons &^ buttons
	a.mouse.buttons = buttons

	if a.popup != nil {
		a.popupMouse(x, y, pressed, released)
		return
	}

	cx, cy, onBoard := a.layout.cellAt(x, y)
	if a.layout.newButton.contains(x, y) {
		onBoard = false
	}
	here := cellRef{cx, cy, onBoard}

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		a.mouse.left = here
		a.mouse.newButton = a.layout.newButton.contains(x, y)
	case released&tcell.ButtonPrimary != 0:
		if here.ok && a.mouse.left == here {
			a.cursor.visible = false
			a.open(cx, cy)
		} else if a.mouse.newButton && a.layout.newButton.contains(x, y) {
			a.requestNewGame()
		}
		a.mouse.left = cellRef{}
		a.mouse.newButton = false
	}

	switch {
	case pressed&tcell.ButtonSecondary != 0:
		if here.ok && a.canFlag(cx, cy) {
			a.mouse.flag = here
			a.mouse.over = true
		}
	case released&tcell.ButtonSecondary != 0:
		if a.mouse.flag.ok && a.mouse.flag == here {
			a.flag(cx, cy)
		}
		a.mouse.flag = cellRef{}
		a.mouse.over = false
	case buttons&tcell.ButtonSecondary != 0 && a.mouse.flag.ok:
		a.mouse.over = a.mouse.flag == here
	}
}

func (a *App) popupMouse(x, y int, pressed, released tcell.ButtonMask) {
	p := a.popup
	if pressed&tcell.ButtonPrimary != 0 {
		a.mouse.down = cellRef{x, y, true}
		return
	}
	if released&tcell.ButtonPrimary == 0 {
		return
	}
	down := a.mouse.down
	a.mouse.down = cellRef{}
	if !p.rect.contains(x, y) {
		a.closePopup()
		return
	}
	if b := p.buttonAt(x, y); b != nil && down.ok && b.rect.contains(down.x, down.y) {
		a.closePopup()
		b.action()
	}
}

// handleKey returns true when the user asks to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	if a.popup != nil {
		return a.popupKey(ev)
	}

	size := a.game.Size
	switch ev.Key() {
	case tcell.KeyUp:
		a.cursor.move(0, -1, size)
	case tcell.KeyDown:
		a.cursor.move(0, 1, size)
	case tcell.KeyLeft:
		a.cursor.move(-1, 0, size)
	case tcell.KeyRight:
		a.cursor.move(1, 0, size)
	case tcell.KeyEnter:
		a.openAtCursor()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'n', 'N':
			a.requestNewGame()
		case ' ':
			a.openAtCursor()
		case 'f', 'F':
			if a.cursor.visible && a.canFlag(a.cursor.x, a.cursor.y) {
				a.flag(a.cursor.x, a.cursor.y)
			}
		}
	}
	return false
}

func (a *App) openAtCursor() {
	if !a.cursor.visible {
		a.cursor.visible = true
		return
	}
	a.open(a.cursor.x, a.cursor.y)
}

func (a *App) popupKey(ev *tcell.EventKey) bool {
	p := a.popup
	switch {
	case ev.Key() == tcell.KeyEscape:
		a.closePopup()
	case ev.Key() == tcell.KeyEnter,
		ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
		a.closePopup()
		if len(p.buttons) > 0 {
			p.buttons[0].action()
		}
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
		a.closePopup()
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
		return true
	}
	return false
}
