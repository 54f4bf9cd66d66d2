package ui

import (
	"github.com/mattn/go-runewidth"
)

type button struct {
	label  string
	action func()
	rect   rect
}

// popup is a modal dialog. While it is open the board ignores input; a click
// outside of it closes it.
type popup struct {
	title   string
	lines   []string
	buttons []*button
	rect    rect
}

// place centres the popup, taking at least half of the screen like the
// dialogs it replaces, and lays out its buttons on the bottom row.
func (p *popup) place(width, height int) {
	w := width / 2
	w = max(w, runewidth.StringWidth(p.title)+4)
	for _, line := range p.lines {
		w = max(w, runewidth.StringWidth(line)+4)
	}
	buttonsW := 0
	for _, b := range p.buttons {
		buttonsW += runewidth.StringWidth(b.label) + 6
	}
	w = min(max(w, buttonsW+2), width)

	h := len(p.lines) + 4
	if len(p.buttons) > 0 {
		h += 2
	}
	h = min(max(h, height/2), height)

	p.rect = rect{x: (width - w) / 2, y: (height - h) / 2, w: w, h: h}

	x := p.rect.x + (p.rect.w-buttonsW)/2
	for _, b := range p.buttons {
		bw := runewidth.StringWidth(b.label) + 4
		b.rect = rect{x: x, y: p.rect.y + p.rect.h - 2, w: bw, h: 1}
		x += bw + 2
	}
}

func (p *popup) buttonAt(x, y int) *button {
	for _, b := range p.buttons {
		if b.rect.contains(x, y) {
			return b
		}
	}
	return nil
}
