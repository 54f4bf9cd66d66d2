package ui

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.x <= x && x < r.x+r.w && r.y <= y && y < r.y+r.h
}

// layout places the board and the stats bar on a screen of the given size.
// Cells grow with the screen and stay roughly square, a terminal cell being
// about twice as tall as it is wide.
type layout struct {
	width, height int

	size         int
	cellW, cellH int
	board        rect

	// tooSmall is set when the screen cannot show one row per board row
	// above the stats bar; the board is then replaced by a notice.
	tooSmall bool

	statsY    int
	newButton rect
}

func newLayout(width, height, size int) layout {
	boardH := max(1, height-2)

	cellH := max(1, boardH/size)
	cellW := max(1, width/size)
	if cellW > 2*cellH {
		cellW = 2 * cellH
	}
	if cellW >= 2 && cellH > cellW/2 {
		cellH = max(1, cellW/2)
	}

	l := layout{
		width:  width,
		height: height,
		size:   size,
		cellW:  cellW,
		cellH:  cellH,
		statsY: height - 1,
	}
	if size > height-2 || size > width {
		l.tooSmall = true
		return l
	}

	l.board = rect{w: cellW * size, h: cellH * size}
	l.board.x = (width - l.board.w) / 2
	l.board.y = (boardH - l.board.h) / 2
	return l
}

// cellAt maps a screen position to a board cell.
func (l layout) cellAt(x, y int) (cx, cy int, ok bool) {
	if !l.board.contains(x, y) {
		return 0, 0, false
	}
	return (x - l.board.x) / l.cellW, (y - l.board.y) / l.cellH, true
}

// cellRect is the painted area of a cell, leaving a one column and one row
// gutter when there is room for it.
func (l layout) cellRect(cx, cy int) rect {
	r := rect{
		x: l.board.x + cx*l.cellW,
		y: l.board.y + cy*l.cellH,
		w: l.cellW,
		h: l.cellH,
	}
	if r.w >= 3 {
		r.w--
	}
	if r.h >= 3 {
		r.h--
	}
	return r
}

func (l layout) cellCenter(cx, cy int) (x, y int) {
	r := l.cellRect(cx, cy)
	return r.x + r.w/2, r.y + r.h/2
}
