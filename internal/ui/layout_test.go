package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name         string
		w, h, size   int
		cellW, cellH int
		board        rect
	}{
		{"wide terminal", 80, 25, 4, 10, 5, rect{20, 1, 40, 20}},
		{"beginner", 80, 25, 9, 4, 2, rect{22, 2, 36, 18}},
		{"narrow terminal", 20, 40, 4, 5, 2, rect{0, 15, 20, 8}},
		{"expert on a tall terminal", 80, 26, 24, 2, 1, rect{16, 0, 48, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(tt.w, tt.h, tt.size)
			assert.False(t, l.tooSmall)
			assert.Equal(t, tt.cellW, l.cellW)
			assert.Equal(t, tt.cellH, l.cellH)
			assert.Equal(t, tt.board, l.board)
			assert.Equal(t, tt.h-1, l.statsY)
			assert.Less(t, l.board.y+l.board.h-1, l.statsY, "board overlaps the stats bar")
		})
	}
}

func TestNewLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name       string
		w, h, size int
	}{
		{"expert on 80x24", 80, 24, 24},
		{"short", 80, 10, 9},
		{"narrow", 5, 30, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(tt.w, tt.h, tt.size)
			assert.True(t, l.tooSmall)
			assert.Equal(t, rect{}, l.board)
			assert.Equal(t, tt.h-1, l.statsY)

			_, _, ok := l.cellAt(tt.w/2, tt.h-1)
			assert.False(t, ok)
		})
	}
}

func TestCellAt(t *testing.T) {
	l := newLayout(80, 25, 4)

	for cy := range 4 {
		for cx := range 4 {
			x, y := l.cellCenter(cx, cy)
			gx, gy, ok := l.cellAt(x, y)
			assert.True(t, ok)
			assert.Equal(t, [2]int{cx, cy}, [2]int{gx, gy})
		}
	}

	_, _, ok := l.cellAt(19, 1)
	assert.False(t, ok)
	_, _, ok = l.cellAt(60, 1)
	assert.False(t, ok)
	_, _, ok = l.cellAt(20, 0)
	assert.False(t, ok)
	_, _, ok = l.cellAt(20, 21)
	assert.False(t, ok)
	cx, cy, ok := l.cellAt(59, 20)
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 3}, [2]int{cx, cy})
}

func TestCellRectGutter(t *testing.T) {
	l := newLayout(80, 25, 4)
	assert.Equal(t, rect{30, 6, 9, 4}, l.cellRect(1, 1))

	l = newLayout(9, 11, 9)
	assert.Equal(t, rect{2, 0, 1, 1}, l.cellRect(2, 0))
}

func TestPopupPlace(t *testing.T) {
	p := &popup{
		title: "Warning",
		lines: []string{"Are you sure?"},
		buttons: []*button{
			{label: "Confirm"},
			{label: "Cancel"},
		},
	}
	p.place(80, 24)

	assert.Equal(t, rect{20, 6, 40, 12}, p.rect)
	for _, b := range p.buttons {
		assert.Equal(t, p.rect.y+p.rect.h-2, b.rect.y)
		assert.True(t, p.rect.contains(b.rect.x, b.rect.y))
		assert.True(t, p.rect.contains(b.rect.x+b.rect.w-1, b.rect.y))
	}
	assert.Same(t, p.buttons[0], p.buttonAt(p.buttons[0].rect.x, p.buttons[0].rect.y))
	assert.Same(t, p.buttons[1], p.buttonAt(p.buttons[1].rect.x+1, p.buttons[1].rect.y))
	assert.Nil(t, p.buttonAt(p.rect.x, p.rect.y))
}

func TestPopupPlaceLongLines(t *testing.T) {
	p := &popup{lines: []string{"a line that is definitely wider than half of the screen"}}
	p.place(60, 10)
	assert.Equal(t, 59, p.rect.w)
	assert.Equal(t, 5, p.rect.h)

	p.place(30, 10)
	assert.Equal(t, rect{0, 2, 30, 5}, p.rect)
}
