package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// MineValue marks a mine in [Cell.Value].
const MineValue int8 = -1

type Cell struct {
	Value   int8
	Hidden  bool
	Flagged bool
}

func (c Cell) IsMine() bool {
	return c.Value == MineValue
}

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * What the player sees in a cell:
	 *
	 * 	- 0 to 8 mean the square is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the square is flagged, -2 that it is still hidden.
	 *
	 * 	- 64 and up are only shown once the game is over: a flagged
	 * 	  mine, the mine the player hit, a flag on a safe square and
	 * 	  a mine nobody flagged.
	 */
)

func (s CellState) Opened() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged, s == CorrectlyFlagged:
		return "F"
	case s == FalselyFlagged:
		return "X"
	case s == ExplodedMine, s == UnflaggedMine:
		return "M"
	case s == 0:
		return "."
	case s.Opened():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String())
			if x < width-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
