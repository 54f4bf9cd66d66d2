package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// layMines places p.MineCount mines on a fresh board. Cells in exclude never
// receive a mine.
func (p Params) layMines(r *rand.Rand, exclude map[int]bool) (cells []Cell, mines []int) {
	n := p.Cells()

	candidates := make([]int, 0, n)
	for i := range n {
		if !exclude[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < p.MineCount {
		panic(AssertionError{"not enough room for mines"})
	}

	/*
	 * Pick the mines off the candidate list at random, swapping the
	 * tail into each hole.
	 */
	mines = make([]int, 0, p.MineCount)
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	cells = p.board(mines)
	return cells, mines
}

// board computes the adjacency counts for the given mine layout.
func (p Params) board(mines []int) []Cell {
	cells := make([]Cell, p.Cells())
	for i := range cells {
		cells[i].Hidden = true
	}
	for _, m := range mines {
		cells[m].Value = MineValue
	}
	for i := range cells {
		if cells[i].IsMine() {
			continue
		}
		for j := range p.Neighbors(i) {
			if cells[j].IsMine() {
				cells[i].Value++
			}
		}
	}
	return cells
}

// safeZone returns the cells kept clear of mines when the player opens
// cell i first. The neighbours are dropped when the board is too dense to
// spare them.
func (p Params) safeZone(i int) map[int]bool {
	zone := map[int]bool{i: true}
	for j := range p.Neighbors(i) {
		zone[j] = true
	}
	if p.Cells()-len(zone) < p.MineCount {
		Log.WithFields(logrus.Fields{
			"params": p.String(),
			"zone":   len(zone),
		}).Debug("board too dense for a blank start, sparing the opened cell only")
		return map[int]bool{i: true}
	}
	return zone
}
