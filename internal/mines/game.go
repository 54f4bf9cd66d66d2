package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// Log receives game events; main replaces it with the configured logger.
var Log logrus.FieldLogger = logrus.New()

type Status int

const (
	Ready Status = iota
	Playing
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type Option func(*Game)

// WithClock replaces [time.Now] as the source of the game timer.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

type Game struct {
	Params

	cells []Cell
	mines []int

	started, ended, won bool
	exploded            int

	revealCount, flagCount int

	startedAt, endedAt time.Time

	rnd *rand.Rand
	now func() time.Time
}

// New lays out a fresh board. The first [Game.Open] may still move the mines
// so that the opened cell comes up blank.
func New(params Params, r *rand.Rand, opts ...Option) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Params:   params,
		exploded: -1,
		rnd:      r,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.generate(-1); err != nil {
		return nil, err
	}
	return g, nil
}

// NewWithMines builds a game on a known layout of mines given as cell
// indices. A first move on a non-blank cell still relays the mines using r.
func NewWithMines(size int, mines []int, r *rand.Rand, opts ...Option) (*Game, error) {
	params := Params{Size: size, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(mines))
	for _, m := range mines {
		if m < 0 || m >= params.Cells() {
			return nil, fmt.Errorf("%w: mine %d on %s", ErrOutOfBounds, m, params)
		}
		if seen[m] {
			return nil, fmt.Errorf("%w: duplicate mine %d", ErrInvalidParams, m)
		}
		seen[m] = true
	}
	g := &Game{
		Params:   params,
		cells:    params.board(mines),
		mines:    slices.Clone(mines),
		exploded: -1,
		rnd:      r,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) generate(first int) (err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = ae
				return
			}
			panic(r)
		}
	}()

	var exclude map[int]bool
	if first >= 0 {
		exclude = g.safeZone(first)
	}
	g.cells, g.mines = g.layMines(g.rnd, exclude)
	g.revealCount, g.flagCount = 0, 0
	return nil
}

func (g *Game) check(x, y int) error {
	if !g.PointInBounds(x, y) {
		return fmt.Errorf("%w: %d:%d on %s", ErrOutOfBounds, x, y, g.Params)
	}
	if g.ended {
		return ErrGameEnded
	}
	return nil
}

// Open handles a click on a cell: hidden cells are revealed, numbered cells
// with enough flags around them are chorded, flagged cells are left alone.
func (g *Game) Open(x, y int) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	i := g.index(x, y)

	if !g.started && g.cells[i].Value != 0 {
		Log.WithFields(logrus.Fields{
			"x": x, "y": y, "value": g.cells[i].Value,
		}).Debug("first move is not blank, relaying mines")
		if err := g.generate(i); err != nil {
			return err
		}
		g.reveal(i)
		return nil
	}

	c := g.cells[i]
	switch {
	case c.Hidden && !c.Flagged:
		g.reveal(i)
	case !c.Hidden && c.Value > 0:
		g.chord(i)
	}
	return nil
}

// Flag toggles the flag on a hidden cell. Flags can only be placed once the
// first cell has been revealed.
func (g *Game) Flag(x, y int) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	c := &g.cells[g.index(x, y)]
	if !g.started || !c.Hidden {
		return nil
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		g.flagCount++
	} else {
		g.flagCount--
	}
	return nil
}

// Chord reveals the unflagged neighbours of an opened cell once the number
// of flags around it matches its mine count.
func (g *Game) Chord(x, y int) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	i := g.index(x, y)
	if c := g.cells[i]; c.Hidden || c.Value <= 0 {
		return nil
	}
	g.chord(i)
	return nil
}

func (g *Game) chord(i int) {
	if g.flaggedAround(i) != int(g.cells[i].Value) {
		return
	}
	for j := range g.Neighbors(i) {
		if g.ended {
			return
		}
		if c := g.cells[j]; c.Hidden && !c.Flagged {
			g.reveal(j)
		}
	}
}

func (g *Game) reveal(start int) {
	if !g.started {
		g.started = true
		g.startedAt = g.now()
	}

	queue := []int{start}
	for len(queue) > 0 && !g.ended {
		i := queue[0]
		queue = queue[1:]

		c := &g.cells[i]
		if !c.Hidden || c.Flagged {
			continue
		}
		c.Hidden = false

		if c.IsMine() {
			g.end(false, i)
			return
		}

		g.revealCount++
		if g.revealCount == g.Safe() {
			g.end(true, -1)
			return
		}

		if c.Value == 0 {
			for j := range g.Neighbors(i) {
				if n := g.cells[j]; n.Hidden && !n.Flagged {
					queue = append(queue, j)
				}
			}
		}
	}
}

func (g *Game) end(won bool, exploded int) {
	g.ended = true
	g.won = won
	g.exploded = exploded
	g.endedAt = g.now()
	Log.WithFields(logrus.Fields{
		"params":   g.Params.String(),
		"won":      won,
		"revealed": g.revealCount,
		"flagged":  g.flagCount,
		"elapsed":  g.Elapsed().String(),
	}).Info("game over")
}

// Forfeit ends a running game as a loss.
func (g *Game) Forfeit() {
	if g.ended {
		return
	}
	if !g.started {
		g.started = true
		g.startedAt = g.now()
	}
	g.end(false, -1)
}

func (g *Game) flaggedAround(i int) int {
	count := 0
	for j := range g.Neighbors(i) {
		if g.cells[j].Flagged {
			count++
		}
	}
	return count
}

func (g *Game) FlaggedAround(x, y int) int {
	if !g.PointInBounds(x, y) {
		return 0
	}
	return g.flaggedAround(g.index(x, y))
}

func (g *Game) Status() Status {
	switch {
	case g.ended && g.won:
		return Won
	case g.ended:
		return Lost
	case g.started:
		return Playing
	default:
		return Ready
	}
}

func (g *Game) Started() bool { return g.started }
func (g *Game) Ended() bool   { return g.ended }
func (g *Game) Won() bool     { return g.won }

func (g *Game) RevealCount() int { return g.revealCount }
func (g *Game) FlagCount() int   { return g.flagCount }

// Elapsed is the time since the first reveal, frozen once the game ends.
func (g *Game) Elapsed() time.Duration {
	switch {
	case !g.started:
		return 0
	case g.ended:
		return g.endedAt.Sub(g.startedAt)
	default:
		return g.now().Sub(g.startedAt)
	}
}

// Mines returns the mine positions as cell indices.
func (g *Game) Mines() []int {
	return slices.Clone(g.mines)
}

func (g *Game) Cell(x, y int) (Cell, bool) {
	if !g.PointInBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// View is what the player is allowed to see in a cell.
func (g *Game) View(x, y int) CellState {
	if !g.PointInBounds(x, y) {
		return Unknown
	}
	i := g.index(x, y)
	c := g.cells[i]

	if g.ended {
		switch {
		case i == g.exploded:
			return ExplodedMine
		case c.IsMine() && (c.Flagged || g.won):
			return CorrectlyFlagged
		case c.IsMine():
			return UnflaggedMine
		case c.Flagged && !g.won:
			return FalselyFlagged
		}
	}

	switch {
	case c.Flagged:
		return Flagged
	case c.Hidden:
		return Unknown
	default:
		return CellState(c.Value)
	}
}

func (g *Game) Grid() Grid {
	grid := make(Grid, g.Cells())
	for i := range grid {
		x, y := g.point(i)
		grid[i] = g.View(x, y)
	}
	return grid
}
