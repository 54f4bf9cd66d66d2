// Package ui draws the board on a terminal and turns mouse and keyboard
// events into moves.
package ui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// ErrQuit is returned by [App.Run] when the user quits.
var ErrQuit = errors.New("quit")

type App struct {
	screen tcell.Screen
	log    logrus.FieldLogger

	params  mines.Params
	rnd     *rand.Rand
	newGame func() (*mines.Game, error)

	game   *mines.Game
	layout layout
	popup  *popup
	mouse  mouse
	cursor cursor

	closeOnce sync.Once
}

// New takes an initialised screen and starts the first game on it.
func New(
	screen tcell.Screen,
	params mines.Params,
	rnd *rand.Rand,
	log logrus.FieldLogger,
) (*App, error) {
	app := &App{
		screen: screen,
		log:    log,
		params: params,
		rnd:    rnd,
	}
	app.newGame = func() (*mines.Game, error) {
		return mines.New(app.params, app.rnd)
	}

	screen.EnableMouse()
	screen.HideCursor()

	if err := app.generate(); err != nil {
		return nil, err
	}
	w, h := screen.Size()
	app.layout = newLayout(w, h, params.Size)

	return app, nil
}

// Run draws the board and processes events until the user quits or the
// screen is closed.
func (a *App) Run(ctx context.Context) error {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrQuit
		}
		if a.handle(ev) {
			a.log.Info("quit requested")
			return ErrQuit
		}
	}
}

// Tick wakes the event loop every interval so the timer keeps moving.
func (a *App) Tick(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// a full event queue already means a redraw is coming
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(a.screen.Fini)
}

// handle applies one event and returns true when the user asks to quit.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.layout = newLayout(w, h, a.game.Size)
		a.screen.Sync()
	case *tcell.EventKey:
		if a.handleKey(ev) {
			return true
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventInterrupt:
		if a.game.Status() != mines.Playing {
			return false
		}
	}
	a.draw()
	return false
}

func (a *App) generate() error {
	game, err := a.newGame()
	if err != nil {
		return fmt.Errorf("unable to generate a new game: %w", err)
	}
	if a.game != nil && a.game.Size != game.Size {
		w, h := a.screen.Size()
		a.layout = newLayout(w, h, game.Size)
	}
	a.game = game
	a.mouse.reset()
	a.cursor.x = min(a.cursor.x, game.Size-1)
	a.cursor.y = min(a.cursor.y, game.Size-1)
	a.log.WithFields(logrus.Fields{
		"params": game.Params.String(),
	}).Info("new game")
	return nil
}

func (a *App) canFlag(x, y int) bool {
	c, ok := a.game.Cell(x, y)
	return ok && a.game.Started() && !a.game.Ended() && c.Hidden
}

func (a *App) open(x, y int) {
	err := a.game.Open(x, y)
	if errors.Is(err, mines.ErrGameEnded) {
		return
	}
	if err != nil {
		a.log.WithFields(logrus.Fields{"x": x, "y": y}).WithError(err).Error("open failed")
		return
	}
	a.log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"status":   a.game.Status().String(),
		"revealed": a.game.RevealCount(),
	}).Debug("open")
	if a.game.Ended() {
		a.showEnd()
	}
}

func (a *App) flag(x, y int) {
	err := a.game.Flag(x, y)
	if errors.Is(err, mines.ErrGameEnded) {
		return
	}
	if err != nil {
		a.log.WithFields(logrus.Fields{"x": x, "y": y}).WithError(err).Error("flag failed")
		return
	}
	a.log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"flagged": a.game.FlagCount(),
	}).Debug("flag")
}

// requestNewGame asks for confirmation before throwing away a game that
// has not ended.
func (a *App) requestNewGame() {
	if a.game.Ended() {
		a.startNewGame()
		return
	}
	a.popup = &popup{
		title: "Warning",
		lines: []string{
			"Current game has not ended.",
			"Generating a new game will overwrite existing game.",
			"Are you sure?",
		},
		buttons: []*button{
			{label: "Confirm", action: a.startNewGame},
			{label: "Cancel", action: func() {}},
		},
	}
}

func (a *App) startNewGame() {
	if err := a.generate(); err != nil {
		a.log.WithError(err).Error("new game failed")
		a.popup = &popup{title: "Error", lines: []string{err.Error()}}
	}
}

func (a *App) showEnd() {
	var lines []string
	if a.game.Won() {
		lines = []string{
			"You have won the game!",
			fmt.Sprintf("You spent %d seconds on this map.", int(a.game.Elapsed().Seconds())),
		}
	} else {
		lines = []string{"You have blown up yourself!"}
	}
	lines = append(lines, "", "Click anywhere ELSE to close this popup.")
	a.popup = &popup{title: "Game Ended", lines: lines}
}

func (a *App) closePopup() {
	a.popup = nil
}
