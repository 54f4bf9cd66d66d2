// Package commands interprets the one-line text protocol for driving a game:
//
//	g      // print the board
//	o x y  // open the cell at x:y
//	f x y  // toggle a flag at x:y
//	c x y  // chord the cell at x:y
//	r      // give up and reveal the board
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("bad argument")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: x must be an int", ErrBadArgument)
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: y must be an int", ErrBadArgument)
	}
	return x, y, nil
}

// Execute applies a single command line to g.
func Execute(g *mines.Game, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%w: %q takes %d", ErrArgCount, parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "r":
		g.Forfeit()
		return nil
	}

	x, y, err := parseXY(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "o":
		return g.Open(x, y)
	case "f":
		return g.Flag(x, y)
	case "c":
		return g.Chord(x, y)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
}
