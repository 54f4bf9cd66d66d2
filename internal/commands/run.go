package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// LineError ties a failed command to its line number.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Run reads commands from in, one per line, and prints the board to out after
// each of them. Blank lines and lines starting with # are skipped. A bad
// command is reported and skipped. Run returns once in is drained, the game
// ends or ctx is done.
func Run(ctx context.Context, g *mines.Game, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	// the reader can block forever on a terminal, so it gets its own
	// goroutine and Run stays responsive to ctx
	go func() {
		defer close(lines)
		scanErr <- scan(ctx, in, lines)
	}()

	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			text = l
		}
		line++

		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if err := Execute(g, text); err != nil {
			lerr := LineError{Line: line, Err: err}
			log.WithFields(logrus.Fields{
				"line":    line,
				"command": text,
			}).WithError(err).Warn("command failed")
			fmt.Fprintf(out, "error: %v\n", lerr)
			continue
		}
		log.WithFields(logrus.Fields{
			"line":    line,
			"command": text,
			"status":  g.Status().String(),
		}).Debug("command executed")

		if err := PrintBoard(out, g); err != nil {
			return err
		}
		if g.Ended() {
			return nil
		}
	}
}

func scan(ctx context.Context, in io.Reader, lines chan<- string) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// PrintBoard writes a status line followed by the player's view of the board.
func PrintBoard(w io.Writer, g *mines.Game) error {
	_, err := fmt.Fprintf(w,
		"%s revealed=%d/%d flagged=%d/%d time=%s\n%s",
		g.Status(),
		g.RevealCount(), g.Safe(),
		g.FlagCount(), g.MineCount,
		g.Elapsed().Truncate(time.Second),
		g.Grid().ToString(g.Size),
	)
	return err
}
