package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui"
)

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	conf, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to load config:", err)
		os.Exit(2)
	}

	log, err := logging.New(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mines.Log = log

	log.WithFields(conf.Fields()).Debug("config")

	params, err := conf.Params()
	if err != nil {
		log.Fatal("invalid game parameters: ", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	rnd := createRand(conf.Seed)

	if conf.Headless {
		runHeadless(ctx, log, params, rnd)
		return
	}

	if err := runScreen(ctx, log, conf, params, rnd); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ctx context.Context, log *logrus.Logger, params mines.Params, rnd *rand.Rand) {
	game, err := mines.New(params, rnd)
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}

	log.WithField("params", params.String()).Info("headless game started")

	if err := commands.Run(ctx, game, os.Stdin, os.Stdout, log); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}

func runScreen(ctx context.Context, log *logrus.Logger, conf *config.Config, params mines.Params, rnd *rand.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialise screen: %w", err)
	}

	app, err := ui.New(screen, params, rnd, log)
	if err != nil {
		screen.Fini()
		return err
	}
	defer app.Close()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Run(gCtx)
	})
	g.Go(func() error {
		return app.Tick(gCtx, conf.Tick)
	})
	g.Go(func() error {
		<-gCtx.Done()
		app.Close()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, ui.ErrQuit) {
		log.Printf("exit reason: %s\n", err)
	}
	return nil
}
