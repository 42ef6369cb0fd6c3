package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/mancala-client/internal/animation"
	"github.com/rocketscienceinc/mancala-client/internal/board"
	"github.com/rocketscienceinc/mancala-client/internal/config"
	"github.com/rocketscienceinc/mancala-client/internal/ui"
	"github.com/rocketscienceinc/mancala-client/internal/usecase"
	"github.com/rocketscienceinc/mancala-client/transport/rest"
)

// Game holds the wired components of one client.
type Game struct {
	Board    *board.Board
	Client   *rest.Client
	Animator *animation.Animator
	Session  *usecase.Session
}

// NewGame connects to the engine, reads the initial board and wires the session.
func NewGame(ctx context.Context, logger *slog.Logger, conf *config.Config, clk clock.Clock) (*Game, error) {
	log := logger.With("component", "app")

	client, err := rest.NewClient(logger, conf.Server.URL, conf.Server.RequestTimeout)
	if err != nil {
		return nil, err
	}

	layoutCtx, cancel := context.WithTimeout(ctx, conf.Server.RequestTimeout)
	defer cancel()

	layout, err := client.Layout(layoutCtx)
	if err != nil {
		return nil, fmt.Errorf("could not load board from %s: %w", conf.Server.URL, err)
	}

	b, err := board.New(layout)
	if err != nil {
		return nil, fmt.Errorf("could not build board: %w", err)
	}

	log.Info("Board loaded", "pits", len(layout.Pits), "player", layout.CurrentPlayer)

	animator := animation.New(logger, b, clk, animation.Timing{
		StepInterval:       conf.Animation.StepInterval,
		RelocationDuration: conf.Animation.RelocationDuration,
	})

	return &Game{
		Board:    b,
		Client:   client,
		Animator: animator,
		Session:  usecase.NewSession(logger, client, animator, b, conf.Session.QueueCapacity),
	}, nil
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game, err := NewGame(ctx, logger, conf, clock.New())
	if err != nil {
		return err
	}

	return game.Run(ctx, logger, conf)
}

// Run drives the session, the terminal UI and the optional debug server until
// the UI exits or ctx is done.
func (that *Game) Run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return that.Session.Run(ctx)
	})

	if conf.DebugHTTPPort != "" {
		group.Go(func() error {
			log.Info("Starting debug HTTP server", "port", conf.DebugHTTPPort)
			if err := rest.Start(ctx, conf.DebugHTTPPort, rest.NewDebugHandler(logger, that.Board)); err != nil {
				return fmt.Errorf("debug HTTP server error: %w", err)
			}
			return nil
		})
	}

	group.Go(func() error {
		defer log.Info("UI closed, shutting down")

		if err := ui.New(logger, that.Board, that.Session).Run(ctx); err != nil {
			return fmt.Errorf("UI error: %w", err)
		}

		// leaving the UI ends the whole client
		return context.Canceled
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
