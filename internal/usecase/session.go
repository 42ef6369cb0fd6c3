package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

const DefaultQueueCapacity = 4

const (
	actionMove    = "move"
	actionDemo    = "demo"
	actionRestart = "restart"
)

type engine interface {
	Layout(ctx context.Context) (*entity.Layout, error)
	Move(ctx context.Context, pit int) (*entity.Outcome, error)
	Demo(ctx context.Context) (*entity.Outcome, error)
	Restart(ctx context.Context) error
}

type animator interface {
	Play(ctx context.Context, batch *entity.MoveBatch) error
}

type boardView interface {
	Render(index, count int) error
	Clickable(index int) bool
	SetError(message string)
	SetCurrentPlayer(player int)
	SetStatus(status string)
}

type action struct {
	kind string
	pit  int
}

// Session turns player actions into engine requests and animations, one at a time.
// Actions submitted while another one is in flight wait in a bounded queue.
type Session struct {
	logger *slog.Logger

	engine   engine
	animator animator
	board    boardView

	queue  chan action
	closed atomic.Bool
}

func NewSession(logger *slog.Logger, engine engine, animator animator, board boardView, capacity int) *Session {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}

	return &Session{
		logger:   logger.With("component", "session"),
		engine:   engine,
		animator: animator,
		board:    board,
		queue:    make(chan action, capacity),
	}
}

// Move requests sowing the stones of a playable pit.
func (that *Session) Move(pit int) error {
	if !that.board.Clickable(pit) {
		return fmt.Errorf("%w: %d", apperror.ErrPitNotPlayable, pit)
	}

	return that.enqueue(action{kind: actionMove, pit: pit})
}

// Demo requests a full demo game.
func (that *Session) Demo() error {
	return that.enqueue(action{kind: actionDemo})
}

// Restart resets the game and reloads the board.
func (that *Session) Restart() error {
	return that.enqueue(action{kind: actionRestart})
}

func (that *Session) enqueue(act action) error {
	if that.closed.Load() {
		return apperror.ErrSessionClosed
	}

	select {
	case that.queue <- act:
		return nil
	default:
		that.logger.Warn("dropping action, session is busy", "action", act.kind, "pit", act.pit)
		return apperror.ErrQueueFull
	}
}

// Run processes queued actions until ctx is done.
func (that *Session) Run(ctx context.Context) error {
	defer that.closed.Store(true)

	for {
		select {
		case <-ctx.Done():
			return nil
		case act := <-that.queue:
			that.handle(ctx, act)
		}
	}
}

func (that *Session) handle(ctx context.Context, act action) {
	log := that.logger.With("method", "handle", "action", act.kind)

	var (
		outcome *entity.Outcome
		err     error
	)

	switch act.kind {
	case actionMove:
		outcome, err = that.engine.Move(ctx, act.pit)
	case actionDemo:
		outcome, err = that.engine.Demo(ctx)
	case actionRestart:
		if err = that.restart(ctx); err != nil {
			log.Error("failed to restart game", "error", err)
		}
		return
	default:
		log.Error("unknown action")
		return
	}

	if err != nil {
		// transport and parse failures leave the board untouched
		log.Error("error fetching move data", "pit", act.pit, "error", err)
		return
	}

	that.apply(ctx, outcome)
}

// apply reflects one engine outcome on the board. The turn label follows the
// response immediately, the animation follows after.
func (that *Session) apply(ctx context.Context, outcome *entity.Outcome) {
	log := that.logger.With("method", "apply")

	if outcome.CurrentPlayer != nil {
		that.board.SetCurrentPlayer(*outcome.CurrentPlayer)
	}

	switch outcome.Kind {
	case entity.OutcomeAppError:
		that.board.SetError(outcome.Error)

	case entity.OutcomeMoves:
		that.board.SetError("")
		that.board.SetStatus("")

		log.Info("playing batch", "batch", outcome.Batch.ID, "moves", len(outcome.Batch.Moves))
		if err := that.animator.Play(ctx, outcome.Batch); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("animation failed", "batch", outcome.Batch.ID, "error", err)
		}

		// moves alone miss engine-side effects such as the end of game sweep
		if len(outcome.Batch.Pits) == 0 {
			if err := that.reload(ctx); err != nil {
				log.Warn("keeping animated board, reload failed", "batch", outcome.Batch.ID, "error", err)
			}
		}

		if outcome.Winner != "" {
			that.board.SetStatus(outcome.Winner)
		}

	default:
		log.Error("invalid response format", "outcome", outcome.String())
	}
}

func (that *Session) restart(ctx context.Context) error {
	log := that.logger.With("method", "restart")

	if err := that.engine.Restart(ctx); err != nil {
		return fmt.Errorf("restart request failed: %w", err)
	}

	if err := that.reload(ctx); err != nil {
		return err
	}

	that.board.SetError("")
	that.board.SetStatus("")

	log.Info("game restarted")

	return nil
}

// reload re-renders every pit and the turn label from the engine page.
func (that *Session) reload(ctx context.Context) error {
	log := that.logger.With("method", "reload")

	layout, err := that.engine.Layout(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload board: %w", err)
	}

	for _, pit := range layout.Pits {
		if err = that.board.Render(pit.Index, pit.Stones); err != nil {
			log.Warn("skipping pit missing from board", "pit", pit.Index, "error", err)
		}
	}

	if layout.CurrentPlayer != 0 {
		that.board.SetCurrentPlayer(layout.CurrentPlayer)
	}

	return nil
}
