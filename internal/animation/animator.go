// Package animation replays move batches on the board as time-staggered stone relocations.
package animation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/board"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

const (
	DefaultStepInterval       = 600 * time.Millisecond
	DefaultRelocationDuration = 500 * time.Millisecond
)

type Timing struct {
	StepInterval       time.Duration
	RelocationDuration time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		StepInterval:       DefaultStepInterval,
		RelocationDuration: DefaultRelocationDuration,
	}
}

type Animator struct {
	logger *slog.Logger
	board  *board.Board
	clock  clock.Clock
	timing Timing
}

func New(logger *slog.Logger, board *board.Board, clk clock.Clock, timing Timing) *Animator {
	if timing.StepInterval <= 0 {
		timing.StepInterval = DefaultStepInterval
	}
	if timing.RelocationDuration <= 0 {
		timing.RelocationDuration = DefaultRelocationDuration
	}

	return &Animator{
		logger: logger.With("component", "animator"),
		board:  board,
		clock:  clk,
		timing: timing,
	}
}

// Play animates the batch and blocks until every step finished, then re-renders
// the touched pits from their authoritative counts.
func (that *Animator) Play(ctx context.Context, batch *entity.MoveBatch) error {
	return that.Start(batch).Wait(ctx)
}

// Start schedules one step per move at k * StepInterval from now and returns
// immediately.
func (that *Animator) Start(batch *entity.MoveBatch) *Playback {
	playback := &Playback{
		animator: that,
		batch:    batch,
		before:   that.board.Counts(),
		steps:    make([]*step, len(batch.Moves)),
		log:      that.logger.With("batch", batch.ID),
	}

	playback.log.Debug("playing batch", "moves", len(batch.Moves))

	playback.mu.Lock()
	defer playback.mu.Unlock()

	for k, move := range batch.Moves {
		st := &step{index: k, move: move}
		playback.steps[k] = st
		playback.pending.Add(1)

		st.timer = that.clock.AfterFunc(time.Duration(k)*that.timing.StepInterval, func() {
			playback.begin(st)
		})
	}

	return playback
}

// Playback is one batch in flight.
type Playback struct {
	animator *Animator
	batch    *entity.MoveBatch
	before   map[int]int
	log      *slog.Logger

	mu        sync.Mutex
	steps     []*step
	cancelled bool
	pending   sync.WaitGroup
}

type step struct {
	index     int
	move      entity.Move
	timer     *clock.Timer
	highlight *board.Highlight
	token     *board.Token
	done      bool
}

func (that *Playback) begin(st *step) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.cancelled || st.done {
		return
	}

	animator := that.animator
	log := that.log.With("step", st.index, "from", st.move.FromPitIndex, "to", st.move.ToPitIndex)

	if !animator.board.Has(st.move.FromPitIndex) || !animator.board.Has(st.move.ToPitIndex) {
		log.Debug("skipping step, pit not found")
		that.finish(st)
		return
	}

	// armed before any visible change so the landing is never missed
	st.timer = animator.clock.AfterFunc(animator.timing.RelocationDuration, func() {
		that.land(st)
	})

	highlight, err := animator.board.Highlight(st.move.FromPitIndex, st.move.ToPitIndex)
	if err != nil {
		log.Debug("skipping step", "error", err)
		st.timer.Stop()
		that.finish(st)
		return
	}
	st.highlight = highlight

	token, err := animator.board.Lift(st.move.FromPitIndex, st.move.ToPitIndex)
	if err != nil {
		log.Debug("could not lift stone", "error", err)
	}
	if token == nil {
		log.Debug("source pit has no stone to move")
	}
	st.token = token
}

func (that *Playback) land(st *step) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.cancelled || st.done {
		return
	}

	if st.token != nil {
		that.animator.board.Drop(st.token, st.move.FromPitIndex, st.move.ToPitIndex)
	}
	that.animator.board.Restore(st.highlight)

	that.finish(st)
}

// finish must be called with mu held.
func (that *Playback) finish(st *step) {
	st.done = true
	that.pending.Done()
}

func (that *Playback) cancel() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelled = true

	for _, st := range that.steps {
		if st.done {
			continue
		}

		st.timer.Stop()
		if st.highlight != nil {
			that.animator.board.Restore(st.highlight)
		}
		that.finish(st)
	}
}

// Wait blocks until every step landed or ctx is done, then resynchronizes the board.
func (that *Playback) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		that.pending.Wait()
		close(done)
	}()

	var err error

	select {
	case <-done:
	case <-ctx.Done():
		that.cancel()
		<-done
		err = ctx.Err()
	}

	that.resync()

	return err
}

// resync discards the token graph of the animation and renders every touched pit
// from the authoritative counts, or from the projection when none were reported.
func (that *Playback) resync() {
	targets := that.batch.Project(that.before)

	indexes := that.batch.Touched()
	for index, count := range that.batch.Pits {
		if _, ok := targets[index]; !ok {
			indexes = append(indexes, index)
		}
		targets[index] = count
	}

	for _, index := range indexes {
		if err := that.animator.board.Render(index, targets[index]); err != nil {
			if errors.Is(err, apperror.ErrPitNotFound) {
				that.log.Debug("skipping resync of unknown pit", "pit", index)
				continue
			}
			that.log.Error("failed to resync pit", "pit", index, "error", err)
		}
	}

	that.log.Debug("batch finished")
}
