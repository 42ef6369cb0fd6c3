package ui

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/mancala-client/internal/board"
)

const hint = "click a pit to play · [d] demo · [r] restart · [q] quit"

type App struct {
	logger *slog.Logger

	app     *tview.Application
	boardUI *BoardUI
	turn    *tview.TextView
	errors  *tview.TextView
	board   *board.Board
	session requester

	running atomic.Bool
}

func New(logger *slog.Logger, b *board.Board, session requester) *App {
	app := &App{
		logger:  logger.With("component", "ui"),
		app:     tview.NewApplication(),
		boardUI: NewBoardUI(logger, b, session),
		turn:    tview.NewTextView().SetTextAlign(tview.AlignCenter),
		errors:  tview.NewTextView().SetTextAlign(tview.AlignCenter).SetTextColor(tcell.ColorRed),
		board:   b,
		session: session,
	}

	help := tview.NewTextView().SetText(hint).SetTextAlign(tview.AlignCenter).SetTextColor(tcell.ColorGray)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.turn, 1, 0, false).
		AddItem(app.boardUI.Box, 2*board.PitHeight+2, 0, true).
		AddItem(app.errors, 1, 0, false).
		AddItem(help, 1, 0, false)

	app.app.SetRoot(layout, true).EnableMouse(true)
	app.app.SetInputCapture(app.handleKey)

	b.OnChange(func() {
		if !app.running.Load() {
			return
		}
		app.app.QueueUpdateDraw(app.refresh)
	})
	app.refresh()

	return app
}

// Run blocks until the user quits or ctx is done.
func (that *App) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	that.running.Store(true)
	defer that.running.Store(false)

	return that.app.Run()
}

func (that *App) refresh() {
	snapshot := that.board.Snapshot()

	turn := snapshot.TurnLabel
	if snapshot.Status != "" {
		turn += " · " + snapshot.Status
	}

	that.turn.SetText(turn)
	that.errors.SetText(snapshot.Error)
}

func (that *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	log := that.logger.With("method", "handleKey")

	if event.Key() == tcell.KeyEscape {
		that.app.Stop()
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	var err error

	switch event.Rune() {
	case 'd':
		err = that.session.Demo()
	case 'r':
		err = that.session.Restart()
	case 'q':
		that.app.Stop()
		return nil
	default:
		return event
	}

	if err != nil {
		log.Warn("action rejected", "key", string(event.Rune()), "error", err)
	}

	return nil
}
