// Package ui draws the mancala board in the terminal and turns clicks and keys
// into session actions.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/mancala-client/internal/board"
)

const stoneRune = '●'

type requester interface {
	Move(pit int) error
	Demo() error
	Restart() error
}

var colors = map[board.Color]tcell.Color{
	board.Red:       tcell.ColorRed,
	board.Blue:      tcell.ColorBlue,
	board.Green:     tcell.ColorGreen,
	board.Yellow:    tcell.ColorYellow,
	board.LightBlue: tcell.ColorLightBlue,
}

func toTcell(color board.Color) tcell.Color {
	if c, ok := colors[color]; ok {
		return c
	}
	return tcell.ColorDefault
}

// BoardUI is a tview primitive drawing every pit at its bounding box.
type BoardUI struct {
	Box *tview.Box

	logger  *slog.Logger
	board   *board.Board
	session requester

	originX int
	originY int
}

func NewBoardUI(logger *slog.Logger, b *board.Board, session requester) *BoardUI {
	boardUI := &BoardUI{
		Box:     tview.NewBox(),
		logger:  logger.With("component", "ui"),
		board:   b,
		session: session,
	}

	boardUI.Box.SetBorder(true).SetTitle(" Mancala ")
	boardUI.Box.SetDrawFunc(boardUI.draw)
	boardUI.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}

		x, y := event.Position()
		if boardUI.Click(x-boardUI.originX, y-boardUI.originY) {
			return action, nil
		}

		return action, event
	})

	return boardUI
}

// Click handles a click at board coordinates. Only playable pits react; it
// reports whether a move was requested.
func (that *BoardUI) Click(x, y int) bool {
	log := that.logger.With("method", "Click")

	index, ok := that.board.PitAt(x, y)
	if !ok || !that.board.Clickable(index) {
		return false
	}

	if err := that.session.Move(index); err != nil {
		log.Warn("move request rejected", "pit", index, "error", err)
		return false
	}

	return true
}

func (that *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// inside the border
	that.originX, that.originY = x+1, y+1
	snapshot := that.board.Snapshot()

	clip := func(cx, cy int) bool {
		return cx >= x+1 && cx < x+width-1 && cy >= y+1 && cy < y+height-1
	}

	for _, pit := range snapshot.Pits {
		that.drawPit(screen, pit, clip)
	}

	// travelling stones are drawn last so they float above the pits
	for _, pit := range snapshot.Pits {
		for i, stone := range pit.Stones {
			if !stone.Moving {
				continue
			}
			sx, sy := stonePosition(pit.Rect, i)
			sx, sy = that.originX+sx+stone.Offset.DX, that.originY+sy+stone.Offset.DY
			if clip(sx, sy) {
				screen.SetContent(sx, sy, stoneRune, nil, tcell.StyleDefault.Foreground(toTcell(stone.Color)).Bold(true))
			}
		}
	}

	return x + 1, y + 1, width - 2, height - 2
}

func (that *BoardUI) drawPit(screen tcell.Screen, pit board.PitView, clip func(int, int) bool) {
	style := tcell.StyleDefault.Background(toTcell(pit.Background))
	left, top := that.originX+pit.Rect.X, that.originY+pit.Rect.Y
	right, bottom := left+pit.Rect.W-1, top+pit.Rect.H-1

	for cy := top; cy <= bottom; cy++ {
		for cx := left; cx <= right; cx++ {
			if !clip(cx, cy) {
				continue
			}

			r := ' '
			switch {
			case (cx == left || cx == right) && (cy == top || cy == bottom):
				r = tview.BoxDrawingsLightArcDownAndRight
				switch {
				case cx == right && cy == top:
					r = tview.BoxDrawingsLightArcDownAndLeft
				case cx == left && cy == bottom:
					r = tview.BoxDrawingsLightArcUpAndRight
				case cx == right && cy == bottom:
					r = tview.BoxDrawingsLightArcUpAndLeft
				}
			case cx == left || cx == right:
				r = tview.BoxDrawingsLightVertical
			case cy == top || cy == bottom:
				r = tview.BoxDrawingsLightHorizontal
			}
			screen.SetContent(cx, cy, r, nil, style)
		}
	}

	label := fmt.Sprintf("%d:%d", pit.Index, pit.Count())
	for i, r := range label {
		if cx := left + 1 + i; cx < right && clip(cx, bottom) {
			screen.SetContent(cx, bottom, r, nil, style)
		}
	}

	for i, stone := range pit.Stones {
		if stone.Moving {
			continue
		}
		sx, sy := stonePosition(pit.Rect, i)
		sx, sy = that.originX+sx, that.originY+sy
		if sx >= right || sy >= bottom || !clip(sx, sy) {
			continue
		}
		screen.SetContent(sx, sy, stoneRune, nil, style.Foreground(toTcell(stone.Color)))
	}
}

// stonePosition places the i-th stone of a pit on a grid inside its border,
// one empty column between stones.
func stonePosition(rect board.Rect, i int) (int, int) {
	perRow := (rect.W - 2) / 2
	if perRow < 1 {
		perRow = 1
	}

	return rect.X + 1 + (i%perRow)*2, rect.Y + 1 + i/perRow
}
