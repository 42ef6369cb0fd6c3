// Package board holds the visual state of the mancala board: every pit with its
// generated stone tokens, highlight backgrounds, the turn label and the error region.
package board

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

type Color string

const (
	Red       Color = "red"
	Blue      Color = "blue"
	Green     Color = "green"
	Yellow    Color = "yellow"
	LightBlue Color = "lightblue"

	NoBackground Color = ""

	// Depleting marks the pit a stone leaves, Receiving the pit it lands in.
	Depleting = Green
	Receiving = LightBlue
)

var Palette = [4]Color{Red, Blue, Green, Yellow}

// StoneColor returns the color of the stone at position i within a pit.
func StoneColor(i int) Color {
	return Palette[i%len(Palette)]
}

// Token is a stone drawn inside a pit. Tokens carry no identity across renders.
type Token struct {
	color  Color
	offset Offset
	moving bool
}

type pit struct {
	index      int
	store      bool
	background Color
	rect       Rect
	stones     []*Token
}

// Board is the explicit board-state object shared by the animator, the session and the UI.
type Board struct {
	mu sync.RWMutex

	pits  map[int]*pit
	order []int

	turnLabel    string
	errorMessage string
	status       string

	listeners []func()
}

// New builds the board from the initial layout and renders every pit once.
func New(layout *entity.Layout) (*Board, error) {
	board := &Board{
		pits:  make(map[int]*pit, len(layout.Pits)),
		order: make([]int, 0, len(layout.Pits)),
	}

	indexes := make([]int, 0, len(layout.Pits))
	stores := make(map[int]bool, 2)

	for _, p := range layout.Pits {
		if _, ok := board.pits[p.Index]; ok {
			return nil, fmt.Errorf("%w: duplicate pit %d", apperror.ErrInvalidMarkup, p.Index)
		}

		board.pits[p.Index] = &pit{index: p.Index, store: p.Store}
		board.order = append(board.order, p.Index)
		indexes = append(indexes, p.Index)
		stores[p.Index] = p.Store
	}

	for index, rect := range arrange(indexes, stores) {
		board.pits[index].rect = rect
	}

	for _, p := range layout.Pits {
		board.pits[p.Index].stones = generate(p.Stones)
	}

	if layout.CurrentPlayer != 0 {
		board.turnLabel = entity.TurnLabel(layout.CurrentPlayer)
	}

	return board, nil
}

func generate(count int) []*Token {
	if count < 0 {
		count = 0
	}

	stones := make([]*Token, count)
	for i := range stones {
		stones[i] = &Token{color: StoneColor(i)}
	}

	return stones
}

// OnChange registers a callback invoked after every visible mutation.
func (that *Board) OnChange(fn func()) {
	that.mu.Lock()
	that.listeners = append(that.listeners, fn)
	that.mu.Unlock()
}

func (that *Board) notify() {
	that.mu.RLock()
	listeners := append([]func(){}, that.listeners...)
	that.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// Render replaces the stones of one pit with count freshly generated tokens.
func (that *Board) Render(index, count int) error {
	that.mu.Lock()
	p, ok := that.pits[index]
	if !ok {
		that.mu.Unlock()
		return fmt.Errorf("%w: %d", apperror.ErrPitNotFound, index)
	}
	p.stones = generate(count)
	that.mu.Unlock()

	that.notify()

	return nil
}

// Count returns the number of tokens currently drawn in the pit.
func (that *Board) Count(index int) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	p, ok := that.pits[index]
	if !ok {
		return 0, fmt.Errorf("%w: %d", apperror.ErrPitNotFound, index)
	}

	return len(p.stones), nil
}

// Counts returns the token count of every pit.
func (that *Board) Counts() map[int]int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	counts := make(map[int]int, len(that.pits))
	for index, p := range that.pits {
		counts[index] = len(p.stones)
	}

	return counts
}

func (that *Board) Has(index int) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.pits[index]
	return ok
}

// Clickable reports whether the pit accepts a move request. Stores never do.
func (that *Board) Clickable(index int) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	p, ok := that.pits[index]
	return ok && !p.store
}

// PitAt returns the pit whose bounding box contains the given cell.
func (that *Board) PitAt(x, y int) (int, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, index := range that.order {
		if that.pits[index].rect.Contains(x, y) {
			return index, true
		}
	}

	return 0, false
}

func (that *Board) SetError(message string) {
	that.mu.Lock()
	that.errorMessage = message
	that.mu.Unlock()

	that.notify()
}

func (that *Board) Error() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.errorMessage
}

func (that *Board) SetCurrentPlayer(player int) {
	that.mu.Lock()
	that.turnLabel = entity.TurnLabel(player)
	that.mu.Unlock()

	that.notify()
}

func (that *Board) TurnLabel() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.turnLabel
}

// SetStatus shows a free-form line next to the turn label, e.g. the demo winner.
func (that *Board) SetStatus(status string) {
	that.mu.Lock()
	that.status = status
	that.mu.Unlock()

	that.notify()
}

func (that *Board) Status() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.status
}
