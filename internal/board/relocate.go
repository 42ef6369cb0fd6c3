package board

import (
	"fmt"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
)

// Highlight remembers the backgrounds a relocation step replaced.
type Highlight struct {
	From int
	To   int

	fromBackground Color
	toBackground   Color
}

// Highlight paints the source pit as depleting and the target pit as receiving.
// Both previous backgrounds are captured before either is changed.
func (that *Board) Highlight(from, to int) (*Highlight, error) {
	that.mu.Lock()
	source, target, err := that.resolve(from, to)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	highlight := &Highlight{
		From:           from,
		To:             to,
		fromBackground: source.background,
		toBackground:   target.background,
	}

	target.background = Receiving
	source.background = Depleting
	that.mu.Unlock()

	that.notify()

	return highlight, nil
}

// Restore puts back the backgrounds captured by Highlight.
func (that *Board) Restore(highlight *Highlight) {
	that.mu.Lock()
	if target, ok := that.pits[highlight.To]; ok {
		target.background = highlight.toBackground
	}
	if source, ok := that.pits[highlight.From]; ok {
		source.background = highlight.fromBackground
	}
	that.mu.Unlock()

	that.notify()
}

// Lift takes the first stone of the source pit and translates it towards the
// target pit. It returns nil when the source pit has no stone to move.
func (that *Board) Lift(from, to int) (*Token, error) {
	that.mu.Lock()
	source, target, err := that.resolve(from, to)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	var token *Token
	for _, stone := range source.stones {
		if !stone.moving {
			token = stone
			break
		}
	}

	if token != nil {
		token.moving = true
		token.offset = offsetBetween(source.rect, target.rect)
	}
	that.mu.Unlock()

	if token != nil {
		that.notify()
	}

	return token, nil
}

// Drop reparents a lifted stone into the target pit and clears its offset.
// A stone that vanished because its pit was re-rendered meanwhile is ignored.
func (that *Board) Drop(token *Token, from, to int) {
	that.mu.Lock()
	source, target, err := that.resolve(from, to)
	if err != nil {
		that.mu.Unlock()
		return
	}

	position := -1
	for i, stone := range source.stones {
		if stone == token {
			position = i
			break
		}
	}

	if position < 0 {
		that.mu.Unlock()
		return
	}

	source.stones = append(source.stones[:position:position], source.stones[position+1:]...)
	token.moving = false
	token.offset = Offset{}
	target.stones = append(target.stones, token)
	that.mu.Unlock()

	that.notify()
}

func (that *Board) resolve(from, to int) (*pit, *pit, error) {
	source, ok := that.pits[from]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", apperror.ErrPitNotFound, from)
	}

	target, ok := that.pits[to]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", apperror.ErrPitNotFound, to)
	}

	return source, target, nil
}
