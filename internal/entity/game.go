package entity

import (
	"fmt"
)

const (
	OutcomeMoves     = "moves"
	OutcomeAppError  = "error"
	OutcomeMalformed = "malformed"
)

// Pit is a stone-holding location as announced by the initial board markup.
type Pit struct {
	Index  int  `json:"index"`
	Stones int  `json:"stones"`
	Store  bool `json:"store,omitempty"`
}

// Layout is the initial board the game engine renders before any move.
type Layout struct {
	Pits          []Pit `json:"pits"`
	CurrentPlayer int   `json:"currentPlayer,omitempty"`
}

type Move struct {
	FromPitIndex int `json:"fromPitIndex"`
	ToPitIndex   int `json:"toPitIndex"`
}

// MoveBatch is the ordered list of stone relocations caused by one player action.
// Pits, when present, holds the authoritative stone count per pit after the batch.
type MoveBatch struct {
	ID    string `json:"id"`
	Moves []Move `json:"moves"`
	Pits  []int  `json:"pits,omitempty"`
}

// Touched returns the pit indexes referenced by the batch in first-seen order.
func (that *MoveBatch) Touched() []int {
	seen := make(map[int]struct{}, len(that.Moves)*2)
	touched := make([]int, 0, len(that.Moves)*2)

	for _, move := range that.Moves {
		for _, index := range [2]int{move.FromPitIndex, move.ToPitIndex} {
			if _, ok := seen[index]; ok {
				continue
			}
			seen[index] = struct{}{}
			touched = append(touched, index)
		}
	}

	return touched
}

// Project applies the batch to the given counts and returns the resulting counts
// for every touched pit. Authoritative Pits win over the projection.
func (that *MoveBatch) Project(before map[int]int) map[int]int {
	after := make(map[int]int, len(before))

	for _, index := range that.Touched() {
		after[index] = before[index]
	}

	for _, move := range that.Moves {
		if after[move.FromPitIndex] > 0 {
			after[move.FromPitIndex]--
		}
		after[move.ToPitIndex]++
	}

	for index := range after {
		if index >= 0 && index < len(that.Pits) {
			after[index] = that.Pits[index]
		}
	}

	return after
}

// Outcome is the result of one request to the game engine.
type Outcome struct {
	Kind          string     `json:"kind"`
	Batch         *MoveBatch `json:"batch,omitempty"`
	Error         string     `json:"error,omitempty"`
	CurrentPlayer *int       `json:"currentPlayer,omitempty"`
	Winner        string     `json:"winner,omitempty"`
}

func (that *Outcome) IsMoves() bool {
	return that.Kind == OutcomeMoves
}

func (that *Outcome) IsAppError() bool {
	return that.Kind == OutcomeAppError
}

func (that *Outcome) IsMalformed() bool {
	return that.Kind == OutcomeMalformed
}

func (that *Outcome) String() string {
	switch that.Kind {
	case OutcomeMoves:
		return fmt.Sprintf("%d moves", len(that.Batch.Moves))
	case OutcomeAppError:
		return "error: " + that.Error
	default:
		return that.Kind
	}
}
