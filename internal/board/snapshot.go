package board

// StoneView is a drawable copy of a token.
type StoneView struct {
	Color  Color  `json:"color"`
	Offset Offset `json:"offset"`
	Moving bool   `json:"moving,omitempty"`
}

// PitView is a drawable copy of a pit.
type PitView struct {
	Index      int         `json:"index"`
	Store      bool        `json:"store,omitempty"`
	Background Color       `json:"background,omitempty"`
	Rect       Rect        `json:"rect"`
	Stones     []StoneView `json:"stones"`
}

func (that PitView) Count() int {
	return len(that.Stones)
}

// Snapshot is a consistent copy of the whole board taken under one lock.
type Snapshot struct {
	Pits      []PitView `json:"pits"`
	TurnLabel string    `json:"turnLabel"`
	Error     string    `json:"error"`
	Status    string    `json:"status,omitempty"`
}

func (that *Board) Snapshot() Snapshot {
	that.mu.RLock()
	defer that.mu.RUnlock()

	snapshot := Snapshot{
		Pits:      make([]PitView, 0, len(that.order)),
		TurnLabel: that.turnLabel,
		Error:     that.errorMessage,
		Status:    that.status,
	}

	for _, index := range that.order {
		p := that.pits[index]

		view := PitView{
			Index:      p.index,
			Store:      p.store,
			Background: p.background,
			Rect:       p.rect,
			Stones:     make([]StoneView, len(p.stones)),
		}
		for i, stone := range p.stones {
			view.Stones[i] = StoneView{Color: stone.color, Offset: stone.offset, Moving: stone.moving}
		}

		snapshot.Pits = append(snapshot.Pits, view)
	}

	return snapshot
}

// Pit returns the view of a single pit.
func (that Snapshot) Pit(index int) (PitView, bool) {
	for _, view := range that.Pits {
		if view.Index == index {
			return view, true
		}
	}

	return PitView{}, false
}
