package board

import "sort"

const (
	PitWidth  = 12
	PitHeight = 5
)

// Rect is the bounding box of a pit on screen, in cells.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (that Rect) Contains(x, y int) bool {
	return x >= that.X && x < that.X+that.W && y >= that.Y && y < that.Y+that.H
}

// Offset is a translation applied to a stone token while it travels.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

func offsetBetween(from, to Rect) Offset {
	return Offset{DX: to.X - from.X, DY: to.Y - from.Y}
}

// arrange places pits the way a mancala board is drawn: player one's pits along the
// bottom row left to right ending in their store on the right, player two's pits
// along the top row right to left ending in their store on the left.
// Boards that do not follow that numbering are laid out on a single row.
func arrange(indexes []int, stores map[int]bool) map[int]Rect {
	sorted := append([]int(nil), indexes...)
	sort.Ints(sorted)

	rects := make(map[int]Rect, len(sorted))
	total := len(sorted)
	perPlayer := (total - 2) / 2

	if total < 4 || total%2 != 0 || !stores[sorted[perPlayer]] || !stores[sorted[total-1]] {
		for col, index := range sorted {
			rects[index] = Rect{X: col * PitWidth, Y: 0, W: PitWidth, H: PitHeight}
		}
		return rects
	}

	for pos, index := range sorted {
		switch {
		case pos < perPlayer:
			rects[index] = Rect{X: (pos + 1) * PitWidth, Y: PitHeight, W: PitWidth, H: PitHeight}
		case pos == perPlayer:
			rects[index] = Rect{X: (perPlayer + 1) * PitWidth, Y: 0, W: PitWidth, H: 2 * PitHeight}
		case pos < total-1:
			rects[index] = Rect{X: (2*perPlayer + 1 - pos) * PitWidth, Y: 0, W: PitWidth, H: PitHeight}
		default:
			rects[index] = Rect{X: 0, Y: 0, W: PitWidth, H: 2 * PitHeight}
		}
	}

	return rects
}
