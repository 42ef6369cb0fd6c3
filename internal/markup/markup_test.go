package markup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

func page(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><head><title>Mancala</title></head><body>%s</body></html>`, body)
}

func TestParse(t *testing.T) {
	t.Run("Reads pits, stores and the current player", func(t *testing.T) {
		// Given: a page with two playable pits and one store per player
		doc := page(`
			<div id="currentPlayer">Player 2's turn</div>
			<div class="board">
				<div class="mancala" data-index="5" data-stones="0"></div>
				<div class="pit" data-index="0" data-stones="6"><div class="stones"></div></div>
				<div class="pit" data-index="1" data-stones="6"></div>
				<div class="mancala store" data-index="2" data-stones="3"></div>
				<div class="pit" data-index="3" data-stones=" 1 "></div>
				<div class="pit" data-index="4" data-stones="0"></div>
			</div>`)

		// When: parsing the page
		layout, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)

		// Then: pits are listed in document order with their store marker
		assert.Equal(t, entity.PlayerTwo, layout.CurrentPlayer)
		assert.Equal(t, []entity.Pit{
			{Index: 5, Stones: 0, Store: true},
			{Index: 0, Stones: 6},
			{Index: 1, Stones: 6},
			{Index: 2, Stones: 3, Store: true},
			{Index: 3, Stones: 1},
			{Index: 4, Stones: 0},
		}, layout.Pits)
	})

	t.Run("Understands spelled out players", func(t *testing.T) {
		doc := page(`<span id="currentPlayer">Player One</span><div class="pit" data-index="0" data-stones="1"></div>`)

		layout, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerOne, layout.CurrentPlayer)
	})

	t.Run("Missing current player leaves it unset", func(t *testing.T) {
		doc := page(`<div class="pit" data-index="0" data-stones="1"></div>`)

		layout, err := Parse(strings.NewReader(doc))

		require.NoError(t, err)
		assert.Zero(t, layout.CurrentPlayer)
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no pits", body: `<div class="board"></div>`},
		{name: "bad index", body: `<div class="pit" data-index="x" data-stones="1"></div>`},
		{name: "missing stones", body: `<div class="pit" data-index="0"></div>`},
		{name: "negative stones", body: `<div class="pit" data-index="0" data-stones="-2"></div>`},
		{name: "duplicate index", body: `<div class="pit" data-index="0" data-stones="1"></div><div class="mancala" data-index="0" data-stones="1"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(page(tt.body)))

			require.ErrorIs(t, err, apperror.ErrInvalidMarkup)
		})
	}
}
