// Package markup reads the initial board from the page rendered by the game engine.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
)

const (
	classPlayable = "pit"
	classStore    = "mancala"

	attrIndex  = "data-index"
	attrStones = "data-stones"

	idCurrentPlayer = "currentPlayer"
)

// Parse extracts every pit element and the current player from the page.
func Parse(r io.Reader) (*entity.Layout, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMarkup, err)
	}

	layout := &entity.Layout{}
	seen := make(map[int]struct{})

	var walkErr error
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if walkErr != nil {
			return
		}

		if node.Type == html.ElementNode {
			if attr(node, "id") == idCurrentPlayer {
				layout.CurrentPlayer = entity.ParsePlayer(text(node))
			}

			if classes := classList(node); classes[classPlayable] || classes[classStore] {
				pit, err := parsePit(node, classes[classStore])
				if err != nil {
					walkErr = err
					return
				}

				if _, ok := seen[pit.Index]; ok {
					walkErr = fmt.Errorf("%w: duplicate pit %d", apperror.ErrInvalidMarkup, pit.Index)
					return
				}
				seen[pit.Index] = struct{}{}

				layout.Pits = append(layout.Pits, pit)
				// stone containers inside the pit are regenerated by the board
				return
			}
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if walkErr != nil {
		return nil, walkErr
	}

	if len(layout.Pits) == 0 {
		return nil, fmt.Errorf("%w: no pits found", apperror.ErrInvalidMarkup)
	}

	return layout, nil
}

func parsePit(node *html.Node, store bool) (entity.Pit, error) {
	index, err := strconv.Atoi(strings.TrimSpace(attr(node, attrIndex)))
	if err != nil {
		return entity.Pit{}, fmt.Errorf("%w: bad %s: %w", apperror.ErrInvalidMarkup, attrIndex, err)
	}

	stones, err := strconv.Atoi(strings.TrimSpace(attr(node, attrStones)))
	if err != nil {
		return entity.Pit{}, fmt.Errorf("%w: bad %s on pit %d: %w", apperror.ErrInvalidMarkup, attrStones, index, err)
	}

	if stones < 0 {
		return entity.Pit{}, fmt.Errorf("%w: negative %s on pit %d", apperror.ErrInvalidMarkup, attrStones, index)
	}

	return entity.Pit{Index: index, Stones: stones, Store: store}, nil
}

func attr(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func classList(node *html.Node) map[string]bool {
	classes := make(map[string]bool)
	for _, class := range strings.Fields(attr(node, "class")) {
		classes[class] = true
	}
	return classes
}

func text(node *html.Node) string {
	var builder strings.Builder

	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(node)

	return strings.TrimSpace(builder.String())
}
