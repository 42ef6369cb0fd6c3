package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	PlayerOne = 1
	PlayerTwo = 2
)

var (
	playerPattern = regexp.MustCompile(`\d+`)
	playerWord    = regexp.MustCompile(`(?i)\bplayer\s+(one|two)\b`)
)

// TurnLabel renders the current player indicator.
func TurnLabel(player int) string {
	return fmt.Sprintf("Player %d's turn", player)
}

// ParsePlayer reads a player number out of labels such as "Player 2's turn" or "Player Two".
func ParsePlayer(label string) int {
	if match := playerPattern.FindString(label); match != "" {
		player, err := strconv.Atoi(match)
		if err != nil {
			return 0
		}
		return player
	}

	if match := playerWord.FindStringSubmatch(label); match != nil {
		if strings.EqualFold(match[1], "one") {
			return PlayerOne
		}
		return PlayerTwo
	}

	return 0
}
