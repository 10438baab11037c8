package lottery

import (
	"strings"
)

// Game identifies a lottery variant.
type Game string

const (
	// 6 of 33 primary + 1 of 16 companion
	GameDoubleColor Game = "double_color"
	// 5 of 35 primary + 2 of 12 companions
	GameSuperLotto Game = "super_lotto"
)

// Rules is the fixed number universe of a game.
type Rules struct {
	Game               Game
	DisplayName        string
	PrimaryMax         int // primary pool is 1..PrimaryMax
	DrawSize           int // numbers expected in the draw history
	GroupSize          int // primary numbers per prediction group
	CompanionMax       int // companion pool is 1..CompanionMax
	CompanionsPerGroup int
	Groups             int // groups produced per call
}

var rules = map[Game]Rules{
	GameDoubleColor: {
		Game:               GameDoubleColor,
		DisplayName:        "Double Color Ball",
		PrimaryMax:         33,
		DrawSize:           6,
		GroupSize:          6,
		CompanionMax:       16,
		CompanionsPerGroup: 1,
		Groups:             5,
	},
	GameSuperLotto: {
		Game:               GameSuperLotto,
		DisplayName:        "Super Lotto",
		PrimaryMax:         35,
		DrawSize:           5,
		GroupSize:          5,
		CompanionMax:       12,
		CompanionsPerGroup: 2,
		Groups:             6,
	},
}

// RulesFor returns the rules of g; ok is false for an unknown game.
func RulesFor(g Game) (Rules, bool) {
	r, ok := rules[g]
	return r, ok
}

// Games lists the supported games in a stable order.
func Games() []Game {
	return []Game{GameDoubleColor, GameSuperLotto}
}

// ParseGame resolves a user supplied name or alias.
func ParseGame(s string) (Game, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double_color", "double-color", "doublecolor", "ssq", "双色球":
		return GameDoubleColor, nil
	case "super_lotto", "super-lotto", "superlotto", "dlt", "大乐透":
		return GameSuperLotto, nil
	}
	return "", ErrUnknownGame
}

// Prediction is one suggested ticket.
type Prediction struct {
	Primary    []int `json:"primary"`    // ascending
	Companions []int `json:"companions"` // ascending
	Feature    int   `json:"feature"`    // the designated companion value
}

// Numbers returns the public representation: primary with companions appended.
func (p Prediction) Numbers() []int {
	out := make([]int, 0, len(p.Primary)+len(p.Companions))
	out = append(out, p.Primary...)
	return append(out, p.Companions...)
}
