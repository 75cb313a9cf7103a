package game

import "fmt"

// Player is one seat at the table. ForwardAxis and ForwardDir orient the
// player's pawns and demoted pieces. Alive flips to false permanently when
// the player's king leaves the board.
type Player struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	ForwardAxis int    `json:"forwardAxis"`
	ForwardDir  int    `json:"forwardDir"` // +1 or -1
	Alive       bool   `json:"alive"`
}

func (pl Player) String() string {
	return fmt.Sprintf("%s(%d)", pl.Name, pl.Index)
}

// DefaultPlayers returns the standard seats for count players (2 to 4).
// Opposing pairs share a forward axis and advance toward each other.
func DefaultPlayers(count int) ([]Player, error) {
	seats := []Player{
		{Name: "Alpha", Color: "White", ForwardAxis: 0, ForwardDir: 1},
		{Name: "Beta", Color: "Black", ForwardAxis: 0, ForwardDir: -1},
		{Name: "Gamma", Color: "Gold", ForwardAxis: 1, ForwardDir: 1},
		{Name: "Delta", Color: "Azure", ForwardAxis: 1, ForwardDir: -1},
	}
	if count < 2 || count > len(seats) {
		return nil, fmt.Errorf("player count must be between 2 and %d, got %d", len(seats), count)
	}
	players := seats[:count]
	for i := range players {
		players[i].Index = i
		players[i].Alive = true
	}
	return players, nil
}

// validatePlayers checks a seat list against the board's axis count.
func validatePlayers(players []Player, dims Dims) error {
	if len(players) < 2 || len(players) > 4 {
		return fmt.Errorf("player count must be between 2 and 4, got %d", len(players))
	}
	for i, pl := range players {
		if pl.Index != i {
			return fmt.Errorf("player %d has index %d, want seating order", i, pl.Index)
		}
		if pl.ForwardAxis < 0 || pl.ForwardAxis >= len(dims) {
			return fmt.Errorf("player %d forward axis %d out of range for %d axes", i, pl.ForwardAxis, len(dims))
		}
		if pl.ForwardDir != 1 && pl.ForwardDir != -1 {
			return fmt.Errorf("player %d forward direction must be +1 or -1, got %d", i, pl.ForwardDir)
		}
	}
	return nil
}
