package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// backRank is the home-rank piece order. Files past the rank axis's size
// are dropped, except the king, which every army needs.
var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewGame starts a match with the default layout for count players on a
// board of the given dims. Pass nil dims for the standard 8x8x8x8 board.
func NewGame(count int, dims Dims) (*GameState, error) {
	if dims == nil {
		dims = CubeDims(4, 8)
	}
	players, err := DefaultPlayers(count)
	if err != nil {
		return nil, err
	}
	gs, err := NewCustomGame(players, dims)
	if err != nil {
		return nil, err
	}
	for _, pl := range gs.Players {
		if err := placeArmy(gs.Board, pl); err != nil {
			return nil, fmt.Errorf("placing %s's army: %w", pl.Name, err)
		}
	}
	return gs, nil
}

// placeArmy sets up one player's pieces: a back rank and a pawn row facing
// forward, anchored at a corner of the third and fourth axes, plus the cat
// tucked one step off the queen along axis 2 and the alien one step off the
// king along axis 3.
func placeArmy(b *Board, pl Player) error {
	dims := b.dims
	axes := len(dims)

	rankAxis := 0
	if pl.ForwardAxis == 0 {
		rankAxis = 1
	}
	primaryRank := 0
	if pl.ForwardDir < 0 {
		primaryRank = dims[pl.ForwardAxis] - 1
	}
	pawnRank := primaryRank + pl.ForwardDir

	base := make(Coord, axes)
	base[pl.ForwardAxis] = primaryRank
	if axes > 2 && pl.Index >= 2 {
		base[2] = dims[2] - 1
	}
	if axes > 3 && pl.Index%2 == 1 {
		base[3] = dims[3] - 1
	}

	for file, kind := range backRank {
		if file >= dims[rankAxis] {
			if kind == King {
				return fmt.Errorf("axis %d has size %d, too small to seat a king", rankAxis, dims[rankAxis])
			}
			continue
		}
		at := base.Clone()
		at[rankAxis] = file
		if _, err := b.Spawn(pl.Index, kind, at); err != nil {
			return err
		}
	}

	for file := 0; file < dims[rankAxis]; file++ {
		at := base.Clone()
		at[pl.ForwardAxis] = pawnRank
		at[rankAxis] = file
		if _, err := b.Spawn(pl.Index, Pawn, at); err != nil {
			return err
		}
	}

	if axes > 2 {
		at := base.Clone()
		at[rankAxis] = slices.Index(backRank, Queen)
		at[2] = offsetAnchor(base[2], dims[2])
		spawnIfFree(b, pl.Index, Cat, at)
	}
	if axes > 3 {
		at := base.Clone()
		at[rankAxis] = slices.Index(backRank, King)
		at[3] = offsetAnchor(base[3], dims[3])
		spawnIfFree(b, pl.Index, Alien, at)
	}
	return nil
}

// offsetAnchor nudges an anchor one step inward, or backward against the
// far edge, or nowhere on a single-square axis.
func offsetAnchor(base, limit int) int {
	if base+1 < limit {
		return base + 1
	}
	if base-1 >= 0 {
		return base - 1
	}
	return base
}

// spawnIfFree places the piece unless its square is missing or taken.
// Cramped boards simply go without the extras.
func spawnIfFree(b *Board, owner int, kind Kind, at Coord) {
	if !InBounds(at, b.dims) || b.PieceAt(at) != nil {
		return
	}
	if _, err := b.Spawn(owner, kind, at); err != nil {
		panic(err)
	}
}
