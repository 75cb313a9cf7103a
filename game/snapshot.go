package game

import "fmt"

// PieceSnapshot is the serializable view of one piece.
type PieceSnapshot struct {
	ID       int   `json:"id"`
	Owner    int   `json:"owner"`
	Kind     Kind  `json:"kind"`
	Demoted  bool  `json:"demoted"`
	HasMoved bool  `json:"hasMoved"`
	Active   bool  `json:"active"`
	Pos      Coord `json:"pos,omitempty"`
}

// Snapshot is the full serializable view of a match. It carries every field
// needed to rebuild the GameState through RestoreSnapshot.
type Snapshot struct {
	Dims      Dims            `json:"dims"`
	Players   []Player        `json:"players"`
	Turn      int             `json:"turn"`
	MoveCount int             `json:"moveCount"`
	Result    *Result         `json:"result,omitempty"`
	Pieces    []PieceSnapshot `json:"pieces"`
}

// Snapshot captures the whole match, captured pieces included, ordered by
// piece ID.
func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Dims:      gs.Board.Dims(),
		Players:   make([]Player, len(gs.Players)),
		Turn:      gs.Turn,
		MoveCount: gs.MoveCount,
		Result:    gs.Result,
	}
	copy(snap.Players, gs.Players)
	for _, p := range gs.Board.AllPieces() {
		ps := PieceSnapshot{
			ID:       p.ID,
			Owner:    p.Owner,
			Kind:     p.Kind,
			Demoted:  p.Demoted,
			HasMoved: p.HasMoved,
			Active:   p.Active,
		}
		if p.pos != nil {
			ps.Pos = p.pos.Clone()
		}
		snap.Pieces = append(snap.Pieces, ps)
	}
	return snap
}

// RestoreSnapshot rebuilds a match from a snapshot. The alien may sit
// outside the current bounds after an axis operation, so piece positions
// are restored verbatim rather than bounds-checked.
func RestoreSnapshot(snap Snapshot) (*GameState, error) {
	board, err := NewBoard(snap.Dims)
	if err != nil {
		return nil, err
	}
	if err := validatePlayers(snap.Players, snap.Dims); err != nil {
		return nil, err
	}
	for _, ps := range snap.Pieces {
		if _, dup := board.byID[ps.ID]; dup {
			return nil, fmt.Errorf("snapshot repeats piece id %d", ps.ID)
		}
		p := &Piece{
			ID:       ps.ID,
			Owner:    ps.Owner,
			Kind:     ps.Kind,
			Demoted:  ps.Demoted,
			HasMoved: ps.HasMoved,
			Active:   ps.Active,
		}
		if ps.Active {
			if ps.Pos == nil {
				return nil, fmt.Errorf("snapshot piece %d is active but has no position", ps.ID)
			}
			if board.byCoord[ps.Pos.Key()] != nil {
				return nil, fmt.Errorf("snapshot places two pieces on %v", ps.Pos)
			}
			p.pos = ps.Pos.Clone()
			board.byCoord[p.pos.Key()] = p
		}
		board.byID[p.ID] = p
		if ps.ID >= board.nextID {
			board.nextID = ps.ID + 1
		}
	}

	players := make([]Player, len(snap.Players))
	copy(players, snap.Players)
	gs := &GameState{
		Board:     board,
		Players:   players,
		Turn:      snap.Turn,
		MoveCount: snap.MoveCount,
		Result:    snap.Result,
	}
	if gs.Turn < 0 || gs.Turn >= len(players) {
		return nil, fmt.Errorf("snapshot turn %d out of range", gs.Turn)
	}
	return gs, nil
}
