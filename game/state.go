package game

import (
	"fmt"
)

// GameState is the full state of one match: the board, the seats, whose
// turn it is, and the result once the game ends. It is created once per
// match and mutated in place; it is never shared across matches.
type GameState struct {
	Board     *Board
	Players   []Player
	Turn      int     // index into Players
	MoveCount int     // accepted actions so far
	Result    *Result // nil while the game is running
}

// Result is the terminal outcome. Winner is -1 on a draw.
type Result struct {
	Winner int  `json:"winner"`
	Draw   bool `json:"draw"`
}

func (r Result) String() string {
	if r.Draw {
		return "draw"
	}
	return fmt.Sprintf("player %d wins", r.Winner)
}

// NewCustomGame starts a game on an empty board for hand-built positions.
func NewCustomGame(players []Player, dims Dims) (*GameState, error) {
	if err := validatePlayers(players, dims); err != nil {
		return nil, err
	}
	board, err := NewBoard(dims)
	if err != nil {
		return nil, err
	}
	seats := make([]Player, len(players))
	copy(seats, players)
	for i := range seats {
		seats[i].Alive = true
	}
	return &GameState{Board: board, Players: seats}, nil
}

// CurrentPlayer returns the player whose action is awaited.
func (gs *GameState) CurrentPlayer() Player {
	return gs.Players[gs.Turn]
}

// SubmitMove moves the piece at from to to on behalf of player. It returns
// the delta of what changed; on any rejection the state is untouched.
func (gs *GameState) SubmitMove(player int, from, to Coord) (*Delta, error) {
	if err := gs.checkTurn(player); err != nil {
		return nil, err
	}
	if !InBounds(from, gs.Board.dims) {
		return nil, fmt.Errorf("%w: source %v on a %s board", ErrOutOfBounds, from, gs.Board.dims)
	}
	if !InBounds(to, gs.Board.dims) {
		return nil, fmt.Errorf("%w: destination %v on a %s board", ErrOutOfBounds, to, gs.Board.dims)
	}
	p := gs.Board.PieceAt(from)
	if p == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPieceAtSource, from)
	}
	if p.Owner != player {
		return nil, fmt.Errorf("%w: %v belongs to player %d", ErrNotOwner, from, p.Owner)
	}
	if !gs.Board.Destinations(p, gs.Players).Has(to) {
		return nil, fmt.Errorf("%w: %s cannot reach %v from %v", ErrIllegalDestination, p.Kind, to, from)
	}

	delta := &Delta{Player: player}
	target := gs.Board.PieceAt(to)
	switch {
	case target == nil:
		if err := gs.Board.MovePiece(from, to); err != nil {
			panic(err)
		}
		delta.Action = MoveAction
		delta.Moves = []PieceMove{{PieceID: p.ID, Kind: p.Kind, Owner: p.Owner, From: from, To: to}}
	case p.Kind == Cat && !p.Demoted:
		// A scratch, not a capture: swap squares and demote the victim.
		if err := gs.Board.Swap(from, to); err != nil {
			panic(err)
		}
		target.Demoted = true
		delta.Action = ScratchAction
		delta.Moves = []PieceMove{
			{PieceID: p.ID, Kind: p.Kind, Owner: p.Owner, From: from, To: to},
			{PieceID: target.ID, Kind: target.Kind, Owner: target.Owner, From: to, To: from},
		}
		delta.Demotions = []int{target.ID}
	default:
		gs.Board.Remove(to)
		if err := gs.Board.MovePiece(from, to); err != nil {
			panic(err)
		}
		delta.Action = CaptureAction
		delta.Moves = []PieceMove{{PieceID: p.ID, Kind: p.Kind, Owner: p.Owner, From: from, To: to}}
		delta.Removals = []PieceRemoval{{PieceID: target.ID, Kind: target.Kind, Owner: target.Owner, From: to, Reason: RemovedCaptured}}
	}

	gs.settle(delta)
	return delta, nil
}

// SubmitAlienOp applies one alien layout operation for player. The player's
// alien stays on its own square; every other piece is remapped from the
// pre-operation layout in a single atomic step.
func (gs *GameState) SubmitAlienOp(player int, op LayoutOp) (*Delta, error) {
	if err := gs.checkTurn(player); err != nil {
		return nil, err
	}
	alien := gs.findAlien(player)
	if alien == nil {
		return nil, fmt.Errorf("%w: player %d has no alien on the board", ErrIllegalAlienOp, player)
	}
	mapper, newDims, err := op.Compile(gs.Board.dims)
	if err != nil {
		return nil, err
	}

	outcome := gs.Board.Transform(mapper, newDims, alien)

	delta := &Delta{Player: player, Action: AlienAction, Op: &op}
	for _, m := range outcome.Moved {
		delta.Moves = append(delta.Moves, PieceMove{PieceID: m.Piece.ID, Kind: m.Piece.Kind, Owner: m.Piece.Owner, From: m.From, To: m.To})
	}
	for _, r := range outcome.Removed {
		delta.Removals = append(delta.Removals, PieceRemoval{PieceID: r.Piece.ID, Kind: r.Piece.Kind, Owner: r.Piece.Owner, From: r.From, Reason: r.Reason})
	}

	gs.settle(delta)
	return delta, nil
}

// LegalDestinations lists where the piece on the square could move. It is
// a read-only query and does not care whose turn it is.
func (gs *GameState) LegalDestinations(at Coord) ([]Coord, error) {
	if !InBounds(at, gs.Board.dims) {
		return nil, fmt.Errorf("%w: %v on a %s board", ErrOutOfBounds, at, gs.Board.dims)
	}
	p := gs.Board.PieceAt(at)
	if p == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPieceAtSource, at)
	}
	return gs.Board.Destinations(p, gs.Players).Sorted(), nil
}

func (gs *GameState) checkTurn(player int) error {
	if gs.Result != nil {
		return ErrGameOver
	}
	if player != gs.Turn {
		return fmt.Errorf("%w: waiting for player %d", ErrNotYourTurn, gs.Turn)
	}
	return nil
}

// findAlien returns the player's alien if it is still on the board. A
// scratched alien moves as a pawn but keeps its layout privileges.
func (gs *GameState) findAlien(player int) *Piece {
	for _, p := range gs.Board.Pieces() {
		if p.Owner == player && p.Kind == Alien {
			return p
		}
	}
	return nil
}

// settle runs the post-action bookkeeping shared by both submit paths:
// bump the counter, refresh liveness from king presence, then record the
// result or hand the turn to the next alive player.
func (gs *GameState) settle(delta *Delta) {
	gs.MoveCount++
	delta.Seq = gs.MoveCount
	delta.Dims = gs.Board.Dims()

	for i := range gs.Players {
		if gs.Players[i].Alive && !gs.hasKing(i) {
			gs.Players[i].Alive = false
			delta.Eliminated = append(delta.Eliminated, i)
		}
	}

	alive := gs.alivePlayers()
	switch len(alive) {
	case 0:
		gs.Result = &Result{Winner: -1, Draw: true}
	case 1:
		gs.Result = &Result{Winner: alive[0]}
	default:
		gs.advanceTurn()
	}
	delta.Result = gs.Result
}

// hasKing reports whether the player still has a king on the board. A
// demoted king counts: a scratch never eliminates.
func (gs *GameState) hasKing(player int) bool {
	for _, p := range gs.Board.Pieces() {
		if p.Owner == player && p.Kind == King {
			return true
		}
	}
	return false
}

func (gs *GameState) alivePlayers() []int {
	var alive []int
	for i := range gs.Players {
		if gs.Players[i].Alive {
			alive = append(alive, i)
		}
	}
	return alive
}

// advanceTurn moves to the next alive player in seating order.
func (gs *GameState) advanceTurn() {
	for i := 1; i <= len(gs.Players); i++ {
		next := (gs.Turn + i) % len(gs.Players)
		if gs.Players[next].Alive {
			gs.Turn = next
			return
		}
	}
	panic("no alive player to hand the turn to")
}

// PlayerStatus is one row of Status.
type PlayerStatus struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Alive       bool   `json:"alive"`
	KingDemoted bool   `json:"kingDemoted"`
}

// Status summarizes the match for collaborators.
type Status struct {
	CurrentPlayer int            `json:"currentPlayer"`
	MoveCount     int            `json:"moveCount"`
	Dims          Dims           `json:"dims"`
	Players       []PlayerStatus `json:"players"`
	Result        *Result        `json:"result,omitempty"`
}

func (gs *GameState) Status() Status {
	st := Status{
		CurrentPlayer: gs.Turn,
		MoveCount:     gs.MoveCount,
		Dims:          gs.Board.Dims(),
		Result:        gs.Result,
	}
	demoted := make(map[int]bool)
	for _, p := range gs.Board.Pieces() {
		if p.Kind == King && p.Demoted {
			demoted[p.Owner] = true
		}
	}
	for _, pl := range gs.Players {
		st.Players = append(st.Players, PlayerStatus{
			Index:       pl.Index,
			Name:        pl.Name,
			Alive:       pl.Alive,
			KingDemoted: demoted[pl.Index],
		})
	}
	return st
}
