package game

import (
	"errors"
	"testing"
)

func mustSpawn(t *testing.T, b *Board, owner int, kind Kind, at Coord) *Piece {
	t.Helper()
	p, err := b.Spawn(owner, kind, at)
	if err != nil {
		t.Fatalf("spawn %s at %v: %v", kind, at, err)
	}
	return p
}

func newTestBoard(t *testing.T, dims Dims) *Board {
	t.Helper()
	b, err := NewBoard(dims)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	return b
}

func TestBoardSpawnAndLookup(t *testing.T) {
	b := newTestBoard(t, Dims{8, 8, 8, 8})
	at := Coord{1, 2, 3, 4}
	p := mustSpawn(t, b, 0, Rook, at)

	if got := b.PieceAt(at); got != p {
		t.Fatalf("PieceAt(%v) = %v, want the spawned rook", at, got)
	}
	if got := b.PieceByID(p.ID); got != p {
		t.Fatalf("PieceByID(%d) = %v", p.ID, got)
	}
	coord, ok := b.CoordOf(p.ID)
	if !ok || !coord.Equal(at) {
		t.Fatalf("CoordOf(%d) = %v %v", p.ID, coord, ok)
	}

	if _, err := b.Spawn(1, Pawn, at); err == nil {
		t.Error("expected spawn on an occupied square to fail")
	}
	if _, err := b.Spawn(1, Pawn, Coord{8, 0, 0, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	b.selfCheck()
}

func TestBoardPieceIDsNeverReused(t *testing.T) {
	b := newTestBoard(t, Dims{4, 4})
	first := mustSpawn(t, b, 0, Pawn, Coord{0, 0})
	b.Remove(Coord{0, 0})
	second := mustSpawn(t, b, 0, Pawn, Coord{0, 0})
	if second.ID == first.ID {
		t.Errorf("piece ID %d was reused", first.ID)
	}
}

func TestBoardMovePiece(t *testing.T) {
	b := newTestBoard(t, Dims{4, 4, 4, 4})
	p := mustSpawn(t, b, 0, Queen, Coord{0, 0, 0, 0})
	mustSpawn(t, b, 1, Pawn, Coord{3, 3, 3, 3})

	if err := b.MovePiece(Coord{0, 0, 0, 0}, Coord{2, 0, 0, 0}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if b.PieceAt(Coord{0, 0, 0, 0}) != nil {
		t.Error("source square should be empty after the move")
	}
	if b.PieceAt(Coord{2, 0, 0, 0}) != p {
		t.Error("piece should occupy the destination")
	}
	if !p.HasMoved {
		t.Error("HasMoved should be set after a move")
	}

	if err := b.MovePiece(Coord{2, 0, 0, 0}, Coord{3, 3, 3, 3}); err == nil {
		t.Error("expected moving onto an occupied square to fail")
	}
	if err := b.MovePiece(Coord{1, 1, 1, 1}, Coord{1, 1, 1, 2}); !errors.Is(err, ErrNoPieceAtSource) {
		t.Errorf("expected ErrNoPieceAtSource, got %v", err)
	}
	b.selfCheck()
}

func TestBoardRemove(t *testing.T) {
	b := newTestBoard(t, Dims{4, 4})
	p := mustSpawn(t, b, 0, Knight, Coord{2, 2})

	removed := b.Remove(Coord{2, 2})
	if removed != p {
		t.Fatalf("Remove returned %v, want the knight", removed)
	}
	if p.Active || p.Pos() != nil {
		t.Error("removed piece should be inactive with no position")
	}
	if b.Remove(Coord{2, 2}) != nil {
		t.Error("removing an empty square should return nil")
	}
	if _, ok := b.CoordOf(p.ID); ok {
		t.Error("CoordOf should report the piece as off the board")
	}
	b.selfCheck()
}

func TestBoardSwap(t *testing.T) {
	b := newTestBoard(t, Dims{8, 8, 8, 8})
	cat := mustSpawn(t, b, 0, Cat, Coord{0, 0, 0, 0})
	rook := mustSpawn(t, b, 1, Rook, Coord{5, 5, 0, 0})

	if err := b.Swap(Coord{0, 0, 0, 0}, Coord{5, 5, 0, 0}); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if b.PieceAt(Coord{5, 5, 0, 0}) != cat || b.PieceAt(Coord{0, 0, 0, 0}) != rook {
		t.Error("swap did not exchange the occupants")
	}
	if !cat.HasMoved || !rook.HasMoved {
		t.Error("both pieces should count as having moved")
	}

	if err := b.Swap(Coord{0, 0, 0, 0}, Coord{7, 7, 7, 7}); err == nil {
		t.Error("expected swap with an empty square to fail")
	}
	b.selfCheck()
}

func TestTransformGroupAnnihilation(t *testing.T) {
	// Three pieces folded onto one square must all be removed, not just the
	// first pair.
	b := newTestBoard(t, Dims{8, 8})
	alien := mustSpawn(t, b, 0, Alien, Coord{7, 7})
	mustSpawn(t, b, 0, Pawn, Coord{1, 0})
	mustSpawn(t, b, 1, Pawn, Coord{2, 0})
	mustSpawn(t, b, 1, Rook, Coord{3, 0})
	bystander := mustSpawn(t, b, 1, Knight, Coord{4, 4})

	collapse := func(c Coord) Coord {
		if c[1] == 0 {
			return Coord{0, 0}
		}
		return c.Clone()
	}
	result := b.Transform(collapse, b.Dims(), alien)

	if len(result.Removed) != 3 {
		t.Fatalf("removed %d pieces, want 3", len(result.Removed))
	}
	for _, r := range result.Removed {
		if r.Reason != RemovedAnnihilated {
			t.Errorf("piece %d removed for %q, want %q", r.Piece.ID, r.Reason, RemovedAnnihilated)
		}
	}
	if b.PieceAt(Coord{0, 0}) != nil {
		t.Error("collision square should be empty after annihilation")
	}
	if !bystander.Active {
		t.Error("bystander should survive")
	}
	if !alien.Active || !alien.Pos().Equal(Coord{7, 7}) {
		t.Error("alien should stay untouched")
	}
	b.selfCheck()
}

func TestTransformElimination(t *testing.T) {
	b := newTestBoard(t, Dims{8, 8})
	alien := mustSpawn(t, b, 0, Alien, Coord{3, 3})
	victim := mustSpawn(t, b, 1, Queen, Coord{3, 4})

	toAlien := func(c Coord) Coord {
		if c.Equal(Coord{3, 4}) {
			return Coord{3, 3}
		}
		return c.Clone()
	}
	result := b.Transform(toAlien, b.Dims(), alien)

	if len(result.Removed) != 1 || result.Removed[0].Reason != RemovedEliminated {
		t.Fatalf("got removals %+v, want one elimination", result.Removed)
	}
	if victim.Active {
		t.Error("victim should be off the board")
	}
	if b.PieceAt(Coord{3, 3}) != alien {
		t.Error("alien should keep its square")
	}
	b.selfCheck()
}

func TestTransformOffBoard(t *testing.T) {
	b := newTestBoard(t, Dims{8, 8})
	alien := mustSpawn(t, b, 0, Alien, Coord{0, 0})
	mustSpawn(t, b, 1, Bishop, Coord{5, 5})

	result := b.Transform(func(c Coord) Coord { return Coord{c[0] + 10, c[1]} }, b.Dims(), alien)

	if len(result.Removed) != 1 || result.Removed[0].Reason != RemovedOffBoard {
		t.Fatalf("got removals %+v, want one off-board removal", result.Removed)
	}
	b.selfCheck()
}

func TestTransformRelocates(t *testing.T) {
	b := newTestBoard(t, Dims{8, 8})
	alien := mustSpawn(t, b, 0, Alien, Coord{0, 0})
	rook := mustSpawn(t, b, 1, Rook, Coord{2, 5})

	swap := func(c Coord) Coord { return Coord{c[1], c[0]} }
	result := b.Transform(swap, Dims{8, 8}, alien)

	if len(result.Moved) != 1 {
		t.Fatalf("moved %d pieces, want 1", len(result.Moved))
	}
	if !rook.Pos().Equal(Coord{5, 2}) {
		t.Errorf("rook at %v, want (5,2)", rook.Pos())
	}
	if got, ok := b.CoordOf(rook.ID); !ok || !got.Equal(Coord{5, 2}) {
		t.Errorf("CoordOf disagrees: %v %v", got, ok)
	}
	b.selfCheck()
}
