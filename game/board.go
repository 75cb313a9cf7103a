package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Board is a sparse occupancy index over an N-dimensional box. It owns every
// piece created for the match, captured ones included, keyed by ID. The
// coordinate view and each piece's own position must always agree; the
// mutators below are the only way to change occupancy.
type Board struct {
	dims    Dims
	byCoord map[string]*Piece
	byID    map[int]*Piece
	nextID  int
}

func NewBoard(dims Dims) (*Board, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		dims:    dims.Clone(),
		byCoord: make(map[string]*Piece),
		byID:    make(map[int]*Piece),
	}, nil
}

// Dims returns the current axis sizes. Alien operations may reorder them.
func (b *Board) Dims() Dims {
	return b.dims.Clone()
}

// Spawn creates a piece with a fresh ID and places it on the square.
func (b *Board) Spawn(owner int, kind Kind, at Coord) (*Piece, error) {
	if !InBounds(at, b.dims) {
		return nil, fmt.Errorf("%w: %v on a %s board", ErrOutOfBounds, at, b.dims)
	}
	if b.byCoord[at.Key()] != nil {
		return nil, fmt.Errorf("square %v is already occupied", at)
	}
	p := &Piece{ID: b.nextID, Owner: owner, Kind: kind, Active: true, pos: at.Clone()}
	b.nextID++
	b.byID[p.ID] = p
	b.byCoord[at.Key()] = p
	return p, nil
}

// PieceAt returns the occupant of the square, or nil.
func (b *Board) PieceAt(at Coord) *Piece {
	return b.byCoord[at.Key()]
}

// PieceByID looks a piece up by identifier, captured pieces included.
func (b *Board) PieceByID(id int) *Piece {
	return b.byID[id]
}

// CoordOf returns the coordinate of piece id, or false when it is off the
// board.
func (b *Board) CoordOf(id int) (Coord, bool) {
	p := b.byID[id]
	if p == nil || p.pos == nil {
		return nil, false
	}
	return p.pos.Clone(), true
}

// Remove takes the occupant off the square and returns it, or nil.
func (b *Board) Remove(at Coord) *Piece {
	p := b.byCoord[at.Key()]
	if p == nil {
		return nil
	}
	delete(b.byCoord, at.Key())
	p.pos = nil
	p.Active = false
	return p
}

// MovePiece relocates the occupant of from to the empty square to. It never
// overwrites: captures must be resolved by the caller beforehand.
func (b *Board) MovePiece(from, to Coord) error {
	p := b.byCoord[from.Key()]
	if p == nil {
		return fmt.Errorf("%w: %v", ErrNoPieceAtSource, from)
	}
	if !InBounds(to, b.dims) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}
	if b.byCoord[to.Key()] != nil {
		return fmt.Errorf("square %v is already occupied", to)
	}
	delete(b.byCoord, from.Key())
	b.byCoord[to.Key()] = p
	p.pos = to.Clone()
	p.HasMoved = true
	return nil
}

// Swap exchanges the occupants of two squares. Both squares must be
// occupied and both pieces count as having moved.
func (b *Board) Swap(a, c Coord) error {
	pa, pc := b.byCoord[a.Key()], b.byCoord[c.Key()]
	if pa == nil || pc == nil {
		return fmt.Errorf("%w: swap needs two occupied squares", ErrNoPieceAtSource)
	}
	b.byCoord[a.Key()] = pc
	b.byCoord[c.Key()] = pa
	pa.pos = c.Clone()
	pc.pos = a.Clone()
	pa.HasMoved = true
	pc.HasMoved = true
	return nil
}

// Pieces returns the active pieces ordered by ID.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, len(b.byCoord))
	for _, p := range b.byID {
		if p.Active {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(x, y *Piece) int { return x.ID - y.ID })
	return out
}

// AllPieces returns every piece ever created, ordered by ID.
func (b *Board) AllPieces() []*Piece {
	out := make([]*Piece, 0, len(b.byID))
	for _, p := range b.byID {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y *Piece) int { return x.ID - y.ID })
	return out
}

// TransformMove is one piece relocation caused by a layout change.
type TransformMove struct {
	Piece *Piece
	From  Coord
	To    Coord
}

// TransformRemoval is one piece leaving the board during a layout change.
type TransformRemoval struct {
	Piece  *Piece
	From   Coord
	Reason RemovalReason
}

// TransformResult reports what a layout change did, ordered by piece ID.
type TransformResult struct {
	Moved   []TransformMove
	Removed []TransformRemoval
}

// Transform rebuilds the board by sending every active piece except keep
// through mapper, each image computed from the pre-transform layout. The
// board's dims become newDims. A piece mapped off the board is removed; a
// piece mapped onto keep's square is removed; when two or more pieces map
// to the same square, all of them are removed. keep stays on its own
// coordinate untouched, even if newDims no longer contain it.
func (b *Board) Transform(mapper func(Coord) Coord, newDims Dims, keep *Piece) TransformResult {
	type image struct {
		piece *Piece
		from  Coord
		to    Coord
	}

	var result TransformResult
	groups := make(map[string][]image)

	for _, p := range b.Pieces() {
		if p == keep {
			continue
		}
		from := p.pos
		to := mapper(from)
		switch {
		case !InBounds(to, newDims):
			result.Removed = append(result.Removed, TransformRemoval{Piece: p, From: from, Reason: RemovedOffBoard})
		case keep != nil && keep.pos != nil && to.Equal(keep.pos):
			result.Removed = append(result.Removed, TransformRemoval{Piece: p, From: from, Reason: RemovedEliminated})
		default:
			groups[to.Key()] = append(groups[to.Key()], image{piece: p, from: from, to: to})
		}
	}

	var survivors []image
	for _, group := range groups {
		if len(group) >= 2 {
			for _, img := range group {
				result.Removed = append(result.Removed, TransformRemoval{Piece: img.piece, From: img.from, Reason: RemovedAnnihilated})
			}
			continue
		}
		survivors = append(survivors, group[0])
	}

	// Commit everything in one pass.
	b.dims = newDims.Clone()
	b.byCoord = make(map[string]*Piece)
	if keep != nil && keep.pos != nil {
		b.byCoord[keep.pos.Key()] = keep
	}
	for _, r := range result.Removed {
		r.Piece.pos = nil
		r.Piece.Active = false
	}
	for _, img := range survivors {
		if b.byCoord[img.to.Key()] != nil {
			panic(fmt.Sprintf("layout transform left two pieces on %v", img.to))
		}
		img.piece.pos = img.to
		b.byCoord[img.to.Key()] = img.piece
		if !img.to.Equal(img.from) {
			result.Moved = append(result.Moved, TransformMove{Piece: img.piece, From: img.from, To: img.to})
		}
	}

	slices.SortFunc(result.Moved, func(x, y TransformMove) int { return x.Piece.ID - y.Piece.ID })
	slices.SortFunc(result.Removed, func(x, y TransformRemoval) int { return x.Piece.ID - y.Piece.ID })
	return result
}

// selfCheck panics if the coordinate view and the piece positions disagree.
func (b *Board) selfCheck() {
	active := 0
	for _, p := range b.byID {
		if !p.Active {
			continue
		}
		active++
		if p.pos == nil || b.byCoord[p.pos.Key()] != p {
			panic(fmt.Sprintf("board index disagreement for piece %d", p.ID))
		}
	}
	if active != len(b.byCoord) {
		panic(fmt.Sprintf("board holds %d squares for %d active pieces", len(b.byCoord), active))
	}
}
