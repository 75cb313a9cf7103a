package game

import "fmt"

// Kind identifies a piece type.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	Cat
	Alien
)

var kindNames = [...]string{"king", "queen", "rook", "bishop", "knight", "pawn", "cat", "alien"}
var kindGlyphs = [...]string{"K", "Q", "R", "B", "N", "P", "C", "A"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Glyph returns the one-letter symbol used in board projections.
func (k Kind) Glyph() string {
	if k < 0 || int(k) >= len(kindGlyphs) {
		return "?"
	}
	return kindGlyphs[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// MoveClass is one family of move-generation rules. A piece's destination
// set is the union of its classes.
type MoveClass int

const (
	Stepping MoveClass = iota
	SlideSingleAxis
	SlideMultiAxis
	LeapKnight
	PawnForward
	CatHybrid
)

// Piece is one piece of the match, on or off the board. ID is unique for
// the match's lifetime and never reused. Kind never changes; a scratched
// piece keeps its kind and carries Demoted instead.
type Piece struct {
	ID       int
	Owner    int
	Kind     Kind
	Demoted  bool
	HasMoved bool
	Active   bool
	pos      Coord // nil when off the board; maintained by Board
}

// Pos returns the piece's coordinate, or nil when it is off the board.
func (p *Piece) Pos() Coord {
	if p.pos == nil {
		return nil
	}
	return p.pos.Clone()
}

// Classes returns the movement classes the piece currently moves by.
// Demotion overrides everything else: a demoted piece moves as a pawn.
func (p *Piece) Classes() []MoveClass {
	if p.Demoted {
		return []MoveClass{PawnForward}
	}
	switch p.Kind {
	case King, Alien:
		return []MoveClass{Stepping}
	case Queen:
		return []MoveClass{SlideSingleAxis, SlideMultiAxis}
	case Rook:
		return []MoveClass{SlideSingleAxis}
	case Bishop:
		return []MoveClass{SlideMultiAxis}
	case Knight:
		return []MoveClass{LeapKnight}
	case Pawn:
		return []MoveClass{PawnForward}
	case Cat:
		return []MoveClass{CatHybrid}
	default:
		panic(fmt.Sprintf("piece %d has unknown kind %d", p.ID, int(p.Kind)))
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("p%d:%s%s", p.Owner, p.Kind.Glyph(), p.pos)
}
