package game

// ActionKind says which rule produced a delta.
type ActionKind string

const (
	MoveAction    ActionKind = "move"
	CaptureAction ActionKind = "capture"
	ScratchAction ActionKind = "scratch"
	AlienAction   ActionKind = "alien"
)

// RemovalReason says why a piece left the board.
type RemovalReason string

const (
	RemovedCaptured    RemovalReason = "captured"
	RemovedAnnihilated RemovalReason = "annihilated" // shared a destination with another piece
	RemovedEliminated  RemovalReason = "eliminated"  // mapped onto the alien's square
	RemovedOffBoard    RemovalReason = "off_board"   // mapped outside the board
)

// PieceMove is one relocation inside a delta.
type PieceMove struct {
	PieceID int   `json:"pieceId"`
	Kind    Kind  `json:"kind"`
	Owner   int   `json:"owner"`
	From    Coord `json:"from"`
	To      Coord `json:"to"`
}

// PieceRemoval is one piece leaving the board inside a delta.
type PieceRemoval struct {
	PieceID int           `json:"pieceId"`
	Kind    Kind          `json:"kind"`
	Owner   int           `json:"owner"`
	From    Coord         `json:"from"`
	Reason  RemovalReason `json:"reason"`
}

// Delta describes everything one accepted action changed, enough for a
// collaborator to re-render incrementally without reloading the board.
type Delta struct {
	Seq        int            `json:"seq"` // move counter after the action
	Player     int            `json:"player"`
	Action     ActionKind     `json:"action"`
	Op         *LayoutOp      `json:"op,omitempty"`
	Moves      []PieceMove    `json:"moves,omitempty"`
	Removals   []PieceRemoval `json:"removals,omitempty"`
	Demotions  []int          `json:"demotions,omitempty"`  // piece IDs demoted by a scratch
	Eliminated []int          `json:"eliminated,omitempty"` // players whose king left the board
	Dims       Dims           `json:"dims"`                 // axis sizes after the action
	Result     *Result        `json:"result,omitempty"`
}
