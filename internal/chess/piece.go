package chess

// Piece is a board occupant. MoveCount counts confirmed moves of the piece,
// including synthetic increments for castling and double-step bookkeeping.
// A MoveCount of 0 means the piece has never moved.
type Piece struct {
	Kind      Kind
	Owner     Colour
	MoveCount int
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, owner Colour) *Piece {
	return &Piece{Kind: kind, Owner: owner}
}

// Colour returns the colour of the piece.
func (p *Piece) Colour() Colour {
	return p.Owner
}

// AdjustMoveCount adds delta to the move count and returns the new count.
// A delta of 0 is a pure read.
func (p *Piece) AdjustMoveCount(delta int) int {
	if delta != 0 {
		p.MoveCount += delta
	}
	return p.MoveCount
}

// Identity returns the single letter label used by notation and disambiguation.
func (p *Piece) Identity() byte {
	return p.Kind.Letter()
}

// Is reports whether the piece has the given kind and colour.
func (p *Piece) Is(kind Kind, owner Colour) bool {
	return p != nil && p.Kind == kind && p.Owner == owner
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Registry maps identity letters to canonical piece prototypes used for
// population and promotion.
type Registry map[byte]Piece

// DefaultRegistry returns the prototypes for the six standard kinds.
// Prototypes are White and unmoved; New recolours them.
func DefaultRegistry() Registry {
	r := make(Registry)
	for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		r[k.Letter()] = Piece{Kind: k, Owner: White}
	}
	return r
}

// New creates a fresh piece from the prototype registered under letter,
// recoloured to owner.
func (r Registry) New(letter byte, owner Colour) (*Piece, bool) {
	proto, ok := r[letter]
	if !ok {
		return nil, false
	}
	p := proto
	p.Owner = owner
	return &p, true
}
