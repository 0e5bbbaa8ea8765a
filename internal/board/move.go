package board

import (
	"fmt"
	"strings"
)

// Move describes a single ply. Moved, Captured and Promoted are
// overloaded to avoid a separate move-kind tag: castling is encoded as
// Moved=King, Promoted=Rook, and en passant as Moved=Pawn,
// Promoted=Pawn (a pawn can never actually promote to a pawn, so the
// combination is otherwise unused). Captured is NoPieceType for a
// quiet move. Two moves compare equal iff From and To match, regardless
// of the other fields. This lets a search's move list be probed with
// a bare (from,to) pair parsed from UCI input.
type Move struct {
	From     Square
	To       Square
	Moved    PieceType
	Captured PieceType
	Promoted PieceType
}

// NullMove is the zero Move, used as a "no move" sentinel; IsNull
// reports true for it and for any other move with From == To, which
// never arises from legal generation.
var NullMove = Move{}

// Equal reports whether two moves share the same origin and
// destination square, ignoring every other field.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// IsNull reports whether the move is the null move.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// IsCapture reports whether the move captures a piece (including en
// passant).
func (m Move) IsCapture() bool {
	return m.Captured != NoPieceType
}

// IsCastle reports whether the move is a king or queen side castle.
func (m Move) IsCastle() bool {
	return m.Moved == King && m.Promoted == Rook
}

// IsCastleOO reports whether the move is a king side castle.
func (m Move) IsCastleOO() bool {
	return (m.From == E1 && m.To == G1) || (m.From == E8 && m.To == G8)
}

// IsCastleOOO reports whether the move is a queen side castle.
func (m Move) IsCastleOOO() bool {
	return (m.From == E1 && m.To == C1) || (m.From == E8 && m.To == C8)
}

// IsPromotion reports whether a pawn is promoting to a piece other
// than a pawn.
func (m Move) IsPromotion() bool {
	return m.Moved == Pawn && m.Promoted != NoPieceType && m.Promoted != Pawn
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Moved == Pawn && m.Promoted == Pawn
}

// IsDoublePawnPush reports whether the move is a two-square pawn
// advance from its starting rank, the only move that sets an
// en-passant target square.
func (m Move) IsDoublePawnPush() bool {
	return m.Moved == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.IsPromotion() {
		b.WriteByte(m.Promoted.Char())
	}
	return b.String()
}

// Algebraic returns a short-algebraic-like rendering used for logging
// and perft divide output; it is not a full disambiguating SAN
// implementation (it carries no piece-letter or check/mate suffix
// disambiguation beyond castling, capture, promotion and e.p.).
func (m Move) Algebraic() string {
	if m.IsCastle() {
		if m.IsCastleOO() {
			return "O-O"
		}
		return "O-O-O"
	}
	var b strings.Builder
	b.WriteString(m.From.String())
	if m.IsCapture() {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())
	switch {
	case m.IsPromotion():
		b.WriteByte(m.Promoted.Char())
	case m.IsEnPassant():
		b.WriteString("e.p.")
	}
	return b.String()
}

// String implements fmt.Stringer via the UCI long-algebraic form.
func (m Move) String() string {
	return m.UCI()
}

// ParseUCIMove parses long algebraic notation such as "e2e4" or
// "e7e8q" into a Move. Since the textual form alone cannot distinguish
// a quiet move from a capture, from a castle, from en passant, the
// caller normally uses this only to find the matching entry in a
// MoveList produced by the position's own generator. The piece fields
// are not derived from the squares: only a promotion suffix sets Moved
// and Promoted, the rest keep their zero value, and none of them
// should be trusted for anything but the (from,to) comparison.
func ParseUCIMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NullMove, fmt.Errorf("%w: move %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: move %q", ErrInvalidMove, s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: move %q", ErrInvalidMove, s)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		p, ok := PieceFromChar(s[4])
		if !ok {
			return NullMove, fmt.Errorf("%w: promotion %q", ErrInvalidMove, s)
		}
		mv.Moved = Pawn
		mv.Promoted = p.Type
	}
	return mv, nil
}

// MoveList is a fixed-capacity, allocation-free collection of moves,
// sized to comfortably exceed the legal move count of any reachable
// chess position.
type MoveList struct {
	moves [256]Move
	n     int
}

// Add appends a move to the list.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i'th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the populated portion of the list as a slice backed
// by the list's own array; callers must not retain it past the next
// Add.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Find returns the first move in the list equal (by From/To) to m,
// and whether one was found. Used to resolve a ParseUCIMove result
// against the actual legal/pseudo-legal fields (captured, promoted).
func (l *MoveList) Find(m Move) (Move, bool) {
	for i := 0; i < l.n; i++ {
		if l.moves[i].Equal(m) {
			return l.moves[i], true
		}
	}
	return NullMove, false
}
