package board

import (
	"fmt"
	"strings"
)

// MaxPly bounds the history stacks; attempting to make a move when
// Ply has reached MaxPly is a programmer error (the generator is
// trusted never to drive a search this deep) and panics on the history
// array bounds check.
const MaxPly = 1024

// CastlingRights is a 4-bit set of {WK,WQ,BK,BQ} availability.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling-rights field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var b strings.Builder
	if cr&WhiteKingSideCastle != 0 {
		b.WriteByte('K')
	}
	if cr&WhiteQueenSideCastle != 0 {
		b.WriteByte('Q')
	}
	if cr&BlackKingSideCastle != 0 {
		b.WriteByte('k')
	}
	if cr&BlackQueenSideCastle != 0 {
		b.WriteByte('q')
	}
	return b.String()
}

// CanCastle reports whether c may castle on the given side.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return cr&WhiteKingSideCastle != 0
	case c == White && !kingSide:
		return cr&WhiteQueenSideCastle != 0
	case c == Black && kingSide:
		return cr&BlackKingSideCastle != 0
	default:
		return cr&BlackQueenSideCastle != 0
	}
}

// Position is the mutable chess board. All fields other than the
// history stacks are mutated only through MakeMove/UnmakeMove and
// their null-move counterparts; it owns no heap graph and contains no
// pointers, so assigning *pos copies the entire state.
type Position struct {
	Pieces      [2][6]Bitboard
	Occupied    [2]Bitboard
	AllOccupied Bitboard
	KingSquare  [2]Square

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	Ply            int
	FullMoveNumber int

	NumPieces   [2][6]int
	PawnsOnFile [2][8]int
	Material    [2]int
	PST         [2]Score

	Hash    uint64
	PawnKey uint64

	Castled       [2]bool
	AllowNullMove bool
	Checkers      Bitboard

	histCastling  [MaxPly]CastlingRights
	histCaptured  [MaxPly]PieceType
	histEnPassant [MaxPly]Square
	histHash      [MaxPly]uint64
	histPawnKey   [MaxPly]uint64
	histHalfMove  [MaxPly]int
	hashHistory   [MaxPly]uint64
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Copy returns an independent deep copy of the position (Position
// contains only value types, so a plain struct copy suffices; no
// separate threads may share one *Position, per the concurrency
// model; each gets its own Copy).
func (pos *Position) Copy() *Position {
	cp := *pos
	return &cp
}

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (pos *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	if pos.AllOccupied&bb == 0 {
		return NoPiece
	}
	c := White
	if pos.Occupied[Black]&bb != 0 {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if pos.Pieces[c][pt]&bb != 0 {
			return Piece{Color: c, Type: pt}
		}
	}
	return NoPiece
}

// Empty returns the set of unoccupied squares.
func (pos *Position) Empty() Bitboard {
	return ^pos.AllOccupied
}

// IsEmptySquare reports whether sq holds no piece.
func (pos *Position) IsEmptySquare(sq Square) bool {
	return pos.AllOccupied&SquareBB(sq) == 0
}

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool {
	return pos.Checkers != 0
}

// SetCheckState lets the move generator report whether, after the
// move it just applied, the new side to move is in check. Recomputed
// here rather than trusted blindly, since UpdateCheckers is cheap.
func (pos *Position) SetCheckState() {
	pos.UpdateCheckers()
}

// setPiece places piece p on sq, updating bitboards, piece counts,
// pawn-file counts, material and the incremental PST, but not the
// Zobrist keys (the caller XORs those explicitly so it controls
// ordering against EnPassant/castling key updates).
func (pos *Position) setPiece(p Piece, sq Square) {
	bb := SquareBB(sq)
	pos.Pieces[p.Color][p.Type] |= bb
	pos.Occupied[p.Color] |= bb
	pos.AllOccupied |= bb
	pos.NumPieces[p.Color][p.Type]++
	pos.Material[p.Color] += p.Value()
	pos.addPieceScore(p, sq)
	if p.Type == Pawn {
		pos.PawnsOnFile[p.Color][sq.File()]++
	}
	if p.Type == King {
		pos.KingSquare[p.Color] = sq
	}
}

// removePiece removes whatever piece sits on sq and returns it (or
// NoPiece if the square was empty). Mirrors setPiece.
func (pos *Position) removePiece(sq Square) Piece {
	p := pos.PieceAt(sq)
	if p.IsEmpty() {
		return NoPiece
	}
	bb := SquareBB(sq)
	pos.Pieces[p.Color][p.Type] &^= bb
	pos.Occupied[p.Color] &^= bb
	pos.AllOccupied &^= bb
	pos.NumPieces[p.Color][p.Type]--
	pos.Material[p.Color] -= p.Value()
	pos.subPieceScore(p, sq)
	if p.Type == Pawn {
		pos.PawnsOnFile[p.Color][sq.File()]--
	}
	return p
}

// movePiece relocates whatever piece sits on from to to, without
// touching capture bookkeeping; the caller must already have removed
// anything sitting on to.
func (pos *Position) movePiece(from, to Square) Piece {
	p := pos.PieceAt(from)
	if p.IsEmpty() {
		return NoPiece
	}
	pos.subPieceScore(p, from)
	pos.addPieceScore(p, to)
	moveBB := SquareBB(from) | SquareBB(to)
	pos.Pieces[p.Color][p.Type] ^= moveBB
	pos.Occupied[p.Color] ^= moveBB
	pos.AllOccupied ^= moveBB
	if p.Type == Pawn {
		pos.PawnsOnFile[p.Color][from.File()]--
		pos.PawnsOnFile[p.Color][to.File()]++
	}
	if p.Type == King {
		pos.KingSquare[p.Color] = to
	}
	return p
}

// zobristPieceXOR XORs a piece's contribution into both Hash and, if
// it is a pawn or king, PawnKey.
func (pos *Position) zobristPieceXOR(p Piece, sq Square) {
	key := ZobristPiece(p.Color, p.Type, sq)
	pos.Hash ^= key
	if pawnKingKeyContribution(p.Type) {
		pos.PawnKey ^= key
	}
}

// Clear resets the position to an empty board with default metadata.
func (pos *Position) Clear() {
	*pos = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
		AllowNullMove:  true,
	}
	pos.KingSquare[White] = NoSquare
	pos.KingSquare[Black] = NoSquare
}

// Validate re-derives pieces[c], occupied and king location from bb
// and compares, matching the original engine's debug-only PosIsOk; it
// is a programmer-error check, not a user-input validator, and should
// only be called from tests or behind a debug flag.
func (pos *Position) Validate() error {
	var white, black Bitboard
	for pt := Pawn; pt <= King; pt++ {
		white |= pos.Pieces[White][pt]
		black |= pos.Pieces[Black][pt]
	}
	if white&black != 0 {
		return fmt.Errorf("white and black piece sets overlap")
	}
	if white != pos.Occupied[White] {
		return fmt.Errorf("white occupancy does not match piece bitboards")
	}
	if black != pos.Occupied[Black] {
		return fmt.Errorf("black occupancy does not match piece bitboards")
	}
	if white|black != pos.AllOccupied {
		return fmt.Errorf("AllOccupied does not match piece bitboards")
	}
	if pos.Pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if pos.Pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if pos.Pieces[White][King].LSB() != pos.KingSquare[White] {
		return fmt.Errorf("cached white king square is stale")
	}
	if pos.Pieces[Black][King].LSB() != pos.KingSquare[Black] {
		return fmt.Errorf("cached black king square is stale")
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if pos.Pieces[c][pt].PopCount() != pos.NumPieces[c][pt] {
				return fmt.Errorf("NumPieces[%s][%s] disagrees with bitboard", c, pt)
			}
		}
		for f := 0; f < 8; f++ {
			if (pos.Pieces[c][Pawn] & FileMask[f]).PopCount() != pos.PawnsOnFile[c][f] {
				return fmt.Errorf("PawnsOnFile[%s][%d] disagrees with bitboard", c, f)
			}
		}
	}
	if h, pk := pos.computeZobrist(); h != pos.Hash || pk != pos.PawnKey {
		return fmt.Errorf("zobrist key does not match from-scratch recomputation")
	}
	if pst := pos.computePST(); pst[White] != pos.PST[White] || pst[Black] != pos.PST[Black] {
		return fmt.Errorf("pst accumulator does not match from-scratch recomputation")
	}
	return nil
}

// String renders an ASCII board plus the side metadata, for debugging.
func (pos *Position) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				b.WriteString(". ")
			} else {
				b.WriteByte(p.Char())
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&b, "side to move: %s\n", pos.SideToMove)
	fmt.Fprintf(&b, "castling: %s\n", pos.CastlingRights)
	fmt.Fprintf(&b, "en passant: %s\n", pos.EnPassant)
	fmt.Fprintf(&b, "halfmove clock: %d\n", pos.HalfMoveClock)
	fmt.Fprintf(&b, "fullmove number: %d\n", pos.FullMoveNumber)
	fmt.Fprintf(&b, "hash: %016x\n", pos.Hash)
	return b.String()
}

// MinorPieces returns the number of knights and bishops c has on the board.
func (pos *Position) MinorPieces(c Color) int {
	return pos.NumPieces[c][Knight] + pos.NumPieces[c][Bishop]
}

// TotalMinorPieces returns the minor piece count for both sides.
func (pos *Position) TotalMinorPieces() int {
	return pos.MinorPieces(White) + pos.MinorPieces(Black)
}

// ToggleNullMove flips the null-move guard; search uses it to forbid
// two null moves in a row.
func (pos *Position) ToggleNullMove() {
	pos.AllowNullMove = !pos.AllowNullMove
}

// HasCastled reports whether c has ever castled so far this game.
func (pos *Position) HasCastled(c Color) bool {
	return pos.Castled[c]
}

// HasNonPawnMaterial reports whether the side to move has any piece
// other than pawns and its king; used by search to gate null-move
// pruning (avoided in pure pawn endgames, where it risks zugzwang blindness).
func (pos *Position) HasNonPawnMaterial() bool {
	us := pos.SideToMove
	return pos.Pieces[us][Knight]|pos.Pieces[us][Bishop]|pos.Pieces[us][Rook]|pos.Pieces[us][Queen] != 0
}

// IsPromotingPawn reports whether the side to move has a pawn on its
// penultimate rank, a cheap precondition check used by search move
// ordering.
func (pos *Position) IsPromotingPawn() bool {
	us := pos.SideToMove
	rank := Rank7
	if us == Black {
		rank = Rank2
	}
	return pos.Pieces[us][Pawn]&rank != 0
}

// MaterialBalance returns c's material minus the opponent's.
func (pos *Position) MaterialBalance(c Color) int {
	return pos.Material[c] - pos.Material[c.Opposite()]
}
