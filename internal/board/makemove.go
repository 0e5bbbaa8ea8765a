package board

// place puts piece p on sq, updating bitboards, counters, material,
// the PST accumulator and both Zobrist keys in one step.
func (pos *Position) place(p Piece, sq Square) {
	pos.setPiece(p, sq)
	pos.zobristPieceXOR(p, sq)
}

// take removes whatever sits on sq, mirroring place, and returns it.
func (pos *Position) take(sq Square) Piece {
	p := pos.removePiece(sq)
	if !p.IsEmpty() {
		pos.zobristPieceXOR(p, sq)
	}
	return p
}

// relocate moves whatever sits on from to to (to must be empty),
// updating bitboards, the PST accumulator and both Zobrist keys.
func (pos *Position) relocate(from, to Square) Piece {
	p := pos.movePiece(from, to)
	if !p.IsEmpty() {
		pos.zobristPieceXOR(p, from)
		pos.zobristPieceXOR(p, to)
	}
	return p
}

// castleRookSquares returns the rook's from/to squares for a castling
// move, given the king's from/to squares.
func castleRookSquares(from, to Square) (rookFrom, rookTo Square) {
	rank := from.Rank()
	if to > from {
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank)
}

// castlingRightsTouchedBy clears whatever castling rights a move from
// or to sq revokes: moving the king or either rook, or capturing a
// rook on its home square, all remove rights (spec.md §4.4 step 5).
func castlingRightsTouchedBy(cr CastlingRights, sq Square) CastlingRights {
	switch sq {
	case A1:
		return cr &^ WhiteQueenSideCastle
	case H1:
		return cr &^ WhiteKingSideCastle
	case A8:
		return cr &^ BlackQueenSideCastle
	case H8:
		return cr &^ BlackKingSideCastle
	case E1:
		return cr &^ (WhiteKingSideCastle | WhiteQueenSideCastle)
	case E8:
		return cr &^ (BlackKingSideCastle | BlackQueenSideCastle)
	default:
		return cr
	}
}

// MakeMove applies m to the position. The caller is trusted to supply
// a pseudo-legal move generated from this exact position (per spec.md
// §7, the core does not validate); behavior on a move that is not
// pseudo-legal here is undefined.
func (pos *Position) MakeMove(m Move) {
	ply := pos.Ply
	pos.histCastling[ply] = pos.CastlingRights
	pos.histCaptured[ply] = m.Captured
	pos.histEnPassant[ply] = pos.EnPassant
	pos.histHash[ply] = pos.Hash
	pos.histPawnKey[ply] = pos.PawnKey
	pos.histHalfMove[ply] = pos.HalfMoveClock
	pos.hashHistory[ply] = pos.Hash

	us := pos.SideToMove
	them := us.Opposite()

	// En-passant target is cleared on every move; XOR out the old
	// contribution now, the new one (if any) is applied below.
	if pos.EnPassant != NoSquare {
		epKey := ZobristEnPassant(pos.EnPassant.File())
		pos.Hash ^= epKey
		pos.PawnKey ^= epKey
	}
	pos.EnPassant = NoSquare

	switch {
	case m.IsCastle():
		pos.relocate(m.From, m.To)
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		pos.relocate(rookFrom, rookTo)
		pos.Castled[us] = true

	case m.IsEnPassant():
		var capturedSq Square
		if us == White {
			capturedSq = m.To - 8
		} else {
			capturedSq = m.To + 8
		}
		pos.take(capturedSq)
		pos.relocate(m.From, m.To)

	default:
		if m.IsCapture() {
			pos.take(m.To)
		}
		pos.relocate(m.From, m.To)
		if m.IsPromotion() {
			pos.take(m.To)
			pos.place(Piece{Color: us, Type: m.Promoted}, m.To)
		}
	}

	oldRights := pos.CastlingRights
	newRights := castlingRightsTouchedBy(oldRights, m.From)
	newRights = castlingRightsTouchedBy(newRights, m.To)
	if newRights != oldRights {
		pos.Hash ^= ZobristCastling(oldRights)
		pos.CastlingRights = newRights
		pos.Hash ^= ZobristCastling(newRights)
	}

	if m.IsDoublePawnPush() {
		epSq := (m.From + m.To) / 2
		pos.EnPassant = epSq
		epKey := ZobristEnPassant(epSq.File())
		pos.Hash ^= epKey
		pos.PawnKey ^= epKey
	}

	if m.Moved == Pawn || m.IsCapture() {
		pos.HalfMoveClock = 0
	} else {
		pos.HalfMoveClock++
	}

	if us == Black {
		pos.FullMoveNumber++
	}

	pos.SideToMove = them
	pos.Hash ^= ZobristSideToMove()
	pos.Ply++

	pos.UpdateCheckers()
}

// UnmakeMove is the exact inverse of MakeMove for the same m; it must
// be called with the position exactly as MakeMove(m) left it.
func (pos *Position) UnmakeMove(m Move) {
	pos.Ply--
	ply := pos.Ply
	them := pos.SideToMove
	us := them.Opposite()
	pos.SideToMove = us

	switch {
	case m.IsCastle():
		pos.relocate(m.To, m.From)
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		pos.relocate(rookTo, rookFrom)

	case m.IsEnPassant():
		pos.relocate(m.To, m.From)
		var capturedSq Square
		if us == White {
			capturedSq = m.To - 8
		} else {
			capturedSq = m.To + 8
		}
		pos.place(Piece{Color: them, Type: Pawn}, capturedSq)

	default:
		if m.IsPromotion() {
			pos.take(m.To)
			pos.place(Piece{Color: us, Type: Pawn}, m.To)
		}
		pos.relocate(m.To, m.From)
		if m.IsCapture() {
			pos.place(Piece{Color: them, Type: m.Captured}, m.To)
		}
	}

	pos.CastlingRights = pos.histCastling[ply]
	pos.EnPassant = pos.histEnPassant[ply]
	pos.HalfMoveClock = pos.histHalfMove[ply]
	pos.Hash = pos.histHash[ply]
	pos.PawnKey = pos.histPawnKey[ply]

	if us == Black {
		pos.FullMoveNumber--
	}

	pos.UpdateCheckers()
}

// NullMoveUndo carries the state MakeNullMove records and
// UnmakeNullMove restores.
type NullMoveUndo struct {
	EnPassant     Square
	Hash          uint64
	PawnKey       uint64
	AllowNullMove bool
}

// MakeNullMove passes the turn without moving any piece, used by
// search for null-move pruning. Returns undo state for UnmakeNullMove.
func (pos *Position) MakeNullMove() NullMoveUndo {
	undo := NullMoveUndo{
		EnPassant:     pos.EnPassant,
		Hash:          pos.Hash,
		PawnKey:       pos.PawnKey,
		AllowNullMove: pos.AllowNullMove,
	}

	pos.hashHistory[pos.Ply] = pos.Hash

	if pos.EnPassant != NoSquare {
		epKey := ZobristEnPassant(pos.EnPassant.File())
		pos.Hash ^= epKey
		pos.PawnKey ^= epKey
	}
	pos.EnPassant = NoSquare

	pos.SideToMove = pos.SideToMove.Opposite()
	pos.Hash ^= ZobristSideToMove()
	pos.AllowNullMove = false
	pos.Ply++

	pos.UpdateCheckers()
	return undo
}

// UnmakeNullMove is the exact inverse of MakeNullMove.
func (pos *Position) UnmakeNullMove(undo NullMoveUndo) {
	pos.Ply--
	pos.EnPassant = undo.EnPassant
	pos.Hash = undo.Hash
	pos.PawnKey = undo.PawnKey
	pos.AllowNullMove = undo.AllowNullMove
	pos.SideToMove = pos.SideToMove.Opposite()
	pos.UpdateCheckers()
}
