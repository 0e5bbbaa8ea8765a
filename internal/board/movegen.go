package board

// GeneratePseudoLegalMoves fills ml with every pseudo-legal move for
// the side to move: obeying piece movement and capture rules, but not
// yet filtered for leaving the mover's own king in check. Sufficient
// to drive perft (combined with IsMoveLegal) and to support
// PinnedPieces-based legality filtering; a search's full move orderer
// is an external collaborator.
func (pos *Position) GeneratePseudoLegalMoves(ml *MoveList) {
	pos.generatePawnMoves(ml)
	pos.generateKnightMoves(ml)
	pos.generateBishopMoves(ml)
	pos.generateRookMoves(ml)
	pos.generateQueenMoves(ml)
	pos.generateKingMoves(ml)
	pos.generateCastlingMoves(ml)
}

func (pos *Position) generatePawnMoves(ml *MoveList) {
	us := pos.SideToMove
	them := us.Opposite()
	pawns := pos.Pieces[us][Pawn]
	empty := ^pos.AllOccupied
	enemy := pos.Occupied[them]

	promoRank := Rank8
	startRank := Rank2
	if us == Black {
		promoRank = Rank1
		startRank = Rank7
	}

	for bb := pawns; bb.Any(); {
		from := bb.PopLSB()
		fromBB := SquareBB(from)

		push := PawnPushes(from, us) & empty
		if push.Any() {
			to := push.LSB()
			pos.addPawnMove(ml, from, to, NoPieceType, promoRank)

			if fromBB&startRank != 0 {
				var doublePush Bitboard
				if us == White {
					doublePush = push.North() & empty
				} else {
					doublePush = push.South() & empty
				}
				if doublePush.Any() {
					ml.Add(Move{From: from, To: doublePush.LSB(), Moved: Pawn, Captured: NoPieceType, Promoted: NoPieceType})
				}
			}
		}

		captures := PawnAttacks(from, us) & enemy
		for captures.Any() {
			to := captures.PopLSB()
			pos.addPawnMove(ml, from, to, pos.PieceAt(to).Type, promoRank)
		}

		if pos.EnPassant != NoSquare && PawnAttacks(from, us)&SquareBB(pos.EnPassant) != 0 {
			ml.Add(Move{From: from, To: pos.EnPassant, Moved: Pawn, Captured: Pawn, Promoted: Pawn})
		}
	}
}

// addPawnMove emits either a single quiet/capturing move, or all four
// promotion choices when to lands on the promotion rank.
func (pos *Position) addPawnMove(ml *MoveList, from, to Square, captured PieceType, promoRank Bitboard) {
	if SquareBB(to)&promoRank != 0 {
		for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			ml.Add(Move{From: from, To: to, Moved: Pawn, Captured: captured, Promoted: promo})
		}
		return
	}
	ml.Add(Move{From: from, To: to, Moved: Pawn, Captured: captured, Promoted: NoPieceType})
}

func (pos *Position) generateKnightMoves(ml *MoveList) {
	pos.generateStepperMoves(ml, Knight, KnightAttacks)
}

func (pos *Position) generateKingMoves(ml *MoveList) {
	pos.generateStepperMoves(ml, King, KingAttacks)
}

func (pos *Position) generateStepperMoves(ml *MoveList, pt PieceType, attacksFrom func(Square) Bitboard) {
	us := pos.SideToMove
	own := pos.Occupied[us]
	for bb := pos.Pieces[us][pt]; bb.Any(); {
		from := bb.PopLSB()
		targets := attacksFrom(from) &^ own
		for targets.Any() {
			to := targets.PopLSB()
			ml.Add(Move{From: from, To: to, Moved: pt, Captured: pos.PieceAt(to).Type})
		}
	}
}

func (pos *Position) generateBishopMoves(ml *MoveList) {
	pos.generateSliderMoves(ml, Bishop, BishopAttacks)
}

func (pos *Position) generateRookMoves(ml *MoveList) {
	pos.generateSliderMoves(ml, Rook, RookAttacks)
}

func (pos *Position) generateQueenMoves(ml *MoveList) {
	pos.generateSliderMoves(ml, Queen, QueenAttacks)
}

func (pos *Position) generateSliderMoves(ml *MoveList, pt PieceType, attacksFrom func(Square, Bitboard) Bitboard) {
	us := pos.SideToMove
	own := pos.Occupied[us]
	occ := pos.AllOccupied
	for bb := pos.Pieces[us][pt]; bb.Any(); {
		from := bb.PopLSB()
		targets := attacksFrom(from, occ) &^ own
		for targets.Any() {
			to := targets.PopLSB()
			captured := NoPieceType
			if p := pos.PieceAt(to); !p.IsEmpty() {
				captured = p.Type
			}
			ml.Add(Move{From: from, To: to, Moved: pt, Captured: captured})
		}
	}
}

func (pos *Position) generateCastlingMoves(ml *MoveList) {
	us := pos.SideToMove
	them := us.Opposite()
	occ := pos.AllOccupied

	rank := 0
	if us == Black {
		rank = 7
	}
	e := NewSquare(4, rank)
	f := NewSquare(5, rank)
	g := NewSquare(6, rank)
	d := NewSquare(3, rank)
	c := NewSquare(2, rank)
	b := NewSquare(1, rank)

	if pos.CastlingRights.CanCastle(us, true) &&
		occ&(SquareBB(f)|SquareBB(g)) == 0 &&
		!pos.IsSquareAttacked(e, them) && !pos.IsSquareAttacked(f, them) && !pos.IsSquareAttacked(g, them) {
		ml.Add(Move{From: e, To: g, Moved: King, Captured: NoPieceType, Promoted: Rook})
	}

	if pos.CastlingRights.CanCastle(us, false) &&
		occ&(SquareBB(d)|SquareBB(c)|SquareBB(b)) == 0 &&
		!pos.IsSquareAttacked(e, them) && !pos.IsSquareAttacked(d, them) && !pos.IsSquareAttacked(c, them) {
		ml.Add(Move{From: e, To: c, Moved: King, Captured: NoPieceType, Promoted: Rook})
	}
}

// IsMoveLegal reports whether m leaves the mover's king safe, given
// the precomputed pinned-piece set for the side to move. King moves and
// en passant get dedicated handling. Any other move is illegal under a
// double check, illegal when the origin is pinned and the destination
// leaves the king-pinner ray, and under a single check legal only if it
// captures the checker or interposes on its ray.
func (pos *Position) IsMoveLegal(m Move, pinned Bitboard) bool {
	us := pos.SideToMove
	them := us.Opposite()
	kingSq := pos.KingSquare[us]

	if m.Moved == King {
		if m.IsCastle() {
			// Castling generation already verified the king's path is
			// unattacked, and it is never generated out of check.
			return pos.Checkers.Empty()
		}
		// Test the destination with the king lifted off the board, so a
		// slider currently checking through the king still covers the
		// squares behind it.
		occWithoutKing := pos.AllOccupied &^ SquareBB(kingSq)
		return pos.AttackersByColor(m.To, them, occWithoutKing) == 0
	}

	if m.IsEnPassant() {
		return pos.isEnPassantLegal(m)
	}

	// Only a king move can answer a double check.
	if pos.Checkers.PopCount() > 1 {
		return false
	}

	if pinned&SquareBB(m.From) != 0 && !Aligned(m.From, m.To, kingSq) {
		return false
	}

	// Under a single check, every non-king move must capture the
	// checker or interpose on its ray.
	if pos.Checkers.Any() {
		checkerSq := pos.Checkers.LSB()
		return m.To == checkerSq || Between(kingSq, checkerSq).IsSet(m.To)
	}
	return true
}

// isEnPassantLegal tentatively applies the en passant capture, tests
// whether the mover's king is attacked, then undoes it; the
// discovered-check case (removing both the capturing pawn and the
// captured pawn from the same rank can expose the king to a rook or
// queen) is too entangled with ray geometry to shortcut safely.
func (pos *Position) isEnPassantLegal(m Move) bool {
	us := pos.SideToMove
	pos.MakeMove(m)
	legal := pos.AttackersByColor(pos.KingSquare[us], pos.SideToMove, pos.AllOccupied) == 0
	pos.UnmakeMove(m)
	return legal
}

// GenerateLegalMoves fills ml with every fully legal move for the
// side to move.
func (pos *Position) GenerateLegalMoves(ml *MoveList) {
	var pseudo MoveList
	pos.GeneratePseudoLegalMoves(&pseudo)
	pinned := pos.PinnedPieces(pos.SideToMove)
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if pos.IsMoveLegal(m, pinned) {
			ml.Add(m)
		}
	}
}

// HasLegalMoves reports whether the side to move has any legal move,
// without building the full list.
func (pos *Position) HasLegalMoves() bool {
	var pseudo MoveList
	pos.GeneratePseudoLegalMoves(&pseudo)
	pinned := pos.PinnedPieces(pos.SideToMove)
	for i := 0; i < pseudo.Len(); i++ {
		if pos.IsMoveLegal(pseudo.At(i), pinned) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (pos *Position) IsCheckmate() bool {
	return pos.InCheck() && !pos.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has no legal moves.
func (pos *Position) IsStalemate() bool {
	return !pos.InCheck() && !pos.HasLegalMoves()
}
