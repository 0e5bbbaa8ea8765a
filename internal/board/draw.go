package board

// Color-complex masks, used by the same-colored-bishops draw rule.
const (
	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// IsDraw reports whether the current position is drawn by insufficient
// material or by repetition within the recorded game line.
//
// Insufficient material is only tested once the game has reached the
// endgame stage: K vs K, K+minor vs K, K+N+N vs K, and K+B vs K+B with
// both bishops on the same color complex.
//
// Repetition scans the hash history at same-side-to-move plies and
// reports a draw on the first earlier position with an equal Zobrist
// key, the usual in-search approximation of threefold, which treats
// any repetition inside the search window as drawn. The fifty-move
// rule is not asserted here; HalfMoveClock is maintained for callers
// that want it.
func (pos *Position) IsDraw() bool {
	if pos.isMaterialDraw() {
		return true
	}
	return pos.isRepetition()
}

func (pos *Position) isMaterialDraw() bool {
	if !pos.IsEndGame() {
		return false
	}
	heavy := pos.NumPieces[White][Queen] + pos.NumPieces[Black][Queen] +
		pos.NumPieces[White][Rook] + pos.NumPieces[Black][Rook] +
		pos.NumPieces[White][Pawn] + pos.NumPieces[Black][Pawn]
	if heavy != 0 {
		return false
	}

	if pos.TotalMinorPieces() == 0 {
		return true
	}

	for c := White; c <= Black; c++ {
		enemy := c.Opposite()
		if pos.MinorPieces(c) == 1 && pos.MinorPieces(enemy) == 0 {
			return true
		}
		if pos.NumPieces[c][Knight] == 2 && pos.MinorPieces(enemy) == 0 {
			return true
		}
	}

	if pos.NumPieces[White][Bishop] == 1 && pos.NumPieces[Black][Bishop] == 1 {
		if pos.Pieces[White][Bishop]&LightSquares != 0 {
			return pos.Pieces[Black][Bishop]&LightSquares != 0
		}
		return pos.Pieces[Black][Bishop]&DarkSquares != 0
	}
	return false
}

// isRepetition walks the hash history by two plies so that only
// positions with the same side to move are compared. The walk stops
// before the current ply, so the current position's own history slot
// never matches itself; a position therefore only reads as repeated
// once it has genuinely occurred before in the line.
func (pos *Position) isRepetition() bool {
	if pos.HalfMoveClock < 4 {
		return false
	}
	start := 0
	if pos.SideToMove == Black {
		start = 1
	}
	for i := start; i < pos.Ply; i += 2 {
		if pos.hashHistory[i] == pos.Hash {
			return true
		}
	}
	return false
}
