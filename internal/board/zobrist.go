package board

// Zobrist key families for the incremental position hash: one key per
// (color, piece type, square), per castling-rights mask, per
// en-passant file, and one for the side to move. The tables are
// filled once at package init from a fixed-seed generator, so hashes
// reproduce across runs and perft-hash fixtures can hardcode values.
type zobristKeys struct {
	piece      [2][6][64]uint64
	castling   [16]uint64
	enPassant  [8]uint64
	sideToMove uint64
}

var zKeys zobristKeys

func init() {
	zKeys.fill(0x3C8F0D4A91E56B27)
}

// splitMix64 steps the SplitMix64 sequence from *state and returns the
// next output; used only to seed the key tables deterministically.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (k *zobristKeys) fill(seed uint64) {
	state := seed
	for c := range k.piece {
		for pt := range k.piece[c] {
			for sq := range k.piece[c][pt] {
				k.piece[c][pt][sq] = splitMix64(&state)
			}
		}
	}
	for i := range k.castling {
		k.castling[i] = splitMix64(&state)
	}
	for f := range k.enPassant {
		k.enPassant[f] = splitMix64(&state)
	}
	k.sideToMove = splitMix64(&state)
}

// ZobristPiece returns the key contribution of a piece on a square.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zKeys.piece[c][pt][sq]
}

// ZobristEnPassant returns the key contribution of an en-passant file.
func ZobristEnPassant(file int) uint64 {
	return zKeys.enPassant[file]
}

// ZobristCastling returns the key contribution of a castling-rights
// bitmask.
func ZobristCastling(cr CastlingRights) uint64 {
	return zKeys.castling[cr]
}

// ZobristSideToMove returns the key contribution XORed in when it is
// Black's move.
func ZobristSideToMove() uint64 {
	return zKeys.sideToMove
}

// pawnKingKeyContribution reports whether a piece type contributes to
// the restricted pawn+king hash used by pawn-structure evaluation
// caches. Kings are included alongside pawns since shelter and
// proximity terms depend on king placement as much as on the pawns.
func pawnKingKeyContribution(pt PieceType) bool {
	return pt == Pawn || pt == King
}
