package board

import (
	"errors"
	"testing"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	if pos.SideToMove != White {
		t.Error("white moves first")
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("castling rights = %s, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant = %s, want none", pos.EnPassant)
	}
	if pos.NumPieces[White][Pawn] != 8 || pos.NumPieces[Black][Pawn] != 8 {
		t.Error("each side starts with 8 pawns")
	}
	if pos.KingSquare[White] != E1 || pos.KingSquare[Black] != E8 {
		t.Errorf("kings on %s/%s, want e1/e8", pos.KingSquare[White], pos.KingSquare[Black])
	}
	if pos.Material[White] != pos.Material[Black] {
		t.Error("starting material must be symmetric")
	}
	if err := pos.Validate(); err != nil {
		t.Error(err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 3 12",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"4k3/8/8/8/8/8/8/4K3 b - - 17 64",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatal(err)
			}
			if got := pos.ToFEN(); got != fen {
				t.Errorf("round trip produced %q", got)
			}
		})
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",               // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // seven ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",  // bad piece char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", // bad ep square
		"8/8/8/8/8/8/8/8 w - - 0 1",                                 // no kings
		"P7/8/4k3/8/8/4K3/8/8 w - - 0 1",                            // pawn on rank 8
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // nine files in one rank
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		} else if !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseFENIncrementalKeysMatchScratch(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	hash, pawnKey := pos.computeZobrist()
	if hash != pos.Hash || pawnKey != pos.PawnKey {
		t.Error("freshly parsed keys must equal the from-scratch recomputation")
	}

	// Two positions differing only in side to move must differ in Hash.
	flipped, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if flipped.Hash == pos.Hash {
		t.Error("side to move must contribute to the hash")
	}
	if flipped.Hash != pos.Hash^ZobristSideToMove() {
		t.Error("the side contribution must be exactly the Z.side key")
	}
}
