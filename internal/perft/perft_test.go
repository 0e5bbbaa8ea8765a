package perft

import (
	"context"
	"io"
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

// Reference counts from https://www.chessprogramming.org/Perft_Results.
// The deepest rungs take whole seconds and are skipped under -short.
var perftTests = []struct {
	name   string
	fen    string
	counts []uint64 // counts[d-1] = nodes at depth d
	deep   []uint64 // appended when not running -short
}{
	{
		name:   "initial position",
		fen:    board.StartFEN,
		counts: []uint64{20, 400, 8_902, 197_281},
		deep:   []uint64{4_865_609},
	},
	{
		name:   "kiwipete",
		fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []uint64{48, 2_039, 97_862},
		deep:   []uint64{4_085_603},
	},
	{
		name:   "endgame pins and en passant",
		fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []uint64{14, 191, 2_812, 43_238},
		deep:   []uint64{674_624},
	},
	{
		name:   "promotion storm",
		fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []uint64{6, 264, 9_467},
		deep:   []uint64{422_333},
	},
	{
		name:   "talkchess bug catcher",
		fen:    "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		counts: []uint64{44, 1_486, 62_379},
		deep:   []uint64{2_103_487},
	},
	{
		name:   "symmetrical middlegame",
		fen:    "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		counts: []uint64{46, 2_079, 89_890},
		deep:   []uint64{3_894_594},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftTests {
		t.Run(tc.name, func(t *testing.T) {
			counts := tc.counts
			if !testing.Short() {
				counts = append(append([]uint64{}, tc.counts...), tc.deep...)
			}
			pos, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			for depth := 1; depth <= len(counts); depth++ {
				if got, want := Count(pos, depth), counts[depth-1]; got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

// TestDivideSumsToTotal cross-checks the divide breakdown against the
// plain count, and the parallel driver against the sequential one.
func TestDivideSumsToTotal(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	const depth = 3
	want := Count(pos.Copy(), depth)

	var seqTotal uint64
	seq := Divide(pos.Copy(), depth)
	for _, rc := range seq {
		seqTotal += rc.Nodes
	}
	if seqTotal != want {
		t.Errorf("sequential divide sums to %d, want %d", seqTotal, want)
	}

	par, err := DivideParallel(context.Background(), pos, depth)
	if err != nil {
		t.Fatal(err)
	}
	if len(par) != len(seq) {
		t.Fatalf("parallel divide found %d root moves, sequential %d", len(par), len(seq))
	}
	for i := range par {
		if par[i] != seq[i] {
			t.Errorf("root move %s: parallel %d, sequential %d",
				par[i].Move, par[i].Nodes, seq[i].Nodes)
		}
	}
}

func TestRunReportsNodes(t *testing.T) {
	nodes, err := Run(context.Background(), io.Discard, board.StartFEN, 3, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if nodes != 8_902 {
		t.Errorf("Run returned %d nodes, want 8902", nodes)
	}

	if _, err := Run(context.Background(), io.Discard, "not a fen", 2, false, false); err == nil {
		t.Error("a malformed FEN must surface as an error")
	}
	if _, err := Run(context.Background(), io.Discard, board.StartFEN, 0, false, false); err == nil {
		t.Error("depth 0 must surface as an error")
	}
}
