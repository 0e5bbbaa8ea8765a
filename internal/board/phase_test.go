package board

import "testing"

func TestPhaseEndpoints(t *testing.T) {
	start := NewPosition()
	if got := start.Phase(); got != 0 {
		t.Errorf("starting position Phase() = %d, want 0", got)
	}
	if got := start.Stage(); got != Opening {
		t.Errorf("starting position Stage() = %s, want opening", got)
	}

	bare, err := ParseFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := bare.Phase(); got != MaxPhase {
		t.Errorf("bare kings Phase() = %d, want %d", got, MaxPhase)
	}
	if got := bare.Stage(); got != EndGame {
		t.Errorf("bare kings Stage() = %s, want endgame", got)
	}
}

// TestPhaseMonotonicUnderMaterialReduction strips the board down one
// batch of pieces at a time; the phase must never move back toward the
// opening as material comes off.
func TestPhaseMonotonicUnderMaterialReduction(t *testing.T) {
	reductions := []string{
		StartFEN,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1",
		"rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKB2 w Qq - 0 1",
		"rnbqkb2/pppppppp/8/8/8/8/PPPPPPPP/RNBQK3 w Qq - 0 1",
		"rnb1kb2/pppppppp/8/8/8/8/PPPPPPPP/RNB1K3 w Qq - 0 1",
		"rnb1k3/pppppppp/8/8/8/8/PPPPPPPP/RN2K3 w Qq - 0 1",
		"rn2k3/pppppppp/8/8/8/8/PPPPPPPP/R3K3 w Qq - 0 1",
		"r3k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w q - 0 1",
		"4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	prev := -1
	for _, fen := range reductions {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		phase := pos.Phase()
		if phase < prev {
			t.Errorf("%s: Phase() = %d, decreased from %d", fen, phase, prev)
		}
		if phase < 0 || phase > MaxPhase {
			t.Errorf("%s: Phase() = %d out of [0,%d]", fen, phase, MaxPhase)
		}
		prev = phase
	}
}

func TestStageThresholds(t *testing.T) {
	// A queenless middlegame with full minor armies still counts as
	// middlegame; stripping to kings and a couple of minors is endgame.
	middle, err := ParseFEN("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := middle.Stage(); got != MiddleGame {
		t.Errorf("queenless full armies Stage() = %s, want middlegame", got)
	}

	end, err := ParseFEN("4k3/8/8/8/8/2N5/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := end.Stage(); got != EndGame {
		t.Errorf("two minors Stage() = %s, want endgame", got)
	}
	if !end.IsEndGame() {
		t.Error("IsEndGame must agree with Stage")
	}
}
