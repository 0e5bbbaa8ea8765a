package board

import "testing"

func TestToSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", StartFEN, "e2e4", "e4"},
		{"knight development", StartFEN, "g1f3", "Nf3"},
		{
			"pawn capture keeps origin file",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			"e4d5", "exd5",
		},
		{
			"king-side castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1g1", "O-O",
		},
		{
			"queen-side castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1c1", "O-O-O",
		},
		{
			"promotion with equals sign",
			"4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			"a7a8q", "a8=Q+",
		},
		{
			"file disambiguation",
			"4k3/8/8/8/8/8/4K3/R6R w - - 0 1",
			"a1d1", "Rad1",
		},
		{
			"checking move gets a plus",
			"4k3/8/8/8/8/8/8/4KR2 w - - 0 1",
			"f1f8", "Rf8+",
		},
		{
			"mating move gets a hash",
			"6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1",
			"a1a8", "Ra8#",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatal(err)
			}
			m, err := pos.ParseMove(tc.move)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.ToSAN(pos); got != tc.want {
				t.Errorf("ToSAN(%s) = %q, want %q", tc.move, got, tc.want)
			}
		})
	}
}

func TestParseMoveResolvesSpecialMoves(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.ParseMove("e1g1")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsCastle() {
		t.Error("e1g1 here must resolve to the castle encoding")
	}

	ep, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	m, err = ep.ParseMove("e5f6")
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsEnPassant() {
		t.Error("e5f6 here must resolve to the en-passant encoding")
	}

	promo, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err = promo.ParseMove("a7a8n")
	if err != nil {
		t.Fatal(err)
	}
	if m.Promoted != Knight {
		t.Errorf("promotion suffix n must resolve to a knight, got %s", m.Promoted)
	}

	if _, err := pos.ParseMove("e1e5"); err == nil {
		t.Error("an illegal move string must not resolve")
	}
}
