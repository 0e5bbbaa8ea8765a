// Package perft walks the full legal move tree to a fixed depth and
// counts leaf nodes. Matching the published reference counts for the
// standard test positions exercises every corner of make/undo,
// castling, en passant and promotion at once, which makes perft the
// ground-truth test for the board package.
package perft

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/board"
)

// Count returns the number of leaf nodes depth plies below pos,
// mutating and restoring pos via make/undo.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var moves board.MoveList
	pos.GenerateLegalMoves(&moves)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		nodes += Count(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

// RootCount is one root move's subtree size, as printed by divide.
type RootCount struct {
	Move  board.Move
	Nodes uint64
}

// Divide returns the per-root-move subtree counts, sorted by the
// moves' long-algebraic form the way most divide tools print them.
func Divide(pos *board.Position, depth int) []RootCount {
	var moves board.MoveList
	pos.GenerateLegalMoves(&moves)

	counts := make([]RootCount, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.MakeMove(m)
		counts = append(counts, RootCount{Move: m, Nodes: Count(pos, depth-1)})
		pos.UnmakeMove(m)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Move.UCI() < counts[j].Move.UCI()
	})
	return counts
}

// DivideParallel splits the tree at the root, one goroutine per root
// move. A Position is single-threaded by contract, so every worker
// replays its root move on its own copy; only the shared counts slice
// is written, each worker to its own index.
func DivideParallel(ctx context.Context, pos *board.Position, depth int) ([]RootCount, error) {
	var moves board.MoveList
	pos.GenerateLegalMoves(&moves)

	counts := make([]RootCount, moves.Len())
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < moves.Len(); i++ {
		i, m := i, moves.At(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cp := pos.Copy()
			cp.MakeMove(m)
			counts[i] = RootCount{Move: m, Nodes: Count(cp, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Move.UCI() < counts[j].Move.UCI()
	})
	return counts, nil
}

// Run drives a perft from fen to the given depth, writing the divide
// breakdown (when divide is true) and a summary line with
// thousands-separated node and rate figures to w.
func Run(ctx context.Context, w io.Writer, fen string, depth int, divide, parallel bool) (uint64, error) {
	if depth < 1 {
		return 0, fmt.Errorf("perft depth must be at least 1, got %d", depth)
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	var counts []RootCount
	if parallel {
		counts, err = DivideParallel(ctx, pos, depth)
		if err != nil {
			return 0, err
		}
	} else {
		counts = Divide(pos, depth)
	}
	elapsed := time.Since(start)

	var nodes uint64
	for _, rc := range counts {
		nodes += rc.Nodes
		if divide {
			fmt.Fprintf(w, "%s: %d\n", rc.Move.UCI(), rc.Nodes)
		}
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "depth=%d nodes=%d rate=%dn/s (%.3fs elapsed)\n",
		depth, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds())
	return nodes, nil
}
