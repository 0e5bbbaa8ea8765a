// Command corvid-perft counts move-tree leaf nodes from any FEN and
// prints divide breakdowns, the standard ground-truth check for the
// board package's move generation and make/undo.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/perft"
	"github.com/corvidchess/corvid/internal/render"
)

var (
	fen      = flag.String("fen", board.StartFEN, "position to search from")
	depth    = flag.Int("depth", 5, "perft depth in plies")
	divide   = flag.Bool("divide", false, "print per-root-move subtree counts")
	parallel = flag.Bool("parallel", false, "split the root across goroutines, one position copy each")
	show     = flag.Bool("show", false, "draw the position instead of running perft")
	moves    = flag.String("moves", "", "space-separated UCI moves to apply to the FEN first")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	pos, err := board.ParseFEN(*fen)
	if err != nil {
		return err
	}

	if *moves != "" {
		for _, s := range strings.Fields(*moves) {
			m, err := pos.ParseMove(s)
			if err != nil {
				return err
			}
			pos.MakeMove(m)
		}
	}

	if *show {
		fmt.Print(render.Summary(pos))
		return nil
	}

	_, err = perft.Run(context.Background(), os.Stdout, pos.ToFEN(), *depth, *divide, *parallel)
	return err
}
