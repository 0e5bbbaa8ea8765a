// Package render draws a Position as a colorized terminal board, used
// by the command-line tools; it has no role inside the search-facing
// core.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/corvidchess/corvid/internal/board"
)

var (
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgBlack, color.BgWhite)
	checkSquare = color.New(color.FgBlack, color.BgHiRed)
	coordLabel  = color.New(color.Bold)
)

// pieceGlyphs maps a FEN piece character to its figurine form.
var pieceGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// Board renders pos rank 8 first, checkerboard-shaded, with any piece
// currently giving check highlighted along with the checked king.
func Board(pos *board.Position) string {
	checkers := pos.Checkers
	kingSq := board.NoSquare
	if checkers.Any() {
		kingSq = pos.KingSquare[pos.SideToMove]
	}

	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(coordLabel.Sprintf(" %d ", rank+1))
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			cell := "   "
			if p := pos.PieceAt(sq); !p.IsEmpty() {
				cell = " " + pieceGlyphs[p.Char()] + " "
			}
			shade := darkSquare
			if (file+rank)%2 == 1 {
				shade = lightSquare
			}
			if checkers.IsSet(sq) || sq == kingSq {
				shade = checkSquare
			}
			sb.WriteString(shade.Sprint(cell))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(coordLabel.Sprint("    a  b  c  d  e  f  g  h \n"))
	return sb.String()
}

// Summary renders the board plus the position's FEN (side to move,
// castling rights, en-passant target and clocks), its game stage, and
// a check flag when the side to move is in check.
func Summary(pos *board.Position) string {
	var sb strings.Builder
	sb.WriteString(Board(pos))
	sb.WriteByte('\n')
	sb.WriteString("fen:   " + pos.ToFEN() + "\n")
	sb.WriteString("stage: " + pos.Stage().String() + "\n")
	if pos.InCheck() {
		sb.WriteString(color.HiRedString("check!") + "\n")
	}
	return sb.String()
}
