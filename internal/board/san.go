package board

import (
	"fmt"
	"strings"
)

// ToSAN renders the move in Standard Algebraic Notation in the context
// of pos, which must be the position the move is played from. Used for
// logging and game records; UCI I/O stays on the long-algebraic form.
func (m Move) ToSAN(pos *Position) string {
	if m.IsNull() {
		return "-"
	}

	piece := pos.PieceAt(m.From)
	if piece.IsEmpty() {
		return m.UCI()
	}

	var sb strings.Builder

	switch {
	case m.IsCastle():
		if m.To > m.From {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}

	default:
		pt := piece.Type
		if pt != Pawn {
			sb.WriteByte("PNBRQK"[pt])
			sb.WriteString(sanDisambiguation(pos, m, pt))
		}
		if m.IsCapture() {
			if pt == Pawn {
				sb.WriteByte('a' + byte(m.From.File()))
			}
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte("PNBRQK"[m.Promoted])
		}
	}

	// Check and mate suffixes need the post-move position; probe it on
	// a scratch copy so the caller's position is untouched.
	scratch := pos.Copy()
	scratch.MakeMove(m)
	if scratch.IsCheckmate() {
		sb.WriteByte('#')
	} else if scratch.InCheck() {
		sb.WriteByte('+')
	}

	return sb.String()
}

// sanDisambiguation returns the file and/or rank of origin needed to
// distinguish m from other legal moves of the same piece type landing
// on the same square.
func sanDisambiguation(pos *Position, m Move, pt PieceType) string {
	var legal MoveList
	pos.GenerateLegalMoves(&legal)

	pieces := pos.Pieces[pos.SideToMove][pt]
	var candidates []Square
	for i := 0; i < legal.Len(); i++ {
		other := legal.At(i)
		if other.To != m.To || other.From == m.From {
			continue
		}
		if pieces.IsSet(other.From) {
			candidates = append(candidates, other.From)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(byte('a' + m.From.File()))
	case !sameRank:
		return string(byte('1' + m.From.Rank()))
	default:
		return m.From.String()
	}
}

// ParseMove resolves a UCI long-algebraic move string against the
// position's own legal moves, returning the fully populated Move
// (captured piece, promotion, castle and en-passant encoding included).
func (pos *Position) ParseMove(s string) (Move, error) {
	probe, err := ParseUCIMove(s)
	if err != nil {
		return NullMove, err
	}
	var legal MoveList
	pos.GenerateLegalMoves(&legal)
	m, ok := legal.Find(probe)
	if !ok {
		return NullMove, fmt.Errorf("%w: %q is not legal here", ErrInvalidMove, s)
	}
	if m.IsPromotion() && len(s) == 5 {
		// A bare (from,to) match cannot distinguish the four promotion
		// choices; honor the suffix the caller asked for.
		for i := 0; i < legal.Len(); i++ {
			cand := legal.At(i)
			if cand.Equal(probe) && cand.Promoted == probe.Promoted {
				return cand, nil
			}
		}
	}
	return m, nil
}
