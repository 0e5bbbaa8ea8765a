package board

// maxSwapDepth bounds the SEE gain array; 32 captures on one square
// exceeds anything a legal position can produce.
const maxSwapDepth = 32

// SEE statically evaluates the swap-off sequence a capture m starts on
// its destination square: each side keeps recapturing with its least
// valuable available attacker, and either player may stop once
// continuing loses material. The returned value is the centipawn
// balance from the mover's point of view. A quiet move to a defended
// square evaluates to zero or below, which is why search also probes
// SEE for non-captures it wants to prune.
func (pos *Position) SEE(m Move) int {
	to := m.To
	from := m.From

	captured := pos.PieceAt(to).Type
	if m.IsEnPassant() {
		captured = Pawn
	}

	var gain [maxSwapDepth]int
	depth := 0
	gain[depth] = PieceValue[captured]
	depth++

	attacker := pos.PieceAt(from).Type
	side := pos.SideToMove.Opposite()
	occ := pos.AllOccupied ^ SquareBB(from)

	// Sliders standing behind the departed attacker join the set
	// automatically because the attack probe reruns on the reduced
	// occupancy.
	attackers := pos.AttackersByColor(to, side, occ) & occ

	for attackers.Any() {
		gain[depth] = PieceValue[attacker] - gain[depth-1]

		attackerSq, attackerType := pos.leastValuableAttacker(side, attackers)
		occ ^= SquareBB(attackerSq)
		attacker = attackerType
		side = side.Opposite()
		attackers = pos.AttackersByColor(to, side, occ) & occ
		depth++
		if depth == maxSwapDepth-1 {
			break
		}
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}
	return gain[0]
}

// leastValuableAttacker picks the cheapest piece of color c inside the
// attackers set, scanning piece types from pawn up; the king is only
// ever reached once nothing else can recapture.
func (pos *Position) leastValuableAttacker(c Color, attackers Bitboard) (Square, PieceType) {
	for pt := Pawn; pt <= King; pt++ {
		subset := pos.Pieces[c][pt] & attackers
		if subset.Any() {
			return subset.LSB(), pt
		}
	}
	return NoSquare, NoPieceType
}
